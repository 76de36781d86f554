package main

import (
	"github.com/leengari/tabledb/internal/demo"
	"github.com/spf13/cobra"
)

func demoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample walkthrough and dump it to the configured file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			return demo.Run(ctx, cmd.OutOrStdout(), demo.Options{
				Location: a.cfg.File,
				S3:       a.cfg.S3,
				NewStore: a.newStore,
			})
		},
	}
}

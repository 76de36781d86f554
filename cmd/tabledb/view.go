package main

import (
	"github.com/leengari/tabledb/internal/storage/remote"
	"github.com/spf13/cobra"
)

func viewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view [table...]",
		Short: "Load the configured file and print tables (all when none named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			st := a.newStore()
			if err := remote.Load(ctx, st, a.cfg.File, a.cfg.S3); err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = st.Tables()
			}
			for _, name := range names {
				if err := st.ViewRecords(name, cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

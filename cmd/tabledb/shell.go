package main

import (
	stderrors "errors"
	"io/fs"
	"log/slog"

	"github.com/leengari/tabledb/internal/repl"
	"github.com/leengari/tabledb/internal/storage/remote"
	"github.com/spf13/cobra"
)

func shellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell; loads the configured file and dumps it on exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			st := a.newStore()

			// A missing local file just means an empty store
			if err := remote.Load(ctx, st, a.cfg.File, a.cfg.S3); err != nil {
				if !stderrors.Is(err, fs.ErrNotExist) {
					return err
				}
				slog.Info("starting with an empty store", "file", a.cfg.File)
			}

			sh := repl.New(st, cmd.OutOrStdout(), repl.Options{Location: a.cfg.File, S3: a.cfg.S3})
			if err := sh.Start(ctx, cmd.InOrStdin()); err != nil {
				return err
			}

			if !st.Dirty() {
				return nil
			}
			slog.Info("Shutting down - saving store...", "file", a.cfg.File)
			return remote.Dump(ctx, st, a.cfg.File, a.cfg.S3)
		},
	}
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/leengari/tabledb/internal/config"
	"github.com/leengari/tabledb/internal/logging"
	"github.com/leengari/tabledb/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs once flags are resolved
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	closeFn func()
}

func (a *app) newStore() *store.Store {
	st := store.New(a.cfg.StoreOptions(a.logger))
	st.AddObserver(store.NewLoggingObserver(a.logger))
	return st
}

// rootCmd builds the command tree. The returned func flushes and closes the
// logger once the command has finished.
func rootCmd() (*cobra.Command, func()) {
	a := &app{closeFn: func() {}}

	cmd := &cobra.Command{
		Use:           "tabledb",
		Short:         "In-process table store with a plain text dump format",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitEnv(viper.GetViper())
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.logger, a.closeFn = logging.SetupLogger(cfg.LoggingOptions())
			slog.SetDefault(a.logger)
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(demoCmd(a))
	cmd.AddCommand(shellCmd(a))
	cmd.AddCommand(viewCmd(a))

	return cmd, func() { a.closeFn() }
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

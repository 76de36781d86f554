package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/leengari/tabledb/internal/config"
	"github.com/leengari/tabledb/internal/demo"
	"github.com/leengari/tabledb/internal/logging"
	"github.com/leengari/tabledb/internal/store"
)

func main() {
	logger, closeFn := logging.SetupLogger(logging.Options{Level: slog.LevelInfo})
	defer closeFn()

	slog.SetDefault(logger)
	logger.Info("Starting demo...", "file", config.DefaultFile)

	err := demo.Run(context.Background(), os.Stdout, demo.Options{
		Location: config.DefaultFile,
		NewStore: func() *store.Store {
			return store.New(store.Options{Logger: logger})
		},
	})
	if err != nil {
		logger.Error("demo failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	logger.Info("Demo finished")
}

package main

import (
	"log/slog"
	"os"
)

func main() {
	cmd, closeFn := rootCmd()
	err := cmd.Execute()
	if err != nil {
		slog.Error("command failed", "error", err)
	}
	closeFn()

	if err != nil {
		os.Exit(1)
	}
}

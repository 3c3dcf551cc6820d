package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/gfpoly/internal/cli"
	"github.com/Davincible/gfpoly/pkg/config"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := config.DefaultConfig()
	if cm, err := config.NewConfigManager(); err != nil {
		slog.Warn("Using default configuration", "error", err)
	} else {
		cfg = cm.GetConfig()
	}

	rootCmd := cli.NewRootCommand(cfg, fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

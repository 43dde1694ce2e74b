package main

import (
	"fmt"
	"os"

	"github.com/jwulff/corehub/internal/app"
	"github.com/jwulff/corehub/internal/config"
	"github.com/jwulff/corehub/internal/db"
	"github.com/jwulff/corehub/internal/logging"
	"github.com/jwulff/corehub/internal/session"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

var rootCmd = &cobra.Command{
	Use:   "corehub",
	Short: "CoreHub device console",
	Long:  `CoreHub is a terminal console for discovering and installing a CoreHub.`,
	Args:  cobra.NoArgs,
	RunE:  runConsole,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $HOME/.config/corehub/config.toml)")
	rootCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().String("log-file", "", "Write logs to this file")
	rootCmd.Flags().String("activity-db", "", "Activity log database path (\":memory:\" keeps it in memory)")
}

// loadConfig reads the config file and applies any flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var path string
	if f := cmd.Flag("config"); f != nil {
		path = f.Value.String()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	overrides := map[string]*string{
		"log-level":   &cfg.Log.Level,
		"log-file":    &cfg.Log.File,
		"activity-db": &cfg.Activity.Path,
	}
	for name, dst := range overrides {
		if f := cmd.Flag(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	return cfg, nil
}

func runConsole(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := db.Open(cfg.Activity.Path)
	if err != nil {
		return fmt.Errorf("open activity log: %w", err)
	}
	defer store.Close()

	gate := session.NewGate(session.WithLogger(logger))
	model := app.New(gate,
		app.WithStore(store),
		app.WithLogger(logger),
		app.WithTitle(cfg.UI.Title),
	)

	logger.Info("starting console", "activity", cfg.Activity.Path)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	logger.Info("console exited")
	return nil
}

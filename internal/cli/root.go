package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/woodstock/internal/config"
	"github.com/handiism/woodstock/internal/logging"
	"github.com/handiism/woodstock/internal/store"
)

// app carries what the subcommands share once the root command has run its
// persistent pre-run.
type app struct {
	configPath string
	dataDir    string
	verbose    bool

	settings *config.Settings
	logger   *zap.Logger
	store    *store.JSONStore
}

// Execute runs the woodstock command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "woodstock",
		Short:         "Festivals, lineups and performers, stored as tagged JSON",
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "settings file (.yaml, .yml or .json)")
	cmd.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory holding stored entries (overrides settings)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging and verbose progress")

	cmd.AddCommand(
		demoCmd(a),
		showCmd(a),
		encodeLineupCmd(a),
		listCmd(a),
		crawlCmd(a),
		configCmd(a),
	)
	return cmd
}

func (a *app) setup() error {
	settings := config.DefaultSettings()
	if a.configPath != "" {
		var err error
		settings, err = config.Load(a.configPath)
		if err != nil {
			return err
		}
	}

	level := settings.LogLevel
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, Development: settings.LogDevelopment})
	if err != nil {
		return err
	}

	dir := a.dataDir
	if dir == "" {
		dir, err = settings.DataDir()
		if err != nil {
			return err
		}
	}

	a.settings = settings
	a.logger = logger
	a.store = store.New(dir, store.WithLogger(logger))
	logger.Debug("settings loaded", zap.String("config", a.configPath), zap.String("data_dir", dir))
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/azztche/ate-dme-obst/core/config"
	"github.com/azztche/ate-dme-obst/core/logger"
	"github.com/azztche/ate-dme-obst/core/objects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "obst",
	Short: "Neva Objects storage client",
	Long: `obst uploads, lists, deletes and shares objects in a single
S3-compatible bucket. Settings come from the environment or a .env file
(OBJECTS_BUCKET, OBJECTS_ACCESS_KEY, OBJECTS_SECRET_KEY, ...).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Config may be what failed, so use a fixed console logger.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envDir, "env-dir", ".", "Directory containing the .env file")
}

// newClient loads configuration and builds the objects client and its logger.
func newClient() (*objects.Client, *zap.Logger, error) {
	cfg, err := config.LoadConfig(envDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := objects.New(cfg.Objects, logg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create objects client: %w", err)
	}

	return client, logg, nil
}

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/discvault/internal/config"
	"github.com/JaimeStill/discvault/pkg/logging"
)

var configFile string

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "discvault",
		Short:         "DiscVault collection management tools",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configFile, "config", config.BaseConfigFile, "base configuration file")

	root.AddCommand(
		migrateCmd(),
		seedCmd(),
		routesCmd(),
		themeCmd(),
		tracksCmd(),
	)
	return root
}

// loadConfig reads the configuration named by --config with its environment overlay.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(&cfg.Logging), nil
}

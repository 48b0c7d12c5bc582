// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/usdassemble/cli/internal/config"
	"github.com/usdassemble/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	appConfig *config.Config
)

// NewRootCmd creates the root command for the usdasm CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "usdasm",
		Short:         "Assemble layered scene descriptions from asset directory trees",
		Long: `usdasm scans an asset directory tree (components, subcomponents,
geometry and texture files) and generates the composition layers that tie
it together: entry, payload, look and material files per node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: USDA_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewAssembleCmd())
	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewInfoCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

// GetConfig returns the resolved configuration. Commands call this after
// PersistentPreRunE has run; tests may set a config directly.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

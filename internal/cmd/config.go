package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/usdassemble/cli/internal/config"
	"github.com/usdassemble/cli/internal/errors"
	"github.com/usdassemble/cli/internal/output"
)

// NewConfigCmd creates the config command with its subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage usdasm configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long:  `Create ~/.usdassemble/config.yaml populated with default values.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}
}

func runConfigInit(force bool) error {
	if err := config.EnsureHomeDir(); err != nil {
		return &errors.ExitError{Code: errors.ExitGeneralError, Err: err}
	}

	path, err := config.GetConfigFile()
	if err != nil {
		return &errors.ExitError{Code: errors.ExitGeneralError, Err: err}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return &errors.ExitError{
			Code: errors.ExitGeneralError,
			Err:  fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return &errors.ExitError{Code: errors.ExitGeneralError, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &errors.ExitError{Code: errors.ExitGeneralError, Err: err}
	}

	output.Println(output.FormatCheckmark("wrote " + path))
	return nil
}

func runConfigShow() error {
	data, err := yaml.Marshal(GetConfig())
	if err != nil {
		return &errors.ExitError{Code: errors.ExitGeneralError, Err: err}
	}
	output.Print(string(data))
	return nil
}

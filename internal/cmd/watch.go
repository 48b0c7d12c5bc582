package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command, a standing alias for
// `assemble --watch`.
func NewWatchCmd() *cobra.Command {
	var (
		outputFlag   string
		reportFlag   bool
		debounceFlag time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-assemble a tree whenever its source files change",
		Long: `Watch an asset directory tree and re-run assembly after every change
to geometry or texture files. Generated layers are ignored so a run never
retriggers itself. Stop with Ctrl-C.

Examples:
  # Watch the current directory
  usdasm watch

  # Watch a specific tree with a longer quiet period
  usdasm watch ./assets/ChessSet --debounce 2s`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(args, outputFlag, reportFlag, true, debounceFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text",
		"Report format: text, yaml, json")
	cmd.Flags().BoolVar(&reportFlag, "report", false,
		"Print the full run report after each run")
	cmd.Flags().DurationVar(&debounceFlag, "debounce", 0,
		"Quiet period before a change triggers a run")

	return cmd
}

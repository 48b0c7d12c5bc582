package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/usdassemble/cli/internal/assembler"
	"github.com/usdassemble/cli/internal/errors"
	"github.com/usdassemble/cli/internal/output"
	"github.com/usdassemble/cli/internal/watch"
)

// NewAssembleCmd creates the assemble command.
func NewAssembleCmd() *cobra.Command {
	var (
		outputFlag   string
		reportFlag   bool
		watchFlag    bool
		debounceFlag time.Duration
	)

	cmd := &cobra.Command{
		Use:   "assemble [path]",
		Short: "Generate composition layers for an asset tree",
		Long: `Scan an asset directory tree and generate its composition layers:
entry, payload, look and material files for every component.

Arguments:
  path    Path to the assembly root directory (default: current directory)

Examples:
  # Assemble the tree in the current directory
  usdasm assemble

  # Assemble a specific tree and print the run report as YAML
  usdasm assemble ./assets/ChessSet --report -o yaml

  # Re-assemble whenever source files change
  usdasm assemble ./assets/ChessSet --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(args, outputFlag, reportFlag, watchFlag, debounceFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text",
		"Report format: text, yaml, json")
	cmd.Flags().BoolVar(&reportFlag, "report", false,
		"Print the full run report instead of the file summary")
	cmd.Flags().BoolVar(&watchFlag, "watch", false,
		"Watch the tree and re-assemble on changes")
	cmd.Flags().DurationVar(&debounceFlag, "debounce", 0,
		"Quiet period before a watched change triggers a run")

	return cmd
}

func runAssemble(args []string, outputFmt string, showReport, watchMode bool, debounce time.Duration) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	format, valid := output.ParseFormat(outputFmt)
	if !valid {
		return &errors.ExitError{
			Code: errors.ExitGeneralError,
			Err:  fmt.Errorf("invalid output format %q (valid: text, yaml, json)", outputFmt),
		}
	}

	ctx := context.Background()
	if !watchMode {
		return assembleOnce(ctx, path, format, showReport)
	}

	// Watch mode: run once up front, then re-run on changes until
	// interrupted. A failed run keeps the watch alive.
	if err := assembleOnce(ctx, path, format, showReport); err != nil {
		output.Error("assembly failed", "error", err)
	}

	w, err := watch.New(watch.Config{
		BaseDir:  path,
		Debounce: debounce,
		OnChange: func(ctx context.Context, changed []string) error {
			output.Info("change detected", "files", len(changed))
			if err := assembleOnce(ctx, path, format, showReport); err != nil {
				output.Error("assembly failed", "error", err)
			}
			return nil
		},
	})
	if err != nil {
		return &errors.ExitError{Code: errors.ExitGeneralError, Err: err}
	}

	output.Info("watching for changes", "path", path)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.Run(ctx)
}

// assembleOnce runs one assembly pass and renders its outcome.
func assembleOnce(ctx context.Context, path string, format output.Format, showReport bool) error {
	a := assembler.New(GetConfig())

	var (
		report *assembler.RunReport
		runErr error
	)
	spinErr := output.RunWithSpinner(ctx, func() error {
		report, runErr = a.Assemble(ctx, path)
		return runErr
	}, output.WithTitle(fmt.Sprintf("Assembling %s...", path)))
	if runErr == nil && spinErr != nil {
		runErr = spinErr
	}

	if report != nil {
		printRunOutcome(report, format, showReport)
	}

	if runErr != nil {
		return &errors.ExitError{
			Code:    errors.ExitCodeFor(runErr),
			Err:     runErr,
			Printed: report != nil && printFailures(report),
		}
	}
	return nil
}

// printRunOutcome renders a run report in the requested format.
func printRunOutcome(report *assembler.RunReport, format output.Format, showReport bool) {
	if format != output.FormatText {
		data, err := output.Marshal(report, format)
		if err != nil {
			output.Error("marshaling report failed", "error", err)
			return
		}
		output.Print(string(data))
		return
	}

	files := make(map[string]string, len(report.GeneratedFiles))
	for _, node := range report.Nodes {
		for _, f := range node.Files {
			files[f] = output.StatusGenerated
		}
		if node.Error != "" {
			output.Println(output.FormatFileLine(node.Name, output.StatusFailed))
		}
	}
	if tree := output.RenderFileTree(report.Assembly, files); tree != "" {
		output.Print(tree)
	}

	for _, w := range report.Warnings {
		output.Warn(w)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf(
		"assembled %s: %d components, %d variants, %d files",
		report.Assembly, report.ComponentsFound, report.VariantsFound, len(report.GeneratedFiles))))

	if showReport {
		data, err := output.Marshal(report, output.FormatYAML)
		if err != nil {
			output.Error("marshaling report failed", "error", err)
			return
		}
		output.Print(string(data))
	}
}

// printFailures logs each failed node and reports whether anything was
// printed.
func printFailures(report *assembler.RunReport) bool {
	failed := report.Failed()
	for _, n := range failed {
		output.Error("node failed", "node", n.Name, "error", n.Error)
	}
	return len(failed) > 0
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usdassemble/cli/internal/asset"
	"github.com/usdassemble/cli/internal/errors"
	"github.com/usdassemble/cli/internal/output"
	"github.com/usdassemble/cli/internal/plan"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "info [path]",
		Short: "Show one asset node's classification and layer files",
		Long: `Classify a single directory as an asset node and report its kind,
variants and geometry, plus which of its composition layers already
exist on disk. Unlike scan, the directory does not need children.

Examples:
  # Inspect a single component
  usdasm info ./assets/ChessSet/components/Bishop

  # Emit the node report as YAML
  usdasm info ./assets/ChessSet -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args, outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text",
		"Output format: text, yaml, json")

	return cmd
}

// layerStatus records whether one expected layer file exists on disk.
type layerStatus struct {
	File   string `yaml:"file" json:"file"`
	Exists bool   `yaml:"exists" json:"exists"`
}

type infoReport struct {
	Name     string        `yaml:"name" json:"name"`
	Path     string        `yaml:"path" json:"path"`
	Kind     string        `yaml:"kind" json:"kind"`
	Geometry string        `yaml:"geometry,omitempty" json:"geometry,omitempty"`
	Variants []string      `yaml:"variants,omitempty" json:"variants,omitempty"`
	Children []string      `yaml:"children,omitempty" json:"children,omitempty"`
	Layers   []layerStatus `yaml:"layers" json:"layers"`
	Warnings []string      `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

func runInfo(args []string, outputFmt string) error {
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

	node, warnings, err := asset.NewClassifier(GetConfig()).Inspect(path)
	if err != nil {
		return &errors.ExitError{Code: errors.ExitCodeFor(err), Err: err}
	}

	nodePlan, err := plan.NewBuilder().Build(node)
	if err != nil {
		return &errors.ExitError{Code: errors.ExitCodeFor(err), Err: err}
	}

	report := infoReport{
		Name:     node.Name,
		Path:     node.Path,
		Kind:     node.Kind.String(),
		Geometry: node.GeometryFile,
		Warnings: warnings,
	}
	for _, v := range node.Variants {
		report.Variants = append(report.Variants, v.Name)
	}
	for _, c := range node.Children {
		report.Children = append(report.Children, c.Name)
	}
	for _, f := range nodePlan.Files() {
		_, statErr := os.Stat(filepath.Join(node.Path, f))
		report.Layers = append(report.Layers, layerStatus{
			File:   f,
			Exists: statErr == nil,
		})
	}

	if format != output.FormatText {
		data, err := output.Marshal(report, format)
		if err != nil {
			return &errors.ExitError{Code: errors.ExitGeneralError, Err: err}
		}
		output.Print(string(data))
		return nil
	}

	output.Println(fmt.Sprintf("%s (%s)", report.Name, report.Kind))
	output.Println("  path: " + report.Path)
	if report.Geometry != "" {
		output.Println("  geometry: " + report.Geometry)
	}
	if len(report.Variants) > 0 {
		output.Println("  variants: " + strings.Join(report.Variants, ", "))
	}
	if len(report.Children) > 0 {
		output.Println("  children: " + strings.Join(report.Children, ", "))
	}
	output.Println("  layers:")
	for _, l := range report.Layers {
		status := "missing"
		if l.Exists {
			status = output.StatusGenerated
		}
		output.Println("  " + output.FormatFileLine(l.File, status))
	}
	for _, w := range report.Warnings {
		output.Warn(w)
	}
	return nil
}

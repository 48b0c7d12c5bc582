// Package assembler orchestrates one assembly run: classify the tree,
// derive the composition plan, and write every node's layer files.
package assembler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/usdassemble/cli/internal/asset"
	"github.com/usdassemble/cli/internal/config"
	"github.com/usdassemble/cli/internal/mtlx"
	"github.com/usdassemble/cli/internal/output"
	"github.com/usdassemble/cli/internal/plan"
	"github.com/usdassemble/cli/internal/templates"
	"github.com/usdassemble/cli/internal/usd"
)

// filePayload is one rendered output file.
type filePayload struct {
	name string
	data []byte
}

// Assembler runs assembly over a directory tree. Safe for sequential
// reuse; one Assemble call runs at a time.
type Assembler struct {
	cfg    *config.Config
	seeder mtlx.Seeder
}

// New builds an Assembler using the embedded material seed.
func New(cfg *config.Config) *Assembler {
	return NewWithSeeder(cfg, templates.MaterialSeeder{})
}

// NewWithSeeder builds an Assembler with a caller-supplied material seed
// source.
func NewWithSeeder(cfg *config.Config, seeder mtlx.Seeder) *Assembler {
	return &Assembler{cfg: cfg, seeder: seeder}
}

// Assemble classifies the tree at path, derives its composition plan, and
// writes every node's layer files.
//
// A node whose files cannot be written is recorded in the report and does
// not stop its siblings; the returned error is non-nil when any node
// failed, so callers always get the partial report alongside it.
func (a *Assembler) Assemble(ctx context.Context, path string) (*RunReport, error) {
	// Phase 1: CLASSIFY — scan the directory tree into nodes.
	root, warnings, err := asset.NewClassifier(a.cfg).Classify(path)
	if err != nil {
		return nil, err
	}
	output.Debug("classified tree",
		"assembly", root.Name,
		"components", root.CountComponents(),
		"variants", root.CountVariants(),
		"warnings", len(warnings),
	)

	// Phase 2: PLAN — derive layer files and arcs, children before parents.
	rootPlan, err := plan.NewBuilder().Build(root)
	if err != nil {
		return nil, err
	}

	report := &RunReport{
		Assembly:        root.Name,
		Warnings:        warnings,
		ComponentsFound: root.CountComponents(),
		VariantsFound:   root.CountVariants(),
	}

	// Phase 3: WRITE — render and write layer files, siblings in parallel.
	sem := make(chan struct{}, a.cfg.Workers)
	results := a.writeTree(ctx, rootPlan, root.Path, sem)

	for _, res := range results {
		report.Nodes = append(report.Nodes, res)
		report.GeneratedFiles = append(report.GeneratedFiles, res.Files...)
	}

	// Ensure non-nil slices for consistent consumer behavior.
	if report.GeneratedFiles == nil {
		report.GeneratedFiles = make([]string, 0)
	}
	if report.Warnings == nil {
		report.Warnings = make([]string, 0)
	}

	if ctx.Err() != nil {
		return report, ctx.Err()
	}
	if failed := report.Failed(); len(failed) > 0 {
		return report, fmt.Errorf("%d of %d nodes failed", len(failed), len(report.Nodes))
	}

	return report, nil
}

// writeTree writes one node's files and recurses into its children.
// Results keep tree order regardless of scheduling so reports are
// deterministic. The semaphore bounds concurrent disk work only; tree
// coordination never holds a slot while waiting on descendants.
func (a *Assembler) writeTree(ctx context.Context, p *plan.NodePlan, rootPath string, sem chan struct{}) []NodeResult {
	sem <- struct{}{}
	own := a.writeNode(ctx, p, rootPath)
	<-sem

	childResults := make([][]NodeResult, len(p.Children))
	var wg sync.WaitGroup
	for i, child := range p.Children {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(i int, child *plan.NodePlan) {
			defer wg.Done()
			childResults[i] = a.writeTree(ctx, child, rootPath, sem)
		}(i, child)
	}
	wg.Wait()

	results := []NodeResult{own}
	for _, rs := range childResults {
		results = append(results, rs...)
	}
	return results
}

// writeNode renders and writes one node's layer files. On failure the
// node's already-written files from this run are removed so a half-written
// node is never mistaken for a generated one.
func (a *Assembler) writeNode(ctx context.Context, p *plan.NodePlan, rootPath string) NodeResult {
	result := NodeResult{
		Name:       p.Node.Name,
		Kind:       p.Node.Kind.String(),
		NoTextures: p.Material != nil && p.Node.NoTextures,
	}
	if ctx.Err() != nil {
		result.Error = ctx.Err().Error()
		return result
	}

	log := output.NodeLogger(p.Node.Name)

	files, err := a.renderNode(p)
	if err != nil {
		log.Error("rendering layers failed", "error", err)
		result.Error = err.Error()
		return result
	}

	var written []string
	for _, f := range files {
		target := filepath.Join(p.Node.Path, f.name)
		if err := writeFileAtomic(target, f.data); err != nil {
			log.Error("writing layer failed", "file", f.name, "error", err)
			for _, w := range written {
				os.Remove(w)
			}
			result.Files = nil
			result.Error = err.Error()
			return result
		}
		written = append(written, target)
		result.Files = append(result.Files, relPath(rootPath, p.Node.Path, f.name))
	}

	log.Debug("layers written", "files", len(files))
	return result
}

// renderNode renders every layer file the node's plan names in generation
// order.
func (a *Assembler) renderNode(p *plan.NodePlan) ([]filePayload, error) {
	stage := usd.Stage{
		UpAxis:        a.cfg.Stage.UpAxis,
		MetersPerUnit: a.cfg.Stage.MetersPerUnit,
	}

	files := []filePayload{
		{p.Entry.FileName, usd.Encode(usd.EntryLayer(p.Entry, stage))},
	}
	if p.Payload != nil {
		files = append(files, filePayload{
			p.Payload.FileName,
			usd.Encode(usd.PayloadLayer(p.Payload, p.Entry.PrimName, stage)),
		})
	}
	if p.Look != nil {
		files = append(files, filePayload{
			p.Look.FileName,
			usd.Encode(usd.LookLayer(p.Look, stage)),
		})
	}
	if p.Material != nil {
		graphs := make([]mtlx.ShadingGraph, 0, len(p.Material.Variants))
		for _, v := range p.Material.Variants {
			graphs = append(graphs, mtlx.Synthesize(p.Node, v))
		}
		data, err := mtlx.WriteDocument(graphs, a.seeder)
		if err != nil {
			return nil, err
		}
		files = append(files, filePayload{p.Material.FileName, data})
	}

	return files, nil
}

// writeFileAtomic writes through a temp file and renames it into place, so
// an interrupted run never leaves a truncated layer behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// relPath joins a node-relative file into an assembly-root-relative,
// forward-slash path for reports.
func relPath(rootPath, nodePath, file string) string {
	rel, err := filepath.Rel(rootPath, nodePath)
	if err != nil || rel == "." {
		return file
	}
	return filepath.ToSlash(filepath.Join(rel, file))
}

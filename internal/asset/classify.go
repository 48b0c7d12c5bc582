package asset

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/usdassemble/cli/internal/config"
	"github.com/usdassemble/cli/internal/errors"
)

// Classifier turns a directory tree into a Node tree. A Classifier is
// single-use: the visited set accumulates canonical paths across the whole
// walk so symlink cycles are caught no matter where they re-enter.
type Classifier struct {
	extensions     []string
	defaultVariant string
	sniffContent   bool
	dualPolicy     string

	visited  map[string]struct{}
	warnings []string
}

// NewClassifier builds a Classifier from configuration.
func NewClassifier(cfg *config.Config) *Classifier {
	return &Classifier{
		extensions:     cfg.Textures.Extensions,
		defaultVariant: cfg.Textures.DefaultVariantName,
		sniffContent:   cfg.Textures.SniffContent,
		dualPolicy:     cfg.DualDirectoryPolicy,
		visited:        make(map[string]struct{}),
	}
}

// Classify walks the directory at root and returns the classified node
// tree. The root must be a container; a bare leaf directory is rejected so
// a stray path never silently assembles into a single-prim scene.
//
// An unusable child directory is skipped with a warning rather than
// failing the run; the walk fails only when a child directory ends up with
// zero usable nodes, or on structural violations such as symlink cycles.
func (c *Classifier) Classify(root string) (*Node, []string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		// Keep the os error chain so a missing path stays distinguishable
		// from an unclassifiable one.
		return nil, nil, fmt.Errorf("reading asset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, errors.NewClassificationError(
			"path is not a directory", root, "point the command at an asset directory")
	}

	node, err := c.classifyDir(abs)
	if err != nil {
		return nil, c.warnings, err
	}

	if !node.IsContainer() {
		return nil, c.warnings, errors.NewClassificationError(
			"directory has no "+ComponentsDir+" or "+SubcomponentsDir+" subdirectory with assets", root,
			"an assembly root needs at least one component under "+ComponentsDir+"/")
	}

	assignKinds(node, 0)

	return node, c.warnings, nil
}

// Inspect classifies a single directory without requiring it to be a
// container, for per-node reporting. Leaves keep their full variant and
// geometry detail; a directory that is no asset node at all still errors.
func (c *Classifier) Inspect(path string) (*Node, []string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, nil, fmt.Errorf("reading asset directory: %w", err)
	}

	node, err := c.classifyDir(abs)
	if err != nil {
		return nil, c.warnings, err
	}
	assignKinds(node, 0)

	return node, c.warnings, nil
}

// classifyDir classifies one directory and recurses into its children.
func (c *Classifier) classifyDir(dir string) (*Node, error) {
	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, errors.NewClassificationError(
			fmt.Sprintf("cannot resolve path: %v", err), dir, "")
	}
	if _, seen := c.visited[canonical]; seen {
		return nil, errors.NewCycleError(
			"directory already visited on this walk (symlink cycle)", dir)
	}
	c.visited[canonical] = struct{}{}

	node := &Node{
		Name: filepath.Base(dir),
		Path: dir,
	}

	childDir, err := c.pickChildDir(dir)
	if err != nil {
		return nil, err
	}
	node.ChildDir = childDir

	if childDir != "" {
		children, err := c.classifyChildren(filepath.Join(dir, childDir))
		if err != nil {
			return nil, err
		}
		node.Children = children
	}

	node.GeometryFile, node.HasGeometry = findGeometry(dir, node.Name)

	variants, warnings, err := c.DetectVariants(filepath.Join(dir, TexturesDir), node.Name)
	if err != nil {
		return nil, errors.NewClassificationError(err.Error(), dir, "")
	}
	for _, w := range warnings {
		c.warnings = append(c.warnings, fmt.Sprintf("%s: %s", node.Name, w))
	}
	node.Variants = variants
	node.NoTextures = len(variants) == 0

	if !node.IsContainer() && !node.HasGeometry {
		if len(node.Variants) > 0 {
			return nil, errors.NewMissingGeometryError(
				fmt.Sprintf("no %s_geom.* file found", node.Name), dir)
		}
		return nil, errors.NewClassificationError(
			"directory has neither children nor a geometry file", dir,
			"add a "+node.Name+"_geom.* file or a "+ComponentsDir+"/ subdirectory")
	}

	return node, nil
}

// pickChildDir decides which child directory a node aggregates, applying
// the dual-directory policy when both are present.
func (c *Classifier) pickChildDir(dir string) (string, error) {
	hasComponents := dirExists(filepath.Join(dir, ComponentsDir))
	hasSubcomponents := dirExists(filepath.Join(dir, SubcomponentsDir))

	switch {
	case hasComponents && hasSubcomponents:
		if c.dualPolicy == config.PolicyError {
			return "", errors.NewClassificationError(
				"directory holds both "+ComponentsDir+" and "+SubcomponentsDir, dir,
				"keep one child directory per node, or set dualDirectoryPolicy: prefer-components")
		}
		c.warnings = append(c.warnings, fmt.Sprintf(
			"%s holds both %s and %s; using %s",
			dir, ComponentsDir, SubcomponentsDir, ComponentsDir))
		return ComponentsDir, nil
	case hasComponents:
		return ComponentsDir, nil
	case hasSubcomponents:
		return SubcomponentsDir, nil
	default:
		return "", nil
	}
}

// classifyChildren classifies every child directory in listing order. An
// unusable child is skipped with a warning; cycle errors abort the walk.
// Hidden directories and non-directory entries are ignored.
func (c *Classifier) classifyChildren(parentDir string) ([]*Node, error) {
	entries, err := os.ReadDir(parentDir)
	if err != nil {
		return nil, errors.NewClassificationError(
			fmt.Sprintf("cannot read child directory: %v", err), parentDir, "")
	}

	var children []*Node
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		childPath := filepath.Join(parentDir, e.Name())
		if info, err := os.Stat(childPath); err != nil || !info.IsDir() {
			continue
		}

		child, err := c.classifyDir(childPath)
		if err != nil {
			if isSkippable(err) {
				c.warnings = append(c.warnings, fmt.Sprintf("skipping %s: %v", childPath, err))
				continue
			}
			return nil, err
		}
		children = append(children, child)
	}

	if len(children) == 0 {
		return nil, errors.NewNoValidNodesError(
			"no usable asset directories found", parentDir)
	}

	return children, nil
}

// isSkippable reports whether a child's classification failure degrades to
// a warning instead of failing the run.
func isSkippable(err error) bool {
	return stderrors.Is(err, errors.ErrClassification) ||
		stderrors.Is(err, errors.ErrMissingGeometry) ||
		stderrors.Is(err, errors.ErrNoValidNodes)
}

// assignKinds sets the hierarchy kind for every node. The root is an
// assembly when it aggregates a components directory, otherwise a
// component with children; direct children of the root are components and
// anything deeper is a subcomponent.
func assignKinds(n *Node, depth int) {
	switch {
	case depth == 0 && n.ChildDir == ComponentsDir:
		n.Kind = KindAssembly
	case depth <= 1:
		n.Kind = KindComponent
	default:
		n.Kind = KindSubcomponent
	}
	for _, c := range n.Children {
		assignKinds(c, depth+1)
	}
}

// findGeometry looks for a <name>_geom.* file in the directory. The first
// match in listing order wins.
func findGeometry(dir, name string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	prefix := strings.ToLower(name) + "_geom."
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(strings.ToLower(e.Name()), prefix) {
			return e.Name(), true
		}
	}
	return "", false
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

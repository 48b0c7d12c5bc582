package plan

import (
	"path/filepath"

	"github.com/usdassemble/cli/internal/asset"
	"github.com/usdassemble/cli/internal/errors"
)

// Builder derives composition plans from classified nodes. Like the
// classifier it is single-use: the visited set spans one Build call.
type Builder struct {
	visited map[string]struct{}
}

// NewBuilder returns a Builder for one plan derivation.
func NewBuilder() *Builder {
	return &Builder{visited: make(map[string]struct{})}
}

// Build derives the plan for a node tree, children before parents so parent
// arcs reference already-decided child file names. The walk re-checks for
// path cycles so a plan can never be derived from a self-referential tree,
// even when the caller skipped classification.
func (b *Builder) Build(node *asset.Node) (*NodePlan, error) {
	canonical, err := filepath.EvalSymlinks(node.Path)
	if err != nil {
		canonical = node.Path
	}
	if _, seen := b.visited[canonical]; seen {
		return nil, errors.NewCycleError("node path repeats in the tree", node.Path)
	}
	b.visited[canonical] = struct{}{}

	children := make([]*NodePlan, 0, len(node.Children))
	for _, child := range node.Children {
		childPlan, err := b.Build(child)
		if err != nil {
			return nil, err
		}
		children = append(children, childPlan)
	}

	p := &NodePlan{
		Node:     node,
		Children: children,
		Entry:    buildEntry(node, children),
	}

	if node.HasGeometry {
		p.Payload = buildPayload(node)
		p.Look = buildLook(node)
		p.Material = buildMaterial(node)
	}

	return p, nil
}

func buildEntry(node *asset.Node, children []*NodePlan) EntryPlan {
	entry := EntryPlan{
		FileName:   entryFile(node.Name),
		PrimName:   node.Name,
		Kind:       node.Kind,
		ClassPath:  "/__class__/" + node.Name,
		Identifier: "./" + entryFile(node.Name),
		AssetName:  node.Name,
	}

	if node.HasGeometry {
		entry.PayloadFile = "./" + payloadFile(node.Name)
	}

	for _, child := range children {
		entry.Children = append(entry.Children, ChildReference{
			PrimName: child.Node.Name,
			Target:   childTarget(node.ChildDir, child.Node.Name),
		})
	}

	return entry
}

func buildPayload(node *asset.Node) *PayloadPlan {
	return &PayloadPlan{
		FileName: payloadFile(node.Name),
		SubLayers: []string{
			"./" + lookFile(node.Name),
			"./" + node.GeometryFile,
		},
	}
}

func buildLook(node *asset.Node) *LookPlan {
	look := &LookPlan{
		FileName:     lookFile(node.Name),
		PrimName:     node.Name,
		MaterialFile: "./" + mtlxFile(node.Name),
	}

	if node.HasVariantSet() {
		set := &VariantSetPlan{
			Name:    VariantSetName,
			Default: node.Variants[0].Name,
		}
		for _, v := range node.Variants {
			set.Variants = append(set.Variants, VariantBinding{
				VariantName:  v.Name,
				MaterialName: node.MaterialName(v),
			})
		}
		look.VariantSet = set
		return look
	}

	look.MaterialName = node.MaterialName(defaultsVariant(node))
	return look
}

func buildMaterial(node *asset.Node) *MaterialPlan {
	variants := node.Variants
	if len(variants) == 0 {
		// A textureless node still gets a defaults-only material so its
		// geometry renders with a sane surface.
		variants = []asset.Variant{defaultsVariant(node)}
	}
	return &MaterialPlan{
		FileName: mtlxFile(node.Name),
		Variants: variants,
	}
}

// defaultsVariant returns the node's single effective variant: its first
// variant, or an empty default one when it has no textures.
func defaultsVariant(node *asset.Node) asset.Variant {
	if len(node.Variants) > 0 {
		return node.Variants[0]
	}
	return asset.Variant{Name: "default", Default: true}
}

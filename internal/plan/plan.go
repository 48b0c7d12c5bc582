// Package plan turns a classified node tree into a composition plan: the
// set of layer files to generate per node and the arcs between them. Plans
// are pure data; writers in other packages turn them into bytes.
package plan

import (
	"path"

	"github.com/usdassemble/cli/internal/asset"
)

// VariantSetName is the fixed variant-set identifier used in look files.
const VariantSetName = "material_variant"

// ChildReference is a reference arc from a container's entry file to one
// child's entry file. Targets are always relative, forward-slash paths.
type ChildReference struct {
	PrimName string
	Target   string
}

// EntryPlan describes a node's entry layer: the public handle other layers
// reference. Leaves carry a payload arc; containers carry child references;
// a container with its own geometry carries both.
type EntryPlan struct {
	FileName    string
	PrimName    string
	Kind        asset.Kind
	ClassPath   string
	PayloadFile string
	Identifier  string
	AssetName   string
	Children    []ChildReference
}

// PayloadPlan describes a node's payload layer: a bare sublayer list
// deferring the look and geometry layers.
type PayloadPlan struct {
	FileName  string
	SubLayers []string
}

// VariantBinding switches one variant name to its material.
type VariantBinding struct {
	VariantName  string
	MaterialName string
}

// VariantSetPlan is the variant set declared on a look file's materials
// scope when a node has more than one variant.
type VariantSetPlan struct {
	Name     string
	Default  string
	Variants []VariantBinding
}

// LookPlan describes a node's look layer: the materials scope referencing
// the material file and the binding override on the render scope.
type LookPlan struct {
	FileName     string
	PrimName     string
	MaterialFile string

	// MaterialName is the single bound material; empty when VariantSet
	// drives the binding instead.
	MaterialName string

	VariantSet *VariantSetPlan
}

// MaterialPlan describes a node's material file and the variants the
// shading synthesizer must populate it with.
type MaterialPlan struct {
	FileName string
	Variants []asset.Variant
}

// NodePlan is the composition plan for one node and its subtree.
type NodePlan struct {
	Node  *asset.Node
	Entry EntryPlan

	// Payload, Look and Material are nil for pure containers.
	Payload  *PayloadPlan
	Look     *LookPlan
	Material *MaterialPlan

	Children []*NodePlan
}

// Files returns the node's own output file names in generation order.
func (p *NodePlan) Files() []string {
	files := []string{p.Entry.FileName}
	if p.Payload != nil {
		files = append(files, p.Payload.FileName)
	}
	if p.Look != nil {
		files = append(files, p.Look.FileName)
	}
	if p.Material != nil {
		files = append(files, p.Material.FileName)
	}
	return files
}

// Walk visits the plan and all descendants depth-first in child order.
func (p *NodePlan) Walk(fn func(*NodePlan)) {
	fn(p)
	for _, c := range p.Children {
		c.Walk(fn)
	}
}

// Layer file names derived from a node name.
func entryFile(name string) string   { return name + ".usda" }
func payloadFile(name string) string { return name + "_payload.usda" }
func lookFile(name string) string    { return name + "_look.usda" }
func mtlxFile(name string) string    { return name + "_mat.mtlx" }

// childTarget builds the relative reference target from a parent directory
// to a child's entry file.
func childTarget(childDir, childName string) string {
	return "./" + path.Join(childDir, childName, entryFile(childName))
}

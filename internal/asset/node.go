package asset

// Directory names with structural meaning inside an asset tree.
const (
	ComponentsDir    = "components"
	SubcomponentsDir = "subcomponents"
	TexturesDir      = "textures"
)

// Kind classifies a node's role in the assembly hierarchy. It is decided
// once by the Classifier and carried immutably through the pipeline.
type Kind int

// Node kinds.
const (
	KindAssembly Kind = iota
	KindComponent
	KindSubcomponent
)

// String returns the USD model kind token for the node kind.
func (k Kind) String() string {
	switch k {
	case KindAssembly:
		return "assembly"
	case KindComponent:
		return "component"
	case KindSubcomponent:
		return "subcomponent"
	default:
		return "unknown"
	}
}

// Variant is a named alternative texture assignment for the same geometry.
type Variant struct {
	// Name is the variant subdirectory name, or the default marker when the
	// textures directory holds loose files.
	Name string

	// Textures maps roles to texture paths relative to the node directory.
	Textures TextureAssignment

	// Default marks the implicit variant produced from loose texture files.
	Default bool
}

// Node is a directory classified as part of an assembly. The tree is
// rebuilt from the filesystem on every run; nothing persists across runs
// except the files the assembler writes.
type Node struct {
	// Name is the directory basename and the prim name for generated layers.
	Name string

	// Path is the absolute directory path.
	Path string

	// Kind is the node's hierarchy role.
	Kind Kind

	// ChildDir is the subdirectory the children were found under
	// (components or subcomponents); empty for leaves.
	ChildDir string

	// Children holds nested nodes in directory-listing order.
	Children []*Node

	// HasGeometry reports whether a <name>_geom.* file is present.
	HasGeometry bool

	// GeometryFile is the geometry file basename, e.g. "Bishop_geom.usd".
	GeometryFile string

	// Variants holds the node's texture variants in discovery order.
	// Empty when the node has no textures.
	Variants []Variant

	// NoTextures flags a valid node whose textures directory was absent or
	// empty; no material is generated for it.
	NoTextures bool
}

// IsContainer reports whether the node aggregates children.
func (n *Node) IsContainer() bool {
	return len(n.Children) > 0
}

// HasVariantSet reports whether the node needs a variant set in its look
// file: more than one variant.
func (n *Node) HasVariantSet() bool {
	return len(n.Variants) > 1
}

// MaterialName returns the material node name for a variant of this node.
// The default variant keeps the bare M_<name> form; named variants append
// the variant name to avoid collisions inside the shared material file.
func (n *Node) MaterialName(v Variant) string {
	if v.Default {
		return "M_" + n.Name
	}
	return "M_" + n.Name + "_" + v.Name
}

// ShaderName returns the surface shader node name for a variant.
func (n *Node) ShaderName(v Variant) string {
	if v.Default {
		return n.Name
	}
	return n.Name + "_" + v.Name
}

// NodeGraphName returns the shading node-graph name for a variant.
func (n *Node) NodeGraphName(v Variant) string {
	if v.Default {
		return "NG_" + n.Name
	}
	return "NG_" + n.Name + "_" + v.Name
}

// Walk visits the node and all descendants depth-first in child order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// CountComponents returns the number of component and subcomponent nodes in
// the tree (the assembly root itself is not counted).
func (n *Node) CountComponents() int {
	count := 0
	n.Walk(func(m *Node) {
		if m.Kind != KindAssembly {
			count++
		}
	})
	return count
}

// CountVariants returns the total number of variants across the tree.
func (n *Node) CountVariants() int {
	count := 0
	n.Walk(func(m *Node) {
		count += len(m.Variants)
	})
	return count
}

// Package usd models and serializes text-format scene layers. Layers are
// built as ordered prim trees and encoded deterministically, so identical
// input always yields identical bytes.
//
// Only the subset of the text format the assembler emits is modeled; this
// is a writer, not a parser.
package usd

import "strconv"

// Stage holds the layer-level metadata every generated layer carries.
type Stage struct {
	DefaultPrim   string
	UpAxis        string
	MetersPerUnit float64

	// SubLayers lists sublayer asset paths in strength order.
	SubLayers []string
}

// Specifier selects how a prim contributes to composition.
type Specifier string

// Prim specifiers.
const (
	SpecDef   Specifier = "def"
	SpecOver  Specifier = "over"
	SpecClass Specifier = "class"
)

// Prim is one node in a layer's prim hierarchy. Metadata and attribute
// entries are pre-formatted lines kept in insertion order.
type Prim struct {
	Specifier Specifier
	Type      string
	Name      string

	Meta     []string
	Attrs    []string
	Variants *VariantSet
	Children []*Prim
}

// VariantSet is a named variant set authored on a prim, with its selected
// default.
type VariantSet struct {
	Name      string
	Selection string
	Variants  []VariantDef
}

// VariantDef is one variant's name and the prim overrides it applies.
type VariantDef struct {
	Name  string
	Prims []*Prim
}

// Layer is a full scene layer: stage metadata plus root prims.
type Layer struct {
	Stage Stage
	Prims []*Prim
}

// AssetRef formats an asset path reference.
func AssetRef(path string) string {
	return "@" + path + "@"
}

// AssetRefTarget formats an asset path reference with an explicit prim
// target inside the referenced layer.
func AssetRefTarget(path, target string) string {
	return "@" + path + "@<" + target + ">"
}

// PathRef formats a prim path reference.
func PathRef(path string) string {
	return "<" + path + ">"
}

// Quote formats a string literal.
func Quote(s string) string {
	return strconv.Quote(s)
}

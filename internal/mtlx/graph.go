// Package mtlx synthesizes shading graphs from texture assignments and
// serializes them as MaterialX documents.
package mtlx

import (
	"github.com/usdassemble/cli/internal/asset"
)

// ImageNode is one image-sampling node in a shading graph.
type ImageNode struct {
	Name       string
	Role       asset.Role
	Type       asset.ValueType
	File       string
	ColorSpace string

	// Output is the graph-output node name the shader input connects to:
	// the image node itself, or the normal-map node routed after it.
	Output string
}

// ShadingGraph is the synthesized shading network for one material: a node
// graph of image samplers feeding a single surface shader wrapped in a
// material node. A graph with zero images is valid and yields a
// defaults-only material.
type ShadingGraph struct {
	NodeGraph string
	Shader    string
	Material  string

	// Images holds image nodes in canonical role order.
	Images []ImageNode

	// NormalMapNode names the normal-mapping node routed between the
	// normal image and the shader; empty when no normal role is present.
	NormalMapNode string
}

// Synthesize builds the shading graph for one of a node's variants. Image
// nodes are emitted in canonical role order so regeneration is stable.
func Synthesize(node *asset.Node, v asset.Variant) ShadingGraph {
	g := ShadingGraph{
		NodeGraph: node.NodeGraphName(v),
		Shader:    node.ShaderName(v),
		Material:  node.MaterialName(v),
	}

	for _, role := range v.Textures.SortedRoles() {
		img := ImageNode{
			Name: string(role),
			Role: role,
			Type: role.ValueType(),
			File: v.Textures[role],
		}
		if role.ValueType() == asset.TypeColor3 {
			img.ColorSpace = role.ColorSpace()
		}

		img.Output = img.Name
		if role == asset.RoleNormal {
			// The raw normal texture routes through a normal-map node
			// before reaching the shader.
			img.Name = string(role) + "_image"
			g.NormalMapNode = string(role) + "_map"
			img.Output = g.NormalMapNode
		}

		g.Images = append(g.Images, img)
	}

	return g
}

// outputName is the node-graph output port name for a role.
func outputName(role asset.Role) string {
	return string(role) + "_output"
}

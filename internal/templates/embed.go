// Package templates provides embedded file templates and rendering.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed material/*
var materialFS embed.FS

// MaterialSeedData contains data for material seed rendering.
type MaterialSeedData struct {
	// NodeGraph is the shading node-graph name (NG_<node>).
	NodeGraph string

	// Shader is the surface shader node name.
	Shader string

	// Material is the material node name (M_<node>).
	Material string
}

// MaterialSeeder renders the built-in material seed document: the empty
// node graph, surface shader and material shell the shading synthesizer
// populates.
type MaterialSeeder struct{}

// MaterialSeed renders the seed document for one material.
func (MaterialSeeder) MaterialSeed(nodeGraph, shader, material string) ([]byte, error) {
	content, err := materialFS.ReadFile("material/material_seed.mtlx.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading material seed: %w", err)
	}
	return renderFile(content, MaterialSeedData{
		NodeGraph: nodeGraph,
		Shader:    shader,
		Material:  material,
	})
}

// renderFile renders a single template file and returns the content.
func renderFile(content []byte, data any) ([]byte, error) {
	tmpl, err := template.New("file").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

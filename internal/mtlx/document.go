package mtlx

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/usdassemble/cli/internal/errors"
)

// Seeder supplies the seed document a material is populated from. The
// default implementation renders the embedded template; tests can supply a
// fixture.
type Seeder interface {
	MaterialSeed(nodeGraph, shader, material string) ([]byte, error)
}

// WriteDocument serializes one or more shading graphs into a single
// MaterialX document. Each graph is seeded from the shared template and
// populated in place; multiple graphs (one per variant) share one file.
func WriteDocument(graphs []ShadingGraph, seeder Seeder) ([]byte, error) {
	if len(graphs) == 0 {
		return nil, errors.NewTemplateError("no shading graphs to write", nil)
	}

	doc, err := seedDocument(graphs[0], seeder)
	if err != nil {
		return nil, err
	}
	if err := populate(doc.Root(), graphs[0]); err != nil {
		return nil, err
	}

	for _, g := range graphs[1:] {
		sub, err := seedDocument(g, seeder)
		if err != nil {
			return nil, err
		}
		if err := populate(sub.Root(), g); err != nil {
			return nil, err
		}
		for _, child := range sub.Root().ChildElements() {
			doc.Root().AddChild(child.Copy())
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// seedDocument renders and parses the seed for one graph.
func seedDocument(g ShadingGraph, seeder Seeder) (*etree.Document, error) {
	seed, err := seeder.MaterialSeed(g.NodeGraph, g.Shader, g.Material)
	if err != nil {
		return nil, errors.NewTemplateError("rendering material seed", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(seed); err != nil {
		return nil, errors.NewTemplateError("parsing material seed", err)
	}
	if doc.Root() == nil || doc.Root().Tag != "materialx" {
		return nil, errors.NewTemplateError("material seed has no materialx root element", nil)
	}

	return doc, nil
}

// populate fills a seeded document's node graph and surface shader with one
// graph's image nodes and input connections.
func populate(root *etree.Element, g ShadingGraph) error {
	ng := childByName(root, "nodegraph", g.NodeGraph)
	if ng == nil {
		return errors.NewTemplateError(
			fmt.Sprintf("material seed has no node graph %q", g.NodeGraph), nil)
	}
	shader := childByType(root, "surfaceshader", g.Shader)
	if shader == nil {
		return errors.NewTemplateError(
			fmt.Sprintf("material seed has no surface shader %q", g.Shader), nil)
	}

	for _, img := range g.Images {
		el := ng.CreateElement("image")
		el.CreateAttr("name", img.Name)
		el.CreateAttr("type", string(img.Type))

		file := el.CreateElement("input")
		file.CreateAttr("name", "file")
		file.CreateAttr("type", "filename")
		file.CreateAttr("value", img.File)
		if img.ColorSpace != "" {
			file.CreateAttr("colorspace", img.ColorSpace)
		}

		if img.Output != img.Name {
			nm := ng.CreateElement("normalmap")
			nm.CreateAttr("name", img.Output)
			nm.CreateAttr("type", string(img.Type))
			in := nm.CreateElement("input")
			in.CreateAttr("name", "in")
			in.CreateAttr("type", string(img.Type))
			in.CreateAttr("nodename", img.Name)
		}

		out := ng.CreateElement("output")
		out.CreateAttr("name", outputName(img.Role))
		out.CreateAttr("type", string(img.Type))
		out.CreateAttr("nodename", img.Output)

		in := shader.CreateElement("input")
		in.CreateAttr("name", img.Role.ShaderInput())
		in.CreateAttr("type", string(img.Type))
		in.CreateAttr("nodegraph", g.NodeGraph)
		in.CreateAttr("output", outputName(img.Role))
	}

	return nil
}

// childByName finds a direct child with the given tag and name attribute.
func childByName(root *etree.Element, tag, name string) *etree.Element {
	for _, el := range root.SelectElements(tag) {
		if el.SelectAttrValue("name", "") == name {
			return el
		}
	}
	return nil
}

// childByType finds a direct child of any tag with the given type and name
// attributes, so seeds may swap the shader node category.
func childByType(root *etree.Element, typ, name string) *etree.Element {
	for _, el := range root.ChildElements() {
		if el.SelectAttrValue("type", "") == typ && el.SelectAttrValue("name", "") == name {
			return el
		}
	}
	return nil
}

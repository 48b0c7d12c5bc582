package usd

import (
	"github.com/usdassemble/cli/internal/plan"
)

// defaultExtentsHint is the neutral bounding hint stamped on entry prims.
// Geometry layers that author their own extents win over it at load time.
const defaultExtentsHint = "[(-0.5, -0.5, -0.5), (0.5, 0.5, 0.5)]"

// EntryLayer builds a node's entry layer: the class prim, the model prim
// with its identity metadata and payload arc, and one reference override
// per child.
func EntryLayer(e plan.EntryPlan, stage Stage) *Layer {
	stage.DefaultPrim = e.PrimName
	stage.SubLayers = nil

	classPrim := &Prim{
		Specifier: SpecClass,
		Name:      "__class__",
		Children: []*Prim{
			{Specifier: SpecDef, Name: e.PrimName},
		},
	}

	model := &Prim{
		Specifier: SpecDef,
		Type:      "Xform",
		Name:      e.PrimName,
		Meta: []string{
			`prepend apiSchemas = ["GeomModelAPI"]`,
			assetInfoMeta(e.Identifier, e.AssetName),
			"inherits = " + PathRef(e.ClassPath),
			"kind = " + Quote(e.Kind.String()),
		},
	}
	if e.PayloadFile != "" {
		model.Meta = append(model.Meta, "prepend payload = "+AssetRef(e.PayloadFile))
		model.Attrs = append(model.Attrs, "float3[] extentsHint = "+defaultExtentsHint)
	}

	for _, child := range e.Children {
		model.Children = append(model.Children, &Prim{
			Specifier: SpecOver,
			Type:      "Xform",
			Name:      child.PrimName,
			Meta:      []string{"prepend references = " + AssetRef(child.Target)},
		})
	}

	return &Layer{Stage: stage, Prims: []*Prim{classPrim, model}}
}

// PayloadLayer builds a node's payload layer: the sublayer list deferring
// the look and geometry layers behind one prim.
func PayloadLayer(p *plan.PayloadPlan, primName string, stage Stage) *Layer {
	stage.DefaultPrim = primName
	stage.SubLayers = append([]string(nil), p.SubLayers...)

	return &Layer{
		Stage: stage,
		Prims: []*Prim{{Specifier: SpecDef, Name: primName}},
	}
}

// LookLayer builds a node's look layer: the materials scope referencing
// the shading file, and the render-scope binding, either direct or
// switched through a variant set.
func LookLayer(l *plan.LookPlan, stage Stage) *Layer {
	stage.DefaultPrim = l.PrimName
	stage.SubLayers = nil

	root := &Prim{
		Specifier: SpecDef,
		Name:      l.PrimName,
		Children: []*Prim{
			{
				Specifier: SpecOver,
				Name:      "Materials",
				Meta: []string{
					"prepend references = " + AssetRefTarget(l.MaterialFile, "/MaterialX/Materials"),
				},
			},
		},
	}

	if l.VariantSet == nil {
		root.Children = append(root.Children,
			bindingOverride(l.PrimName, l.MaterialName))
		return &Layer{Stage: stage, Prims: []*Prim{root}}
	}

	set := &VariantSet{
		Name:      l.VariantSet.Name,
		Selection: l.VariantSet.Default,
	}
	for _, v := range l.VariantSet.Variants {
		set.Variants = append(set.Variants, VariantDef{
			Name:  v.VariantName,
			Prims: []*Prim{bindingOverride(l.PrimName, v.MaterialName)},
		})
	}
	root.Variants = set

	return &Layer{Stage: stage, Prims: []*Prim{root}}
}

// bindingOverride builds the Geom/Render override binding a material.
func bindingOverride(primName, materialName string) *Prim {
	return &Prim{
		Specifier: SpecOver,
		Name:      "Geom",
		Children: []*Prim{
			{
				Specifier: SpecOver,
				Name:      "Render",
				Meta:      []string{`prepend apiSchemas = ["MaterialBindingAPI"]`},
				Attrs: []string{
					"rel material:binding = " + PathRef("/"+primName+"/Materials/"+materialName),
				},
			},
		},
	}
}

// assetInfoMeta formats the assetInfo dictionary for a root-level prim.
func assetInfoMeta(identifier, name string) string {
	return "assetInfo = {\n" +
		indentStep + indentStep + "asset identifier = " + AssetRef(identifier) + "\n" +
		indentStep + indentStep + "string name = " + Quote(name) + "\n" +
		indentStep + "}"
}

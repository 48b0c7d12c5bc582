package usd

import (
	"strconv"
	"strings"
)

const indentStep = "    "

// Encode serializes a layer to text-format bytes. Output is a pure
// function of the layer value.
func Encode(layer *Layer) []byte {
	var b strings.Builder
	b.WriteString("#usda 1.0\n")
	encodeStage(&b, layer.Stage)

	for _, prim := range layer.Prims {
		b.WriteString("\n")
		encodePrim(&b, prim, 0)
	}

	return []byte(b.String())
}

// encodeStage writes the layer metadata block. Entries appear in the fixed
// order the reference exporter uses.
func encodeStage(b *strings.Builder, s Stage) {
	b.WriteString("(\n")
	if s.DefaultPrim != "" {
		b.WriteString(indentStep + "defaultPrim = " + Quote(s.DefaultPrim) + "\n")
	}
	if s.MetersPerUnit != 0 {
		b.WriteString(indentStep + "metersPerUnit = " + formatFloat(s.MetersPerUnit) + "\n")
	}
	if len(s.SubLayers) > 0 {
		b.WriteString(indentStep + "subLayers = [\n")
		for i, sub := range s.SubLayers {
			sep := ","
			if i == len(s.SubLayers)-1 {
				sep = ""
			}
			b.WriteString(indentStep + indentStep + AssetRef(sub) + sep + "\n")
		}
		b.WriteString(indentStep + "]\n")
	}
	if s.UpAxis != "" {
		b.WriteString(indentStep + "upAxis = " + Quote(s.UpAxis) + "\n")
	}
	b.WriteString(")\n")
}

func encodePrim(b *strings.Builder, p *Prim, depth int) {
	indent := strings.Repeat(indentStep, depth)

	head := indent + string(p.Specifier)
	if p.Type != "" {
		head += " " + p.Type
	}
	head += " " + Quote(p.Name)

	meta := append([]string(nil), p.Meta...)
	if p.Variants != nil {
		meta = append(meta,
			"variantSets = "+Quote(p.Variants.Name),
			"variants = {\n"+
				indent+indentStep+indentStep+"string "+p.Variants.Name+" = "+Quote(p.Variants.Selection)+"\n"+
				indent+indentStep+"}",
		)
	}

	if len(meta) > 0 {
		b.WriteString(head + " (\n")
		for _, m := range meta {
			b.WriteString(indent + indentStep + m + "\n")
		}
		b.WriteString(indent + ")\n")
	} else {
		b.WriteString(head + "\n")
	}

	b.WriteString(indent + "{\n")

	for _, attr := range p.Attrs {
		b.WriteString(indent + indentStep + attr + "\n")
	}

	if p.Variants != nil {
		encodeVariantSet(b, p.Variants, depth+1)
	}

	for i, child := range p.Children {
		if i > 0 || len(p.Attrs) > 0 || p.Variants != nil {
			b.WriteString("\n")
		}
		encodePrim(b, child, depth+1)
	}

	b.WriteString(indent + "}\n")
}

func encodeVariantSet(b *strings.Builder, set *VariantSet, depth int) {
	indent := strings.Repeat(indentStep, depth)

	b.WriteString(indent + "variantSet " + Quote(set.Name) + " = {\n")
	for _, v := range set.Variants {
		b.WriteString(indent + indentStep + Quote(v.Name) + " {\n")
		for _, prim := range v.Prims {
			encodePrim(b, prim, depth+2)
		}
		b.WriteString(indent + indentStep + "}\n")
	}
	b.WriteString(indent + "}\n")
}

// formatFloat renders a float the shortest way that round-trips, so 1.0
// prints as 1.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

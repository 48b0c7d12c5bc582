package usd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usdassemble/cli/internal/asset"
	"github.com/usdassemble/cli/internal/plan"
)

var testStage = Stage{UpAxis: "Y", MetersPerUnit: 1}

func TestEncodePayloadLayer(t *testing.T) {
	p := &plan.PayloadPlan{
		FileName:  "Bishop_payload.usda",
		SubLayers: []string{"./Bishop_look.usda", "./Bishop_geom.usd"},
	}

	got := string(Encode(PayloadLayer(p, "Bishop", testStage)))

	want := `#usda 1.0
(
    defaultPrim = "Bishop"
    metersPerUnit = 1
    subLayers = [
        @./Bishop_look.usda@,
        @./Bishop_geom.usd@
    ]
    upAxis = "Y"
)

def "Bishop"
{
}
`
	assert.Equal(t, want, got)
}

func TestEncodeEntryLayerLeaf(t *testing.T) {
	e := plan.EntryPlan{
		FileName:    "Bishop.usda",
		PrimName:    "Bishop",
		Kind:        asset.KindComponent,
		ClassPath:   "/__class__/Bishop",
		PayloadFile: "./Bishop_payload.usda",
		Identifier:  "./Bishop.usda",
		AssetName:   "Bishop",
	}

	got := string(Encode(EntryLayer(e, testStage)))

	want := `#usda 1.0
(
    defaultPrim = "Bishop"
    metersPerUnit = 1
    upAxis = "Y"
)

class "__class__"
{
    def "Bishop"
    {
    }
}

def Xform "Bishop" (
    prepend apiSchemas = ["GeomModelAPI"]
    assetInfo = {
        asset identifier = @./Bishop.usda@
        string name = "Bishop"
    }
    inherits = </__class__/Bishop>
    kind = "component"
    prepend payload = @./Bishop_payload.usda@
)
{
    float3[] extentsHint = [(-0.5, -0.5, -0.5), (0.5, 0.5, 0.5)]
}
`
	assert.Equal(t, want, got)
}

func TestEncodeEntryLayerAssembly(t *testing.T) {
	e := plan.EntryPlan{
		PrimName:   "ChessSet",
		Kind:       asset.KindAssembly,
		ClassPath:  "/__class__/ChessSet",
		Identifier: "./ChessSet.usda",
		AssetName:  "ChessSet",
		Children: []plan.ChildReference{
			{PrimName: "Bishop", Target: "./components/Bishop/Bishop.usda"},
			{PrimName: "Pawn", Target: "./components/Pawn/Pawn.usda"},
		},
	}

	got := string(Encode(EntryLayer(e, testStage)))

	assert.Contains(t, got, `kind = "assembly"`)
	assert.NotContains(t, got, "payload")
	assert.NotContains(t, got, "extentsHint")
	assert.Contains(t, got, `    over Xform "Bishop" (
        prepend references = @./components/Bishop/Bishop.usda@
    )
    {
    }`)
	assert.Contains(t, got, `over Xform "Pawn"`)
}

func TestEncodeLookLayerSingleMaterial(t *testing.T) {
	l := &plan.LookPlan{
		FileName:     "Bishop_look.usda",
		PrimName:     "Bishop",
		MaterialFile: "./Bishop_mat.mtlx",
		MaterialName: "M_Bishop",
	}

	got := string(Encode(LookLayer(l, testStage)))

	want := `#usda 1.0
(
    defaultPrim = "Bishop"
    metersPerUnit = 1
    upAxis = "Y"
)

def "Bishop"
{
    over "Materials" (
        prepend references = @./Bishop_mat.mtlx@</MaterialX/Materials>
    )
    {
    }

    over "Geom"
    {
        over "Render" (
            prepend apiSchemas = ["MaterialBindingAPI"]
        )
        {
            rel material:binding = </Bishop/Materials/M_Bishop>
        }
    }
}
`
	assert.Equal(t, want, got)
}

func TestEncodeLookLayerVariantSet(t *testing.T) {
	l := &plan.LookPlan{
		PrimName:     "Bishop",
		MaterialFile: "./Bishop_mat.mtlx",
		VariantSet: &plan.VariantSetPlan{
			Name:    plan.VariantSetName,
			Default: "black",
			Variants: []plan.VariantBinding{
				{VariantName: "black", MaterialName: "M_Bishop_black"},
				{VariantName: "white", MaterialName: "M_Bishop_white"},
			},
		},
	}

	got := string(Encode(LookLayer(l, testStage)))

	assert.Contains(t, got, `variantSets = "material_variant"`)
	assert.Contains(t, got, `string material_variant = "black"`)
	assert.Contains(t, got, `variantSet "material_variant" = {`)
	assert.Contains(t, got, `"black" {`)
	assert.Contains(t, got, `"white" {`)
	assert.Contains(t, got, "</Bishop/Materials/M_Bishop_black>")
	assert.Contains(t, got, "</Bishop/Materials/M_Bishop_white>")
	// The shared material reference sits outside the variant set.
	assert.Contains(t, got, "@./Bishop_mat.mtlx@</MaterialX/Materials>")
}

func TestEncodeDeterministic(t *testing.T) {
	l := &plan.LookPlan{
		PrimName:     "Rook",
		MaterialFile: "./Rook_mat.mtlx",
		MaterialName: "M_Rook",
	}

	first := Encode(LookLayer(l, testStage))
	second := Encode(LookLayer(l, testStage))
	require.Equal(t, first, second)
}

func TestFormatFloatDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "1", formatFloat(1.0))
	assert.Equal(t, "0.01", formatFloat(0.01))
}

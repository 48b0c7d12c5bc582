package mtlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usdassemble/cli/internal/asset"
	"github.com/usdassemble/cli/internal/templates"
)

func testNode(name string) *asset.Node {
	return &asset.Node{Name: name, Kind: asset.KindComponent}
}

func TestSynthesizeOrdersImagesCanonically(t *testing.T) {
	node := testNode("Bishop")
	v := asset.Variant{Name: "default", Default: true, Textures: asset.TextureAssignment{
		asset.RoleRoughness: "textures/Bishop_roughness.png",
		asset.RoleBaseColor: "textures/Bishop_base_color.png",
		asset.RoleNormal:    "textures/Bishop_normal.png",
	}}

	g := Synthesize(node, v)

	assert.Equal(t, "NG_Bishop", g.NodeGraph)
	assert.Equal(t, "Bishop", g.Shader)
	assert.Equal(t, "M_Bishop", g.Material)

	require.Len(t, g.Images, 3)
	assert.Equal(t, asset.RoleBaseColor, g.Images[0].Role)
	assert.Equal(t, asset.RoleRoughness, g.Images[1].Role)
	assert.Equal(t, asset.RoleNormal, g.Images[2].Role)

	assert.Equal(t, "srgb_texture", g.Images[0].ColorSpace)
	assert.Empty(t, g.Images[1].ColorSpace)

	// The normal image routes through the normal-map node.
	assert.Equal(t, "normal_image", g.Images[2].Name)
	assert.Equal(t, "normal_map", g.Images[2].Output)
	assert.Equal(t, "normal_map", g.NormalMapNode)
	assert.Equal(t, "base_color", g.Images[0].Output)
}

func TestSynthesizeVariantNames(t *testing.T) {
	node := testNode("Bishop")
	v := asset.Variant{Name: "black", Textures: asset.TextureAssignment{
		asset.RoleBaseColor: "textures/black/Bishop_color.png",
	}}

	g := Synthesize(node, v)
	assert.Equal(t, "NG_Bishop_black", g.NodeGraph)
	assert.Equal(t, "Bishop_black", g.Shader)
	assert.Equal(t, "M_Bishop_black", g.Material)
}

func TestSynthesizeEmptyVariant(t *testing.T) {
	g := Synthesize(testNode("Rook"), asset.Variant{Name: "default", Default: true})
	assert.Empty(t, g.Images)
	assert.Empty(t, g.NormalMapNode)
	assert.Equal(t, "M_Rook", g.Material)
}

func TestWriteDocument(t *testing.T) {
	node := testNode("Bishop")
	g := Synthesize(node, asset.Variant{Name: "default", Default: true, Textures: asset.TextureAssignment{
		asset.RoleBaseColor: "textures/Bishop_base_color.png",
		asset.RoleNormal:    "textures/Bishop_normal.png",
	}})

	out, err := WriteDocument([]ShadingGraph{g}, templates.MaterialSeeder{})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<materialx version="1.38" colorspace="lin_rec709">`)
	assert.Contains(t, s, `<nodegraph name="NG_Bishop">`)
	assert.Contains(t, s, `<image name="base_color" type="color3">`)
	assert.Contains(t, s, `value="textures/Bishop_base_color.png" colorspace="srgb_texture"`)
	assert.Contains(t, s, `<normalmap name="normal_map" type="vector3">`)
	assert.Contains(t, s, `<output name="normal_output" type="vector3" nodename="normal_map"/>`)
	assert.Contains(t, s, `<input name="base_color" type="color3" nodegraph="NG_Bishop" output="base_color_output"/>`)
	assert.Contains(t, s, `<input name="geometry_normal" type="vector3" nodegraph="NG_Bishop" output="normal_output"/>`)
	assert.Contains(t, s, `<surfacematerial name="M_Bishop" type="material">`)
}

func TestWriteDocumentMultipleVariants(t *testing.T) {
	node := testNode("Bishop")
	graphs := []ShadingGraph{
		Synthesize(node, asset.Variant{Name: "black", Textures: asset.TextureAssignment{
			asset.RoleBaseColor: "textures/black/Bishop_color.png",
		}}),
		Synthesize(node, asset.Variant{Name: "white", Textures: asset.TextureAssignment{
			asset.RoleBaseColor: "textures/white/Bishop_color.png",
		}}),
	}

	out, err := WriteDocument(graphs, templates.MaterialSeeder{})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<nodegraph name="NG_Bishop_black">`)
	assert.Contains(t, s, `<nodegraph name="NG_Bishop_white">`)
	assert.Contains(t, s, `<surfacematerial name="M_Bishop_black" type="material">`)
	assert.Contains(t, s, `<surfacematerial name="M_Bishop_white" type="material">`)
}

func TestWriteDocumentDeterministic(t *testing.T) {
	node := testNode("Rook")
	g := Synthesize(node, asset.Variant{Name: "default", Default: true, Textures: asset.TextureAssignment{
		asset.RoleBaseColor: "a.png",
		asset.RoleMetalness: "b.png",
		asset.RoleRoughness: "c.png",
	}})

	first, err := WriteDocument([]ShadingGraph{g}, templates.MaterialSeeder{})
	require.NoError(t, err)
	second, err := WriteDocument([]ShadingGraph{g}, templates.MaterialSeeder{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteDocumentDefaultsOnlyMaterial(t *testing.T) {
	g := Synthesize(testNode("Rook"), asset.Variant{Name: "default", Default: true})

	out, err := WriteDocument([]ShadingGraph{g}, templates.MaterialSeeder{})
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "<image")
	assert.Contains(t, s, `<open_pbr_surface name="Rook" type="surfaceshader"`)
	assert.Contains(t, s, `<surfacematerial name="M_Rook" type="material">`)
}

func TestWriteDocumentEmptyGraphList(t *testing.T) {
	_, err := WriteDocument(nil, templates.MaterialSeeder{})
	require.Error(t, err)
}

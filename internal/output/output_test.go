package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"yaml", "json", "text"} {
		f, ok := ParseFormat(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Format(valid), f)
	}

	_, ok := ParseFormat("xml")
	assert.False(t, ok)
}

func TestMarshalJSON(t *testing.T) {
	data, err := Marshal(map[string]int{"components": 3}, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"components": 3`)
}

func TestMarshalYAML(t *testing.T) {
	data, err := Marshal(map[string]int{"components": 3}, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "components: 3")
}

func TestDefaultTableStyleUsesPalette(t *testing.T) {
	style := DefaultTableStyle()
	assert.Equal(t, ColorDimGray, style.BorderColor)
	assert.Equal(t, ColorBlue, style.HeaderStyle.GetForeground())
}

func TestRenderFileTree(t *testing.T) {
	files := map[string]string{
		"Chessboard.usda":                         "assembly entry",
		"components/Bishop/Bishop.usda":           "entry",
		"components/Bishop/Bishop_payload.usda":   "payload",
		"components/Bishop/Bishop_look.usda":      "look",
		"components/Bishop/Bishop_mat.mtlx":       "material",
		"components/Knight/Knight.usda":           "entry",
	}

	tree := RenderFileTree("Chessboard", files)

	assert.Contains(t, tree, "Chessboard/")
	assert.Contains(t, tree, "Bishop_payload.usda")
	assert.Contains(t, tree, "components/")

	// Deterministic: rendering twice yields identical output.
	assert.Equal(t, tree, RenderFileTree("Chessboard", files))
}

func TestRenderFileTreeEmpty(t *testing.T) {
	assert.Empty(t, RenderFileTree("x", nil))
}

func TestFormatFileLineAlignment(t *testing.T) {
	line := FormatFileLine("a.usda", StatusGenerated)
	assert.Contains(t, line, "a.usda")
	assert.Contains(t, line, StatusGenerated)

	// Long paths still get at least two spaces before the status.
	long := FormatFileLine(strings.Repeat("x", 80), StatusFailed)
	assert.Contains(t, long, "  "+StatusStyle(StatusFailed).Render(StatusFailed))
}

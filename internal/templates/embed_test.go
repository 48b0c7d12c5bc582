package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialSeed(t *testing.T) {
	seed, err := MaterialSeeder{}.MaterialSeed("NG_Bishop", "Bishop", "M_Bishop")
	require.NoError(t, err)

	s := string(seed)
	assert.Contains(t, s, `<nodegraph name="NG_Bishop">`)
	assert.Contains(t, s, `<open_pbr_surface name="Bishop" type="surfaceshader">`)
	assert.Contains(t, s, `<surfacematerial name="M_Bishop" type="material">`)
	assert.Contains(t, s, `nodename="Bishop"`)
}

func TestRenderFileBadTemplate(t *testing.T) {
	_, err := renderFile([]byte("{{.Broken"), nil)
	require.Error(t, err)
}

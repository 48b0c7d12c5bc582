package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExtensions = []string{".jpg", ".jpeg", ".png", ".exr", ".tif", ".tiff", ".tga"}

func TestClassifyTextures(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		prefix   string
		want     TextureAssignment
		warnings int
	}{
		{
			name:   "standard pbr set",
			files:  []string{"Bishop_base_color.png", "Bishop_metallic.png", "Bishop_roughness.png", "Bishop_normal.png"},
			prefix: "Bishop",
			want: TextureAssignment{
				RoleBaseColor: "Bishop_base_color.png",
				RoleMetalness: "Bishop_metallic.png",
				RoleRoughness: "Bishop_roughness.png",
				RoleNormal:    "Bishop_normal.png",
			},
		},
		{
			name:   "specific pattern beats generic color",
			files:  []string{"Pawn_basecolor.jpg"},
			prefix: "Pawn",
			want:   TextureAssignment{RoleBaseColor: "Pawn_basecolor.jpg"},
		},
		{
			name:   "trailing color fallback",
			files:  []string{"Pawn_color.jpg"},
			prefix: "Pawn",
			want:   TextureAssignment{RoleBaseColor: "Pawn_color.jpg"},
		},
		{
			name:   "specular roughness is roughness",
			files:  []string{"Rook_specular_roughness.exr"},
			prefix: "Rook",
			want:   TextureAssignment{RoleRoughness: "Rook_specular_roughness.exr"},
		},
		{
			name:   "prefix mismatch skipped silently",
			files:  []string{"other_metallic.jpg", "Bishop_metallic.jpg"},
			prefix: "Bishop",
			want:   TextureAssignment{RoleMetalness: "Bishop_metallic.jpg"},
		},
		{
			name:     "duplicate role keeps first and warns",
			files:    []string{"Knight_albedo.png", "Knight_diffuse.png"},
			prefix:   "Knight",
			want:     TextureAssignment{RoleBaseColor: "Knight_albedo.png"},
			warnings: 1,
		},
		{
			name:     "unmatched prefixed file warns",
			files:    []string{"Queen_lightmap.png"},
			prefix:   "Queen",
			want:     TextureAssignment{},
			warnings: 1,
		},
		{
			name:   "non image extension skipped silently",
			files:  []string{"Queen_roughness.txt", "Queen_roughness.png"},
			prefix: "Queen",
			want:   TextureAssignment{RoleRoughness: "Queen_roughness.png"},
		},
		{
			name:   "case insensitive matching",
			files:  []string{"BISHOP_Base_Color.PNG"},
			prefix: "Bishop",
			want:   TextureAssignment{RoleBaseColor: "BISHOP_Base_Color.PNG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := ClassifyTextures(tt.files, tt.prefix, testExtensions)
			assert.Equal(t, tt.want, got)
			assert.Len(t, warnings, tt.warnings)
		})
	}
}

func TestMatchRolePriority(t *testing.T) {
	// A file matching both a specific and a generic pattern takes the
	// specific role.
	role, ok := matchRole("piece_base_color_v2.png")
	require.True(t, ok)
	assert.Equal(t, RoleBaseColor, role)

	role, ok = matchRole("piece_displacement_height.exr")
	require.True(t, ok)
	assert.Equal(t, RoleDisplacement, role)

	_, ok = matchRole("piece_thumbnail.png")
	assert.False(t, ok)
}

func TestRoleShaderBindings(t *testing.T) {
	for _, r := range Roles() {
		assert.NotEmpty(t, r.ShaderInput(), "role %s has no shader input", r)
	}

	assert.Equal(t, TypeColor3, RoleBaseColor.ValueType())
	assert.Equal(t, TypeColor3, RoleEmissive.ValueType())
	assert.Equal(t, TypeVector3, RoleNormal.ValueType())
	assert.Equal(t, TypeFloat, RoleRoughness.ValueType())

	assert.Equal(t, "srgb_texture", RoleBaseColor.ColorSpace())
	assert.Equal(t, "lin_rec709", RoleNormal.ColorSpace())
}

func TestTextureAssignmentSortedRoles(t *testing.T) {
	a := TextureAssignment{
		RoleNormal:    "n.png",
		RoleBaseColor: "b.png",
		RoleSheen:     "s.png",
	}
	assert.Equal(t, []Role{RoleBaseColor, RoleNormal, RoleSheen}, a.SortedRoles())
}

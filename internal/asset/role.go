// Package asset provides the asset data model: directory classification,
// texture role assignment, and variant detection.
package asset

// Role is the semantic shading purpose of a texture file.
type Role string

// Texture roles, in canonical order.
const (
	RoleBaseColor    Role = "base_color"
	RoleMetalness    Role = "metalness"
	RoleRoughness    Role = "roughness"
	RoleNormal       Role = "normal"
	RoleSpecular     Role = "specular"
	RoleEmissive     Role = "emissive"
	RoleDisplacement Role = "displacement"
	RoleOpacity      Role = "opacity"
	RoleOcclusion    Role = "occlusion"
	RoleScattering   Role = "scattering"
	RoleReflection   Role = "reflection"
	RoleRefraction   Role = "refraction"
	RoleSheen        Role = "sheen"
	RoleTransmission Role = "transmission"
)

// roleOrder is the canonical role ordering used everywhere ordering matters:
// classification priority, shading-node emission, report output.
var roleOrder = []Role{
	RoleBaseColor,
	RoleMetalness,
	RoleRoughness,
	RoleNormal,
	RoleSpecular,
	RoleEmissive,
	RoleDisplacement,
	RoleOpacity,
	RoleOcclusion,
	RoleScattering,
	RoleReflection,
	RoleRefraction,
	RoleSheen,
	RoleTransmission,
}

// Roles returns all texture roles in canonical order.
func Roles() []Role {
	return append([]Role(nil), roleOrder...)
}

// ValueType is the shading-node value type a role's image node produces.
type ValueType string

// Shading value types.
const (
	TypeColor3  ValueType = "color3"
	TypeFloat   ValueType = "float"
	TypeVector3 ValueType = "vector3"
)

// ValueType returns the shading value type for the role.
func (r Role) ValueType() ValueType {
	switch r {
	case RoleBaseColor, RoleEmissive:
		return TypeColor3
	case RoleNormal:
		return TypeVector3
	default:
		return TypeFloat
	}
}

// shaderInputs maps each role to its canonical OpenPBR surface input.
var shaderInputs = map[Role]string{
	RoleBaseColor:    "base_color",
	RoleMetalness:    "base_metalness",
	RoleRoughness:    "specular_roughness",
	RoleNormal:       "geometry_normal",
	RoleSpecular:     "specular_weight",
	RoleEmissive:     "emission_color",
	RoleDisplacement: "displacement",
	RoleOpacity:      "geometry_opacity",
	RoleOcclusion:    "ambient_occlusion",
	RoleScattering:   "subsurface_weight",
	RoleReflection:   "coat_weight",
	RoleRefraction:   "specular_ior",
	RoleSheen:        "fuzz_weight",
	RoleTransmission: "transmission_weight",
}

// ShaderInput returns the canonical surface-shader input the role binds to.
func (r Role) ShaderInput() string {
	return shaderInputs[r]
}

// ColorSpace returns the image color space for the role: sRGB for color
// data, raw for scalar and vector data.
func (r Role) ColorSpace() string {
	if r.ValueType() == TypeColor3 {
		return "srgb_texture"
	}
	return "lin_rec709"
}

// TextureAssignment maps roles to texture file paths, at most one per role.
type TextureAssignment map[Role]string

// SortedRoles returns the assigned roles in canonical order.
func (a TextureAssignment) SortedRoles() []Role {
	out := make([]Role, 0, len(a))
	for _, r := range roleOrder {
		if _, ok := a[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

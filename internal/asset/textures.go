package asset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// patternRule binds an ordered set of filename patterns to a role. Rules are
// evaluated top to bottom, so a specific pattern always beats a looser one
// further down the table. New roles and spellings are additive here.
type patternRule struct {
	role     Role
	patterns []string
}

// patternTable is the ordered classification table. The trailing generic
// "color" rule catches files like foo_color.png that no specific rule claimed.
var patternTable = []patternRule{
	{RoleBaseColor, []string{"base_color", "basecolor", "albedo", "diffuse"}},
	{RoleMetalness, []string{"metalness", "metallic"}},
	{RoleRoughness, []string{"roughness"}},
	{RoleNormal, []string{"normal", "bump"}},
	{RoleSpecular, []string{"specular"}},
	{RoleEmissive, []string{"emissive", "emission"}},
	{RoleDisplacement, []string{"displacement", "height"}},
	{RoleOpacity, []string{"opacity", "alpha"}},
	{RoleOcclusion, []string{"occlusion", "ambientocclusion"}},
	{RoleScattering, []string{"scattering", "sss"}},
	{RoleReflection, []string{"reflection"}},
	{RoleRefraction, []string{"refraction"}},
	{RoleSheen, []string{"sheen"}},
	{RoleTransmission, []string{"transmission"}},
	{RoleBaseColor, []string{"color"}},
}

// matchRole returns the role for a lower-cased filename, or false when no
// pattern matches.
func matchRole(lower string) (Role, bool) {
	for _, rule := range patternTable {
		for _, p := range rule.patterns {
			if strings.Contains(lower, p) {
				return rule.role, true
			}
		}
	}
	return "", false
}

// ClassifyTextures assigns a role to each file name, keyed on the owning
// node's lower-cased name. Files that do not carry the prefix are assumed to
// belong to a different asset and are skipped silently; files with the
// prefix but no recognizable role, and duplicate role matches, produce
// warnings. The first file matching a role (in the given order) wins.
//
// File names are classified in the order given; callers pass
// directory-listing order so results are deterministic.
func ClassifyTextures(fileNames []string, namePrefix string, extensions []string) (TextureAssignment, []string) {
	assignment := make(TextureAssignment)
	var warnings []string

	prefix := strings.ToLower(namePrefix)

	for _, name := range fileNames {
		lower := strings.ToLower(name)

		if !hasAllowedExtension(lower, extensions) {
			continue
		}
		if !strings.Contains(lower, prefix) {
			continue
		}

		role, ok := matchRole(lower)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unrecognized texture %q (no role pattern matched)", name))
			continue
		}

		if existing, taken := assignment[role]; taken {
			warnings = append(warnings, fmt.Sprintf("ignoring duplicate %s texture %q (already using %q)",
				role, name, filepath.Base(existing)))
			continue
		}

		assignment[role] = name
	}

	return assignment, warnings
}

// hasAllowedExtension checks a lower-cased file name against the extension
// allow-list. Non-image files are ignored silently.
func hasAllowedExtension(lower string, extensions []string) bool {
	ext := filepath.Ext(lower)
	for _, allowed := range extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

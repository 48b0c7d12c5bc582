package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DetectVariants inspects a node's textures directory and returns its
// variants in discovery order.
//
// Loose image files directly under the directory produce exactly one variant
// named by the default marker. Otherwise every immediate subdirectory that
// holds at least one image file produces one variant named after it. A
// directory with neither yields zero variants; the node stays valid but no
// material is generated for it.
//
// When loose files and subdirectories are mixed, the loose files win and the
// subdirectories are ignored with a warning.
func (c *Classifier) DetectVariants(textureDir, namePrefix string) ([]Variant, []string, error) {
	entries, err := os.ReadDir(textureDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("reading textures directory: %w", err)
	}

	var (
		looseFiles []string
		subDirs    []string
		warnings   []string
	)
	for _, e := range entries {
		if e.IsDir() {
			subDirs = append(subDirs, e.Name())
			continue
		}
		name := e.Name()
		if hasAllowedExtension(strings.ToLower(name), c.extensions) {
			looseFiles = append(looseFiles, name)
		}
	}

	if len(looseFiles) > 0 {
		if len(subDirs) > 0 {
			warnings = append(warnings, fmt.Sprintf(
				"%s mixes loose texture files and subdirectories; using loose files and ignoring %d subdirectories",
				textureDir, len(subDirs)))
		}

		files := c.sniffImages(textureDir, looseFiles, &warnings)
		assignment, classifyWarnings := ClassifyTextures(files, namePrefix, c.extensions)
		warnings = append(warnings, classifyWarnings...)

		rel := make(TextureAssignment, len(assignment))
		for role, file := range assignment {
			rel[role] = filepath.ToSlash(filepath.Join(TexturesDir, file))
		}

		return []Variant{{Name: c.defaultVariant, Textures: rel, Default: true}}, warnings, nil
	}

	var variants []Variant
	for _, sub := range subDirs {
		subPath := filepath.Join(textureDir, sub)
		subEntries, err := os.ReadDir(subPath)
		if err != nil {
			return nil, warnings, fmt.Errorf("reading variant directory %s: %w", subPath, err)
		}

		var files []string
		for _, e := range subEntries {
			if !e.IsDir() && hasAllowedExtension(strings.ToLower(e.Name()), c.extensions) {
				files = append(files, e.Name())
			}
		}
		if len(files) == 0 {
			warnings = append(warnings, fmt.Sprintf("variant directory %s holds no texture files; skipped", subPath))
			continue
		}

		files = c.sniffImages(subPath, files, &warnings)
		assignment, classifyWarnings := ClassifyTextures(files, namePrefix, c.extensions)
		warnings = append(warnings, classifyWarnings...)

		rel := make(TextureAssignment, len(assignment))
		for role, file := range assignment {
			rel[role] = filepath.ToSlash(filepath.Join(TexturesDir, sub, file))
		}

		variants = append(variants, Variant{Name: sub, Textures: rel})
	}

	return variants, warnings, nil
}

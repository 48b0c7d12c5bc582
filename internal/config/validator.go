package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values the assembler cannot work with.
func (c *Config) Validate() error {
	if c.OutputFormat != "usda" {
		return fmt.Errorf("unsupported output format %q (only usda is supported)", c.OutputFormat)
	}

	switch c.DualDirectoryPolicy {
	case PolicyPreferComponents, PolicyError:
	default:
		return fmt.Errorf("unknown dualDirectoryPolicy %q (valid: %s, %s)",
			c.DualDirectoryPolicy, PolicyPreferComponents, PolicyError)
	}

	switch c.Stage.UpAxis {
	case "Y", "Z":
	default:
		return fmt.Errorf("invalid stage up axis %q (valid: Y, Z)", c.Stage.UpAxis)
	}

	if c.Stage.MetersPerUnit <= 0 {
		return fmt.Errorf("metersPerUnit must be positive, got %v", c.Stage.MetersPerUnit)
	}

	for _, ext := range c.Textures.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("texture extension %q must start with a dot", ext)
		}
	}

	return nil
}

// Package config provides configuration loading and management.
package config

// Dual-directory policies for nodes that carry both a components/ and a
// subcomponents/ directory.
const (
	// PolicyPreferComponents treats components/ as authoritative and ignores
	// subcomponents/ with a warning.
	PolicyPreferComponents = "prefer-components"

	// PolicyError rejects the node outright.
	PolicyError = "error"
)

// StageConfig contains settings stamped into every generated layer.
type StageConfig struct {
	// UpAxis is the stage up axis. Default: "Y".
	UpAxis string `mapstructure:"upAxis" yaml:"upAxis,omitempty"`

	// MetersPerUnit is the stage linear unit scale. Default: 1.0.
	MetersPerUnit float64 `mapstructure:"metersPerUnit" yaml:"metersPerUnit,omitempty"`
}

// TextureConfig contains texture classification settings.
type TextureConfig struct {
	// Extensions is the image-extension allow-list (with leading dots).
	Extensions []string `mapstructure:"extensions" yaml:"extensions,omitempty"`

	// DefaultVariantName names the implicit variant used when a textures
	// directory holds loose files instead of variant subdirectories.
	DefaultVariantName string `mapstructure:"defaultVariantName" yaml:"defaultVariantName,omitempty"`

	// SniffContent enables content sniffing of texture files whose extension
	// passes the allow-list; mismatches become warnings.
	SniffContent bool `mapstructure:"sniffContent" yaml:"sniffContent,omitempty"`
}

// Config represents the usdasm configuration.
// Loaded from ~/.usdassemble/config.yaml; env vars use the USDA_ prefix.
type Config struct {
	// OutputFormat is the generated layer file extension. Only "usda" is
	// currently supported.
	OutputFormat string `mapstructure:"outputFormat" yaml:"outputFormat,omitempty"`

	// DualDirectoryPolicy decides what happens when both components/ and
	// subcomponents/ exist under one node.
	DualDirectoryPolicy string `mapstructure:"dualDirectoryPolicy" yaml:"dualDirectoryPolicy,omitempty"`

	// Stage contains per-layer stage metadata.
	Stage StageConfig `mapstructure:"stage" yaml:"stage,omitempty"`

	// Textures contains texture classification settings.
	Textures TextureConfig `mapstructure:"textures" yaml:"textures,omitempty"`

	// Workers bounds the number of sibling nodes processed concurrently.
	// Zero means one worker per sibling up to the default cap.
	Workers int `mapstructure:"workers" yaml:"workers,omitempty"`
}

// DefaultTextureExtensions is the built-in image allow-list, matching the
// formats the shading templates reference.
var DefaultTextureExtensions = []string{".jpg", ".jpeg", ".png", ".exr", ".tif", ".tiff", ".tga"}

// DefaultConfig returns a Config with all default values populated.
// Used by `usdasm config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		OutputFormat:        "usda",
		DualDirectoryPolicy: PolicyPreferComponents,
		Stage: StageConfig{
			UpAxis:        "Y",
			MetersPerUnit: 1.0,
		},
		Textures: TextureConfig{
			Extensions:         append([]string(nil), DefaultTextureExtensions...),
			DefaultVariantName: "default",
			SniffContent:       true,
		},
		Workers: 4,
	}
}

// WithDefaults fills zero-value fields from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	def := DefaultConfig()

	if c.OutputFormat == "" {
		c.OutputFormat = def.OutputFormat
	}
	if c.DualDirectoryPolicy == "" {
		c.DualDirectoryPolicy = def.DualDirectoryPolicy
	}
	if c.Stage.UpAxis == "" {
		c.Stage.UpAxis = def.Stage.UpAxis
	}
	if c.Stage.MetersPerUnit == 0 {
		c.Stage.MetersPerUnit = def.Stage.MetersPerUnit
	}
	if len(c.Textures.Extensions) == 0 {
		c.Textures.Extensions = def.Textures.Extensions
	}
	if c.Textures.DefaultVariantName == "" {
		c.Textures.DefaultVariantName = def.Textures.DefaultVariantName
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}

	return c
}

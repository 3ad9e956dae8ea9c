// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how the manifest is serialized.
type OutputFormat string

const (
	// FormatJS writes "const <variable> = [...];" for direct <script> inclusion.
	FormatJS OutputFormat = "js"
	// FormatJSON writes the bare JSON array.
	FormatJSON OutputFormat = "json"
	// FormatYAML writes the record list as YAML.
	FormatYAML OutputFormat = "yaml"
)

// Defaults for ManifestConfig fields left empty.
const (
	DefaultSourceDir   = "."
	DefaultImageDir    = "image"
	DefaultOutput      = "stories.js"
	DefaultVariable    = "stories"
	DefaultIndent      = 4
	DefaultPlaceholder = "image/placeholder.png"
)

// ManifestConfig holds settings for a manifest build. Field tags name the
// keys used in storybook.yaml and, upper-cased, in STORYBOOK_* variables.
type ManifestConfig struct {
	// SourceDir is the directory scanned for <digits>.<author>.txt files.
	SourceDir string `mapstructure:"source_dir"`

	// ImageDir holds cover images, optionally with a compressed/ subdirectory.
	// A relative path is resolved against SourceDir.
	ImageDir string `mapstructure:"image_dir"`

	// Output is the path of the manifest file, overwritten on every run.
	// "-" writes the manifest to stdout instead.
	Output string `mapstructure:"output"`

	// Format selects the serialization: js, json, or yaml.
	Format OutputFormat `mapstructure:"format"`

	// Variable is the JavaScript variable name used by the js format.
	Variable string `mapstructure:"variable"`

	// Indent is the number of spaces per JSON nesting level.
	Indent int `mapstructure:"indent"`

	// Placeholder is the image path assigned when no image matches.
	Placeholder string `mapstructure:"placeholder"`

	// NormalizeNames applies Unicode NFC normalization to author names.
	NormalizeNames bool `mapstructure:"normalize_names"`

	// CatalogPath, when set, also writes a searchable SQLite snapshot.
	CatalogPath string `mapstructure:"catalog"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ManifestConfig) WithDefaults() ManifestConfig {
	if c.SourceDir == "" {
		c.SourceDir = DefaultSourceDir
	}
	if c.ImageDir == "" {
		c.ImageDir = DefaultImageDir
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Format == "" {
		c.Format = FormatJS
	}
	if c.Variable == "" {
		c.Variable = DefaultVariable
	}
	if c.Indent <= 0 {
		c.Indent = DefaultIndent
	}
	if c.Placeholder == "" {
		c.Placeholder = DefaultPlaceholder
	}
	return c
}

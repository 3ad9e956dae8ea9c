// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManifestConfigWithDefaults(t *testing.T) {
	got := ManifestConfig{}.WithDefaults()
	assert.Equal(t, ManifestConfig{
		SourceDir:   ".",
		ImageDir:    "image",
		Output:      "stories.js",
		Format:      FormatJS,
		Variable:    "stories",
		Indent:      4,
		Placeholder: "image/placeholder.png",
	}, got)

	custom := ManifestConfig{SourceDir: "books", Format: FormatYAML, Indent: 2, NormalizeNames: true}.WithDefaults()
	assert.Equal(t, "books", custom.SourceDir)
	assert.Equal(t, FormatYAML, custom.Format)
	assert.Equal(t, 2, custom.Indent)
	assert.True(t, custom.NormalizeNames)
}

func TestWarningString(t *testing.T) {
	w := Warning{Kind: WarnMissingImage, File: "1.a.txt", Message: "no image found"}
	assert.Equal(t, "1.a.txt: no image found", w.String())
}

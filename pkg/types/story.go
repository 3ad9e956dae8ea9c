// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Story is one entry in the story manifest. Field order matches the key
// order of the emitted JSON objects.
type Story struct {
	// ID is parsed from the leading digits of the source filename. IDs are
	// not required to be unique.
	ID int `json:"id" yaml:"id"`

	// Title comes from the "제목:" line of the content, or Untitled.
	Title string `json:"title" yaml:"title"`

	// Author is the filename segment between the id and ".txt".
	Author string `json:"author" yaml:"author"`

	// Image is a slash-separated path relative to the source directory
	// (e.g. "image/compressed/1.곽민서.jpeg"), or the placeholder path.
	Image string `json:"image" yaml:"image"`

	// Content is the full text of the source file, unmodified.
	Content string `json:"content" yaml:"content"`
}

// WarningKind classifies a non-fatal problem found while building a manifest.
type WarningKind string

const (
	// WarnInvalidName marks a .txt file whose name is not <digits>.<author>.txt.
	// The file is left out of the manifest.
	WarnInvalidName WarningKind = "invalid_name"

	// WarnReadError marks a file that could not be read or is not UTF-8.
	// The file is left out of the manifest.
	WarnReadError WarningKind = "read_error"

	// WarnMissingImage marks a story with no matching image. The story is
	// kept with the placeholder image path.
	WarnMissingImage WarningKind = "missing_image"
)

// Warning is a per-file notice produced during a manifest build.
type Warning struct {
	Kind    WarningKind `json:"kind" yaml:"kind"`
	File    string      `json:"file" yaml:"file"`
	Message string      `json:"message" yaml:"message"`
}

// String renders the warning as a single human-readable line.
func (w Warning) String() string {
	return w.File + ": " + w.Message
}

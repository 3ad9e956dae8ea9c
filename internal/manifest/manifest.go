// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest builds the story manifest: it matches numbered story text
// files to their cover images, extracts titles, and serializes the ordered
// record set for the reader page.
//
// Build is free of console and output I/O. Problems with individual files
// come back as warnings and never stop the run; only an unreadable source
// directory is an error.
package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/storybook/pkg/types"
)

// Options controls a manifest build.
type Options struct {
	// Placeholder is the image path used when no image matches.
	// Empty means types.DefaultPlaceholder.
	Placeholder string

	// NormalizeNames converts authors to Unicode NFC before image lookup
	// and output. Filenames copied from macOS often carry decomposed Hangul.
	NormalizeNames bool

	// Resolvers overrides the image lookup chain. Nil means DefaultResolvers.
	Resolvers []Resolver
}

// Result is the outcome of a manifest build.
type Result struct {
	// Stories holds one record per valid source file, in sorted order.
	// It is never nil.
	Stories []types.Story

	// Files holds the source filename of each story, parallel to Stories.
	Files []string

	// Warnings lists skipped files and stories without an image, in the
	// order they were found.
	Warnings []types.Warning

	// Scanned is the number of .txt files considered.
	Scanned int
}

// Count returns the number of warnings of the given kind.
func (r Result) Count(kind types.WarningKind) int {
	n := 0
	for _, w := range r.Warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Skipped returns the number of source files left out of the manifest.
func (r Result) Skipped() int {
	return r.Count(types.WarnInvalidName) + r.Count(types.WarnReadError)
}

// Build scans sourceDir for "<digits>.<author>.txt" files and returns their
// records ordered by id. Images are looked up under imageDir, which is
// resolved against sourceDir when relative.
func Build(sourceDir, imageDir string, opts Options) (Result, error) {
	names, err := ListSources(sourceDir)
	if err != nil {
		return Result{}, err
	}
	SortSources(names)

	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = types.DefaultPlaceholder
	}
	resolvers := opts.Resolvers
	if resolvers == nil {
		resolvers = DefaultResolvers(sourceDir, imageDir)
	}

	result := Result{
		Stories: []types.Story{},
		Scanned: len(names),
	}
	for _, name := range names {
		id, author, ok := ParseFilename(name)
		if !ok {
			result.Warnings = append(result.Warnings, types.Warning{
				Kind:    types.WarnInvalidName,
				File:    name,
				Message: "invalid format, expected <number>.<author>.txt",
			})
			continue
		}
		if opts.NormalizeNames {
			author = norm.NFC.String(author)
		}

		content, err := readSource(filepath.Join(sourceDir, name))
		if err != nil {
			result.Warnings = append(result.Warnings, types.Warning{
				Kind:    types.WarnReadError,
				File:    name,
				Message: err.Error(),
			})
			continue
		}

		image, found := Resolve(resolvers, id, author)
		if !found {
			image = placeholder
			result.Warnings = append(result.Warnings, types.Warning{
				Kind:    types.WarnMissingImage,
				File:    name,
				Message: "no image found, using " + placeholder,
			})
		}

		result.Stories = append(result.Stories, types.Story{
			ID:      id,
			Title:   ExtractTitle(content),
			Author:  author,
			Image:   image,
			Content: content,
		})
		result.Files = append(result.Files, name)
	}
	return result, nil
}

// readSource reads a story file and rejects content that is not valid UTF-8.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8", filepath.Base(path))
	}
	return string(data), nil
}

// Report prints per-file status lines and a summary for result to w.
func Report(w io.Writer, result Result) {
	fmt.Fprintf(w, "found %d text files\n", result.Scanned)
	for i, s := range result.Stories {
		fmt.Fprintf(w, "processed: %s -> %s (%s)\n", result.Files[i], s.Title, s.Author)
	}
	for _, warn := range result.Warnings {
		switch warn.Kind {
		case types.WarnInvalidName:
			fmt.Fprintf(w, "skipped:   %s\n", warn)
		case types.WarnReadError:
			fmt.Fprintf(w, "failed:    %s\n", warn)
		default:
			fmt.Fprintf(w, "warning:   %s\n", warn)
		}
	}
	fmt.Fprintf(w, "\nManifest summary: %d stories, %d skipped, %d missing images (scanned: %d)\n",
		len(result.Stories), result.Skipped(), result.Count(types.WarnMissingImage), result.Scanned)
}

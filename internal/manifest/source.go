// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	// sourceExt is the extension of story text files. Matching is case-sensitive.
	sourceExt = ".txt"

	// Untitled is the title used when the content has no "제목:" line.
	Untitled = "무제"

	// NoIDSortKey sorts files without a leading number after every real id.
	NoIDSortKey = math.MaxInt
)

var (
	leadingDigits = regexp.MustCompile(`^\d+`)
	sourceName    = regexp.MustCompile(`^(\d+)\.(.+)\.txt$`)

	// titleLine matches "제목 : title" anywhere in the content. The colon may
	// be ASCII or full-width and the spacing around it may include Unicode
	// spaces such as U+3000 and U+00A0; the title runs to the end of the line.
	titleLine = regexp.MustCompile(`제목[\s\p{Z}]*[:：][\s\p{Z}]*(.+)`)
)

// ListSources returns the names of regular files in dir ending in ".txt", in
// lexicographic order. A missing or unreadable dir is an error.
func ListSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, sourceExt) {
			names = append(names, name)
		}
	}
	return names, nil
}

// SortKey returns the number formed by the leading digits of name, or
// NoIDSortKey when name does not start with a digit or the digits overflow.
func SortKey(name string) int {
	digits := leadingDigits.FindString(name)
	if digits == "" {
		return NoIDSortKey
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return NoIDSortKey
	}
	return n
}

// SortSources orders names by ascending SortKey. Equal keys keep their
// relative order.
func SortSources(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return SortKey(names[i]) < SortKey(names[j])
	})
}

// ParseFilename splits "<digits>.<author>.txt" into its id and author. The
// author is everything between the first "." and the trailing ".txt", so it
// may itself contain dots. ok is false for any other shape.
func ParseFilename(name string) (id int, author string, ok bool) {
	m := sourceName.FindStringSubmatch(name)
	if m == nil {
		return 0, "", false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return id, m[2], true
}

// ExtractTitle returns the trimmed text after the first "제목:" label in
// content, or Untitled.
func ExtractTitle(content string) string {
	m := titleLine.FindStringSubmatch(content)
	if m == nil {
		return Untitled
	}
	if title := strings.TrimSpace(m[1]); title != "" {
		return title
	}
	return Untitled
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/storybook/pkg/types"
)

var sampleStories = []types.Story{
	{ID: 1, Title: "시간우체통", Author: "곽민서", Image: "image/compressed/1.곽민서.jpeg", Content: "제목 : 시간우체통\n<b>편지</b> & \"따옴표\""},
}

func TestMarshalJS(t *testing.T) {
	data, err := Marshal(sampleStories, WriteOptions{})
	require.NoError(t, err)

	want := `const stories = [
    {
        "id": 1,
        "title": "시간우체통",
        "author": "곽민서",
        "image": "image/compressed/1.곽민서.jpeg",
        "content": "제목 : 시간우체통\n<b>편지</b> & \"따옴표\""
    }
];`
	assert.Equal(t, want, string(data))
}

func TestMarshalJSOptions(t *testing.T) {
	data, err := Marshal(sampleStories[:0], WriteOptions{Variable: "library", Indent: 2})
	require.NoError(t, err)
	assert.Equal(t, "const library = [];", string(data))

	data, err = Marshal(nil, WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, "const stories = [];", string(data))

	data, err = Marshal(sampleStories, WriteOptions{Indent: 2})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "const stories = [\n  {\n    \"id\": 1,"))
}

func TestMarshalJSON(t *testing.T) {
	data, err := Marshal(sampleStories, WriteOptions{Format: types.FormatJSON})
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte("]\n")))
	assert.Contains(t, string(data), `<b>편지</b> &`)

	var got []types.Story
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleStories, got)
}

func TestMarshalYAML(t *testing.T) {
	data, err := Marshal(sampleStories, WriteOptions{Format: types.FormatYAML, Indent: 2})
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: 시간우체통")

	var got []types.Story
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, sampleStories, got)
}

func TestMarshalUnsupportedFormat(t *testing.T) {
	_, err := Marshal(sampleStories, WriteOptions{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stories.js")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("old content ", 1000)), 0o644))

	require.NoError(t, WriteFile(path, nil, WriteOptions{}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "const stories = [];", string(data))
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "stories.js")
	err := WriteFile(path, sampleStories, WriteOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing manifest")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleStories, WriteOptions{Format: types.FormatJSON}))
	assert.True(t, strings.HasPrefix(buf.String(), "[\n    {"))
}

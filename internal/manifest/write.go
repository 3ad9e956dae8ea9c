// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/storybook/pkg/types"
)

// WriteOptions controls manifest serialization. Zero values fall back to the
// defaults in pkg/types.
type WriteOptions struct {
	Format   types.OutputFormat
	Variable string
	Indent   int
}

func (o WriteOptions) withDefaults() WriteOptions {
	if o.Format == "" {
		o.Format = types.FormatJS
	}
	if o.Variable == "" {
		o.Variable = types.DefaultVariable
	}
	if o.Indent <= 0 {
		o.Indent = types.DefaultIndent
	}
	return o
}

// Marshal serializes stories in the requested format. The js format
// produces "const <variable> = [...];" with no trailing newline. JSON output
// keeps non-ASCII and HTML characters literal.
func Marshal(stories []types.Story, opts WriteOptions) ([]byte, error) {
	opts = opts.withDefaults()
	if stories == nil {
		stories = []types.Story{}
	}

	switch opts.Format {
	case types.FormatJS:
		data, err := marshalJSON(stories, opts.Indent)
		if err != nil {
			return nil, err
		}
		var b bytes.Buffer
		fmt.Fprintf(&b, "const %s = ", opts.Variable)
		b.Write(data)
		b.WriteByte(';')
		return b.Bytes(), nil
	case types.FormatJSON:
		data, err := marshalJSON(stories, opts.Indent)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case types.FormatYAML:
		var b bytes.Buffer
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(opts.Indent)
		if err := enc.Encode(stories); err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return b.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use js, json, or yaml", opts.Format)
	}
}

func marshalJSON(stories []types.Story, indent int) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(stories); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// Write serializes stories to w.
func Write(w io.Writer, stories []types.Story, opts WriteOptions) error {
	data, err := Marshal(stories, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile serializes stories to path, replacing any existing file.
func WriteFile(path string, stories []types.Story, opts WriteOptions) error {
	data, err := Marshal(stories, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

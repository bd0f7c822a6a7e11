package boardfile

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects an encoding.
type Format int

const (
	// FormatYAML is the default encoding.
	FormatYAML Format = iota
	// FormatJSON is indented JSON.
	FormatJSON
)

// String returns the canonical file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the encoding from the file extension
// (.yaml, .yml, .json; case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Encode writes doc to w. Documents are written as given; call Validate
// first to guarantee a loadable file.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatYAML:
		var n yaml.Node
		if err := n.Encode(doc); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		flowRecords(&n)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&n); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Encode: %v: %w", f, ErrUnknownFormat)
	}
}

// flowRecords renders every sequence of scalars in flow style so that each
// record sits on one line: "- [10, 20]".
func flowRecords(n *yaml.Node) {
	if n.Kind == yaml.SequenceNode && len(n.Content) > 0 {
		scalars := true
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				scalars = false
				break
			}
		}
		if scalars {
			n.Style = yaml.FlowStyle
			return
		}
	}
	for _, c := range n.Content {
		flowRecords(c)
	}
}

// Decode reads one document from r, rejecting unknown fields, and
// validates it. Any failure wraps ErrFormat (or ErrUnknownFormat).
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("Decode: %v: %w", err, ErrFormat)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("Decode: %v: %w", err, ErrFormat)
		}
	default:
		return nil, fmt.Errorf("Decode: %v: %w", f, ErrUnknownFormat)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	return &doc, nil
}

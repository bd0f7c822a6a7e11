package boardfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveFile writes doc to path in the encoding implied by its extension,
// creating parent directories as needed. A document without an ID is
// written with a fresh random UUID, which is stored in doc.ID once the file
// is written. The document is validated first; on any error neither doc
// nor the file system is changed.
func SaveFile(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	out := *doc
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, &out, f); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	doc.ID = out.ID
	return nil
}

// LoadFile reads and validates the document at path.
func LoadFile(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}
	return doc, nil
}

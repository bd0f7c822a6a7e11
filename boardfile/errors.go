package boardfile

import "errors"

var (
	// ErrFormat indicates a document that does not follow the schema:
	// unknown version, malformed record, out-of-range vertex index,
	// self-loop, non-finite coordinate, bad id or undecodable input.
	ErrFormat = errors.New("boardfile: invalid format")

	// ErrUnknownFormat indicates an encoding (or file extension) other than
	// YAML or JSON.
	ErrUnknownFormat = errors.New("boardfile: unknown encoding")
)

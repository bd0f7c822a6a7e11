// Package boardfile persists planar boards as explicit, versioned records.
//
// A board file holds ordered vertex records [x, y] and ordered edge records
// [v0, v1]; record order is ID order, so a loaded board has exactly the IDs
// of the board that was saved. Cells are never stored: they are derived
// data, and callers run Compute after loading.
//
// Two encodings share one schema: YAML (the default, with each record on
// one line) and JSON. SaveFile and LoadFile choose by file extension.
//
// Loading is all-or-nothing. Decode validates the whole document before
// returning it and Document.Board validates again before touching a board,
// so a malformed file never yields a partially built board. Every schema
// violation wraps ErrFormat.
package boardfile

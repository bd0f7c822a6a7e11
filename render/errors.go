package render

import "errors"

var (
	// ErrNotComputed indicates a board whose cells are stale.
	ErrNotComputed = errors.New("render: board is not computed")

	// ErrEmptyImage indicates a canvas with no pixels.
	ErrEmptyImage = errors.New("render: empty image")

	// ErrImageOrigin indicates a canvas whose bounds do not start at (0,0);
	// draw2d mis-places paths on such images.
	ErrImageOrigin = errors.New("render: image bounds must start at 0,0")
)

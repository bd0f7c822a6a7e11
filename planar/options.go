package planar

import (
	"io"
	"log/slog"
)

// Option configures a Board at construction time.
type Option func(*Board)

// WithLogger routes Board diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("planar: WithLogger(nil)")
	}
	return func(b *Board) {
		b.log = l
	}
}

// WithCapacity preallocates room for nv vertices and ne edges.
// Negative values are treated as zero.
func WithCapacity(nv, ne int) Option {
	return func(b *Board) {
		if nv > 0 {
			b.vertices.pos = make([]Point, 0, nv)
		}
		if ne > 0 {
			b.edges.edges = make([]Edge, 0, ne)
		}
	}
}

// discardLogger is the default sink: Compute logs at debug level only.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

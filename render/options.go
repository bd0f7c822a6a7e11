package render

import (
	"image"
	"image/color"
)

// DefaultPalette is the cell fill palette: soft, distinguishable tones.
var DefaultPalette = []color.Color{
	color.RGBA{0x8d, 0xd3, 0xc7, 0xff},
	color.RGBA{0xff, 0xff, 0xb3, 0xff},
	color.RGBA{0xbe, 0xba, 0xda, 0xff},
	color.RGBA{0xfb, 0x80, 0x72, 0xff},
	color.RGBA{0x80, 0xb1, 0xd3, 0xff},
	color.RGBA{0xfd, 0xb4, 0x62, 0xff},
	color.RGBA{0xb3, 0xde, 0x69, 0xff},
	color.RGBA{0xfc, 0xcd, 0xe5, 0xff},
}

// config holds the resolved drawing parameters.
type config struct {
	padding      float64
	palette      []color.Color
	cellColor    func(cellID int) color.Color
	canvas       color.Color
	background   image.Image
	edgeColor    color.Color
	vertexColor  color.Color
	labelColor   color.Color
	lineWidth    float64
	vertexRadius float64
	labels       bool
	flipY        bool
}

func defaultConfig() config {
	return config{
		padding:      16,
		palette:      DefaultPalette,
		canvas:       color.White,
		edgeColor:    color.RGBA{0x33, 0x33, 0x33, 0xff},
		vertexColor:  color.Black,
		labelColor:   color.Black,
		lineWidth:    2,
		vertexRadius: 3,
		flipY:        true,
	}
}

// Option configures Draw.
type Option func(*config)

// WithPadding keeps p pixels free on every side. Panics if p < 0.
func WithPadding(p float64) Option {
	if p < 0 {
		panic("render: WithPadding(p<0)")
	}
	return func(c *config) { c.padding = p }
}

// WithPalette replaces the fill palette used by the adjacency colouring.
// Panics on an empty palette.
func WithPalette(p []color.Color) Option {
	if len(p) == 0 {
		panic("render: WithPalette(empty)")
	}
	return func(c *config) { c.palette = p }
}

// WithCellColor overrides the fill of each cell, e.g. by owner in a
// territory game. A nil return leaves the cell unfilled. Panics on nil fn.
func WithCellColor(fn func(cellID int) color.Color) Option {
	if fn == nil {
		panic("render: WithCellColor(nil)")
	}
	return func(c *config) { c.cellColor = fn }
}

// WithCanvas sets the colour the image is cleared to. Nil keeps the
// existing pixels.
func WithCanvas(col color.Color) Option {
	return func(c *config) { c.canvas = col }
}

// WithBackground draws img scaled to the full canvas before the board.
func WithBackground(img image.Image) Option {
	return func(c *config) { c.background = img }
}

// WithEdgeStyle sets the edge colour and line width. Panics if w <= 0.
func WithEdgeStyle(col color.Color, w float64) Option {
	if w <= 0 {
		panic("render: WithEdgeStyle(w<=0)")
	}
	return func(c *config) { c.edgeColor, c.lineWidth = col, w }
}

// WithVertexStyle sets the vertex dot colour and radius; r == 0 hides
// vertices. Panics if r < 0.
func WithVertexStyle(col color.Color, r float64) Option {
	if r < 0 {
		panic("render: WithVertexStyle(r<0)")
	}
	return func(c *config) { c.vertexColor, c.vertexRadius = col, r }
}

// WithLabels toggles cell ID labels at centroids.
func WithLabels(on bool) Option {
	return func(c *config) { c.labels = on }
}

// WithFlipY toggles the y-up to y-down conversion (default on).
func WithFlipY(on bool) Option {
	return func(c *config) { c.flipY = on }
}

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/boardtopo/planar"
)

// viewport maps board coordinates to pixel coordinates.
type viewport struct {
	lo, hi planar.Point
	scale  float64
	offX   float64
	offY   float64
	flipY  bool
}

// fit computes a viewport that centres the board's bounding box inside a
// w×h canvas with pad pixels on every side, preserving aspect ratio.
func fit(b *planar.Board, w, h int, pad float64, flipY bool) viewport {
	lo, hi, ok := b.Bounds()
	vp := viewport{lo: lo, hi: hi, flipY: flipY, scale: 1}
	if !ok {
		return vp
	}
	availW, availH := math.Max(float64(w)-2*pad, 1), math.Max(float64(h)-2*pad, 1)
	bw, bh := hi.X-lo.X, hi.Y-lo.Y
	switch {
	case bw > 0 && bh > 0:
		vp.scale = math.Min(availW/bw, availH/bh)
	case bw > 0:
		vp.scale = availW / bw
	case bh > 0:
		vp.scale = availH / bh
	}
	vp.offX = (float64(w) - bw*vp.scale) / 2
	vp.offY = (float64(h) - bh*vp.scale) / 2
	return vp
}

// px converts a board point to pixel coordinates.
func (v viewport) px(p planar.Point) (float64, float64) {
	x := v.offX + (p.X-v.lo.X)*v.scale
	if v.flipY {
		return x, v.offY + (v.hi.Y-p.Y)*v.scale
	}
	return x, v.offY + (p.Y-v.lo.Y)*v.scale
}

// Draw paints the computed board b onto img.
//
// Returns ErrNotComputed unless b is in StateComputed, ErrEmptyImage for a
// zero-area canvas, ErrImageOrigin if img.Bounds().Min is not (0,0).
// Complexity: O(V + E + Σ|cell| + pixels).
func Draw(img *image.RGBA, b *planar.Board, opts ...Option) error {
	if b.State() != planar.StateComputed {
		return fmt.Errorf("render.Draw: board is %s: %w", b.State(), ErrNotComputed)
	}
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("render.Draw: %w", ErrEmptyImage)
	}
	if (img.Bounds().Min != image.Point{}) {
		return fmt.Errorf("render.Draw: bounds %v: %w", img.Bounds(), ErrImageOrigin)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.canvas != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(cfg.canvas), image.Point{}, draw.Src)
	}
	if cfg.background != nil {
		xdraw.CatmullRom.Scale(img, img.Bounds(), cfg.background, cfg.background.Bounds(), xdraw.Over, nil)
	}

	cells, err := b.Cells()
	if err != nil {
		return fmt.Errorf("render.Draw: %w", err)
	}
	fill := cfg.cellColor
	if fill == nil {
		colors, err := AssignColors(b)
		if err != nil {
			return fmt.Errorf("render.Draw: %w", err)
		}
		fill = func(id int) color.Color { return cfg.palette[colors[id]%len(cfg.palette)] }
	}

	vp := fit(b, img.Bounds().Dx(), img.Bounds().Dy(), cfg.padding, cfg.flipY)
	pts := b.Vertices()
	gc := draw2dimg.NewGraphicContext(img)

	for _, c := range cells {
		col := fill(c.ID)
		if col == nil {
			continue
		}
		gc.SetFillColor(col)
		gc.BeginPath()
		for i, v := range c.Vertices {
			x, y := vp.px(pts[v])
			if i == 0 {
				gc.MoveTo(x, y)
			} else {
				gc.LineTo(x, y)
			}
		}
		gc.Close()
		gc.Fill()
	}

	gc.SetStrokeColor(cfg.edgeColor)
	gc.SetLineWidth(cfg.lineWidth)
	for _, e := range b.Edges() {
		gc.BeginPath()
		gc.MoveTo(vp.px(pts[e.V0]))
		gc.LineTo(vp.px(pts[e.V1]))
		gc.Stroke()
	}

	if cfg.vertexRadius > 0 {
		gc.SetFillColor(cfg.vertexColor)
		for _, p := range pts {
			x, y := vp.px(p)
			gc.BeginPath()
			draw2dkit.Circle(gc, x, y, cfg.vertexRadius)
			gc.Fill()
		}
	}

	if cfg.labels {
		drawLabels(img, cells, vp, cfg.labelColor)
	}
	return nil
}

// drawLabels writes each cell ID centred on its centroid.
func drawLabels(img *image.RGBA, cells []planar.Cell, vp viewport, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(col), Face: face}
	half := face.Metrics().Ascent.Round() / 2
	for _, c := range cells {
		s := strconv.Itoa(c.ID)
		x, y := vp.px(c.Centroid)
		w := d.MeasureString(s).Round()
		d.Dot = fixed.P(int(math.Round(x))-w/2, int(math.Round(y))+half)
		d.DrawString(s)
	}
}

// Image allocates a w×h canvas and draws b onto it.
func Image(b *planar.Board, w, h int, opts ...Option) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render.Image: %dx%d: %w", w, h, ErrEmptyImage)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := Draw(img, b, opts...); err != nil {
		return nil, err
	}
	return img, nil
}

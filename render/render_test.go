package render_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/boardtopo/builder"
	"github.com/katalvlaran/boardtopo/planar"
	"github.com/katalvlaran/boardtopo/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// computed builds and computes a board from cons.
func computed(t *testing.T, cons ...builder.Constructor) *planar.Board {
	t.Helper()
	b, err := builder.BuildBoard(nil, nil, cons...)
	require.NoError(t, err)
	b.Compute()
	return b
}

// rgba converts any colour to color.RGBA for comparison.
func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestDraw_SquareFillAndCanvas(t *testing.T) {
	b := computed(t, builder.Grid(1, 1))
	img, err := render.Image(b, 100, 100, render.WithPadding(10))
	require.NoError(t, err)

	assert.Equal(t, rgba(render.DefaultPalette[0]), img.RGBAAt(50, 50), "cell interior")
	assert.Equal(t, rgba(color.White), img.RGBAAt(2, 2), "padding keeps the canvas colour")
	assert.NotEqual(t, rgba(color.White), img.RGBAAt(10, 50), "left edge is stroked")
}

func TestDraw_CellColorOverride(t *testing.T) {
	b := computed(t, builder.Grid(1, 2))
	left, err := b.Locate(5, 5)
	require.NoError(t, err)
	red := color.RGBA{0xff, 0, 0, 0xff}
	img, err := render.Image(b, 200, 100,
		render.WithPadding(0),
		render.WithVertexStyle(color.Black, 0),
		render.WithCellColor(func(id int) color.Color {
			if id == left {
				return red
			}
			return nil
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, red, img.RGBAAt(50, 50))
	assert.Equal(t, rgba(color.White), img.RGBAAt(150, 50), "nil colour leaves the cell unfilled")
}

func TestDraw_FlipY(t *testing.T) {
	// A triangle with its apex at the top in board space (y-up).
	b := planar.NewBoard()
	b.AddVertex(0, 0)
	b.AddVertex(100, 0)
	b.AddVertex(50, 100)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, err := b.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	b.Compute()

	blue := color.RGBA{0, 0, 0xff, 0xff}
	opts := []render.Option{render.WithPadding(0), render.WithPalette([]color.Color{blue})}

	img, err := render.Image(b, 100, 100, opts...)
	require.NoError(t, err)
	assert.Equal(t, blue, img.RGBAAt(50, 90), "wide base at the bottom of the image")
	assert.Equal(t, rgba(color.White), img.RGBAAt(10, 10))

	img, err = render.Image(b, 100, 100, append(opts, render.WithFlipY(false))...)
	require.NoError(t, err)
	assert.Equal(t, blue, img.RGBAAt(50, 10), "unflipped: base at the top")
}

func TestDraw_Labels(t *testing.T) {
	b := computed(t, builder.Grid(1, 1))
	opts := []render.Option{render.WithPadding(0), render.WithVertexStyle(color.Black, 0)}
	plain, err := render.Image(b, 120, 120, opts...)
	require.NoError(t, err)
	labelled, err := render.Image(b, 120, 120, append(opts, render.WithLabels(true))...)
	require.NoError(t, err)

	diff := 0
	for y := 50; y < 70; y++ {
		for x := 50; x < 70; x++ {
			if plain.RGBAAt(x, y) != labelled.RGBAAt(x, y) {
				diff++
			}
		}
	}
	assert.Positive(t, diff, "label pixels near the centroid")
}

func TestDraw_Errors(t *testing.T) {
	b := planar.NewBoard()
	b.AddVertex(0, 0)
	_, err := render.Image(b, 10, 10)
	assert.ErrorIs(t, err, render.ErrNotComputed)

	b.Compute()
	_, err = render.Image(b, 0, 10)
	assert.ErrorIs(t, err, render.ErrEmptyImage)

	off := image.NewRGBA(image.Rect(5, 5, 20, 20))
	assert.ErrorIs(t, render.Draw(off, b), render.ErrImageOrigin)

	// An empty computed board still renders (canvas only).
	empty := planar.NewBoard()
	empty.Compute()
	img, err := render.Image(empty, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, rgba(color.White), img.RGBAAt(4, 4))
}

func TestAssignColors_NeighboursDiffer(t *testing.T) {
	for _, ctor := range []builder.Constructor{
		builder.Grid(4, 4), builder.HexGrid(4, 4), builder.Wheel(8), builder.PlatonicSolid(builder.Icosahedron),
	} {
		b := computed(t, ctor)
		colors, err := render.AssignColors(b)
		require.NoError(t, err)
		cells, err := b.Cells()
		require.NoError(t, err)
		require.Len(t, colors, len(cells))
		for _, c := range cells {
			assert.LessOrEqual(t, colors[c.ID], len(c.Adjacent))
			for _, n := range c.Adjacent {
				assert.NotEqual(t, colors[c.ID], colors[n], "cells %d and %d", c.ID, n)
			}
		}
	}

	_, err := render.AssignColors(planar.NewBoard())
	assert.ErrorIs(t, err, planar.ErrStaleState)
}

func TestThumbnailAndSavePNG(t *testing.T) {
	b := computed(t, builder.HexGrid(3, 5))
	img, err := render.Image(b, 400, 200)
	require.NoError(t, err)

	th, err := render.Thumbnail(img, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, th.Bounds().Dx())
	assert.Equal(t, 50, th.Bounds().Dy())

	same, err := render.Thumbnail(th, 500)
	require.NoError(t, err)
	assert.Equal(t, th.Bounds().Size(), same.Bounds().Size())

	_, err = render.Thumbnail(img, 0)
	assert.ErrorIs(t, err, render.ErrEmptyImage)

	path := filepath.Join(t.TempDir(), "hex.png")
	require.NoError(t, render.SavePNG(path, th))
	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

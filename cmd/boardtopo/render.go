package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/boardtopo/render"
)

var (
	edgeColor   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	vertexColor = color.Black
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		out        string
		background string
		width      int
		height     int
		padding    float64
		labels     bool
		thumb      int
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a board preview as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := a.cfg.Render
			flags := cmd.Flags()
			if flags.Changed("width") {
				rc.Width = width
			}
			if flags.Changed("height") {
				rc.Height = height
			}
			if flags.Changed("padding") {
				rc.Padding = padding
			}
			if flags.Changed("labels") {
				rc.Labels = labels
			}
			if flags.Changed("thumbnail") {
				rc.Thumbnail = thumb
			}
			opts, err := renderOptions(rc)
			if err != nil {
				return err
			}
			if background != "" {
				bg, err := decodeImage(background)
				if err != nil {
					return err
				}
				opts = append(opts, render.WithBackground(bg))
			}

			_, b, err := a.loadBoard(args[0])
			if err != nil {
				return err
			}
			img, err := render.Image(b, rc.Width, rc.Height, opts...)
			if err != nil {
				return err
			}
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			if err := render.SavePNG(out, img); err != nil {
				return err
			}
			a.log.Info("preview written", "file", out, "width", rc.Width, "height", rc.Height)

			if rc.Thumbnail > 0 {
				small, err := render.Thumbnail(img, rc.Thumbnail)
				if err != nil {
					return err
				}
				tp := strings.TrimSuffix(out, filepath.Ext(out)) + ".thumb.png"
				if err := render.SavePNG(tp, small); err != nil {
					return err
				}
				a.log.Info("thumbnail written", "file", tp, "size", small.Bounds().Size())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "PNG path (default: FILE with a .png extension)")
	cmd.Flags().StringVar(&background, "background", "", "PNG, JPEG or WebP image scaled under the board")
	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "image height in pixels")
	cmd.Flags().Float64Var(&padding, "padding", 0, "free pixels on every side")
	cmd.Flags().BoolVar(&labels, "labels", false, "print cell IDs at centroids")
	cmd.Flags().IntVar(&thumb, "thumbnail", 0, "also write FILE.thumb.png with this longest side")
	return cmd
}

// renderOptions converts config values into render options, rejecting
// values the option constructors would panic on.
func renderOptions(rc RenderConfig) ([]render.Option, error) {
	if rc.Width <= 0 || rc.Height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", rc.Width, rc.Height)
	}
	if rc.Padding < 0 {
		return nil, fmt.Errorf("padding must be >= 0, got %g", rc.Padding)
	}
	if rc.LineWidth <= 0 {
		return nil, fmt.Errorf("line_width must be > 0, got %g", rc.LineWidth)
	}
	if rc.VertexRadius < 0 {
		return nil, fmt.Errorf("vertex_radius must be >= 0, got %g", rc.VertexRadius)
	}
	if rc.Thumbnail < 0 {
		return nil, fmt.Errorf("thumbnail must be >= 0, got %d", rc.Thumbnail)
	}
	return []render.Option{
		render.WithPadding(rc.Padding),
		render.WithEdgeStyle(edgeColor, rc.LineWidth),
		render.WithVertexStyle(vertexColor, rc.VertexRadius),
		render.WithLabels(rc.Labels),
	}, nil
}

// decodeImage reads any registered image format.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("background %s: %w", path, err)
	}
	return img, nil
}

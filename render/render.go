// Package render paints mazes into raster images, one pixel per cell.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	WallColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	PassageColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SolutionColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Grid is the read-only view of a maze the renderer needs.
// *maze.Maze and *maze.Grid satisfy it.
type Grid interface {
	Width() int
	Height() int
	IsWall(x, y int) bool
}

// Sink receives pixels. *image.RGBA satisfies it.
type Sink interface {
	Set(x, y int, c color.Color)
}

// Paint writes one pixel per cell of g into dst, then overrides every solution cell.
func Paint(dst Sink, g Grid, solution []maze.Coordinate) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsWall(x, y) {
				dst.Set(x, y, WallColor)
			} else {
				dst.Set(x, y, PassageColor)
			}
		}
	}

	for _, c := range solution {
		dst.Set(c.X, c.Y, SolutionColor)
	}
}

// Image renders g, and the solution when non-empty, into a new image the size of the grid.
func Image(g Grid, solution []maze.Coordinate) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	Paint(img, g, solution)
	return img
}

// EncodePNG writes the rendered maze to w as a PNG.
func EncodePNG(w io.Writer, g Grid, solution []maze.Coordinate) error {
	if err := png.Encode(w, Image(g, solution)); err != nil {
		return fmt.Errorf("encoding maze png: %w", err)
	}
	return nil
}

// PNG returns the rendered maze as PNG bytes.
func PNG(g Grid, solution []maze.Coordinate) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, g, solution); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG renders the maze into the file at path, replacing it if it exists.
func SavePNG(path string, g Grid, solution []maze.Coordinate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := EncodePNG(f, g, solution); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

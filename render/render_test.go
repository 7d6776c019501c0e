package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firstChoice struct{}

func (firstChoice) Intn(int) int { return 0 }

func newScenarioMaze(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.New(5, 5)
	require.NoError(t, err)
	_, err = m.Generate(maze.NewGenerator(maze.WithRand(firstChoice{})))
	require.NoError(t, err)
	return m
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestImage(t *testing.T) {
	m := newScenarioMaze(t)

	t.Run("walls and passages", func(t *testing.T) {
		img := Image(m, nil)
		assert.Equal(t, 5, img.Bounds().Dx())
		assert.Equal(t, 5, img.Bounds().Dy())
		assert.Equal(t, PassageColor, rgba(img.At(0, 0)))
		assert.Equal(t, WallColor, rgba(img.At(1, 1)))
		assert.Equal(t, PassageColor, rgba(img.At(4, 4)))
	})

	t.Run("solution overrides the base color", func(t *testing.T) {
		path := m.Solve()
		require.NotNil(t, path)

		img := Image(m, path)
		for _, c := range path {
			assert.Equal(t, SolutionColor, rgba(img.At(c.X, c.Y)), "%v", c)
		}
		assert.NotEqual(t, WallColor, rgba(img.At(0, 0)))
		assert.NotEqual(t, WallColor, rgba(img.At(4, 4)))
		assert.Equal(t, PassageColor, rgba(img.At(0, 2)), "cells off the path keep their color")
	})
}

// recordingSink captures every Set call.
type recordingSink struct {
	calls int
	last  map[maze.Coordinate]color.Color
}

func (s *recordingSink) Set(x, y int, c color.Color) {
	s.calls++
	s.last[maze.Coordinate{X: x, Y: y}] = c
}

func TestPaintSink(t *testing.T) {
	g, err := maze.NewGrid(3, 2)
	require.NoError(t, err)
	g.SetPassage(0, 0)
	g.SetPassage(1, 0)

	sink := &recordingSink{last: map[maze.Coordinate]color.Color{}}
	Paint(sink, g, []maze.Coordinate{{X: 1, Y: 0}})

	assert.Equal(t, 7, sink.calls, "six cells plus one solution override")
	assert.Equal(t, PassageColor, sink.last[maze.Coordinate{X: 0, Y: 0}])
	assert.Equal(t, SolutionColor, sink.last[maze.Coordinate{X: 1, Y: 0}])
	assert.Equal(t, WallColor, sink.last[maze.Coordinate{X: 2, Y: 1}])
}

func TestPNGRoundTrip(t *testing.T) {
	m := newScenarioMaze(t)

	data, err := PNG(m, m.Solve())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
	assert.Equal(t, SolutionColor, rgba(img.At(4, 4)))
}

func TestSavePNG(t *testing.T) {
	m := newScenarioMaze(t)

	t.Run("writes the file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "maze.png")
		require.NoError(t, SavePNG(out, m, nil))

		f, err := os.Open(out)
		require.NoError(t, err)
		defer f.Close()
		img, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, PassageColor, rgba(img.At(0, 0)))
	})

	t.Run("reports write failures", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "missing", "maze.png")
		assert.Error(t, SavePNG(out, m, nil))
	})
}

// Package termview renders an arix scene into a terminal with tcell.
package termview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/phanxgames/arix"
)

// cellAspect is the height-to-width ratio of a terminal cell.
const cellAspect = 2.0

// glyphs per category, nearest-first wins per cell.
var glyphs = map[arix.Category]rune{
	arix.CategoryNeedle:   '^',
	arix.CategoryOrnament: 'o',
	arix.CategoryGift:     '#',
	arix.CategoryStar:     '+',
	arix.CategoryTopStar:  '*',
	arix.CategorySnow:     '.',
	arix.CategorySky:      '\'',
}

// skyFade dims background stars so they sit behind the tree.
const skyFade = 0.35

// Cell is one rasterized character.
type Cell struct {
	Rune  rune
	Color arix.Color
	Depth float64
}

// Canvas is a depth-buffered character grid. It implements arix.FrameSink:
// every submitted particle is projected to one cell and the nearest wins.
type Canvas struct {
	w, h   int
	cells  []Cell
	colors map[arix.Category][]arix.Color

	vp     mgl64.Mat4
	offset mgl64.Vec3
	bg     arix.Color
}

// NewCanvas creates a w x h canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		colors: make(map[arix.Category][]arix.Color),
		bg:     arix.BackgroundDark,
	}
	c.Resize(w, h)
	return c
}

// Size returns the grid dimensions.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Resize reallocates the grid. Contents are cleared.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.w, c.h = w, h
	c.cells = make([]Cell, w*h)
	c.clear()
}

func (c *Canvas) clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Color: c.bg, Depth: math.Inf(1)}
	}
}

// Begin clears the grid and captures the camera and offset of scene for the
// submits that follow.
func (c *Canvas) Begin(scene *arix.Scene) {
	c.clear()
	aspect := 1.0
	if c.h > 0 {
		aspect = float64(c.w) / (float64(c.h) * cellAspect)
	}
	c.vp = scene.Camera().ViewProjection(aspect)
	c.offset = scene.Offset()
}

// InitGroup implements arix.FrameSink.
func (c *Canvas) InitGroup(cat arix.Category, colors []arix.Color) {
	c.colors[cat] = colors
}

// SubmitGroup implements arix.FrameSink.
func (c *Canvas) SubmitGroup(cat arix.Category, transforms []arix.Transform) {
	colors := c.colors[cat]
	glyph := glyphs[cat]
	offset := c.offset
	fade := 1.0
	switch cat {
	case arix.CategorySnow:
		offset = mgl64.Vec3{}
	case arix.CategorySky:
		offset = mgl64.Vec3{}
		fade = skyFade
	}
	for i := range transforms {
		p := transforms[i].Position.Add(offset)
		sx, sy, depth, ok := arix.Project(c.vp, p, float64(c.w), float64(c.h))
		if !ok {
			continue
		}
		x, y := int(math.Floor(sx)), int(math.Floor(sy))
		if x < 0 || y < 0 || x >= c.w || y >= c.h {
			continue
		}
		cell := &c.cells[y*c.w+x]
		if depth >= cell.Depth {
			continue
		}
		col := arix.ColorWhite
		if i < len(colors) {
			col = colors[i]
		}
		cell.Rune = glyph
		cell.Color = c.bg.Lerp(col, col.A*fade)
		cell.Depth = depth
	}
}

// At returns the cell at (x, y).
func (c *Canvas) At(x, y int) Cell {
	return c.cells[y*c.w+x]
}

// Filled returns the number of cells holding a particle.
func (c *Canvas) Filled() int {
	n := 0
	for i := range c.cells {
		if !math.IsInf(c.cells[i].Depth, 1) {
			n++
		}
	}
	return n
}

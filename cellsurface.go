package gridcanvas

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Default physical pixel extents of one character cell. A terminal cell
// is roughly twice as tall as it is wide.
const (
	DefaultCellPxWidth  = 10.0
	DefaultCellPxHeight = 20.0
)

// CellSurface is a Surface that quantizes logical pixel geometry onto a
// character-cell raster. It is the engine's shippable terminal backend:
// rectangles become runs of background color, strokes become box-drawing
// borders (merged at shared edges), and text measurement is rune-width
// based, so the same engine drives a browser-style canvas or a terminal
// without knowing which.
type CellSurface struct {
	buf   *CellBuffer
	cellW float64 // physical px per cell, horizontal
	cellH float64 // physical px per cell, vertical
	scale float64
}

// NewCellSurface creates a surface of cols x rows character cells with
// the default cell pixel metrics.
func NewCellSurface(cols, rows int) *CellSurface {
	return &CellSurface{
		buf:   NewCellBuffer(cols, rows),
		cellW: DefaultCellPxWidth,
		cellH: DefaultCellPxHeight,
		scale: 1,
	}
}

// Buffer exposes the backing raster for presenting (see Screen) and for
// assertions in tests.
func (s *CellSurface) Buffer() *CellBuffer {
	return s.buf
}

// CellMetrics returns the physical pixel extents of one cell.
func (s *CellSurface) CellMetrics() (w, h float64) {
	return s.cellW, s.cellH
}

// PixelSize returns the logical pixel dimensions the surface covers at
// the current transform, for feeding Engine.Resize.
func (s *CellSurface) PixelSize() (width, height float64) {
	return float64(s.buf.Width()) * s.cellW / s.scale, float64(s.buf.Height()) * s.cellH / s.scale
}

// SetSize implements Surface. Physical pixels are quantized down to
// whole cells.
func (s *CellSurface) SetSize(width, height int) {
	cols := int(float64(width) / s.cellW)
	rows := int(float64(height) / s.cellH)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.buf.Resize(cols, rows)
}

// Size implements Surface.
func (s *CellSurface) Size() (int, int) {
	return int(float64(s.buf.Width()) * s.cellW), int(float64(s.buf.Height()) * s.cellH)
}

// ResetTransform implements Surface.
func (s *CellSurface) ResetTransform() {
	s.scale = 1
}

// Scale implements Surface.
func (s *CellSurface) Scale(factor float64) {
	if factor > 0 {
		s.scale *= factor
	}
}

// col and row quantize logical pixel coordinates to cell indices.
func (s *CellSurface) col(x float64) int {
	return int(math.Round(x * s.scale / s.cellW))
}

func (s *CellSurface) row(y float64) int {
	return int(math.Round(y * s.scale / s.cellH))
}

// Clear implements Surface.
func (s *CellSurface) Clear(x, y, width, height float64) {
	c0, r0 := s.col(x), s.row(y)
	c1, r1 := s.col(x+width), s.row(y+height)
	s.buf.FillRect(c0, r0, c1-c0, r1-r0, EmptyBufferCell())
}

// FillRect implements Surface. Only backgrounds are painted; runes
// already placed in the region (a neighbor's border) survive, which is
// what lets adjacent cell strokes keep their junctions.
func (s *CellSurface) FillRect(x, y, width, height float64, style Style) {
	c0, r0 := s.col(x), s.row(y)
	c1, r1 := s.col(x+width), s.row(y+height)
	s.buf.SetBG(c0, r0, c1-c0, r1-r0, style.Fill)
}

// StrokeRect implements Surface, drawing the rectangle perimeter with
// box-drawing runes. Borders merge where rectangles share edges.
func (s *CellSurface) StrokeRect(x, y, width, height float64, style Style) {
	c0, r0 := s.col(x), s.row(y)
	c1, r1 := s.col(x+width), s.row(y+height)
	if c1 <= c0 || r1 <= r0 {
		return
	}

	set := func(cx, cy int, r rune) {
		bg := s.buf.Get(cx, cy).BG
		s.buf.Set(cx, cy, BufferCell{Rune: r, FG: style.Stroke, BG: bg})
	}

	set(c0, r0, BoxTopLeft)
	set(c1, r0, BoxTopRight)
	set(c0, r1, BoxBottomLeft)
	set(c1, r1, BoxBottomRight)
	for cx := c0 + 1; cx < c1; cx++ {
		set(cx, r0, BoxHorizontal)
		set(cx, r1, BoxHorizontal)
	}
	for cy := r0 + 1; cy < r1; cy++ {
		set(c0, cy, BoxVertical)
		set(c1, cy, BoxVertical)
	}
}

// FillText implements Surface. Wide runes occupy two cells, the second
// marked with a zero-rune placeholder the presenter skips.
func (s *CellSurface) FillText(text string, x, y float64, style Style) {
	cx, cy := s.col(x), s.row(y)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if !s.buf.InBounds(cx, cy) {
			break
		}
		bg := s.buf.Get(cx, cy).BG
		s.buf.Set(cx, cy, BufferCell{Rune: r, FG: style.Fill, BG: bg, Bold: style.Bold})
		if w == 2 && s.buf.InBounds(cx+1, cy) {
			s.buf.Set(cx+1, cy, BufferCell{Rune: 0, BG: bg})
		}
		cx += w
	}
}

// MeasureText implements Surface: rune-width cells converted back to
// logical pixels at the current transform.
func (s *CellSurface) MeasureText(text string) float64 {
	return float64(runewidth.StringWidth(text)) * s.cellW / s.scale
}

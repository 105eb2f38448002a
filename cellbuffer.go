package gridcanvas

// BufferCell is one character cell in a CellBuffer.
type BufferCell struct {
	Rune rune
	FG   Color
	BG   Color
	Bold bool
}

// EmptyBufferCell returns a space with unset colors.
func EmptyBufferCell() BufferCell {
	return BufferCell{Rune: ' '}
}

// CellBuffer is a 2D grid of character cells. It is the raster behind
// CellSurface and the unit of diffing in Screen.
type CellBuffer struct {
	cells  []BufferCell
	width  int
	height int
}

// NewCellBuffer creates a buffer with the given dimensions.
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{width: width, height: height}
	b.cells = make([]BufferCell, width*height)
	b.Clear()
	return b
}

// Width returns the buffer width.
func (b *CellBuffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *CellBuffer) Height() int { return b.height }

// InBounds returns true if the given coordinates are within the buffer.
func (b *CellBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *CellBuffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates, or an empty cell when
// out of bounds.
func (b *CellBuffer) Get(x, y int) BufferCell {
	if !b.InBounds(x, y) {
		return EmptyBufferCell()
	}
	return b.cells[b.index(x, y)]
}

// Set writes the cell at the given coordinates. Writes outside the
// buffer are dropped. Border runes merge with existing border runes, so
// the shared edges of adjacent grid cells join into proper tee and cross
// junctions instead of overwriting each other.
func (b *CellBuffer) Set(x, y int, c BufferCell) {
	if !b.InBounds(x, y) {
		return
	}
	idx := b.index(x, y)
	if merged, ok := mergeBorders(b.cells[idx].Rune, c.Rune); ok {
		c.Rune = merged
	}
	b.cells[idx] = c
}

// Fill fills the entire buffer with the given cell.
func (b *CellBuffer) Fill(c BufferCell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear resets the buffer to empty cells.
func (b *CellBuffer) Clear() {
	b.Fill(EmptyBufferCell())
}

// FillRect fills a rectangular region with the given cell.
func (b *CellBuffer) FillRect(x, y, width, height int, c BufferCell) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, c)
		}
	}
}

// SetBG repaints only the background of a rectangular region, keeping
// runes and foreground in place.
func (b *CellBuffer) SetBG(x, y, width, height int, bg Color) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			if !b.InBounds(x+dx, y+dy) {
				continue
			}
			b.cells[b.index(x+dx, y+dy)].BG = bg
		}
	}
}

// WriteString writes a string starting at the given coordinates,
// stopping at maxWidth cells. Returns the number of cells written.
func (b *CellBuffer) WriteString(x, y int, s string, fg Color, bold bool, maxWidth int) int {
	written := 0
	for _, r := range s {
		if written >= maxWidth || !b.InBounds(x, y) {
			break
		}
		bg := b.Get(x, y).BG
		b.Set(x, y, BufferCell{Rune: r, FG: fg, BG: bg, Bold: bold})
		x++
		written++
	}
	return written
}

// Resize resizes the buffer, preserving content where it fits.
func (b *CellBuffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	cells := make([]BufferCell, width*height)
	for i := range cells {
		cells[i] = EmptyBufferCell()
	}
	minW := min(width, b.width)
	minH := min(height, b.height)
	for y := 0; y < minH; y++ {
		for x := 0; x < minW; x++ {
			cells[y*width+x] = b.cells[y*b.width+x]
		}
	}
	b.cells = cells
	b.width = width
	b.height = height
}

// String returns the buffer runes as newline-separated rows, trailing
// spaces trimmed per row. Used in tests and debugging.
func (b *CellBuffer) String() string {
	var out []byte
	for y := 0; y < b.height; y++ {
		var line []byte
		lastNonSpace := -1
		for x := 0; x < b.width; x++ {
			r := b.Get(x, y).Rune
			if r == 0 {
				r = ' '
			}
			line = append(line, string(r)...)
			if r != ' ' {
				lastNonSpace = len(line)
			}
		}
		if lastNonSpace >= 0 {
			out = append(out, line[:lastNonSpace]...)
		}
		if y < b.height-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Box drawing characters used for cell borders.
const (
	BoxHorizontal  = '─'
	BoxVertical    = '│'
	BoxTopLeft     = '┌'
	BoxTopRight    = '┐'
	BoxBottomLeft  = '└'
	BoxBottomRight = '┘'
	BoxTeeDown     = '┬'
	BoxTeeUp       = '┴'
	BoxTeeRight    = '├'
	BoxTeeLeft     = '┤'
	BoxCross       = '┼'
)

// borderEdges maps border runes to the edges they connect.
// Bits: 1=top, 2=right, 4=bottom, 8=left.
var borderEdges = map[rune]uint8{
	BoxHorizontal:  0b1010,
	BoxVertical:    0b0101,
	BoxTopLeft:     0b0110,
	BoxTopRight:    0b1100,
	BoxBottomLeft:  0b0011,
	BoxBottomRight: 0b1001,
	BoxTeeDown:     0b1110,
	BoxTeeUp:       0b1011,
	BoxTeeRight:    0b0111,
	BoxTeeLeft:     0b1101,
	BoxCross:       0b1111,
}

// edgesToBorder maps edge combinations back to border runes.
var edgesToBorder = map[uint8]rune{
	0b1010: BoxHorizontal,
	0b0101: BoxVertical,
	0b0110: BoxTopLeft,
	0b1100: BoxTopRight,
	0b0011: BoxBottomLeft,
	0b1001: BoxBottomRight,
	0b1110: BoxTeeDown,
	0b1011: BoxTeeUp,
	0b0111: BoxTeeRight,
	0b1101: BoxTeeLeft,
	0b1111: BoxCross,
}

// mergeBorders combines two border runes into one. Returns the merged
// rune and true when both were border runes, otherwise false.
func mergeBorders(existing, incoming rune) (rune, bool) {
	existingEdges, ok1 := borderEdges[existing]
	incomingEdges, ok2 := borderEdges[incoming]
	if !ok1 || !ok2 {
		return incoming, false
	}
	if merged, ok := edgesToBorder[existingEdges|incomingEdges]; ok {
		return merged, true
	}
	return incoming, false
}

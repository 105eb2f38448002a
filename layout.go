package gridcanvas

import "math"

// Layout is the coordinate model shared by the renderer and the hit
// tester. All methods are pure: same inputs, same answers, no side
// effects. Any divergence between drawing and hit testing is a bug here,
// not in the callers.
type Layout struct {
	Columns []GridColumn
	Widths  map[string]float64 // per-key overrides, wins over GridColumn.Width
}

// ColumnWidth resolves the effective width of the column at index i.
// Order of precedence: override map, then the column's own width, then
// DefaultColumnWidth. Non-positive values always fall back to the default.
func (l Layout) ColumnWidth(i int) float64 {
	if i < 0 || i >= len(l.Columns) {
		return DefaultColumnWidth
	}
	col := l.Columns[i]
	if w, ok := l.Widths[col.Key]; ok && w > 0 {
		return w
	}
	if col.Width > 0 {
		return col.Width
	}
	return DefaultColumnWidth
}

// ColumnX returns the viewport-space x of the left edge of column i:
// the id column plus every preceding column, minus the horizontal scroll.
func (l Layout) ColumnX(i int, scrollX float64) float64 {
	x := IDColumnWidth
	for c := 0; c < i && c < len(l.Columns); c++ {
		x += l.ColumnWidth(c)
	}
	return x - scrollX
}

// RowY returns the viewport-space y of the top edge of row r.
func (l Layout) RowY(r int, scrollY float64) float64 {
	return HeaderHeight + float64(r)*RowHeight - scrollY
}

// ContentWidth returns the total width of the id column plus all data
// columns, independent of scroll.
func (l Layout) ContentWidth() float64 {
	w := IDColumnWidth
	for i := range l.Columns {
		w += l.ColumnWidth(i)
	}
	return w
}

// ContentHeight returns the header plus every row.
func (l Layout) ContentHeight(rowCount int) float64 {
	return HeaderHeight + float64(rowCount)*RowHeight
}

// MaxScroll returns the largest valid scroll offsets for the given data
// and viewport. Never negative: content smaller than the viewport pins
// the offset to zero.
func (l Layout) MaxScroll(rowCount int, viewportWidth, viewportHeight float64) (maxX, maxY float64) {
	maxX = math.Max(0, l.ContentWidth()-viewportWidth)
	maxY = math.Max(0, l.ContentHeight(rowCount)-viewportHeight)
	return
}

// ClampScroll clamps an offset into [0, max].
func ClampScroll(offset, max float64) float64 {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

// spanVisible reports whether [start, start+size] intersects [0, extent].
func spanVisible(start, size, extent float64) bool {
	return start+size >= 0 && start <= extent
}

// RowVisible reports whether row r intersects the viewport.
func (l Layout) RowVisible(r int, vp ViewportState) bool {
	return spanVisible(l.RowY(r, vp.ScrollY), RowHeight, vp.Height)
}

// ColumnVisible reports whether data column i intersects the viewport.
func (l Layout) ColumnVisible(i int, vp ViewportState) bool {
	return spanVisible(l.ColumnX(i, vp.ScrollX), l.ColumnWidth(i), vp.Width)
}

// VisibleRowRange returns the half-open range [start, end) of rows that
// intersect the viewport. The scan starts at the first candidate row and
// stops at the first row below the viewport, so the cost is O(visible),
// not O(total).
func (l Layout) VisibleRowRange(rowCount int, vp ViewportState) (start, end int) {
	start = int(math.Floor((vp.ScrollY - HeaderHeight) / RowHeight))
	if start < 0 {
		start = 0
	}
	for start < rowCount && l.RowY(start, vp.ScrollY)+RowHeight < 0 {
		start++
	}
	end = start
	for end < rowCount && l.RowY(end, vp.ScrollY) <= vp.Height {
		end++
	}
	return start, end
}

// VisibleColumnRange returns the half-open range [start, end) of data
// columns that intersect the viewport.
func (l Layout) VisibleColumnRange(vp ViewportState) (start, end int) {
	x := IDColumnWidth - vp.ScrollX
	start = 0
	for start < len(l.Columns) && x+l.ColumnWidth(start) < 0 {
		x += l.ColumnWidth(start)
		start++
	}
	end = start
	for end < len(l.Columns) && x <= vp.Width {
		x += l.ColumnWidth(end)
		end++
	}
	return start, end
}

// ScrollbarThumb returns the track-relative position and size of a
// vertical scrollbar thumb for hosts that draw one. trackSize is the
// scrollbar track length in pixels.
func (l Layout) ScrollbarThumb(rowCount int, vp ViewportState, trackSize float64) (pos, size float64) {
	content := l.ContentHeight(rowCount)
	if content <= vp.Height || content <= 0 || trackSize <= 0 {
		return 0, trackSize
	}
	size = math.Max(1, trackSize*vp.Height/content)
	maxScroll := content - vp.Height
	pos = (trackSize - size) * ClampScroll(vp.ScrollY, maxScroll) / maxScroll
	return pos, size
}

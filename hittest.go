package gridcanvas

import "math"

// HitOptions controls CellAtOpts.
type HitOptions struct {
	// IncludeHeader reports hits in the header band as addresses with
	// RowIndex HeaderRow. By default header coordinates miss.
	IncludeHeader bool
}

// HeaderRow is the RowIndex reported for header hits when
// HitOptions.IncludeHeader is set.
const HeaderRow = -1

// CellAt resolves a viewport-space pointer position to a logical cell.
// The second return is false for positions above the header boundary,
// below the last row, or past the last column. An empty ColKey on a hit
// means the id pseudo-column. Out-of-range input never panics; callers
// check the boolean.
func (e *Engine) CellAt(x, y float64) (CellAddress, bool) {
	return e.CellAtOpts(x, y, HitOptions{})
}

// CellAtOpts is CellAt with header hits opted in. It is the exact inverse
// of the renderer's coordinate model: scroll offsets are added back
// before comparing against the cumulative column boundaries.
func (e *Engine) CellAtOpts(x, y float64, opts HitOptions) (CellAddress, bool) {
	if e.disposed {
		return CellAddress{}, false
	}

	rowIndex := 0
	if y < HeaderHeight {
		if !opts.IncludeHeader || y < 0 {
			return CellAddress{}, false
		}
		rowIndex = HeaderRow
	} else {
		rowIndex = int(math.Floor((y - HeaderHeight + e.viewport.ScrollY) / RowHeight))
		if rowIndex < 0 || rowIndex >= len(e.rows) {
			return CellAddress{}, false
		}
	}

	colKey, ok := e.columnKeyAt(x)
	if !ok {
		return CellAddress{}, false
	}
	return CellAddress{RowIndex: rowIndex, ColKey: colKey}, true
}

// columnKeyAt maps a viewport-space x to a column key ("" for the id
// column) by walking the cumulative boundaries in content space.
func (e *Engine) columnKeyAt(x float64) (string, bool) {
	contentX := x + e.viewport.ScrollX
	if contentX < 0 {
		return "", false
	}
	if contentX < IDColumnWidth {
		return "", true
	}

	lay := e.layout()
	boundary := IDColumnWidth
	for i := range lay.Columns {
		boundary += lay.ColumnWidth(i)
		if contentX < boundary {
			return lay.Columns[i].Key, true
		}
	}
	return "", false
}

// CellRect returns the viewport-space rectangle the renderer paints for a
// cell, scroll already subtracted, so a DOM-style overlay editor placed
// at this rectangle lines up pixel-for-pixel with the drawn cell. ColKey
// "" addresses the id column; HeaderRow addresses the header band. The
// second return is false for out-of-range rows or unknown column keys.
//
// For any visible cell, CellAt of the rectangle's center round-trips to
// the same address.
func (e *Engine) CellRect(rowIndex int, colKey string) (CellRect, bool) {
	if e.disposed {
		return CellRect{}, false
	}
	if rowIndex != HeaderRow && (rowIndex < 0 || rowIndex >= len(e.rows)) {
		return CellRect{}, false
	}

	y := HeaderHeight + float64(rowIndex)*RowHeight - e.viewport.ScrollY
	height := RowHeight
	if rowIndex == HeaderRow {
		y = 0
		height = HeaderHeight
	}

	lay := e.layout()
	if colKey == "" {
		return CellRect{X: -e.viewport.ScrollX, Y: y, Width: IDColumnWidth, Height: height}, true
	}
	x := IDColumnWidth - e.viewport.ScrollX
	for i := range lay.Columns {
		w := lay.ColumnWidth(i)
		if lay.Columns[i].Key == colKey {
			return CellRect{X: x, Y: y, Width: w, Height: height}, true
		}
		x += w
	}
	return CellRect{}, false
}

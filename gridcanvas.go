// Package gridcanvas provides a virtualized grid rendering engine.
//
// The engine draws a spreadsheet-like table of arbitrary size onto a
// drawing Surface, painting only the rows and columns that intersect the
// current viewport. It also answers the inverse question: which logical
// cell sits under a pointer coordinate, and what screen rectangle a given
// cell occupies, so a host can position an overlay editor pixel-for-pixel
// on top of a cell.
//
// The engine owns no event loop and emits no callbacks. The host feeds it
// columns, rows and viewport changes, asks it to render, and queries it
// from its own pointer handlers.
package gridcanvas

// Engine-wide metrics. Rows and headers have a single fixed height; the
// id column is a fixed-width pseudo-column pinned to the left edge.
const (
	RowHeight          = 40.0
	HeaderHeight       = 40.0
	IDColumnWidth      = 120.0
	DefaultColumnWidth = 150.0
	CellPadding        = 8.0
)

// GridColumn describes one data column. Key must be unique within a
// column set. A non-positive Width is replaced by DefaultColumnWidth.
type GridColumn struct {
	Key         string
	Width       float64
	HeaderLabel string
}

// GridRow is the engine's entire view of a row. Rows arrive already
// filtered and sorted; the engine never looks at them beyond this.
type GridRow interface {
	// CellValue returns the already-formatted display text for a column.
	CellValue(columnKey string) string

	// RowID returns the stable identifier shown in the id column.
	RowID() string
}

// CellAddress identifies a logical cell. An empty ColKey means the id
// pseudo-column.
type CellAddress struct {
	RowIndex int
	ColKey   string
}

// CellRect is an axis-aligned rectangle in viewport space (scroll already
// subtracted), matching the rectangle the renderer paints for the cell.
type CellRect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r CellRect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// ViewportState is the scroll and size snapshot the engine renders
// against. It is replaced through SetScroll and Resize, never mutated
// piecemeal from outside.
type ViewportState struct {
	ScrollX, ScrollY float64
	Width, Height    float64
	DevicePixelRatio float64
}

// MapRow adapts a plain map plus an id to the GridRow interface. Hosts
// with richer row types implement GridRow directly.
type MapRow struct {
	ID     string
	Values map[string]string
}

// CellValue implements GridRow.
func (m MapRow) CellValue(columnKey string) string {
	return m.Values[columnKey]
}

// RowID implements GridRow.
func (m MapRow) RowID() string {
	return m.ID
}

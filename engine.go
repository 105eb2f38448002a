package gridcanvas

// Options configures a new Engine. The zero value is usable: dark theme,
// full-frame redraw, no tile cache.
type Options struct {
	// Theme selects the paint styles. Nil means ThemeDark.
	Theme *Theme

	// TileCache enables the incremental-redraw tile cache. Full-frame
	// redraw stays the primary path; tiles only memoize per-cell layout
	// work between frames.
	TileCache bool

	// MaxTiles bounds the tile cache. Zero means DefaultMaxTiles.
	MaxTiles int
}

// Engine renders a column/row snapshot onto a Surface and answers
// hit-test and rect queries against the same coordinate model.
//
// An Engine is Ready after New succeeds, accepts UpdateData, SetScroll,
// SetColumnWidths and Resize any number of times, and is Disposed once
// Dispose is called. It is single-threaded: one exclusive owner drives it
// from the host's event loop.
type Engine struct {
	surface Surface
	theme   Theme

	columns []GridColumn
	rows    []GridRow
	widths  map[string]float64

	viewport ViewportState
	selected *CellAddress

	tiles *TileCache

	pendingFrame bool
	disposed     bool
}

// New creates an engine drawing onto surface. It fails with
// ErrRenderContextUnavailable when the surface is missing, so a host can
// never end up holding a silently degraded no-op engine.
func New(surface Surface, opts Options) (*Engine, error) {
	if surface == nil {
		return nil, ErrRenderContextUnavailable
	}

	theme := ThemeDark
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	e := &Engine{
		surface:  surface,
		theme:    theme,
		viewport: ViewportState{DevicePixelRatio: 1},
	}
	if opts.TileCache {
		e.tiles = NewTileCache(opts.MaxTiles)
	}
	return e, nil
}

// layout returns the coordinate model for the current snapshot.
func (e *Engine) layout() Layout {
	return Layout{Columns: e.columns, Widths: e.widths}
}

// UpdateData replaces the column and row snapshot wholesale. There is no
// incremental diffing: the arrays are treated as fresh on every call.
func (e *Engine) UpdateData(columns []GridColumn, rows []GridRow) error {
	if e.disposed {
		return ErrEngineDisposed
	}
	e.columns = columns
	e.rows = rows
	e.clearTiles()
	e.clampScroll()
	e.pendingFrame = true
	return nil
}

// SetColumnWidths replaces the width override map. Non-positive widths
// are recovered at lookup time by the documented default, never treated
// as fatal.
func (e *Engine) SetColumnWidths(widths map[string]float64) error {
	if e.disposed {
		return ErrEngineDisposed
	}
	e.widths = widths
	e.clearTiles()
	e.clampScroll()
	e.pendingFrame = true
	return nil
}

// SetScroll moves the viewport. Offsets are clamped into [0, maxScroll]
// and a frame is requested; the host renders at most once per animation
// frame via BeginFrame.
func (e *Engine) SetScroll(x, y float64) error {
	if e.disposed {
		return ErrEngineDisposed
	}
	e.viewport.ScrollX = x
	e.viewport.ScrollY = y
	e.clampScroll()
	e.pendingFrame = true
	return nil
}

// ScrollBy adjusts the viewport by a delta, with the same clamping as
// SetScroll.
func (e *Engine) ScrollBy(dx, dy float64) error {
	return e.SetScroll(e.viewport.ScrollX+dx, e.viewport.ScrollY+dy)
}

// Resize reacts to a container size or density change: the backing store
// is rebuilt at logical size times devicePixelRatio, the transform is
// re-applied, derived caches are dropped, and scroll offsets are
// re-clamped. Content that now fits entirely snaps back to offset zero so
// no blank region trails the last row.
func (e *Engine) Resize(width, height, devicePixelRatio float64) error {
	if e.disposed {
		return ErrEngineDisposed
	}
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	e.viewport.Width = width
	e.viewport.Height = height
	e.viewport.DevicePixelRatio = devicePixelRatio

	// Backing-store resize leaves pixel contents undefined, so every
	// cached tile is stale by construction.
	e.surface.SetSize(int(width*devicePixelRatio), int(height*devicePixelRatio))
	e.surface.ResetTransform()
	e.surface.Scale(devicePixelRatio)
	e.clearTiles()
	e.clampScroll()
	e.pendingFrame = true
	return nil
}

// clampScroll forces the offsets into the valid range for the current
// content and viewport.
func (e *Engine) clampScroll() {
	maxX, maxY := e.layout().MaxScroll(len(e.rows), e.viewport.Width, e.viewport.Height)
	e.viewport.ScrollX = ClampScroll(e.viewport.ScrollX, maxX)
	e.viewport.ScrollY = ClampScroll(e.viewport.ScrollY, maxY)
}

// Viewport returns the current snapshot.
func (e *Engine) Viewport() ViewportState {
	return e.viewport
}

// RowCount returns the number of rows in the current snapshot.
func (e *Engine) RowCount() int {
	return len(e.rows)
}

// Columns returns the current column snapshot.
func (e *Engine) Columns() []GridColumn {
	return e.columns
}

// SetSelection marks a cell as selected; the renderer paints it with the
// theme's selected background. Out-of-range addresses clear the selection.
func (e *Engine) SetSelection(addr CellAddress) {
	if e.disposed {
		return
	}
	if addr.RowIndex < 0 || addr.RowIndex >= len(e.rows) {
		e.selected = nil
	} else {
		a := addr
		e.selected = &a
	}
	e.pendingFrame = true
}

// ClearSelection removes any selection.
func (e *Engine) ClearSelection() {
	e.selected = nil
	e.pendingFrame = true
}

// Selection returns the selected cell, if any.
func (e *Engine) Selection() (CellAddress, bool) {
	if e.selected == nil {
		return CellAddress{}, false
	}
	return *e.selected, true
}

// NeedsFrame reports whether a redraw has been requested since the last
// BeginFrame.
func (e *Engine) NeedsFrame() bool {
	return e.pendingFrame
}

// BeginFrame clears the pending-redraw flag and reports whether a frame
// was pending. High-frequency scroll input sets the flag many times per
// frame; the host calls BeginFrame once per animation tick and renders
// only when it returns true, so momentum scrolling coalesces to one
// redraw per frame.
func (e *Engine) BeginFrame() bool {
	pending := e.pendingFrame
	e.pendingFrame = false
	return pending
}

// TileCount returns the number of cached tiles. Zero when the cache is
// disabled or freshly invalidated.
func (e *Engine) TileCount() int {
	if e.tiles == nil {
		return 0
	}
	return e.tiles.Len()
}

func (e *Engine) clearTiles() {
	if e.tiles != nil {
		e.tiles.Clear()
	}
}

// Disposed reports whether Dispose has been called.
func (e *Engine) Disposed() bool {
	return e.disposed
}

// Dispose tears the engine down. No operation is valid afterwards:
// mutators return ErrEngineDisposed and queries return zero values.
func (e *Engine) Dispose() {
	e.disposed = true
	e.columns = nil
	e.rows = nil
	e.widths = nil
	e.selected = nil
	e.clearTiles()
	e.tiles = nil
	e.pendingFrame = false
}

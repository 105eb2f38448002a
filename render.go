package gridcanvas

// RenderOptions controls a single Render pass.
type RenderOptions struct {
	// SkipHeader omits the header row. Hosts with a sticky header on a
	// separately positioned surface render the body with SkipHeader and
	// the header surface with HeaderOnly.
	SkipHeader bool

	// HeaderOnly paints just the header row and returns.
	HeaderOnly bool
}

// Render performs one synchronous, CPU-only frame: reset the transform,
// scale by the device pixel ratio, clear the logical viewport, then paint
// header and visible cells. Work is O(visible cells) regardless of
// dataset size. After successful construction Render does not fail on
// geometry: every rectangle is clamped to non-negative extents before it
// reaches the surface.
func (e *Engine) Render(opts RenderOptions) error {
	if e.disposed {
		return ErrEngineDisposed
	}

	vp := e.viewport
	lay := e.layout()
	dpr := vp.DevicePixelRatio
	if dpr <= 0 {
		dpr = 1
	}

	e.surface.ResetTransform()
	e.surface.Scale(dpr)
	e.surface.Clear(0, 0, vp.Width, vp.Height)

	if !opts.SkipHeader {
		e.renderHeader(lay, vp)
	}
	if opts.HeaderOnly {
		return nil
	}

	if e.tiles != nil {
		e.renderTiled(lay, vp)
	} else {
		e.renderDirect(lay, vp)
	}
	return nil
}

// renderHeader paints the id-column header and every data-column header
// that intersects the viewport.
func (e *Engine) renderHeader(lay Layout, vp ViewportState) {
	idX := -vp.ScrollX
	if spanVisible(idX, IDColumnWidth, vp.Width) {
		e.paintCell(CellRect{X: idX, Y: 0, Width: IDColumnWidth, Height: HeaderHeight},
			"ID", e.theme.HeaderBG, e.theme.HeaderText)
	}

	start, end := lay.VisibleColumnRange(vp)
	x := lay.ColumnX(start, vp.ScrollX)
	for c := start; c < end; c++ {
		w := lay.ColumnWidth(c)
		e.paintCell(CellRect{X: x, Y: 0, Width: w, Height: HeaderHeight},
			lay.Columns[c].HeaderLabel, e.theme.HeaderBG, e.theme.HeaderText)
		x += w
	}
}

// renderDirect is the full-frame path: cull rows, then paint each visible
// cell straight from the snapshot.
func (e *Engine) renderDirect(lay Layout, vp ViewportState) {
	rowStart, rowEnd := lay.VisibleRowRange(len(e.rows), vp)
	colStart, colEnd := lay.VisibleColumnRange(vp)

	for r := rowStart; r < rowEnd; r++ {
		row := e.rows[r]
		y := lay.RowY(r, vp.ScrollY)

		e.paintIDCell(r, row, y, vp)

		x := lay.ColumnX(colStart, vp.ScrollX)
		for c := colStart; c < colEnd; c++ {
			w := lay.ColumnWidth(c)
			key := lay.Columns[c].Key
			rect := CellRect{X: x, Y: y, Width: w, Height: RowHeight}
			e.paintCell(rect, row.CellValue(key), e.cellBG(r, key), e.theme.CellText)
			x += w
		}
	}
}

// renderTiled paints data cells from block-aligned tiles, building and
// caching any missing ones. Id cells are painted directly: they carry no
// layout work worth memoizing. A tile holds content-space geometry and
// pre-truncated text, so a cache hit skips every measurement call.
func (e *Engine) renderTiled(lay Layout, vp ViewportState) {
	rowStart, rowEnd := lay.VisibleRowRange(len(e.rows), vp)
	colStart, colEnd := lay.VisibleColumnRange(vp)

	for r := rowStart; r < rowEnd; r++ {
		e.paintIDCell(r, e.rows[r], lay.RowY(r, vp.ScrollY), vp)
	}

	for r := rowStart; r < rowEnd; {
		key := tileKeyFor(r, colStart, len(e.rows), len(lay.Columns))
		for c := colStart; c < colEnd; {
			key = tileKeyFor(r, c, len(e.rows), len(lay.Columns))
			tile, ok := e.tiles.Get(key)
			if !ok {
				tile = e.buildTile(lay, key)
				e.tiles.Put(tile)
			}
			e.paintTile(tile, vp)
			if key.ColEnd <= c {
				break
			}
			c = key.ColEnd
		}
		if key.RowEnd <= r {
			break
		}
		r = key.RowEnd
	}
}

// buildTile lays out one block of cells in content space.
func (e *Engine) buildTile(lay Layout, key TileKey) *Tile {
	tile := &Tile{Key: key}
	for r := key.RowStart; r < key.RowEnd; r++ {
		row := e.rows[r]
		y := lay.RowY(r, 0)
		x := lay.ColumnX(key.ColStart, 0)
		for c := key.ColStart; c < key.ColEnd; c++ {
			w := lay.ColumnWidth(c)
			colKey := lay.Columns[c].Key
			text := TruncateToFit(row.CellValue(colKey), w-2*CellPadding, e.surface.MeasureText)
			tile.Cells = append(tile.Cells, TileCell{
				Addr: CellAddress{RowIndex: r, ColKey: colKey},
				Rect: CellRect{X: x, Y: y, Width: w, Height: RowHeight},
				Text: text,
			})
			x += w
		}
	}
	return tile
}

// paintTile draws a tile's cells, subtracting the current scroll and
// culling cells outside the viewport. Text is already truncated.
func (e *Engine) paintTile(tile *Tile, vp ViewportState) {
	for _, cell := range tile.Cells {
		rect := CellRect{
			X:      cell.Rect.X - vp.ScrollX,
			Y:      cell.Rect.Y - vp.ScrollY,
			Width:  cell.Rect.Width,
			Height: cell.Rect.Height,
		}
		if !spanVisible(rect.X, rect.Width, vp.Width) || !spanVisible(rect.Y, rect.Height, vp.Height) {
			continue
		}
		bg := e.cellBG(cell.Addr.RowIndex, cell.Addr.ColKey)
		e.fillCell(rect, bg)
		if cell.Text != "" {
			e.surface.FillText(cell.Text, rect.X+CellPadding, rect.Y+CellPadding, e.theme.CellText)
		}
	}
}

// paintIDCell draws the leftmost pseudo-column cell for row r.
func (e *Engine) paintIDCell(r int, row GridRow, y float64, vp ViewportState) {
	idX := -vp.ScrollX
	if !spanVisible(idX, IDColumnWidth, vp.Width) {
		return
	}
	rect := CellRect{X: idX, Y: y, Width: IDColumnWidth, Height: RowHeight}
	e.paintCell(rect, row.RowID(), e.cellBG(r, ""), e.theme.CellText)
}

// cellBG picks the background for a body cell: selected or normal.
func (e *Engine) cellBG(rowIndex int, colKey string) Color {
	if e.selected != nil && e.selected.RowIndex == rowIndex && e.selected.ColKey == colKey {
		return e.theme.SelectedBG
	}
	return e.theme.CellBG
}

// paintCell fills, strokes and writes one cell. The text is truncated to
// the cell's inner width through the surface's own measurement.
func (e *Engine) paintCell(rect CellRect, text string, bg Color, textStyle Style) {
	e.fillCell(rect, bg)
	inner := rect.Width - 2*CellPadding
	if text == "" || inner <= 0 {
		return
	}
	text = TruncateToFit(text, inner, e.surface.MeasureText)
	if text != "" {
		e.surface.FillText(text, rect.X+CellPadding, rect.Y+CellPadding, textStyle)
	}
}

// fillCell paints background and 1px border with extents clamped to
// non-negative so degenerate geometry never reaches the surface.
func (e *Engine) fillCell(rect CellRect, bg Color) {
	w, h := rect.Width, rect.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	style := Style{Fill: bg, Stroke: e.theme.Border}
	e.surface.FillRect(rect.X, rect.Y, w, h, style)
	e.surface.StrokeRect(rect.X, rect.Y, w, h, style)
}

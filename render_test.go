package gridcanvas

import (
	"strings"
	"testing"
)

func testColumns() []GridColumn {
	return []GridColumn{
		{Key: "a", Width: 100, HeaderLabel: "Alpha"},
		{Key: "b", Width: 100, HeaderLabel: "Beta"},
	}
}

func TestRenderClearsViewportFirst(t *testing.T) {
	engine, surface := newTestEngine(t, testColumns(), 10)

	surface.Reset()
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	ops := surface.Ops()
	if len(ops) == 0 {
		t.Fatal("no ops recorded")
	}
	first := ops[0]
	if first.Kind != "clear" {
		t.Fatalf("first op = %q, want clear", first.Kind)
	}
	if first.Width != 800 || first.Height != 600 {
		t.Errorf("clear extent = %vx%v, want viewport 800x600", first.Width, first.Height)
	}
}

func TestRenderHeader(t *testing.T) {
	engine, surface := newTestEngine(t, testColumns(), 1)

	surface.Reset()
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	texts := surface.Texts()
	if len(texts) < 3 {
		t.Fatalf("texts = %v, want at least ID + 2 headers", texts)
	}
	if texts[0] != "ID" || texts[1] != "Alpha" || texts[2] != "Beta" {
		t.Errorf("header texts = %v, want [ID Alpha Beta ...]", texts[:3])
	}
}

func TestRenderSkipHeader(t *testing.T) {
	engine, surface := newTestEngine(t, testColumns(), 1)

	surface.Reset()
	if err := engine.Render(RenderOptions{SkipHeader: true}); err != nil {
		t.Fatal(err)
	}
	for _, text := range surface.Texts() {
		if text == "Alpha" || text == "Beta" {
			t.Errorf("header label %q drawn with SkipHeader", text)
		}
	}
}

func TestRenderHeaderOnly(t *testing.T) {
	engine, surface := newTestEngine(t, testColumns(), 5)

	surface.Reset()
	if err := engine.Render(RenderOptions{HeaderOnly: true}); err != nil {
		t.Fatal(err)
	}

	texts := surface.Texts()
	want := []string{"ID", "Alpha", "Beta"}
	if len(texts) != len(want) {
		t.Fatalf("texts = %v, want exactly %v", texts, want)
	}
	for i, text := range texts {
		if text != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, text, want[i])
		}
	}
}

// TestRenderCullsRows checks the core scaling property: draw call count
// depends on the viewport, not the dataset. 10000 rows against a 600px
// viewport paint the same number of rectangles as 15 rows would.
func TestRenderCullsRows(t *testing.T) {
	engine, surface := newTestEngine(t, testColumns(), 10000)

	surface.Reset()
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	// 15 visible rows (rows 0-14 intersect y in [40, 600]) x 3 cells,
	// plus 3 header cells.
	fills := surface.OpsOf("fillRect")
	if want := 48; len(fills) != want {
		t.Errorf("fillRect count = %d, want %d", len(fills), want)
	}
	// Every fill is paired with a border stroke.
	if strokes := surface.OpsOf("strokeRect"); len(strokes) != len(fills) {
		t.Errorf("strokeRect count = %d, want %d", len(strokes), len(fills))
	}
}

func TestRenderScrolledContent(t *testing.T) {
	engine, surface := newTestEngine(t, testColumns(), 100)
	engine.Resize(400, 300, 1)
	engine.SetScroll(0, 400) // first visible row is index 9 (y=0) or 10

	surface.Reset()
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	texts := surface.Texts()
	joined := strings.Join(texts, " ")
	if !strings.Contains(joined, "a10") {
		t.Errorf("scrolled frame should contain row 10, got %v", texts)
	}
	if strings.Contains(joined, "a50") {
		t.Errorf("row 50 is far below the viewport, got %v", texts)
	}
}

func TestRenderSelectionBackground(t *testing.T) {
	engine, surface := newTestEngine(t, testColumns(), 10)
	engine.SetSelection(CellAddress{RowIndex: 2, ColKey: "b"})

	surface.Reset()
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	// Cell (2, "b") sits at x=220 (120 id + 100), y=120 (40 header + 2*40).
	var found bool
	for _, op := range surface.OpsOf("fillRect") {
		if op.X == 220 && op.Y == 120 {
			found = true
			if op.Style.Fill != ThemeDark.SelectedBG {
				t.Errorf("selected cell fill = %+v, want SelectedBG", op.Style.Fill)
			}
		} else if op.Y >= HeaderHeight && op.Style.Fill == ThemeDark.SelectedBG {
			t.Errorf("unselected cell at (%v, %v) painted with SelectedBG", op.X, op.Y)
		}
	}
	if !found {
		t.Fatal("selected cell was not painted")
	}
}

func TestRenderTruncatesCellText(t *testing.T) {
	surface := NewRecordingSurface(800, 600)
	engine, err := New(surface, Options{})
	if err != nil {
		t.Fatal(err)
	}
	cols := []GridColumn{{Key: "name", Width: 80, HeaderLabel: "Name"}}
	rows := []GridRow{MapRow{ID: "1", Values: map[string]string{
		"name": "Subscription Renewal Notice",
	}}}
	if err := engine.UpdateData(cols, rows); err != nil {
		t.Fatal(err)
	}
	if err := engine.Resize(800, 600, 1); err != nil {
		t.Fatal(err)
	}

	surface.Reset()
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	// Inner width 64px at 8px per rune fits 8 runes: 5 + ellipsis.
	var cellText string
	for _, text := range surface.Texts() {
		if strings.HasPrefix(text, "Subsc") {
			cellText = text
		}
	}
	if cellText != "Subsc..." {
		t.Errorf("cell text = %q, want %q", cellText, "Subsc...")
	}
	if surface.MeasureText(cellText) > 64 {
		t.Errorf("drawn text measures %v, exceeds inner width 64", surface.MeasureText(cellText))
	}
}

func TestRenderAppliesDevicePixelRatio(t *testing.T) {
	engine, surface := newTestEngine(t, testColumns(), 5)
	engine.Resize(400, 300, 2)

	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := surface.CurrentScale(); got != 2 {
		t.Errorf("transform scale after render = %v, want 2", got)
	}
	// Clear still happens in logical coordinates.
	surface.Reset()
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}
	clears := surface.OpsOf("clear")
	if len(clears) != 1 || clears[0].Width != 400 || clears[0].Height != 300 {
		t.Errorf("clear ops = %+v, want one 400x300 clear", clears)
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	surface := NewRecordingSurface(800, 600)
	engine, err := New(surface, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := engine.Resize(800, 600, 1); err != nil {
		t.Fatal(err)
	}

	surface.Reset()
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	// Just the id-column header and the clear.
	texts := surface.Texts()
	if len(texts) != 1 || texts[0] != "ID" {
		t.Errorf("texts = %v, want [ID]", texts)
	}
}

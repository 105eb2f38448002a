package gridcanvas

import (
	"fmt"
	"testing"
)

func benchEngine(b *testing.B, rowCount int, opts Options) *Engine {
	b.Helper()
	surface := NewRecordingSurface(1280, 800)
	engine, err := New(surface, opts)
	if err != nil {
		b.Fatal(err)
	}
	cols := make([]GridColumn, 12)
	for i := range cols {
		cols[i] = GridColumn{
			Key:         fmt.Sprintf("c%d", i),
			Width:       140,
			HeaderLabel: fmt.Sprintf("Column %d", i),
		}
	}
	rows := make([]GridRow, rowCount)
	for i := range rows {
		values := make(map[string]string, len(cols))
		for _, col := range cols {
			values[col.Key] = fmt.Sprintf("row %d %s with some longer content", i, col.Key)
		}
		rows[i] = MapRow{ID: fmt.Sprintf("%d", i+1), Values: values}
	}
	if err := engine.UpdateData(cols, rows); err != nil {
		b.Fatal(err)
	}
	if err := engine.Resize(1280, 800, 1); err != nil {
		b.Fatal(err)
	}
	return engine
}

func BenchmarkRenderDirect(b *testing.B) {
	engine := benchEngine(b, 100000, Options{})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := engine.Render(RenderOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderTiledWarm(b *testing.B) {
	engine := benchEngine(b, 100000, Options{TileCache: true})
	if err := engine.Render(RenderOptions{}); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := engine.Render(RenderOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

// Scrolling redraw: the common interactive path, one frame per wheel tick.
func BenchmarkRenderScrolling(b *testing.B) {
	engine := benchEngine(b, 100000, Options{TileCache: true})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		engine.ScrollBy(0, 40)
		if engine.Viewport().ScrollY >= 3000 {
			engine.SetScroll(0, 0)
		}
		if engine.BeginFrame() {
			if err := engine.Render(RenderOptions{}); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkHitTest(b *testing.B) {
	engine := benchEngine(b, 100000, Options{})
	engine.SetScroll(200, 40000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		engine.CellAt(float64(100+i%1000), float64(50+i%700))
	}
}

func BenchmarkTruncateToFit(b *testing.B) {
	surface := NewRecordingSurface(100, 100)
	text := "a fairly long cell value that will not fit in a narrow column"

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		TruncateToFit(text, 120, surface.MeasureText)
	}
}

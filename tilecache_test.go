package gridcanvas

import (
	"fmt"
	"reflect"
	"testing"
)

func TestTileKeyQuantization(t *testing.T) {
	tests := []struct {
		name               string
		row, col           int
		rowCount, colCount int
		want               TileKey
	}{
		{"origin", 0, 0, 100, 20, TileKey{0, 16, 0, 8}},
		{"inside first block", 7, 3, 100, 20, TileKey{0, 16, 0, 8}},
		{"second block", 16, 8, 100, 20, TileKey{16, 32, 8, 16}},
		{"clipped to data", 96, 16, 100, 20, TileKey{96, 100, 16, 20}},
		{"tiny dataset", 0, 0, 3, 2, TileKey{0, 3, 0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tileKeyFor(tt.row, tt.col, tt.rowCount, tt.colCount)
			if got != tt.want {
				t.Errorf("tileKeyFor(%d, %d) = %+v, want %+v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestTileCacheEviction(t *testing.T) {
	cache := NewTileCache(2)

	k1 := TileKey{0, 16, 0, 8}
	k2 := TileKey{16, 32, 0, 8}
	k3 := TileKey{32, 48, 0, 8}
	cache.Put(&Tile{Key: k1})
	cache.Put(&Tile{Key: k2})

	// Touch k1 so k2 becomes the eviction candidate.
	if _, ok := cache.Get(k1); !ok {
		t.Fatal("k1 should be cached")
	}
	cache.Put(&Tile{Key: k3})

	if cache.Len() != 2 {
		t.Fatalf("len = %d, want 2", cache.Len())
	}
	if _, ok := cache.Get(k2); ok {
		t.Error("k2 should have been evicted as least recently used")
	}
	if _, ok := cache.Get(k1); !ok {
		t.Error("k1 should have survived")
	}
	if _, ok := cache.Get(k3); !ok {
		t.Error("k3 should be cached")
	}
}

func newTiledEngine(t *testing.T, rowCount int) (*Engine, *RecordingSurface) {
	t.Helper()
	surface := NewRecordingSurface(800, 600)
	engine, err := New(surface, Options{TileCache: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rows := make([]GridRow, rowCount)
	for i := range rows {
		rows[i] = MapRow{
			ID:     fmt.Sprintf("%d", i+1),
			Values: map[string]string{"a": fmt.Sprintf("a%d", i), "b": fmt.Sprintf("b%d", i)},
		}
	}
	if err := engine.UpdateData(testColumns(), rows); err != nil {
		t.Fatalf("UpdateData: %v", err)
	}
	if err := engine.Resize(800, 600, 1); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	return engine, surface
}

func TestTilesPopulateOnRender(t *testing.T) {
	engine, _ := newTiledEngine(t, 100)

	if engine.TileCount() != 0 {
		t.Fatalf("tile count before render = %d, want 0", engine.TileCount())
	}
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}
	// 15 visible rows span row blocks [0,16), both columns fit one block.
	if engine.TileCount() != 1 {
		t.Errorf("tile count = %d, want 1", engine.TileCount())
	}

	// Scrolling into the next row block builds a second tile.
	engine.SetScroll(0, 700)
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}
	if engine.TileCount() != 2 {
		t.Errorf("tile count after scroll = %d, want 2", engine.TileCount())
	}
}

func TestTileInvalidation(t *testing.T) {
	warm := func(t *testing.T) *Engine {
		t.Helper()
		engine, _ := newTiledEngine(t, 100)
		if err := engine.Render(RenderOptions{}); err != nil {
			t.Fatal(err)
		}
		if engine.TileCount() == 0 {
			t.Fatal("expected warm cache")
		}
		return engine
	}

	t.Run("data change clears", func(t *testing.T) {
		engine := warm(t)
		if err := engine.UpdateData(testColumns(), makeRows(50)); err != nil {
			t.Fatal(err)
		}
		if engine.TileCount() != 0 {
			t.Errorf("tile count = %d after UpdateData, want 0", engine.TileCount())
		}
	})

	t.Run("width change clears", func(t *testing.T) {
		engine := warm(t)
		if err := engine.SetColumnWidths(map[string]float64{"a": 200}); err != nil {
			t.Fatal(err)
		}
		if engine.TileCount() != 0 {
			t.Errorf("tile count = %d after SetColumnWidths, want 0", engine.TileCount())
		}
	})

	t.Run("resize clears", func(t *testing.T) {
		engine := warm(t)
		if err := engine.Resize(400, 300, 2); err != nil {
			t.Fatal(err)
		}
		if engine.TileCount() != 0 {
			t.Errorf("tile count = %d after Resize, want 0", engine.TileCount())
		}
	})

	t.Run("scroll does not clear", func(t *testing.T) {
		engine := warm(t)
		if err := engine.SetScroll(0, 100); err != nil {
			t.Fatal(err)
		}
		if engine.TileCount() == 0 {
			t.Error("scrolling should not invalidate tiles")
		}
	})

	t.Run("selection does not clear", func(t *testing.T) {
		engine := warm(t)
		engine.SetSelection(CellAddress{RowIndex: 1, ColKey: "a"})
		if engine.TileCount() == 0 {
			t.Error("selection should not invalidate tiles")
		}
	})
}

// TestTiledMatchesDirect renders the same snapshot through both paths and
// compares the drawn text. The tile cache is a layout memo, not a second
// renderer: output must be identical.
func TestTiledMatchesDirect(t *testing.T) {
	scrolls := []struct{ x, y float64 }{
		{0, 0},
		{0, 400},
		{0, 3000},
	}
	for _, sc := range scrolls {
		t.Run(fmt.Sprintf("scroll %v,%v", sc.x, sc.y), func(t *testing.T) {
			direct, directSurface := newTestEngine(t, testColumns(), 200)
			tiled, tiledSurface := newTiledEngine(t, 200)

			for _, e := range []*Engine{direct, tiled} {
				if err := e.SetScroll(sc.x, sc.y); err != nil {
					t.Fatal(err)
				}
			}

			directSurface.Reset()
			if err := direct.Render(RenderOptions{}); err != nil {
				t.Fatal(err)
			}
			tiledSurface.Reset()
			if err := tiled.Render(RenderOptions{}); err != nil {
				t.Fatal(err)
			}

			// Draw order differs (tiles batch by block) so compare sets.
			want := textSet(directSurface.Texts())
			got := textSet(tiledSurface.Texts())
			if !reflect.DeepEqual(want, got) {
				t.Errorf("tiled text = %v, want %v", got, want)
			}
		})
	}
}

func textSet(texts []string) map[string]int {
	set := make(map[string]int, len(texts))
	for _, text := range texts {
		set[text]++
	}
	return set
}

// Repeated renders at the same scroll reuse cached tiles instead of
// re-measuring every cell.
func TestTileHitSkipsMeasurement(t *testing.T) {
	engine, surface := newTiledEngine(t, 100)

	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}
	countedSurface := &measureCountingSurface{RecordingSurface: surface}
	engine.surface = countedSurface

	surface.Reset()
	if err := engine.Render(RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	// Header and id cells still measure; the 30 body cells must not.
	// 15 visible rows x 2 columns would be 30 extra calls on a miss.
	if countedSurface.measures > 18 {
		t.Errorf("measure calls on warm render = %d, want header/id only", countedSurface.measures)
	}
}

type measureCountingSurface struct {
	*RecordingSurface
	measures int
}

func (s *measureCountingSurface) MeasureText(text string) float64 {
	s.measures++
	return s.RecordingSurface.MeasureText(text)
}

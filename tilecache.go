package gridcanvas

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxTiles bounds the tile cache when Options.MaxTiles is zero.
const DefaultMaxTiles = 50

// Tile block granularity, in rows and columns of the grid.
const (
	tileRows = 16
	tileCols = 8
)

// TileKey identifies the row/column range a tile covers. A composite key,
// not a formatted string: the four bounds are the identity.
type TileKey struct {
	RowStart, RowEnd int // half-open [RowStart, RowEnd)
	ColStart, ColEnd int // half-open [ColStart, ColEnd)
}

// TileCell is one laid-out cell inside a tile: its absolute content-space
// rectangle and its already-truncated display text. Selection is not
// baked in; the renderer resolves it at paint time so a selection change
// never staleness-invalidates tiles.
type TileCell struct {
	Addr CellAddress
	Rect CellRect // content space, before scroll subtraction
	Text string
}

// Tile is a cached laid-out region of the grid.
type Tile struct {
	Key      TileKey
	Cells    []TileCell
	LastUsed time.Time
}

// TileCache is a bounded cache of laid-out grid regions. When the bound
// is exceeded the entry with the oldest use is evicted first. The cache
// is cleared wholesale, never selectively, on any column-width change,
// row-set change, or resize: a tile surviving one of those events would
// be stale by construction.
type TileCache struct {
	entries *lru.Cache[TileKey, *Tile]
}

// NewTileCache creates a cache bounded to maxTiles entries (DefaultMaxTiles
// when maxTiles is not positive).
func NewTileCache(maxTiles int) *TileCache {
	if maxTiles <= 0 {
		maxTiles = DefaultMaxTiles
	}
	entries, _ := lru.New[TileKey, *Tile](maxTiles)
	return &TileCache{entries: entries}
}

// Get returns the tile for key and marks it recently used.
func (c *TileCache) Get(key TileKey) (*Tile, bool) {
	tile, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	tile.LastUsed = time.Now()
	return tile, true
}

// Put stores a tile, evicting the least recently used entry if the cache
// is full.
func (c *TileCache) Put(tile *Tile) {
	tile.LastUsed = time.Now()
	c.entries.Add(tile.Key, tile)
}

// Len returns the number of cached tiles.
func (c *TileCache) Len() int {
	return c.entries.Len()
}

// Clear drops every tile.
func (c *TileCache) Clear() {
	c.entries.Purge()
}

// tileKeyFor quantizes a cell position to the block-aligned tile that
// contains it, clipped to the data extents.
func tileKeyFor(row, col, rowCount, colCount int) TileKey {
	rs := (row / tileRows) * tileRows
	cs := (col / tileCols) * tileCols
	re := rs + tileRows
	if re > rowCount {
		re = rowCount
	}
	ce := cs + tileCols
	if ce > colCount {
		ce = colCount
	}
	return TileKey{RowStart: rs, RowEnd: re, ColStart: cs, ColEnd: ce}
}

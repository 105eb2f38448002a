package gridcanvas

// Surface is the drawing backend the engine paints onto. Coordinates are
// logical pixels; SetSize takes physical pixels so a host can allocate a
// backing store at logicalSize * devicePixelRatio and map back with Scale.
//
// Implementations are single-threaded, like the engine itself.
type Surface interface {
	// SetSize resizes the backing store to the given physical pixel
	// dimensions. Pixel contents are undefined afterwards.
	SetSize(width, height int)

	// Size returns the current backing store dimensions in physical pixels.
	Size() (width, height int)

	// ResetTransform discards any accumulated scale.
	ResetTransform()

	// Scale multiplies the current transform so that subsequent logical
	// coordinates map onto factor-times-larger physical coordinates.
	Scale(factor float64)

	// Clear erases a rectangle to the surface's background.
	Clear(x, y, width, height float64)

	// FillRect fills a rectangle with the style's fill color.
	FillRect(x, y, width, height float64, style Style)

	// StrokeRect outlines a rectangle with a 1px border in the style's
	// stroke color.
	StrokeRect(x, y, width, height float64, style Style)

	// FillText draws text with its top-left corner at (x, y).
	FillText(text string, x, y float64, style Style)

	// MeasureText returns the advance width of text in logical pixels.
	MeasureText(text string) float64
}

// SurfaceOp records one drawing call made against a RecordingSurface.
type SurfaceOp struct {
	Kind          string // "clear", "fillRect", "strokeRect", "fillText"
	X, Y          float64
	Width, Height float64
	Text          string
	Style         Style
}

// RecordingSurface is a Surface that records operations instead of
// painting. It backs the engine's own tests and lets hosts assert on draw
// output without a real rendering backend.
type RecordingSurface struct {
	ops       []SurfaceOp
	width     int
	height    int
	scale     float64
	CharWidth float64 // advance width per rune for MeasureText (default 8)
}

// NewRecordingSurface returns a recording surface with the given physical
// pixel dimensions.
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{width: width, height: height, scale: 1, CharWidth: 8}
}

// SetSize implements Surface.
func (s *RecordingSurface) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Size implements Surface.
func (s *RecordingSurface) Size() (int, int) {
	return s.width, s.height
}

// ResetTransform implements Surface.
func (s *RecordingSurface) ResetTransform() {
	s.scale = 1
}

// Scale implements Surface.
func (s *RecordingSurface) Scale(factor float64) {
	s.scale *= factor
}

// CurrentScale returns the accumulated transform factor.
func (s *RecordingSurface) CurrentScale() float64 {
	return s.scale
}

// Clear implements Surface.
func (s *RecordingSurface) Clear(x, y, width, height float64) {
	s.ops = append(s.ops, SurfaceOp{Kind: "clear", X: x, Y: y, Width: width, Height: height})
}

// FillRect implements Surface.
func (s *RecordingSurface) FillRect(x, y, width, height float64, style Style) {
	s.ops = append(s.ops, SurfaceOp{Kind: "fillRect", X: x, Y: y, Width: width, Height: height, Style: style})
}

// StrokeRect implements Surface.
func (s *RecordingSurface) StrokeRect(x, y, width, height float64, style Style) {
	s.ops = append(s.ops, SurfaceOp{Kind: "strokeRect", X: x, Y: y, Width: width, Height: height, Style: style})
}

// FillText implements Surface.
func (s *RecordingSurface) FillText(text string, x, y float64, style Style) {
	s.ops = append(s.ops, SurfaceOp{Kind: "fillText", X: x, Y: y, Text: text, Style: style})
}

// MeasureText implements Surface. Width is CharWidth per rune, which keeps
// truncation tests deterministic.
func (s *RecordingSurface) MeasureText(text string) float64 {
	n := 0
	for range text {
		n++
	}
	return float64(n) * s.CharWidth
}

// Ops returns the recorded operations in draw order.
func (s *RecordingSurface) Ops() []SurfaceOp {
	return s.ops
}

// OpsOf returns only the recorded operations of the given kind.
func (s *RecordingSurface) OpsOf(kind string) []SurfaceOp {
	var out []SurfaceOp
	for _, op := range s.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns every string drawn via FillText, in draw order.
func (s *RecordingSurface) Texts() []string {
	var out []string
	for _, op := range s.ops {
		if op.Kind == "fillText" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset discards recorded operations but keeps size and transform.
func (s *RecordingSurface) Reset() {
	s.ops = s.ops[:0]
}

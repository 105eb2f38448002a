package gridcanvas

// Color is a 24-bit surface color. The zero value is "unset", which
// surfaces render as their default foreground or background.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB returns a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Hex returns a color from a packed value (e.g. 0xFF5500).
func Hex(hex uint32) Color {
	return Color{
		R:   uint8((hex >> 16) & 0xFF),
		G:   uint8((hex >> 8) & 0xFF),
		B:   uint8(hex & 0xFF),
		Set: true,
	}
}

// Equal returns true if two colors are equal.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Style carries the paint state for a single drawing operation.
type Style struct {
	Fill   Color // fill / text color
	Stroke Color // border color
	Bold   bool
}

// DefaultStyle returns a style with unset colors.
func DefaultStyle() Style {
	return Style{}
}

// WithFill returns a copy of the style with the fill color replaced.
func (s Style) WithFill(c Color) Style {
	s.Fill = c
	return s
}

// WithStroke returns a copy of the style with the stroke color replaced.
func (s Style) WithStroke(c Color) Style {
	s.Stroke = c
	return s
}

// Theme groups the styles the renderer picks between when painting.
type Theme struct {
	HeaderBG   Color // header row background
	HeaderText Style // header label text
	CellBG     Color // normal cell background
	CellText   Style // normal cell text
	SelectedBG Color // selected cell background
	Border     Color // 1px cell border
}

// ThemeDark is the default theme: light text on a dark grid.
var ThemeDark = Theme{
	HeaderBG:   Hex(0x20242B),
	HeaderText: Style{Fill: Hex(0xE6E6E6), Bold: true},
	CellBG:     Hex(0x14161A),
	CellText:   Style{Fill: Hex(0xC8C8C8)},
	SelectedBG: Hex(0x2C4A6E),
	Border:     Hex(0x3A3F47),
}

// ThemeLight is a light theme for hosts on white backgrounds.
var ThemeLight = Theme{
	HeaderBG:   Hex(0xF2F3F5),
	HeaderText: Style{Fill: Hex(0x202020), Bold: true},
	CellBG:     Hex(0xFFFFFF),
	CellText:   Style{Fill: Hex(0x303030)},
	SelectedBG: Hex(0xD6E4F7),
	Border:     Hex(0xD0D0D0),
}

package vtengine

import colorful "github.com/lucasb-eyer/go-colorful"

// ColorType indicates how a color was specified.
type ColorType uint8

const (
	ColorDefault   ColorType = iota // SGR 39/49: use the terminal default
	ColorStandard                   // 16 standard ANSI colors (0-15)
	ColorPalette                    // 256-color palette (0-255)
	ColorTrueColor                  // 24-bit RGB
)

// Color represents a resolved terminal color. A Cell never stores an
// SGR code, only the resolved semantic value, per spec §3.
type Color struct {
	Type    ColorType
	Index   uint8 // for Standard/Palette
	R, G, B uint8 // for TrueColor, or the resolved RGB of Standard/Palette
}

// DefaultForeground and DefaultBackground are the sentinel "use the
// terminal default" colors. bg == DefaultBackground means
// "transparent/background" per spec §3.
var (
	DefaultForeground = Color{Type: ColorDefault}
	DefaultBackground = Color{Type: ColorDefault}
)

// IsDefault reports whether c is the default-color sentinel.
func (c Color) IsDefault() bool { return c.Type == ColorDefault }

// StandardColor returns one of the 16 standard ANSI colors; an index
// outside 0-15 yields color 7.
func StandardColor(index int) Color {
	if index < 0 || index > 15 {
		index = 7
	}
	rgb := ansiColorsRGB[index]
	return Color{Type: ColorStandard, Index: uint8(index), R: rgb.R, G: rgb.G, B: rgb.B}
}

// PaletteColor resolves a 256-color palette index per spec §4.3.
func PaletteColor(index int) Color {
	if index < 0 || index > 255 {
		index = 7
	}
	rgb := Palette256RGB(index)
	return Color{Type: ColorPalette, Index: uint8(index), R: rgb.R, G: rgb.G, B: rgb.B}
}

// TrueColor constructs a 24-bit color.
func TrueColor(r, g, b uint8) Color {
	return Color{Type: ColorTrueColor, R: r, G: g, B: b}
}

// RGB is a plain red/green/blue triple.
type RGB struct{ R, G, B uint8 }

// ansiColorsRGB is the standard 16-color ANSI palette, in escape-code
// order (0-7 normal, 8-15 bright).
var ansiColorsRGB = [16]RGB{
	{0, 0, 0}, {170, 0, 0}, {0, 170, 0}, {170, 85, 0},
	{0, 0, 170}, {170, 0, 170}, {0, 170, 170}, {170, 170, 170},
	{85, 85, 85}, {255, 85, 85}, {85, 255, 85}, {255, 255, 85},
	{85, 85, 255}, {255, 85, 255}, {85, 255, 255}, {255, 255, 255},
}

// Palette256RGB resolves a 256-color palette index to RGB per spec
// §4.3: 0-7 standard, 8-15 bright, 16-231 the 6x6x6 color cube,
// 232-255 the grayscale ramp.
func Palette256RGB(idx int) RGB {
	switch {
	case idx < 0:
		return ansiColorsRGB[0]
	case idx < 16:
		return ansiColorsRGB[idx]
	case idx < 232:
		idx -= 16
		r := (idx / 36) % 6
		g := (idx / 6) % 6
		b := idx % 6
		return RGB{scaleCube(r), scaleCube(g), scaleCube(b)}
	case idx <= 255:
		gray := uint8((idx - 232) * 255 / 23)
		return RGB{gray, gray, gray}
	default:
		return RGB{255, 255, 255}
	}
}

// scaleCube maps a 0-5 cube coordinate to an 8-bit channel value, per
// spec §4.3's "scaled by /5" rule (0, 51, 102, 153, 204, 255).
func scaleCube(v int) uint8 {
	return uint8(v * 51)
}

// effectiveBackgroundRGB returns the RGB to treat as "the background"
// when resolving SGR 7 (reverse video) against a default background,
// which carries no RGB of its own. It uses go-colorful to pick a
// perceptually reasonable dark gray rather than hardcoding pure black,
// so reversed default-on-default text stays readable against
// truecolor foregrounds close to black.
func effectiveBackgroundRGB() RGB {
	c := colorful.Color{R: 0.12, G: 0.12, B: 0.12}
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

// ResolvedRGB returns the RGB a host renderer should paint for c. For
// the default sentinel, fallback is returned verbatim; callers pass
// their own default-foreground or default-background RGB depending on
// which side of a cell they are resolving.
func (c Color) ResolvedRGB(fallback RGB) RGB {
	if c.Type == ColorDefault {
		return fallback
	}
	return RGB{c.R, c.G, c.B}
}

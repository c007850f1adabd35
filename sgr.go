package vtengine

// applySGR implements spec §4.3. parseCSIParams always yields at least
// one element (0 for an empty CSI parameter string), so an empty SGR
// (CSI m) is already normalized to [0] by the time it reaches here.
// Params are walked left-to-right with an index so 38/48 can consume
// their sub-selector arguments.
func (e *Engine) applySGR(params []int) {
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			e.style = defaultStyle()
		case p == 1:
			e.style.Bold = true
		case p == 2:
			e.style.Dim = true
		case p == 3:
			e.style.Italic = true
		case p == 4:
			e.style.Underline = true
		case p == 7:
			e.swapForegroundBackground()
		case p == 8:
			e.style.Invisible = true
		case p == 9:
			e.style.Strikethrough = true
		case p == 22:
			e.style.Bold, e.style.Dim = false, false
		case p == 23:
			e.style.Italic = false
		case p == 24:
			e.style.Underline = false
		case p == 27:
			e.style.Foreground = DefaultForeground
			e.style.Background = DefaultBackground
		case p == 28:
			e.style.Invisible = false
		case p == 29:
			e.style.Strikethrough = false
		case p >= 30 && p <= 37:
			e.style.Foreground = StandardColor(p - 30)
		case p == 38:
			i += e.applyExtendedColor(params[i+1:], true)
		case p == 39:
			e.style.Foreground = DefaultForeground
		case p >= 40 && p <= 47:
			e.style.Background = StandardColor(p - 40)
		case p == 48:
			i += e.applyExtendedColor(params[i+1:], false)
		case p == 49:
			e.style.Background = DefaultBackground
		case p >= 90 && p <= 97:
			e.style.Foreground = StandardColor(p - 90 + 8)
		case p >= 100 && p <= 107:
			e.style.Background = StandardColor(p - 100 + 8)
		}
	}
}

// applyExtendedColor handles the 38/48 sub-selector grammar
// (;5;n or ;2;r;g;b) and returns how many extra params it consumed.
func (e *Engine) applyExtendedColor(rest []int, isFG bool) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return 0
		}
		c := PaletteColor(rest[1])
		if isFG {
			e.style.Foreground = c
		} else {
			e.style.Background = c
		}
		return 2
	case 2:
		if len(rest) < 4 {
			return 0
		}
		c := TrueColor(uint8(rest[1]), uint8(rest[2]), uint8(rest[3]))
		if isFG {
			e.style.Foreground = c
		} else {
			e.style.Background = c
		}
		return 4
	default:
		return 0
	}
}

// swapForegroundBackground implements SGR 7 (spec §4.3): swap fg and
// the effective bg, substituting the rendering background sentinel
// when bg is default.
func (e *Engine) swapForegroundBackground() {
	fg := e.style.Foreground
	bg := e.style.Background
	if bg.IsDefault() {
		eb := effectiveBackgroundRGB()
		bg = TrueColor(eb.R, eb.G, eb.B)
	}
	e.style.Foreground, e.style.Background = bg, fg
}

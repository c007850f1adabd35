// Package vtengine implements a VT/xterm-compatible terminal emulator
// engine: a byte-oriented state machine that consumes a UTF-8 stream,
// maintains an in-memory screen model (grid, alternate grid,
// scrollback, cursor, styles, modes), and emits structured effects
// (screen changes, bell, title, host responses).
//
// Everything outside that model — spawning a PTY, rendering glyphs,
// translating key events to byte sequences, selection, persistence —
// is an external collaborator. See cmd/vtshell for a minimal one.
package vtengine

// Cell is the atomic grid unit.
type Cell struct {
	Char rune // single user-perceived character, assumed precomposed

	Foreground Color
	Background Color

	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Invisible     bool

	// Wide and WidePadding mark the two halves of a double-width
	// glyph. Exactly one may be true on a given cell.
	Wide        bool
	WidePadding bool
}

// blankCell returns an empty cell with the default style. Blank cells
// produced by edit primitives always use the default style, never the
// caller's style register (see spec §4.6).
func blankCell() Cell {
	return Cell{
		Char:       ' ',
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

// stylePadding returns a blank padding cell inheriting style's
// background, per spec invariant 4.
func stylePadding(style Cell) Cell {
	c := blankCell()
	c.Background = style.Background
	return c
}

// withStyle returns a copy of style with Char set to r and the width
// markers cleared.
func withStyle(r rune, style Cell) Cell {
	c := style
	c.Char = r
	c.Wide = false
	c.WidePadding = false
	return c
}

// defaultStyle is the style register value after RIS/DECSTR/SGR 0.
func defaultStyle() Cell {
	return Cell{Foreground: DefaultForeground, Background: DefaultBackground}
}

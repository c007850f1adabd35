package vtengine

import "strings"

// ExtractText implements spec §4.11: scrollback rows followed by grid
// rows, newline-joined. Each row is built from its cells' Char,
// skipping widePadding cells, then trimmed of trailing spaces.
// Trailing fully-blank rows are dropped.
func (e *Engine) ExtractText() string {
	lines := make([]string, 0, len(e.scrollback)+len(e.grid))
	for _, row := range e.scrollback {
		lines = append(lines, extractRowText(row))
	}
	for _, row := range e.grid {
		lines = append(lines, extractRowText(row))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func extractRowText(row []Cell) string {
	var b strings.Builder
	for _, c := range row {
		if c.WidePadding {
			continue
		}
		b.WriteRune(c.Char)
	}
	return strings.TrimRight(b.String(), " ")
}

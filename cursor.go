package vtengine

// Cursor returns the zero-based cursor position.
func (e *Engine) Cursor() (row, col int) { return e.cursorRow, e.cursorCol }

// setCursor clamps (row, col) into the grid and applies it, satisfying
// spec invariant 2.
func (e *Engine) setCursor(row, col int) {
	e.cursorRow = clamp(row, 0, e.rows-1)
	e.cursorCol = clamp(col, 0, e.cols-1)
}

func (e *Engine) moveCursorUp(n int)    { e.setCursor(e.cursorRow-n, e.cursorCol) }
func (e *Engine) moveCursorDown(n int)  { e.setCursor(e.cursorRow+n, e.cursorCol) }
func (e *Engine) moveCursorRight(n int) { e.setCursor(e.cursorRow, e.cursorCol+n) }
func (e *Engine) moveCursorLeft(n int)  { e.setCursor(e.cursorRow, e.cursorCol-n) }

// nextLine implements CSI E: move to column 0 of the n-th following
// row, scrolling as linefeeds would.
func (e *Engine) nextLine(n int) {
	for i := 0; i < n; i++ {
		e.linefeed()
	}
	e.cursorCol = 0
}

// prevLine implements CSI F: move to column 0 of the n-th preceding
// row (no scrolling).
func (e *Engine) prevLine(n int) {
	e.setCursor(e.cursorRow-n, 0)
}

// saveCursor implements DECSC (ESC 7) / CSI s.
func (e *Engine) saveCursor() {
	e.savedRow, e.savedCol = e.cursorRow, e.cursorCol
}

// restoreCursor implements DECRC (ESC 8) / CSI u.
func (e *Engine) restoreCursor() {
	e.setCursor(e.savedRow, e.savedCol)
}

func (e *Engine) tab() {
	col := (e.cursorCol/8 + 1) * 8
	e.cursorCol = clamp(col, 0, e.cols-1)
}

func (e *Engine) backspace() {
	if e.cursorCol > 0 {
		e.cursorCol--
	}
}

package vtengine

// insertChars implements spec §4.6 insertChars(n): insert n blanks at
// the cursor column, truncating the row to cols.
func (e *Engine) insertChars(n int) {
	row := e.cursorRow
	if row < 0 || row >= len(e.grid) {
		return
	}
	line := e.grid[row]
	n = clamp(n, 0, e.cols-e.cursorCol)
	if n == 0 {
		return
	}
	copy(line[e.cursorCol+n:], line[e.cursorCol:e.cols-n])
	for c := e.cursorCol; c < e.cursorCol+n; c++ {
		line[c] = blankCell()
	}
}

// deleteChars implements spec §4.6 deleteChars(n): remove n cells at
// the cursor, appending n blanks at the row end. n is clamped to
// cols-col.
func (e *Engine) deleteChars(n int) {
	row := e.cursorRow
	if row < 0 || row >= len(e.grid) {
		return
	}
	line := e.grid[row]
	n = clamp(n, 0, e.cols-e.cursorCol)
	if n == 0 {
		return
	}
	copy(line[e.cursorCol:e.cols-n], line[e.cursorCol+n:])
	for c := e.cols - n; c < e.cols; c++ {
		line[c] = blankCell()
	}
}

// eraseChars implements spec §4.6 eraseChars(n): blank [col, col+n)
// without shifting.
func (e *Engine) eraseChars(n int) {
	e.clearRange(e.cursorRow, e.cursorCol, e.cursorCol+n)
}

// insertLines implements spec §4.6 insertLines(n): within
// [scrollTop, scrollBottom], remove a row at scrollBottom and insert a
// blank row at cursorRow. No-op outside the scroll region (spec §9
// "Scroll region vs editing").
func (e *Engine) insertLines(n int) {
	if e.cursorRow < e.scrollTop || e.cursorRow > e.scrollBottom {
		return
	}
	n = clamp(n, 0, e.scrollBottom-e.cursorRow+1)
	for i := 0; i < n; i++ {
		copy(e.grid[e.cursorRow+1:e.scrollBottom+1], e.grid[e.cursorRow:e.scrollBottom])
		e.grid[e.cursorRow] = newBlankRow(e.cols)
	}
}

// deleteLines implements spec §4.6 deleteLines(n): symmetric to
// insertLines (remove at cursorRow, append a blank row at
// scrollBottom).
func (e *Engine) deleteLines(n int) {
	if e.cursorRow < e.scrollTop || e.cursorRow > e.scrollBottom {
		return
	}
	n = clamp(n, 0, e.scrollBottom-e.cursorRow+1)
	for i := 0; i < n; i++ {
		copy(e.grid[e.cursorRow:e.scrollBottom], e.grid[e.cursorRow+1:e.scrollBottom+1])
		e.grid[e.scrollBottom] = newBlankRow(e.cols)
	}
}

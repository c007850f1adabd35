package vtengine

// putChar implements spec §4.4.
func (e *Engine) putChar(r rune) {
	wide := isWide(r)

	if wide && e.cursorCol == e.cols-1 {
		e.setCell(e.cursorRow, e.cursorCol, blankCell())
		if e.modes.AutoWrap {
			e.cursorCol = 0
			e.linefeed()
		} else {
			return
		}
	}

	if e.cursorCol >= e.cols {
		if e.modes.AutoWrap {
			e.cursorCol = 0
			e.linefeed()
		} else {
			e.cursorCol = e.cols - 1
		}
	}

	cur := e.CellAt(e.cursorRow, e.cursorCol)
	if cur.WidePadding && e.cursorCol > 0 {
		e.setCell(e.cursorRow, e.cursorCol-1, blankCell())
	} else if cur.Wide && e.cursorCol+1 < e.cols {
		e.setCell(e.cursorRow, e.cursorCol+1, blankCell())
	}

	width := 1
	if wide {
		width = 2
	}
	if e.modes.InsertMode {
		e.insertCellsAt(e.cursorRow, e.cursorCol, width)
	}

	cell := withStyle(r, e.style)
	cell.Wide = wide
	e.setCell(e.cursorRow, e.cursorCol, cell)
	if wide && e.cursorCol+1 < e.cols {
		e.setCell(e.cursorRow, e.cursorCol+1, padCellFor(e.style))
	}

	e.cursorCol += width
	e.lastPrintedChar = r
	e.haveLastPrinted = true
}

func padCellFor(style Cell) Cell {
	c := stylePadding(style)
	c.WidePadding = true
	return c
}

// insertCellsAt shifts width blank cells into row at col, truncating
// to cols, for insertMode (spec §4.4 step 4).
func (e *Engine) insertCellsAt(row, col, width int) {
	if row < 0 || row >= len(e.grid) {
		return
	}
	line := e.grid[row]
	n := clamp(width, 0, e.cols-col)
	if n == 0 {
		return
	}
	copy(line[col+n:], line[col:e.cols-n])
	for c := col; c < col+n; c++ {
		line[c] = blankCell()
	}
}

// repeatLastChar implements CSI b (REP): prints lastPrintedChar n
// times, or is a no-op if nothing has been printed yet.
func (e *Engine) repeatLastChar(n int) {
	if !e.haveLastPrinted {
		return
	}
	r := e.lastPrintedChar
	for i := 0; i < n; i++ {
		e.putChar(r)
	}
}

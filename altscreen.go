package vtengine

// enterAltScreen implements spec §4.8 enter: a no-op if a snapshot
// already exists (double-enter guard, spec §7).
func (e *Engine) enterAltScreen() {
	if e.altSnap != nil {
		return
	}
	e.altSnap = &snapshot{
		grid:       e.grid,
		scrollback: e.scrollback,
		cursorRow:  e.cursorRow,
		cursorCol:  e.cursorCol,
	}
	e.altActive = true
	e.grid = newGrid(e.rows, e.cols)
	e.scrollback = nil
	e.cursorRow, e.cursorCol = 0, 0
	e.scrollTop, e.scrollBottom = 0, e.rows-1
}

// exitAltScreen implements spec §4.8 exit: a no-op if there is no
// snapshot to restore.
func (e *Engine) exitAltScreen() {
	if e.altSnap == nil {
		return
	}
	e.grid = e.altSnap.grid
	e.scrollback = e.altSnap.scrollback
	e.cursorRow = e.altSnap.cursorRow
	e.cursorCol = e.altSnap.cursorCol
	e.altSnap = nil
	e.altActive = false
	e.scrollTop, e.scrollBottom = 0, e.rows-1
}

// setAltScreen1049 implements DECSET/DECRST 1049: alternate-screen
// toggle that saves the cursor on enter and restores it on exit (spec
// §4.8). The cursor travels in the alternate-screen snapshot, so this
// is independent of DECSC/DECRC: their saved position is neither read
// nor written.
func (e *Engine) setAltScreen1049(enter bool) {
	if enter {
		e.enterAltScreen()
	} else {
		e.exitAltScreen()
	}
}

// IsAlternateScreen reports whether the alternate screen is active.
func (e *Engine) IsAlternateScreen() bool { return e.altActive }

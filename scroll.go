package vtengine

// linefeed implements spec §4.5: if the cursor sits on scrollBottom,
// scroll the region up by one; otherwise advance the cursor, never
// past rows-1.
func (e *Engine) linefeed() {
	if e.cursorRow == e.scrollBottom {
		e.scrollUp(1)
		return
	}
	if e.cursorRow < e.rows-1 {
		e.cursorRow++
	}
}

// reverseLinefeed implements ESC M: if the cursor sits on scrollTop,
// scroll the region down by one; otherwise retreat the cursor.
func (e *Engine) reverseLinefeed() {
	if e.cursorRow == e.scrollTop {
		e.scrollDown(1)
		return
	}
	if e.cursorRow > 0 {
		e.cursorRow--
	}
}

// scrollUp shifts rows within [scrollTop, scrollBottom] up by n,
// pushing the evicted top rows into scrollback when on the primary
// screen (spec §4.5; alternate screen never writes scrollback, spec
// invariant 6).
func (e *Engine) scrollUp(n int) {
	for i := 0; i < n; i++ {
		if e.scrollTop > e.scrollBottom || e.scrollTop < 0 || e.scrollBottom >= e.rows {
			return
		}
		evicted := e.grid[e.scrollTop]
		if !e.altActive {
			e.scrollback = pushScrollback(e.scrollback, evicted, e.scrollMax)
		}
		copy(e.grid[e.scrollTop:e.scrollBottom], e.grid[e.scrollTop+1:e.scrollBottom+1])
		e.grid[e.scrollBottom] = newBlankRow(e.cols)
	}
}

// scrollDown shifts rows within [scrollTop, scrollBottom] down by n,
// clearing the rows that scroll in at scrollTop. It never touches
// scrollback.
func (e *Engine) scrollDown(n int) {
	for i := 0; i < n; i++ {
		if e.scrollTop > e.scrollBottom || e.scrollTop < 0 || e.scrollBottom >= e.rows {
			return
		}
		copy(e.grid[e.scrollTop+1:e.scrollBottom+1], e.grid[e.scrollTop:e.scrollBottom])
		e.grid[e.scrollTop] = newBlankRow(e.cols)
	}
}

// setScrollRegion implements CSI r (DECSTBM): set [scrollTop,
// scrollBottom] from 1-based params and home the cursor to
// (scrollTop, 0).
func (e *Engine) setScrollRegion(top, bottom int) {
	top = clamp(top-1, 0, e.rows-1)
	bottom = clamp(bottom-1, 0, e.rows-1)
	if top > bottom {
		top, bottom = 0, e.rows-1
	}
	e.scrollTop, e.scrollBottom = top, bottom
	e.setCursor(e.scrollTop, 0)
}

package vtengine

// defaultScrollbackLimit is MAX_SCROLLBACK from spec §3.
const defaultScrollbackLimit = 5000

// pushScrollback enqueues row at the tail of the scrollback and drops
// from the head once the configured bound is exceeded, satisfying
// spec invariant 5 (|scrollback| <= limit).
func pushScrollback(scrollback [][]Cell, row []Cell, limit int) [][]Cell {
	scrollback = append(scrollback, row)
	if over := len(scrollback) - limit; over > 0 {
		scrollback = scrollback[over:]
	}
	return scrollback
}

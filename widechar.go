package vtengine

// isWide reports whether r occupies two grid columns when printed. The
// ranges mirror the East-Asian-wide and emoji blocks xterm treats as
// double-width; they are hand-rolled rather than delegated to a width
// library (see DESIGN.md) because the engine's wrap/pairing invariants
// must match this exact table byte-for-byte, not whatever a library
// version happens to ship.
func isWide(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x115F,
		r == 0x2329 || r == 0x232A,
		r >= 0x2E80 && r <= 0x303E,
		r >= 0x3041 && r <= 0x33BF,
		r >= 0x3400 && r <= 0x4DBF,
		r >= 0x4E00 && r <= 0x9FFF,
		r >= 0xA000 && r <= 0xA4CF,
		r >= 0xA960 && r <= 0xA97C,
		r >= 0xAC00 && r <= 0xD7A3,
		r >= 0xF900 && r <= 0xFAFF,
		r >= 0xFE10 && r <= 0xFE19,
		r >= 0xFE30 && r <= 0xFE6F,
		r >= 0xFF01 && r <= 0xFF60,
		r >= 0xFFE0 && r <= 0xFFE6,
		r >= 0x1B000 && r <= 0x1B2FF,
		r >= 0x1F300 && r <= 0x1F9FF,
		r >= 0x1FA00 && r <= 0x1FAFF,
		r >= 0x20000 && r <= 0x2FFFF,
		r >= 0x30000 && r <= 0x3FFFF:
		return true
	default:
		return false
	}
}

package vtengine

import "strconv"

// dispatchCSI implements spec §4.2. b is the CSI final byte; e.csiParams
// and e.csiIntermediate hold everything collected since the leading
// ESC [.
func (e *Engine) dispatchCSI(b byte) {
	prefix, params := parseCSIParams(e.csiParams)
	intermediate := string(e.csiIntermediate)

	p := func(i int) int {
		if i < len(params) {
			return params[i]
		}
		return 0
	}
	n := func(i int) int {
		if v := p(i); v > 0 {
			return v
		}
		return 1
	}

	if intermediate == " " && b == 'q' {
		return // DECSCUSR, accepted and ignored
	}
	if intermediate == "!" && b == 'p' {
		e.Reset() // DECSTR soft reset -> full reset semantics here
		return
	}

	switch prefix {
	case '?':
		switch b {
		case 'h', 'l':
			e.setPrivateModes(params, b == 'h')
			return
		}
	case '>':
		if b == 'c' {
			e.emitResponse([]byte("\x1b[>0;0;0c"))
			return
		}
	case '=':
		return // tertiary DA: ignored
	}

	switch b {
	case 'A':
		e.moveCursorUp(n(0))
	case 'B':
		e.moveCursorDown(n(0))
	case 'C':
		e.moveCursorRight(n(0))
	case 'D':
		e.moveCursorLeft(n(0))
	case 'E':
		e.nextLine(n(0))
	case 'F':
		e.prevLine(n(0))
	case 'G':
		e.setCursor(e.cursorRow, n(0)-1)
	case 'd':
		e.setCursor(n(0)-1, e.cursorCol)
	case 'H', 'f':
		e.setCursor(n(0)-1, n(1)-1)
	case 's':
		e.saveCursor()
	case 'u':
		e.restoreCursor()
	case 'J':
		e.eraseDisplay(p(0))
	case 'K':
		e.eraseLine(p(0))
	case 'X':
		e.eraseChars(n(0))
	case 'P':
		e.deleteChars(n(0))
	case '@':
		e.insertChars(n(0))
	case 'L':
		e.insertLines(n(0))
	case 'M':
		e.deleteLines(n(0))
	case 'r':
		top, bottom := p(0), p(1)
		if top == 0 {
			top = 1
		}
		if bottom == 0 {
			bottom = e.rows
		}
		e.setScrollRegion(top, bottom)
	case 'S':
		e.scrollUp(n(0))
	case 'T':
		e.scrollDown(n(0))
	case 'b':
		e.repeatLastChar(n(0))
	case 'n':
		e.deviceStatusReport(p(0))
	case 'c':
		e.emitResponse([]byte("\x1b[?1;2c"))
	case 'h', 'l':
		e.setANSIModes(params, b == 'h')
	case 'm':
		e.applySGR(params)
	}
}

// parseCSIParams splits the accumulated parameter bytes into an
// optional leading private/DA marker (one of '?', '>', '=') and a list
// of semicolon-separated integers. Empty fields default to 0, per
// spec §4.2.
func parseCSIParams(raw []byte) (prefix byte, params []int) {
	if len(raw) > 0 {
		switch raw[0] {
		case '?', '>', '=':
			prefix = raw[0]
			raw = raw[1:]
		}
	}
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ';' {
			field := raw[start:i]
			v, err := strconv.Atoi(string(field))
			if err != nil {
				v = 0
			}
			params = append(params, v)
			start = i + 1
		}
	}
	return prefix, params
}

// eraseDisplay implements CSI J.
func (e *Engine) eraseDisplay(mode int) {
	switch mode {
	case 0:
		e.clearRange(e.cursorRow, e.cursorCol, e.cols)
		for r := e.cursorRow + 1; r < e.rows; r++ {
			e.clearRow(r)
		}
	case 1:
		for r := 0; r < e.cursorRow; r++ {
			e.clearRow(r)
		}
		e.clearRange(e.cursorRow, 0, e.cursorCol+1)
	case 2, 3:
		for r := 0; r < e.rows; r++ {
			e.clearRow(r)
		}
		if mode == 3 {
			e.scrollback = nil
		}
	}
}

// eraseLine implements CSI K.
func (e *Engine) eraseLine(mode int) {
	switch mode {
	case 0:
		e.clearRange(e.cursorRow, e.cursorCol, e.cols)
	case 1:
		e.clearRange(e.cursorRow, 0, e.cursorCol+1)
	case 2:
		e.clearRow(e.cursorRow)
	}
}

// deviceStatusReport implements CSI n.
func (e *Engine) deviceStatusReport(p1 int) {
	switch p1 {
	case 5:
		e.emitResponse([]byte("\x1b[0n"))
	case 6:
		row := strconv.Itoa(e.cursorRow + 1)
		col := strconv.Itoa(e.cursorCol + 1)
		e.emitResponse([]byte("\x1b[" + row + ";" + col + "R"))
	}
}

// setPrivateModes implements CSI ?h / ?l (DECSET/DECRST), spec §4.2.
// Toggles outside this set (mouse tracking, focus events, synchronized
// output, cursor blink) are accepted and ignored: recognized, consumed,
// and produce no state change.
func (e *Engine) setPrivateModes(params []int, set bool) {
	for _, p := range params {
		switch p {
		case 1:
			e.modes.ApplicationCursorKeys = set
		case 7:
			e.modes.AutoWrap = set
		case 25:
			e.modes.ShowCursor = set
		case 47, 1047:
			if set {
				e.enterAltScreen()
			} else {
				e.exitAltScreen()
			}
		case 1049:
			e.setAltScreen1049(set)
		case 2004:
			e.modes.BracketedPasteMode = set
		}
	}
}

// setANSIModes implements CSI h/l (non-private). Only mode 4 (IRM) is
// modeled; the rest are accepted-and-ignored.
func (e *Engine) setANSIModes(params []int, set bool) {
	for _, p := range params {
		if p == 4 {
			e.modes.InsertMode = set
		}
	}
}

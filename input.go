package vtengine

import "strings"

// recordInputByte and recordInputRune append a printed character to
// inputBuffer, the running record of what the host's line editor has
// typed since the last flush (spec §3 "Input tracking"). CR is recorded
// as a pending marker (markPendingCR); only the next LF/VT/FF
// (flushInputRecord) ends the line.
func (e *Engine) recordInputByte(b byte) {
	e.inputBuffer += string(rune(b))
}

func (e *Engine) recordInputRune(r rune) {
	e.inputBuffer += string(r)
}

// markPendingCR records a bare CR into inputBuffer. CR alone does not
// flush the record; only LF/VT/FF does (flushInputRecord), matching a
// CRLF line ending where the flush is triggered by the LF.
func (e *Engine) markPendingCR() {
	e.inputBuffer += "\r"
}

// flushInputRecord emits OnCommandEntered with the accumulated
// inputBuffer and clears it, called on LF/VT/FF (spec §6
// "onCommandEntered... the host line editor flushes its inputBuffer
// upon Enter").
func (e *Engine) flushInputRecord() {
	if e.inputBuffer == "" {
		return
	}
	cmd := strings.TrimRight(e.inputBuffer, "\r")
	e.inputBuffer = ""
	if cmd != "" {
		e.emitCommandEntered(cmd)
	}
}

// InputBuffer returns the text accumulated since the last flush.
func (e *Engine) InputBuffer() string { return e.inputBuffer }

// AppendInput lets a host key-event handler record keystrokes that
// never reach the PTY echo path (e.g. a local line editor), outside of
// Process. It does not itself trigger a flush.
func (e *Engine) AppendInput(s string) { e.inputBuffer += s }

// ClearInput discards the accumulated input record without emitting
// OnCommandEntered.
func (e *Engine) ClearInput() { e.inputBuffer = "" }

// CurrentDirectory returns the directory from the last OSC 7 payload
// (the path of a file:// URI, otherwise the raw payload), or "" if
// none has been received.
func (e *Engine) CurrentDirectory() string { return e.currentDirectory }

// ModesSnapshot returns the current mode flags by value.
func (e *Engine) ModesSnapshot() Modes { return e.modes }

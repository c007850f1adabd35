package vtengine

// EffectSink is the set of callbacks an embedder registers to observe
// engine effects. Every field is optional; the engine invokes
// whichever are set, synchronously, in the order the triggering bytes
// appear in the input stream (spec §5). This shape generalizes the
// per-effect callback fields used throughout the retrieval corpus'
// own terminal engine (TitleChanged, WriteToPty, ... in
// framegrace-texelation's VTerm) into one struct.
type EffectSink struct {
	// OnChange is invoked once per Process call, after every byte in
	// the chunk has been consumed, as a coalescing repaint signal.
	OnChange func()

	// OnBell is invoked once per BEL (0x07) encountered in Normal
	// state.
	OnBell func()

	// OnTitleChange is invoked for OSC 0/2 and OSC 7 payloads.
	OnTitleChange func(title string)

	// OnCommandEntered is invoked with the non-empty inputBuffer when a
	// LF/VT/FF processed in Normal state flushes it (see AppendInput,
	// ClearInput).
	OnCommandEntered func(command string)

	// OnResponse is invoked with bytes the host must write back to
	// the PTY master, in query order, for CPR/DA/DSR replies.
	OnResponse func(b []byte)
}

func (e *Engine) emitChange() {
	if e.effects.OnChange != nil {
		e.effects.OnChange()
	}
}

func (e *Engine) emitBell() {
	if e.effects.OnBell != nil {
		e.effects.OnBell()
	}
}

func (e *Engine) emitTitleChange(title string) {
	if e.effects.OnTitleChange != nil {
		e.effects.OnTitleChange(title)
	}
}

func (e *Engine) emitCommandEntered(cmd string) {
	if e.effects.OnCommandEntered != nil {
		e.effects.OnCommandEntered(cmd)
	}
}

func (e *Engine) emitResponse(b []byte) {
	if e.effects.OnResponse != nil {
		e.effects.OnResponse(b)
	}
}

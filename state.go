package vtengine

// parserState is one of the six states from spec §3/§4.1.
type parserState int

const (
	stateNormal parserState = iota
	stateEscape
	stateCSI
	stateOSC
	stateCharset
	stateStringSequence
)

// Modes holds the boolean terminal modes from spec §3. Toggles the
// engine accepts-and-ignores (mouse tracking, focus events,
// synchronized output, cursor blink, DECSCUSR) are not modeled as
// fields; CSI handling simply recognizes and discards them.
type Modes struct {
	ApplicationCursorKeys bool
	ShowCursor            bool
	AutoWrap              bool
	BracketedPasteMode    bool
	InsertMode            bool
}

func defaultModes() Modes {
	return Modes{
		ApplicationCursorKeys: false,
		ShowCursor:            true,
		AutoWrap:              true,
		BracketedPasteMode:    false,
		InsertMode:            false,
	}
}

// snapshot is the alternate-screen slot from spec §3/§4.8.
type snapshot struct {
	grid       [][]Cell
	scrollback [][]Cell
	cursorRow  int
	cursorCol  int
}

// Engine is a single terminal instance: it owns its grid, scrollback,
// and parser accumulators exclusively, shares nothing with other
// instances, and is driven synchronously by Process (spec §5).
type Engine struct {
	rows, cols int

	grid       [][]Cell
	scrollback [][]Cell
	scrollMax  int

	cursorRow, cursorCol int
	savedRow, savedCol   int

	scrollTop, scrollBottom int

	style Cell // current style register (Cell with Char/Wide/WidePadding unused)

	modes Modes

	altActive  bool
	altSnap    *snapshot

	// Parser accumulators (spec §3 "Parser state").
	pstate          parserState
	csiParams       []byte
	csiIntermediate []byte
	oscString       []byte
	lastPrintedChar rune
	haveLastPrinted bool
	utf8Buf         []byte // in-progress multi-byte sequence
	utf8Need        int

	inputBuffer      string
	currentDirectory string

	effects EffectSink
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithScrollbackLimit overrides the default 5000-row scrollback bound
// (spec §6: "document as configurable in tests").
func WithScrollbackLimit(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.scrollMax = n
	}
}

// WithEffectSink registers the effect callbacks at construction time;
// equivalent to setting fields via SetEffectSink afterward.
func WithEffectSink(sink EffectSink) Option {
	return func(e *Engine) { e.effects = sink }
}

// NewEngine constructs an Engine with the given dimensions. rows and
// cols must both be positive.
func NewEngine(rows, cols int, opts ...Option) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errInvalidDimensions(rows, cols)
	}
	e := &Engine{
		rows:         rows,
		cols:         cols,
		scrollMax:    defaultScrollbackLimit,
		scrollTop:    0,
		scrollBottom: rows - 1,
		modes:        defaultModes(),
		style:        defaultStyle(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.grid = newGrid(rows, cols)
	return e, nil
}

// SetEffectSink replaces the engine's effect callbacks.
func (e *Engine) SetEffectSink(sink EffectSink) { e.effects = sink }

// Dimensions returns the current grid size.
func (e *Engine) Dimensions() (rows, cols int) { return e.rows, e.cols }

// Reset implements RIS/DECSTR (spec §4.9): clear grid, home the
// cursor, reset the scroll region, default style, and default modes.
// Scrollback and the alternate-screen snapshot are left untouched —
// RIS does not claim to collapse history, only the live screen state.
func (e *Engine) Reset() {
	e.grid = newGrid(e.rows, e.cols)
	e.cursorRow, e.cursorCol = 0, 0
	e.savedRow, e.savedCol = 0, 0
	e.scrollTop, e.scrollBottom = 0, e.rows-1
	e.style = defaultStyle()
	e.modes = defaultModes()
	e.haveLastPrinted = false
	e.pstate = stateNormal
	e.csiParams = e.csiParams[:0]
	e.csiIntermediate = e.csiIntermediate[:0]
	e.oscString = e.oscString[:0]
	e.utf8Buf = nil
	e.utf8Need = 0
}

// Resize implements spec §4.10.
func (e *Engine) Resize(newRows, newCols int) {
	if newRows <= 0 || newCols <= 0 {
		return
	}
	e.grid = resizeGrid(e.grid, newRows, newCols)
	e.rows, e.cols = newRows, newCols
	e.scrollTop, e.scrollBottom = 0, newRows-1
	e.cursorRow = clamp(e.cursorRow, 0, newRows-1)
	e.cursorCol = clamp(e.cursorCol, 0, newCols-1)
}

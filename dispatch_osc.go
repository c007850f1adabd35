package vtengine

import (
	"net/url"
	"strings"
)

// dispatchOSC implements spec §4.7: parse e.oscString (accumulated
// since ESC ] until BEL or ST) as "<code>;<payload>" and act on the
// recognized codes. Unknown OSC codes are ignored.
func (e *Engine) dispatchOSC() {
	payload := string(e.oscString)
	code, rest, ok := strings.Cut(payload, ";")
	if !ok {
		return
	}
	switch code {
	case "0", "2":
		e.emitTitleChange(rest)
	case "7":
		e.handleOSC7(rest)
	}
}

// handleOSC7 parses raw as a URI; a file:// scheme contributes its
// path as currentDirectory and is also surfaced as a title change,
// matching a shell's CWD-reporting convention. Any other scheme is
// stored and emitted raw.
func (e *Engine) handleOSC7(raw string) {
	u, err := url.Parse(raw)
	if err != nil {
		e.currentDirectory = raw
		e.emitTitleChange(raw)
		return
	}
	if u.Scheme == "file" {
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		e.currentDirectory = path
		e.emitTitleChange(path)
		return
	}
	e.currentDirectory = raw
	e.emitTitleChange(raw)
}

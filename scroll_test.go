package vtengine

import "testing"

func TestScrollbackBound(t *testing.T) {
	e, err := NewEngine(3, 10, WithScrollbackLimit(5))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		e.Process([]byte("x\n"))
	}
	if got := len(e.Scrollback()); got != 5 {
		t.Fatalf("len(scrollback) = %d, want 5", got)
	}
}

func TestScrollbackBoundDefault(t *testing.T) {
	e, err := NewEngine(3, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5010; i++ {
		e.Process([]byte("\n"))
	}
	if got := len(e.Scrollback()); got != defaultScrollbackLimit {
		t.Fatalf("len(scrollback) = %d, want %d", got, defaultScrollbackLimit)
	}
}

func TestScrollRegionLimitsLinefeed(t *testing.T) {
	e, err := NewEngine(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("\x1b[3;6r")) // region rows [2,5] 0-based
	e.setCursor(5, 0)
	e.Process([]byte("\x1b[?7l")) // autowrap off; irrelevant to linefeed

	e.linefeed() // at scrollBottom: should scroll region, not advance past row 9
	row, _ := e.Cursor()
	if row != 5 {
		t.Fatalf("cursor row = %d, want 5 (scrolled within region, not advanced)", row)
	}
}

func TestReverseLinefeedScrollsDown(t *testing.T) {
	e, err := NewEngine(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("abc"))
	e.setCursor(0, 0)
	e.reverseLinefeed()
	if c := e.CellAt(1, 0); c.Char != 'a' {
		t.Fatalf("grid[1][0].Char = %q, want a after scroll down", c.Char)
	}
	if c := e.CellAt(0, 0); c.Char != ' ' {
		t.Fatalf("grid[0][0].Char = %q, want blank", c.Char)
	}
}

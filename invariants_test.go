package vtengine

import "testing"

// checkInvariants checks spec §3 invariants 1 and 4 after a processed
// chunk: every row has length cols, and every wide cell is followed by
// a widePadding partner.
func checkInvariants(t *testing.T, e *Engine) {
	t.Helper()
	rows, cols := e.Dimensions()
	grid := e.Grid()
	if len(grid) != rows {
		t.Fatalf("len(grid) = %d, want %d", len(grid), rows)
	}
	for r, row := range grid {
		if len(row) != cols {
			t.Fatalf("len(grid[%d]) = %d, want %d", r, len(row), cols)
		}
		for c, cell := range row {
			if cell.Wide {
				if c+1 >= cols {
					t.Fatalf("grid[%d][%d] wide with no room for a partner", r, c)
				}
				if !row[c+1].WidePadding {
					t.Fatalf("grid[%d][%d] wide but grid[%d][%d] is not widePadding", r, c, r, c+1)
				}
			}
		}
	}
}

func TestInvariantsHoldAfterMixedInput(t *testing.T) {
	e, err := NewEngine(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	inputs := []string{
		"hello world, 一二三\n",
		"\x1b[31;1mred bold\x1b[0m\n",
		"\x1b[2J\x1b[H",
		"\x1b[?1049h alt screen \x1b[?1049l",
		"\x1b[3;8r\x1b[5;1Hscrolled region\n\n\n\n\n",
	}
	for _, in := range inputs {
		e.Process([]byte(in))
		checkInvariants(t, e)
	}
}

func TestResetIsIdempotentForState(t *testing.T) {
	e1, err := NewEngine(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	e2, err := NewEngine(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	e1.Process([]byte("\x1b[31msome text\x1b[2;5r"))
	e1.Reset()
	e2.Reset()

	g1, g2 := e1.Grid(), e2.Grid()
	if len(g1) != len(g2) {
		t.Fatalf("grid row counts differ: %d vs %d", len(g1), len(g2))
	}
	for r := range g1 {
		for c := range g1[r] {
			if g1[r][c] != g2[r][c] {
				t.Fatalf("grid[%d][%d] differs after reset: %+v vs %+v", r, c, g1[r][c], g2[r][c])
			}
		}
	}
	if e1.cursorRow != e2.cursorRow || e1.cursorCol != e2.cursorCol {
		t.Fatal("cursor differs after reset")
	}
	if e1.scrollTop != e2.scrollTop || e1.scrollBottom != e2.scrollBottom {
		t.Fatal("scroll region differs after reset")
	}
	if e1.style != e2.style {
		t.Fatal("style differs after reset")
	}
}

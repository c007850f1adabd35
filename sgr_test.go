package vtengine

import "testing"

func TestSGRResetRoundTrip(t *testing.T) {
	e, err := NewEngine(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("\x1b[1;31;44m\x1b[0m"))
	if e.style != defaultStyle() {
		t.Fatalf("style = %+v, want default after SGR 0", e.style)
	}
}

func TestSGRTruecolor(t *testing.T) {
	e, err := NewEngine(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("\x1b[38;2;10;20;30mA"))
	c := e.CellAt(0, 0)
	if c.Char != 'A' {
		t.Fatalf("grid[0][0].Char = %q, want A", c.Char)
	}
	if c.Foreground.Type != ColorTrueColor || c.Foreground.R != 10 || c.Foreground.G != 20 || c.Foreground.B != 30 {
		t.Fatalf("fg = %+v, want truecolor(10,20,30)", c.Foreground)
	}
}

func TestSGRPalette256(t *testing.T) {
	e, err := NewEngine(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("\x1b[48;5;196mA"))
	c := e.CellAt(0, 0)
	if c.Background.Type != ColorPalette || c.Background.Index != 196 {
		t.Fatalf("bg = %+v, want palette(196)", c.Background)
	}
}

func TestSGRBoldAndReset(t *testing.T) {
	e, err := NewEngine(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("\x1b[1mA\x1b[22mB"))
	if c := e.CellAt(0, 0); !c.Bold {
		t.Fatal("grid[0][0].Bold = false, want true")
	}
	if c := e.CellAt(0, 1); c.Bold {
		t.Fatal("grid[0][1].Bold = true, want false after SGR 22")
	}
}

func TestSGRReverseVideoDefaultBackground(t *testing.T) {
	e, err := NewEngine(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("\x1b[7mA"))
	c := e.CellAt(0, 0)
	if c.Foreground.Type != ColorTrueColor {
		t.Fatalf("fg = %+v, want the effective-background truecolor sentinel swapped in", c.Foreground)
	}
	if c.Background.Type != ColorDefault {
		t.Fatalf("bg = %+v, want the original default foreground swapped in", c.Background)
	}
}

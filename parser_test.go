package vtengine

import "testing"

func TestHelloPlain(t *testing.T) {
	e, err := NewEngine(25, 80)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("Hi"))
	if c := e.CellAt(0, 0); c.Char != 'H' {
		t.Fatalf("grid[0][0].Char = %q, want H", c.Char)
	}
	if c := e.CellAt(0, 1); c.Char != 'i' {
		t.Fatalf("grid[0][1].Char = %q, want i", c.Char)
	}
	row, col := e.Cursor()
	if row != 0 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", row, col)
	}
}

func TestWrap(t *testing.T) {
	e, err := NewEngine(25, 80)
	if err != nil {
		t.Fatal(err)
	}
	input := make([]byte, 81)
	for i := range input {
		input[i] = 'A'
	}
	e.Process(input)
	for c := 0; c < 80; c++ {
		if cell := e.CellAt(0, c); cell.Char != 'A' {
			t.Fatalf("grid[0][%d].Char = %q, want A", c, cell.Char)
		}
	}
	if c := e.CellAt(1, 0); c.Char != 'A' {
		t.Fatalf("grid[1][0].Char = %q, want A", c.Char)
	}
	row, col := e.Cursor()
	if row != 1 || col != 1 {
		t.Fatalf("cursor = (%d,%d), want (1,1)", row, col)
	}
}

func TestWideCharWrap(t *testing.T) {
	e, err := NewEngine(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	e.setCursor(0, 1)
	e.Process([]byte("一"))

	if c := e.CellAt(0, 1); c != blankCell() {
		t.Fatalf("grid[0][1] = %+v, want blank", c)
	}
	if c := e.CellAt(1, 0); !c.Wide || c.Char != '一' {
		t.Fatalf("grid[1][0] = %+v, want wide U+4E00", c)
	}
	if c := e.CellAt(1, 1); !c.WidePadding {
		t.Fatalf("grid[1][1] = %+v, want widePadding", c)
	}
	row, col := e.Cursor()
	if row != 1 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want (1,2)", row, col)
	}
}

func TestUTF8MultiByte(t *testing.T) {
	e, err := NewEngine(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("café"))
	want := []rune{'c', 'a', 'f', 'é'}
	for i, r := range want {
		if c := e.CellAt(0, i); c.Char != r {
			t.Fatalf("grid[0][%d].Char = %q, want %q", i, c.Char, r)
		}
	}
}

func TestMalformedEscapeIsDiscarded(t *testing.T) {
	e, err := NewEngine(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	e.Process([]byte("\x1bZA"))
	if c := e.CellAt(0, 0); c.Char != 'A' {
		t.Fatalf("grid[0][0].Char = %q, want A (unknown ESC final discarded)", c.Char)
	}
}

// Command vtshell is a minimal demo host for the vtengine package: it
// spawns a shell under a PTY, feeds the PTY's output through
// vtengine.Engine, and paints the resulting grid to stdout. It exists
// to exercise the engine's external-interface contract end to end, not
// as a production terminal emulator.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/phroun/vtengine"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vtshell:", err)
		os.Exit(1)
	}
}

func run() error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	if len(os.Args) > 1 {
		shell = os.Args[1]
	}

	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 80, 24
	}

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("starting pty: %w", err)
	}
	defer ptmx.Close()

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	engine, err := vtengine.NewEngine(rows, cols)
	if err != nil {
		return fmt.Errorf("constructing engine: %w", err)
	}
	engine.SetEffectSink(vtengine.EffectSink{
		OnChange: func() { repaint(engine) },
		OnBell:   func() { fmt.Fprint(os.Stdout, "\a") },
		OnTitleChange: func(title string) {
			fmt.Fprintf(os.Stdout, "\x1b]0;%s\x07", title)
		},
		OnResponse: func(b []byte) { ptmx.Write(b) },
	})

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	// mu serializes Process (on this goroutine) and Resize (on the
	// SIGWINCH goroutine); the engine itself takes no locks.
	var mu sync.Mutex
	go handleResize(winch, ptmx, engine, &mu)
	defer signal.Stop(winch)

	go io.Copy(ptmx, os.Stdin)

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			mu.Lock()
			engine.Process(buf[:n])
			mu.Unlock()
		}
		if err != nil {
			return nil
		}
	}
}

func handleResize(winch <-chan os.Signal, ptmx *os.File, engine *vtengine.Engine, mu *sync.Mutex) {
	for range winch {
		cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			continue
		}
		pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
		mu.Lock()
		engine.Resize(rows, cols)
		mu.Unlock()
	}
}

// repaint redraws the visible grid to stdout. It is a deliberately
// naive full-screen repaint, not differential rendering — rendering
// quality is outside the engine's scope.
func repaint(engine *vtengine.Engine) {
	grid := engine.Grid()
	var b strings.Builder
	b.WriteString("\x1b[H")
	for _, row := range grid {
		for _, c := range row {
			if c.WidePadding {
				continue
			}
			b.WriteRune(c.Char)
		}
		b.WriteString("\x1b[K\r\n")
	}
	row, col := engine.Cursor()
	fmt.Fprintf(&b, "\x1b[%d;%dH", row+1, col+1)
	os.Stdout.WriteString(b.String())
}

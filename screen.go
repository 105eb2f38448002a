package gridcanvas

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Screen presents a CellSurface on a terminal with double buffering and
// diff-based updates: only cells that changed since the previous flush
// are written, with cursor repositioning per run.
type Screen struct {
	front  *CellBuffer // what the terminal currently shows
	back   *CellBuffer // what we present next
	writer io.Writer
	fd     int

	width  int
	height int

	oldState *term.State
	inRaw    bool

	resizeChan chan ScreenSize
	sigChan    chan os.Signal

	lastFG   Color
	lastBG   Color
	lastBold bool
	styleSet bool
	buf      bytes.Buffer

	// Protects buffers during SIGWINCH resize.
	mu sync.Mutex
}

// ScreenSize is a terminal dimension update, in cells.
type ScreenSize struct {
	Cols int
	Rows int
}

// NewScreen creates a screen writing to w (os.Stdout when nil).
func NewScreen(w io.Writer) (*Screen, error) {
	if w == nil {
		w = os.Stdout
	}
	fd := int(os.Stdout.Fd())
	cols, rows, err := terminalSize(fd)
	if err != nil {
		cols, rows = 80, 24
	}
	return &Screen{
		front:      NewCellBuffer(cols, rows),
		back:       NewCellBuffer(cols, rows),
		writer:     w,
		fd:         fd,
		width:      cols,
		height:     rows,
		resizeChan: make(chan ScreenSize, 1),
		sigChan:    make(chan os.Signal, 1),
	}, nil
}

func terminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Size returns the current dimensions in cells.
func (s *Screen) Size() ScreenSize {
	return ScreenSize{Cols: s.width, Rows: s.height}
}

// ResizeChan receives size updates on terminal resize.
func (s *Screen) ResizeChan() <-chan ScreenSize {
	return s.resizeChan
}

// EnterRawMode switches to the alternate screen in raw mode and starts
// listening for resize signals.
func (s *Screen) EnterRawMode() error {
	if s.inRaw {
		return nil
	}
	oldState, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	s.oldState = oldState
	s.inRaw = true

	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()

	s.writeString("\x1b[?1049h") // alternate screen
	s.writeString("\x1b[2J")     // clear so front buffer matches the screen
	s.writeString("\x1b[H")
	s.writeString("\x1b[?25l") // hide cursor
	return nil
}

// ExitRawMode restores the terminal.
func (s *Screen) ExitRawMode() error {
	if !s.inRaw {
		return nil
	}
	s.writeString("\x1b[?25h")
	s.writeString("\x1b[?1049l")

	signal.Stop(s.sigChan)

	if s.oldState != nil {
		if err := term.Restore(s.fd, s.oldState); err != nil {
			return fmt.Errorf("failed to restore terminal: %w", err)
		}
	}
	s.inRaw = false
	return nil
}

func (s *Screen) handleSignals() {
	for range s.sigChan {
		cols, rows, err := terminalSize(s.fd)
		if err != nil {
			continue
		}
		if cols == s.width && rows == s.height {
			continue
		}
		s.mu.Lock()
		s.width = cols
		s.height = rows
		s.front.Resize(cols, rows)
		s.back.Resize(cols, rows)
		s.front.Clear()
		s.back.Clear()
		s.writeString("\x1b[2J")
		s.mu.Unlock()
		select {
		case s.resizeChan <- ScreenSize{Cols: cols, Rows: rows}:
		default:
		}
	}
}

// Present copies the surface raster into the back buffer and flushes the
// diff to the terminal.
func (s *Screen) Present(surface *CellSurface) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Raw assignment, not Set: border merging is a drawing-time concern
	// and must not combine runes across frames.
	src := surface.Buffer()
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.back.InBounds(x, y) {
				s.back.cells[s.back.index(x, y)] = src.Get(x, y)
			}
		}
	}
	s.flushLocked()
}

// flushLocked writes only changed cells, positioning the cursor per run.
func (s *Screen) flushLocked() {
	s.buf.Reset()
	cursorX, cursorY := -1, -1
	changed := false

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.back.Get(x, y)
			if cell == s.front.Get(x, y) {
				continue
			}
			// placeholder cells (second half of a wide rune)
			if cell.Rune == 0 {
				s.front.cells[s.front.index(x, y)] = cell
				continue
			}
			changed = true

			if cursorX != x || cursorY != y {
				s.buf.WriteString("\x1b[")
				s.writeIntToBuf(y + 1)
				s.buf.WriteByte(';')
				s.writeIntToBuf(x + 1)
				s.buf.WriteByte('H')
			}
			s.writeCell(cell)
			s.front.cells[s.front.index(x, y)] = cell
			cursorX = x + 1
			cursorY = y
		}
	}

	if changed {
		s.buf.WriteString("\x1b[0m")
		s.styleSet = false
	}
	if s.buf.Len() > 0 {
		s.writer.Write(s.buf.Bytes())
	}
}

// writeCell emits style changes only when the style actually differs
// from the last emitted one.
func (s *Screen) writeCell(cell BufferCell) {
	if !s.styleSet || cell.FG != s.lastFG || cell.BG != s.lastBG || cell.Bold != s.lastBold {
		s.writeStyle(cell)
		s.lastFG = cell.FG
		s.lastBG = cell.BG
		s.lastBold = cell.Bold
		s.styleSet = true
	}
	s.buf.WriteRune(cell.Rune)
}

func (s *Screen) writeStyle(cell BufferCell) {
	s.buf.WriteString("\x1b[0")
	if cell.Bold {
		s.buf.WriteString(";1")
	}
	s.writeColor(cell.FG, true)
	s.writeColor(cell.BG, false)
	s.buf.WriteByte('m')
}

func (s *Screen) writeColor(c Color, fg bool) {
	if !c.Set {
		if fg {
			s.buf.WriteString(";39")
		} else {
			s.buf.WriteString(";49")
		}
		return
	}
	if fg {
		s.buf.WriteString(";38;2;")
	} else {
		s.buf.WriteString(";48;2;")
	}
	s.writeIntToBuf(int(c.R))
	s.buf.WriteByte(';')
	s.writeIntToBuf(int(c.G))
	s.buf.WriteByte(';')
	s.writeIntToBuf(int(c.B))
}

// writeIntToBuf writes an integer without allocation.
func (s *Screen) writeIntToBuf(n int) {
	if n == 0 {
		s.buf.WriteByte('0')
		return
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	s.buf.Write(scratch[i:])
}

func (s *Screen) writeString(str string) {
	io.WriteString(s.writer, str)
}

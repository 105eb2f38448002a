// Command gridterm drives the grid engine straight onto a raw terminal
// through the diff-based Screen presenter, with no framework in between.
package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"gridcanvas"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "gridterm: stdout is not a terminal")
		os.Exit(1)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := gridcanvas.NewScreen(nil)
	if err != nil {
		return err
	}

	size := screen.Size()
	surface := gridcanvas.NewCellSurface(size.Cols, size.Rows)
	engine, err := gridcanvas.New(surface, gridcanvas.Options{})
	if err != nil {
		return err
	}
	defer engine.Dispose()

	if err := engine.UpdateData(columns(), rows(5000)); err != nil {
		return err
	}
	w, h := surface.PixelSize()
	engine.Resize(w, h, 1)

	if err := screen.EnterRawMode(); err != nil {
		return err
	}
	defer screen.ExitRawMode()

	input := make(chan byte, 64)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(input)
				return
			}
			if n > 0 {
				input <- buf[0]
			}
		}
	}()

	frame := time.NewTicker(16 * time.Millisecond)
	defer frame.Stop()

	for {
		select {
		case b, ok := <-input:
			if !ok {
				return nil
			}
			switch b {
			case 'q', 3: // q or ctrl-c
				return nil
			case 'j':
				engine.ScrollBy(0, gridcanvas.RowHeight)
			case 'k':
				engine.ScrollBy(0, -gridcanvas.RowHeight)
			case 'h':
				engine.ScrollBy(-60, 0)
			case 'l':
				engine.ScrollBy(60, 0)
			case 'g':
				engine.SetScroll(0, 0)
			case 'G':
				vp := engine.Viewport()
				engine.SetScroll(vp.ScrollX, float64(engine.RowCount())*gridcanvas.RowHeight)
			case ' ':
				vp := engine.Viewport()
				engine.ScrollBy(0, vp.Height)
			}

		case sz := <-screen.ResizeChan():
			surface.SetSize(int(float64(sz.Cols)*gridcanvas.DefaultCellPxWidth),
				int(float64(sz.Rows)*gridcanvas.DefaultCellPxHeight))
			w, h := surface.PixelSize()
			engine.Resize(w, h, 1)

		case <-frame.C:
			// Coalesce: however many key or resize events landed since
			// the last tick, at most one render happens here.
			if engine.BeginFrame() {
				if err := engine.Render(gridcanvas.RenderOptions{}); err != nil {
					return err
				}
				screen.Present(surface)
			}
		}
	}
}

func columns() []gridcanvas.GridColumn {
	return []gridcanvas.GridColumn{
		{Key: "menu", Width: 200, HeaderLabel: "Menu"},
		{Key: "path", Width: 240, HeaderLabel: "Path"},
		{Key: "perm", Width: 160, HeaderLabel: "Permission"},
		{Key: "visible", Width: 100, HeaderLabel: "Visible"},
	}
}

func rows(n int) []gridcanvas.GridRow {
	out := make([]gridcanvas.GridRow, n)
	for i := 0; i < n; i++ {
		visible := "yes"
		if i%7 == 0 {
			visible = "no"
		}
		out[i] = gridcanvas.MapRow{
			ID: fmt.Sprintf("%d", i+1),
			Values: map[string]string{
				"menu":    fmt.Sprintf("Menu entry %d", i+1),
				"path":    fmt.Sprintf("/admin/menus/%d", i+1),
				"perm":    fmt.Sprintf("menu:%d:read", i+1),
				"visible": visible,
			},
		}
	}
	return out
}

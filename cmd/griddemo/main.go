// Command griddemo is an interactive grid host built on Bubble Tea.
// It feeds mouse and wheel events through the engine's hit tester,
// highlights the cell under the last click, and shows where an overlay
// editor would be positioned via CellRect.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridcanvas"
)

const wheelStep = 60.0

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6E6E6")).
			Background(lipgloss.Color("#2C4A6E")).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8A8F98")).
			Padding(0, 1)
)

// frameMsg drives the render loop at animation-frame cadence.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type model struct {
	engine  *gridcanvas.Engine
	surface *gridcanvas.CellSurface

	status string
	view   string
	ready  bool
}

func newModel() (model, error) {
	surface := gridcanvas.NewCellSurface(80, 24)
	engine, err := gridcanvas.New(surface, gridcanvas.Options{TileCache: true})
	if err != nil {
		return model{}, err
	}

	if err := engine.UpdateData(demoColumns(), demoRows(10000)); err != nil {
		return model{}, err
	}
	return model{
		engine:  engine,
		surface: surface,
		status:  "click a cell / wheel to scroll / q quits",
	}, nil
}

func (m model) Init() tea.Cmd {
	return frameTick()
}

// toLogical converts a terminal cell position to the logical pixel at
// the center of that cell.
func (m model) toLogical(col, row int) (x, y float64) {
	cw, ch := m.surface.CellMetrics()
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cw, ch := m.surface.CellMetrics()
		// Reserve two rows for the status bar.
		rows := msg.Height - 2
		if rows < 3 {
			rows = 3
		}
		m.engine.Resize(float64(msg.Width)*cw, float64(rows)*ch, 1)
		m.ready = true

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.engine.ScrollBy(0, -wheelStep)
		case tea.MouseButtonWheelDown:
			m.engine.ScrollBy(0, wheelStep)
		case tea.MouseButtonWheelLeft:
			m.engine.ScrollBy(-wheelStep, 0)
		case tea.MouseButtonWheelRight:
			m.engine.ScrollBy(wheelStep, 0)
		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress {
				break
			}
			x, y := m.toLogical(msg.X, msg.Y)
			addr, ok := m.engine.CellAt(x, y)
			if !ok {
				m.engine.ClearSelection()
				m.status = "no cell there"
				break
			}
			m.engine.SetSelection(addr)
			if rect, ok := m.engine.CellRect(addr.RowIndex, addr.ColKey); ok {
				col := addr.ColKey
				if col == "" {
					col = "id"
				}
				m.status = fmt.Sprintf("row %d col %s, editor overlay at (%.0f, %.0f) %gx%g",
					addr.RowIndex, col, rect.X, rect.Y, rect.Width, rect.Height)
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.engine.Dispose()
			return m, tea.Quit
		case "up":
			m.engine.ScrollBy(0, -gridcanvas.RowHeight)
		case "down":
			m.engine.ScrollBy(0, gridcanvas.RowHeight)
		case "left":
			m.engine.ScrollBy(-wheelStep, 0)
		case "right":
			m.engine.ScrollBy(wheelStep, 0)
		case "pgup":
			vp := m.engine.Viewport()
			m.engine.ScrollBy(0, -vp.Height)
		case "pgdown":
			vp := m.engine.Viewport()
			m.engine.ScrollBy(0, vp.Height)
		case "esc":
			m.engine.ClearSelection()
		}

	case frameMsg:
		// One render per animation frame no matter how many scroll
		// events arrived in between.
		if m.ready && m.engine.BeginFrame() {
			m.engine.Render(gridcanvas.RenderOptions{})
			m.view = ansiView(m.surface.Buffer())
		}
		return m, frameTick()
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(m.view)
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("%d rows, scrollY %.0f",
		m.engine.RowCount(), m.engine.Viewport().ScrollY)))
	return b.String()
}

// ansiView turns the surface raster into a styled string, batching runs
// of identical style into one lipgloss render call.
func ansiView(buf *gridcanvas.CellBuffer) string {
	var b strings.Builder
	for y := 0; y < buf.Height(); y++ {
		var run strings.Builder
		var cur gridcanvas.BufferCell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(cellStyle(cur).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < buf.Width(); x++ {
			cell := buf.Get(x, y)
			if cell.Rune == 0 {
				continue
			}
			if x == 0 || cell.FG != cur.FG || cell.BG != cur.BG || cell.Bold != cur.Bold {
				flush()
				cur = cell
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		if y < buf.Height()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func cellStyle(cell gridcanvas.BufferCell) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(cell.Bold)
	if cell.FG.Set {
		style = style.Foreground(lipgloss.Color(hexColor(cell.FG)))
	}
	if cell.BG.Set {
		style = style.Background(lipgloss.Color(hexColor(cell.BG)))
	}
	return style
}

func hexColor(c gridcanvas.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func demoColumns() []gridcanvas.GridColumn {
	return []gridcanvas.GridColumn{
		{Key: "name", Width: 180, HeaderLabel: "Name"},
		{Key: "email", Width: 260, HeaderLabel: "Email"},
		{Key: "team", Width: 140, HeaderLabel: "Team"},
		{Key: "role", Width: 140, HeaderLabel: "Role"},
		{Key: "status", Width: 120, HeaderLabel: "Status"},
	}
}

func demoRows(n int) []gridcanvas.GridRow {
	teams := []string{"Platform", "Payments", "Growth", "Infra", "Support"}
	roles := []string{"admin", "editor", "viewer"}
	statuses := []string{"active", "invited", "suspended"}
	rows := make([]gridcanvas.GridRow, n)
	for i := 0; i < n; i++ {
		rows[i] = gridcanvas.MapRow{
			ID: fmt.Sprintf("%d", i+1),
			Values: map[string]string{
				"name":   fmt.Sprintf("Member %04d", i+1),
				"email":  fmt.Sprintf("member%04d@example.com", i+1),
				"team":   teams[i%len(teams)],
				"role":   roles[i%len(roles)],
				"status": statuses[i%len(statuses)],
			},
		}
	}
	return rows
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "griddemo: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "griddemo: %v\n", err)
		os.Exit(1)
	}
}

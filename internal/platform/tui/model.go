package tui

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/core"
	"github.com/vovakirdan/bigboard/internal/registry"
	"github.com/vovakirdan/bigboard/internal/snapshot"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// minStatusWidth keeps the status bar readable on narrow boards.
const minStatusWidth = 48

// Model is the Bubble Tea model driving a board in the terminal.
type Model struct {
	state    *board.State
	canvas   *Canvas
	bar      *core.Screen
	keys     KeyMap
	help     help.Model
	opts     registry.RunOptions
	status   string
	quitting bool
	err      error
}

// NewModel creates a new Bubble Tea model for the given board.
func NewModel(s *board.State, opts registry.RunOptions) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime = core.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return Model{
		state:  s,
		canvas: NewCanvas(s.Geometry()),
		bar:    core.NewScreen(max(s.Geometry().GridW*ColumnsPerCell, minStatusWidth), 1),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
	}
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.state.MouseWheel(WheelDelta(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.state.Invalidate()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Every key event is applied to the board
// as it arrives; the next tick draws the result.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.status = m.saveScreenshot()
	case core.ActionCopyColor:
		m.status = m.copyColor()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	default:
		m.state.Apply(a)
	}
	return m, nil
}

// handleTick redraws the board.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.state.Update(now)

	if err := m.state.Draw(m.canvas); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot writes a PNG of the board and returns a status message.
func (m Model) saveScreenshot() string {
	path := snapshot.Path(m.opts.ScreenshotDir, time.Now())
	if err := snapshot.Save(path, m.state, snapshot.Options{Legend: true}); err != nil {
		m.opts.Logger.Error("screenshot failed", "error", err)
		return "screenshot failed: " + err.Error()
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// copyColor puts the current wheel color on the clipboard.
func (m Model) copyColor() string {
	hex := m.state.Wheel().Color().Hex()
	if err := writeClipboard(hex); err != nil {
		m.opts.Logger.Warn("clipboard unavailable", "error", err)
		return "clipboard unavailable"
	}
	return "copied " + hex
}

// View renders the board, a status line and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.canvas.Screen()))
	sb.WriteRune('\n')
	sb.WriteString(m.statusLine())
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// statusLine shows the cursor position and the current wheel color.
func (m Model) statusLine() string {
	w := m.state.Wheel()
	m.bar.Clear()

	head := fmt.Sprintf("%s %s ", m.opts.Title, m.state.Cursor().Position())
	m.bar.DrawText(0, 0, head, core.Color{})
	x := utf8.RuneCountInString(head)
	m.bar.FillRect(core.NewRect(x, 0, ColumnsPerCell, 1), w.Color())
	m.bar.DrawText(x+ColumnsPerCell+1, 0, w.Name()+" "+w.Color().Hex(), core.Color{})

	line := RenderScreen(m.bar)
	if m.status != "" {
		line += "  " + statusStyle.Render(m.status)
	}
	return line
}

// Run starts the Bubble Tea program for the given board.
func Run(s *board.State, opts registry.RunOptions) error {
	model := NewModel(s, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse wheel cycles colors
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}

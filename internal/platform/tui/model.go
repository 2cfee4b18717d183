package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tilegame/internal/game"
	"github.com/vovakirdan/tui-tilegame/internal/loop"
)

// DefaultHold is how long a key press steers when no repeat follows.
const DefaultHold = 150 * time.Millisecond

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Options configures the terminal host.
type Options struct {
	TickRate int
	Hold     time.Duration
	Logger   *log.Logger
}

// levelStartedMsg reports the outcome of a level (re)start.
type levelStartedMsg struct {
	stage, level int
	err          error
}

// Model is the Bubble Tea model hosting a running session. The frame loop
// runs on its own goroutine; the model only feeds it input and polls the
// surface for presented frames.
type Model struct {
	session *game.Session
	loop    *loop.Loop
	surface *ScreenSurface
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	tickRate int
	hold     time.Duration
	holdSeq  uint64

	width    int
	height   int
	showHelp bool
	quitting bool
	err      error
}

// NewModel creates the host model. The loop should already be started.
func NewModel(session *game.Session, lp *loop.Loop, surface *ScreenSurface, opts Options) Model {
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return Model{
		session:  session,
		loop:     lp,
		surface:  surface,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   opts.Logger,
		tickRate: opts.TickRate,
		hold:     opts.Hold,
	}
}

// Init starts polling the surface.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeSurface()
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickCmd(m.tickRate)

	case tea.SuspendMsg:
		m.surface.SetHidden(true)
		return m, nil

	case tea.ResumeMsg:
		m.surface.SetHidden(false)
		m.logger.Debug("resumed")
		return m, nil

	case releaseMsg:
		if msg.seq == m.holdSeq {
			m.session.Release()
		}
		return m, nil

	case levelStartedMsg:
		m.err = msg.err
		if msg.err != nil {
			m.logger.Error("level restart failed", "stage", msg.stage, "level", msg.level, "err", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		state := m.loop.TogglePause()
		if state == loop.Paused {
			m.session.Release()
		}
		m.logger.Debug("pause toggled", "state", state)
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.session.Release()
		return m, m.restartCmd()

	case key.Matches(msg, m.keys.Suspend):
		// The loop keeps stepping but has nothing to present until resume.
		m.surface.SetHidden(true)
		m.session.Release()
		return m, tea.Suspend

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.resizeSurface()
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok && m.loop.State() == loop.Running {
		m.session.Steer(dir)
		m.holdSeq++
		return m, releaseAfter(m.hold, m.holdSeq)
	}
	return m, nil
}

// handleMouse maps a click to the pixel at the center of the clicked cell
// and presses whatever control lies there.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.loop.State() != loop.Running {
			return m, nil
		}
		cw, ch := m.surface.CellSize()
		x, y := msg.X*cw+cw/2, msg.Y*ch+ch/2
		m.holdSeq++
		if m.session.Press(x, y) {
			m.logger.Debug("control pressed", "x", x, "y", y)
		}
	case tea.MouseActionRelease:
		m.session.Release()
	}
	return m, nil
}

func (m Model) restartCmd() tea.Cmd {
	session, lp := m.session, m.loop
	stage, lvl := session.Current()
	return func() tea.Msg {
		err := session.StartLevel(context.Background(), stage, lvl)
		if err == nil {
			lp.Unpause()
		}
		return levelStartedMsg{stage: stage, level: lvl, err: err}
	}
}

// resizeSurface gives the playfield every row the footer does not use.
func (m *Model) resizeSurface() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	rows := max(m.height-lipgloss.Height(m.footer()), 0)
	m.surface.Resize(m.width, rows)
	cw, ch := m.surface.CellSize()
	m.session.SetSurfaceSize(m.width*cw, rows*ch)
}

func (m Model) footer() string {
	stage, lvl := m.session.Current()
	label := fmt.Sprintf("stage %d · level %d", stage, lvl)
	bar := RenderStatusBar(m.width, label, m.loop.State() == loop.Paused, m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.err != nil {
		bar = errorStyle.Render(m.err.Error())
	}
	if m.showHelp {
		bar += "\n" + m.help.FullHelpView(m.keys.FullHelp())
	}
	return bar
}

// View renders the last presented frame and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.surface.Render() + "\n" + m.footer()
}

// Run starts the frame loop and the Bubble Tea program, and stops the loop
// when the program exits.
func Run(ctx context.Context, session *game.Session, surface *ScreenSurface, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	lp := loop.New(session, surface, opts.TickRate, opts.Logger)
	if err := lp.Start(ctx); err != nil {
		return err
	}
	defer lp.Stop()

	model := NewModel(session, lp, surface, opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	// The loop also ends when ctx is cancelled; take the program down with it.
	go func() {
		<-lp.Done()
		p.Quit()
	}()

	_, err := p.Run()
	lp.Stop()
	opts.Logger.Info("session ended", "frames", lp.Frames())
	return err
}

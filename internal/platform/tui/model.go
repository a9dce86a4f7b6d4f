package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-course/internal/autopilot"
	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
	"github.com/vovakirdan/space-course/internal/registry"
)

const statusDuration = 2 * time.Second

// Model is the Bubble Tea model that drives a course session.
type Model struct {
	session *course.Session
	view    registry.View
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	hold    *HoldTracker
	pilot   *autopilot.Pilot
	logger  *log.Logger

	start       time.Time
	clock       func() time.Time
	last        course.FrameResult
	demo        bool
	status      string
	statusUntil time.Time
	shotDir     string
	quitting    bool
}

// Option customizes a Model.
type Option func(*Model)

// WithDemo starts the model with the autopilot flying.
func WithDemo() Option {
	return func(m *Model) {
		m.demo = true
	}
}

// WithLogger sets the logger for UI events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithScreenshotDir overrides where Ctrl+S writes screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// NewModel creates a model that renders session through view.
func NewModel(session *course.Session, view registry.View, cfg core.RuntimeConfig, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		session: session,
		view:    view,
		// Last row is reserved for the help line
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		hold:   NewHoldTracker(cfg.HoldMs, cfg.RepeatDelayMs),
		pilot:  autopilot.New(session.Config()),
		clock:  time.Now,
		last:   session.Snapshot(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			m.shotDir = filepath.Join(home, ".spacecourse", "screenshots")
		}
	}
	m.start = m.clock()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextView):
		m.cycleView()
		return m, nil
	case key.Matches(msg, m.keys.Demo):
		m.demo = !m.demo
		m.hold.Clear()
		m.logger.Debug("autopilot toggled", "on", m.demo)
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	a := m.keys.MapKey(msg)
	switch {
	case a == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case a.IsDirectional():
		if !m.demo {
			m.hold.Press(a, msSince(m.start, m.clock()))
		}
	case a != core.ActionNone:
		m.session.Trigger(a)
		m.last = m.session.Snapshot()
	}
	return m, nil
}

// handleTick advances the session one frame. Ticking continues in every
// state so the starfield and overlays stay live; it stops once quitting.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	now := msSince(m.start, t)
	if m.demo {
		course.ApplyHeld(m.session, m.pilot.Steer(m.last))
	} else {
		course.ApplyHeld(m.session, m.hold.Held(now))
	}

	prev := m.last.State
	m.last = m.session.OnFrame(now)
	if prev != m.last.State && m.last.State == course.StateGameOver {
		m.logger.Info("game over", "run", m.session.RunID(), "survived", FormatClock(m.last.Elapsed))
	}

	if !m.statusUntil.IsZero() && t.After(m.statusUntil) {
		m.status = ""
		m.statusUntil = time.Time{}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) cycleView() {
	next := registry.Next(m.view.ID())
	if next == "" || next == m.view.ID() {
		return
	}
	v, err := registry.Create(next)
	if err != nil {
		m.logger.Warn("switch view", "err", err)
		return
	}
	m.view = v
	m.logger.Debug("view switched", "view", next)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	name := fmt.Sprintf("%s_%s.txt", m.view.ID(), m.clock().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)

	err := os.MkdirAll(m.shotDir, 0o755)
	if err == nil {
		err = os.WriteFile(path, []byte(m.screen.String()), 0o600)
	}
	if err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = m.clock().Add(statusDuration)
}

func (m Model) draw() {
	m.screen.Clear()
	m.view.Render(m.last, m.screen)
	drawHUD(m.screen, m.last, hud{
		viewTitle: m.view.Title(),
		demo:      m.demo,
		status:    m.status,
	})
}

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()

	helpView := m.help.View(m.keys)
	rows := strings.Split(RenderScreen(m.screen), "\n")
	// The full help is taller than the reserved row; give it the bottom of the frame
	if extra := strings.Count(helpView, "\n"); extra > 0 && extra < len(rows) {
		rows = rows[:len(rows)-extra]
	}
	return strings.Join(rows, "\n") + "\n" + helpStyle.Render(helpView)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(session *course.Session, view registry.View, cfg core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(
		NewModel(session, view, cfg, opts...),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

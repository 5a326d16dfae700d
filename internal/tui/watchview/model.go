// ============================================================================
// palc - PAL compiler front end
// ============================================================================
//
// Package:     watchview
// Description: Bubbletea model that re-checks a PAL source on every save
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package watchview

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	pallog "github.com/msto63/palc/foundation/core/log"
	"github.com/msto63/palc/foundation/pal"
	"github.com/msto63/palc/internal/report"
)

// Config holds watch view configuration
type Config struct {
	Path     string
	Debounce time.Duration
	Engine   *pal.Engine
	Logger   *pallog.Logger
}

// Model is the Bubbletea model for the watch view
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	checking bool
	err      error
	watchErr error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Check state
	path    string
	engine  *pal.Engine
	result  *pal.Result
	runs    int
	lastRun time.Time

	changes <-chan struct{}
	errs    <-chan error
}

// New creates a watch view model. changes and errs are usually the
// channels of a Watcher; either may be nil.
func New(cfg Config, changes <-chan struct{}, errs <-chan error) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	engine := cfg.Engine
	if engine == nil {
		engine = pal.New(pal.Options{Logger: cfg.Logger})
	}

	return Model{
		spinner:  sp,
		path:     cfg.Path,
		engine:   engine,
		checking: true,
		changes:  changes,
		errs:     errs,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.check,
		m.waitForChange,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 3
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case checkedMsg:
		m.checking = false
		m.runs++
		m.lastRun = msg.at
		m.err = msg.err
		if msg.result != nil {
			m.result = msg.result
		}
		m.updateViewportContent()

	case fileChangedMsg:
		m.checking = true
		cmds = append(cmds, m.check, m.waitForChange)

	case recheckMsg:
		m.checking = true
		cmds = append(cmds, m.check)

	case watchErrMsg:
		m.watchErr = msg.err
		cmds = append(cmds, m.waitForChange)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "r":
			return m, func() tea.Msg { return recheckMsg{} }
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Starting palc watch..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(ResultPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

// renderHeader renders the title with the checked path and state
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		PathStyle.Render(m.path),
		strings.Repeat(" ", 3),
		m.renderState(),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderState() string {
	switch {
	case m.err != nil:
		return StatusErrorStyle.Render("unreadable")
	case m.result == nil:
		return StatusPendingStyle.Render("waiting")
	case m.result.OK():
		return StatusOKStyle.Render("ok")
	default:
		return StatusErrorStyle.Render(report.Summary(len(m.result.Diagnostics)))
	}
}

// renderStatusBar renders run count, last run and activity
func (m Model) renderStatusBar() string {
	left := HelpDescStyle.Render(fmt.Sprintf("Runs: %d", m.runs))
	if !m.lastRun.IsZero() {
		left += HelpDescStyle.Render("  Last: " + m.lastRun.Format("15:04:05"))
	}
	if m.result != nil {
		left += HelpDescStyle.Render(fmt.Sprintf("  %d tokens in %s", m.result.Tokens, m.result.Duration.Round(time.Microsecond)))
	}

	var right string
	switch {
	case m.checking:
		right = m.spinner.View() + " Checking..."
	case m.watchErr != nil:
		right = StatusErrorStyle.Render("watch: " + m.watchErr.Error())
	default:
		right = StatusOKStyle.Render("watching")
	}

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if space < 2 {
		space = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", space) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("r", "Recheck"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the current diagnostics into the viewport
func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	if m.err != nil {
		return StatusErrorStyle.Render(m.err.Error())
	}
	if m.result == nil {
		return ""
	}
	if m.result.OK() {
		return StatusOKStyle.Render(fmt.Sprintf("No errors found (%d symbols).", len(m.result.Symbols)))
	}

	var buf bytes.Buffer
	rep := report.New(&buf, report.Options{Color: true})
	rep.Result(m.result)
	return strings.TrimRight(buf.String(), "\n")
}

// check runs one check of the watched file
func (m Model) check() tea.Msg {
	result, err := m.engine.CheckFile(m.path)
	return checkedMsg{result: result, err: err, at: time.Now()}
}

// waitForChange blocks until the watcher reports a change or an error
func (m Model) waitForChange() tea.Msg {
	if m.changes == nil && m.errs == nil {
		return nil
	}
	select {
	case _, ok := <-m.changes:
		if !ok {
			return nil
		}
		return fileChangedMsg{}
	case err, ok := <-m.errs:
		if !ok {
			return nil
		}
		return watchErrMsg{err: err}
	}
}

// Run watches cfg.Path and shows the check result until the user quits
func Run(cfg Config) error {
	watcher, err := NewWatcher(cfg.Path, cfg.Debounce, cfg.Logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	p := tea.NewProgram(New(cfg, watcher.Events(), watcher.Errors()), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

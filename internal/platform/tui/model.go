// Package tui provides the Bubble Tea front end for the runner.
// It owns the frame loop, maps keys and mouse drags to actions, and draws
// the home, playing and game-over screens.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/i18n"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// recentRuns is how many runs the home screen lists.
const recentRuns = 5

// Options configures a TUI session.
type Options struct {
	Config     config.RunnerConfig
	Runtime    core.RuntimeConfig
	Store      *storage.Store // optional run history
	Translator *i18n.Translator
	Logger     *log.Logger // optional; discarded when nil
}

// Model is the Bubble Tea model for the runner.
type Model struct {
	sim     *runner.Simulation
	screen  *core.Screen
	store   *storage.Store
	tr      *i18n.Translator
	logger  *log.Logger
	keys    *KeyMapper
	help    help.Model
	runs    table.Model
	swipe   mouseSwipe
	crouch  crouchHold
	runtime core.RuntimeConfig

	lastTick time.Time
	best     float64
	quitting bool
}

// NewModel creates a model showing the home screen.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tr := opts.Translator
	if tr == nil {
		tr, _ = i18n.New(i18n.BaseLocale)
	}

	m := Model{
		sim:     runner.New(opts.Config, rt.Seed),
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0)),
		store:   opts.Store,
		tr:      tr,
		logger:  logger,
		keys:    NewKeyMapper(DefaultKeyMap()),
		help:    help.New(),
		swipe:   newMouseSwipe(opts.Config.Input),
		crouch:  newCrouchHold(opts.Config.Input.CrouchHold),
		runtime: rt,
	}
	m.help.Width = rt.ScreenW
	m.runs = m.newRunsTable()
	m.refreshRuns()

	logger.Debug("runner ready", "seed", rt.Seed, "difficulty", m.sim.Difficulty(), "lang", tr.Lang())
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg, m.sim.Session())
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.enqueue(action)
	return m, nil
}

// handleMouse turns drags into swipes while a run is in progress.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	actions := m.swipe.Handle(msg)
	if m.sim.Session() != runner.Playing {
		return m, nil
	}
	for _, a := range actions {
		m.enqueue(a)
	}
	return m, nil
}

func (m *Model) enqueue(a core.Action) {
	switch a {
	case core.ActionCrouchStart:
		m.crouch.Press()
	case core.ActionJump:
		m.crouch.Cancel()
	}
	m.sim.Enqueue(a)
}

// handleResize processes window resize events. The world is independent
// of the terminal size, so the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	// Leave the last row for the help line.
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	before := m.sim.Session()
	res := m.sim.Tick(dt)
	if res.Session != before {
		m.logger.Debug("session changed", "from", before, "to", res.Session)
		if res.Session == runner.Home || res.Session == runner.GameOver {
			m.crouch.Cancel()
		}
	}
	if res.Ended {
		m.recordRun(res.Stats)
	}

	// The hold only runs down while playing, so a pause keeps it. The
	// release is queued ahead of any key pressed before the next tick.
	if res.Session == runner.Playing && m.crouch.Advance(dt) {
		m.sim.Enqueue(core.ActionCrouchStop)
	}

	return m, tickCmd(m.runtime.TickRate)
}

// recordRun stores a finished run in the history.
func (m *Model) recordRun(stats runner.RunStats) {
	m.logger.Info("run finished",
		"score", int(stats.Score),
		"difficulty", stats.Difficulty,
		"cleared", stats.Cleared,
		"elapsed", stats.Elapsed.Round(time.Millisecond),
	)
	m.best = max(m.best, stats.Score)
	if m.store == nil {
		return
	}

	id, err := m.store.RecordRun(storage.RunRecord{
		Source:     storage.SourcePlay,
		Seed:       m.runtime.Seed,
		Score:      stats.Score,
		Difficulty: int(stats.Difficulty),
		Cleared:    stats.Cleared,
		Jumps:      stats.Jumps,
		Duration:   stats.Elapsed,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", id)
	m.refreshRuns()
}

// newRunsTable creates the recent-runs table with localized headers.
func (m *Model) newRunsTable() table.Model {
	columns := []table.Column{
		{Title: m.tr.T("runs.score"), Width: 8},
		{Title: m.tr.T("runs.level"), Width: 10},
		{Title: m.tr.T("runs.cleared"), Width: 8},
		{Title: m.tr.T("runs.time"), Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(recentRuns+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// refreshRuns reloads the recent-runs table and best score from the store.
func (m *Model) refreshRuns() {
	if m.store == nil {
		return
	}

	runs, err := m.store.Recent(recentRuns)
	if err != nil {
		m.logger.Warn("could not load recent runs", "error", err)
		return
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", int(r.Score)),
			m.tr.DifficultyLabel(config.Difficulty(r.Difficulty)),
			fmt.Sprintf("%d", r.Cleared),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
		}
	}
	m.runs.SetRows(rows)

	if best, err := m.store.Best(); err == nil && best != nil {
		m.best = max(m.best, best.Score)
	}
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	switch m.sim.Session() {
	case runner.Home:
		return m.homeView() + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
	case runner.GameOver:
		m.renderScene()
		return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.tr.T("gameover.options"))
	default:
		m.renderScene()
		return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
	}
}

// renderScene draws the track and HUD into the screen buffer.
func (m Model) renderScene() {
	f := m.sim.Frame()
	hud := runner.HUD{
		Left:  m.tr.T("hud.score", int(f.Score)),
		Right: m.tr.T("hud.difficulty", m.tr.DifficultyLabel(f.Difficulty)),
	}
	switch f.Session {
	case runner.Paused:
		hud.Title = m.tr.T("hud.paused")
		hud.Detail = m.tr.T("hud.resume")
	case runner.GameOver:
		hud.Title = m.tr.T("gameover.title")
		hud.Detail = m.tr.T("gameover.score", int(f.Stats.Score))
	}
	runner.Render(m.screen, f, hud)
}

// homeView renders the title screen.
func (m Model) homeView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	levelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("208")).
		Bold(true)
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.tr.T("title")))
	b.WriteString("\n")
	b.WriteString(levelStyle.Render(m.tr.DifficultyLabel(m.sim.Difficulty())))
	b.WriteString("\n\n")
	for _, k := range []string{"home.start", "home.difficulty", "home.quit"} {
		b.WriteString(m.tr.T(k))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.tr.T("home.controls")))

	if m.best > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.tr.T("home.best", int(m.best)))
	}
	if len(m.runs.Rows()) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.tr.T("home.runs"))
		b.WriteString("\n")
		b.WriteString(m.runs.View())
	}

	panel := panelStyle.Render(b.String())
	if m.runtime.ScreenW <= 0 || m.runtime.ScreenH <= 1 {
		return panel
	}
	return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH-1, lipgloss.Center, lipgloss.Center, panel)
}

// Simulation exposes the underlying simulation, mainly for tests.
func (m Model) Simulation() *runner.Simulation {
	return m.sim
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags become swipes
	)

	_, err := p.Run()
	return err
}

// Package tui is the interactive front end: a menu of the three sections
// with each section shown in a scrollable viewport.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/finmetrics/internal/config"
	"github.com/idilsaglam/finmetrics/internal/education"
	"github.com/idilsaglam/finmetrics/internal/simulate"
)

type state int

const (
	stateMenu state = iota
	stateRunning
	stateViewing
)

const histogramBins = 20

// Options configure a Model.
type Options struct {
	Config   config.Config
	Logger   *zap.Logger
	Simulate SimulateFunc
	Markdown *education.Renderer
}

// simDoneMsg carries the run number it was started with so results of
// canceled runs can be told apart from the current one.
type simDoneMsg struct {
	run int
	res *simulate.Result
	err error
}

// sectionDelegate renders one menu row per section.
type sectionDelegate struct{}

func (d sectionDelegate) Height() int                         { return 1 }
func (d sectionDelegate) Spacing() int                        { return 0 }
func (d sectionDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d sectionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	s, _ := item.(section)
	prefix := "  "
	title := s.title
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		title = accentStyle.Render(title)
	}
	fmt.Fprintf(w, "%s%s  %s", prefix, title, mutedStyle.Render(s.desc))
}

type Model struct {
	opts     Options
	list     list.Model
	viewport viewport.Model
	spinner  spinner.Model
	state    state
	current  sectionID
	err      error
	cancel   context.CancelFunc
	run      int
	width    int
	height   int
}

func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Simulate == nil {
		opts.Simulate = simulate.Run
	}

	items := make([]list.Item, 0, 3)
	for _, s := range sections() {
		items = append(items, s)
	}
	l := list.New(items, sectionDelegate{}, 0, 0)
	l.Title = "Return vs Volatility Analysis"
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	open := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{open} }

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	m := Model{
		opts:     opts,
		list:     l,
		viewport: viewport.New(80, 20),
		spinner:  sp,
	}
	m.resize(80, 24)
	return m
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	// frame border and padding plus the footer line
	innerW, innerH := max(w-4, 20), max(h-4, 5)
	m.list.SetSize(innerW, innerH)
	m.viewport.Width = innerW
	m.viewport.Height = max(innerH-2, 3)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case simDoneMsg:
		if m.state != stateRunning || msg.run != m.run {
			return m, nil
		}
		m.cancel = nil
		if msg.err != nil {
			m.opts.Logger.Warn("simulation failed", zap.Error(msg.err))
			return m.show(sectionSimulator, "", msg.err), nil
		}
		m.opts.Logger.Info("simulation finished",
			zap.Int("runs", msg.res.Params.Runs),
			zap.Duration("elapsed", msg.res.Elapsed))
		return m.show(sectionSimulator, renderSimulation(msg.res, histogramBins), nil), nil

	case spinner.TickMsg:
		if m.state != stateRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.stop()
			return m, tea.Quit
		case "q":
			if m.state != stateRunning {
				return m, tea.Quit
			}
		case "esc":
			if m.state != stateMenu {
				m.stop()
				m.state = stateMenu
				m.err = nil
				return m, nil
			}
			return m, nil
		case "enter":
			if m.state == stateMenu {
				return m.open()
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMenu:
		m.list, cmd = m.list.Update(msg)
	case stateViewing:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m Model) open() (tea.Model, tea.Cmd) {
	s, ok := m.list.SelectedItem().(section)
	if !ok {
		return m, nil
	}
	m.opts.Logger.Debug("open section", zap.String("section", s.title))
	switch s.id {
	case sectionCalculator:
		out, err := renderCalculator(m.opts.Config.Calculator)
		return m.show(s.id, out, err), nil
	case sectionEducation:
		if m.opts.Markdown == nil {
			// auto style would query the terminal while bubbletea owns it
			style := "dark"
			if m.opts.Config.NoColor || m.opts.Config.Theme == "mono" {
				style = "notty"
			}
			r, err := education.NewRenderer(education.RenderOptions{Style: style, Width: m.viewport.Width})
			if err != nil {
				return m.show(s.id, "", err), nil
			}
			m.opts.Markdown = r
		}
		out, err := renderEducation(m.opts.Markdown)
		return m.show(s.id, out, err), nil
	}

	params := m.opts.Config.Simulator.Params()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.run++
	seq := m.run
	m.state = stateRunning
	m.current = s.id
	run := m.opts.Simulate
	logger := m.opts.Logger
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		defer cancel()
		res, err := run(ctx, params, simulate.WithLogger(logger))
		return simDoneMsg{run: seq, res: res, err: err}
	})
}

func (m Model) show(id sectionID, content string, err error) Model {
	m.state = stateViewing
	m.current = id
	m.err = err
	if err != nil {
		content = errorStyle.Render("✖ " + err.Error())
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	return m
}

func (m Model) View() string {
	var body string
	switch m.state {
	case stateMenu:
		body = m.list.View()
	case stateRunning:
		p := m.opts.Config.Simulator
		body = fmt.Sprintf("%s Running %d simulations over %d periods...\n\n%s",
			m.spinner.View(), p.Runs, p.Periods, helpStyle.Render("esc cancel"))
	case stateViewing:
		header := titleStyle.Render(sections()[m.current].title)
		help := helpStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • esc back • q quit", m.viewport.ScrollPercent()*100))
		body = strings.Join([]string{header, m.viewport.View(), help}, "\n")
	}
	return frameStyle.Render(body) + "\n" + mutedStyle.Render(disclaimer)
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.stop()
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

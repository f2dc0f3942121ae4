// Package tui provides a Bubble Tea terminal user interface for xspf-to-m3u.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockfeed/xspf-to-m3u/internal/config"
	"github.com/blockfeed/xspf-to-m3u/internal/convert"
	ioutils "github.com/blockfeed/xspf-to-m3u/internal/io"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateConverting
	StateComplete
	StateError
)

// Form field indices. The extended-M3U checkbox sits after the text
// inputs in the focus cycle.
const (
	fieldSource = iota
	fieldDest
	fieldAnchors
	fieldGonic
	fieldExtended
	fieldCount
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   convert.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state   State
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	bar     progress.Model

	settings *config.Settings
	extended bool
	logs     []LogEntry
	err      error

	// Conversion context
	ctx    context.Context
	cancel context.CancelFunc

	// Conversion state
	manager   *convert.Manager
	jobs      []convert.Job
	outdir    string
	events    chan convert.ProgressEvent
	playlists int32
	lines     int64
	skipped   int32
	preview   []string

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	source := textinput.New()
	source.Placeholder = "library.xspf (or https://example.com/library.xspf; comma-separate several)"
	source.Focus()
	source.CharLimit = 500
	source.Width = 60

	dest := textinput.New()
	dest.Placeholder = "rockbox.m3u (a directory when converting several inputs)"
	dest.CharLimit = 500
	dest.Width = 60

	anchors := textinput.New()
	anchors.SetValue("Music")
	anchors.CharLimit = 200
	anchors.Width = 60

	gonic := textinput.New()
	gonic.Placeholder = "/mnt/g/Music/ (leave empty for plain M3U)"
	gonic.CharLimit = 300
	gonic.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateInput,
		inputs:   []textinput.Model{source, dest, anchors, gonic},
		spinner:  sp,
		bar:      bar,
		settings: config.DefaultSettings(),
		extended: true,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one conversion progress event into the UI.
	ProgressMsg struct {
		Event convert.ProgressEvent
	}

	// ConvertDoneMsg is sent when all conversions complete. Preview
	// holds the rendered lines of a single conversion's output.
	ConvertDoneMsg struct {
		Playlists int32
		Lines     int64
		Skipped   int32
		Preview   []string
		Err       error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = msg.Width - 20
		if m.bar.Width > 80 {
			m.bar.Width = 80
		}
		if m.bar.Width < 20 {
			m.bar.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateConverting {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "tab", "down":
			if m.state == StateInput {
				cmds = append(cmds, m.setFocus((m.focus+1)%fieldCount))
			}

		case "shift+tab", "up":
			if m.state == StateInput {
				cmds = append(cmds, m.setFocus((m.focus+fieldCount-1)%fieldCount))
			}

		case " ":
			if m.state == StateInput && m.focus == fieldExtended {
				m.extended = !m.extended
				return m, nil
			}

		case "enter":
			if m.state == StateInput && m.sourceValue() != "" && m.destValue() != "" {
				m.state = StateConverting
				m.prepareConversion()
				return m, tea.Batch(m.startConversion(), m.waitForEvent(), m.spinner.Tick, m.tickProgress())
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another conversion, keeping the form values
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.manager = nil
				m.jobs = nil
				m.events = nil
				m.playlists = 0
				m.lines = 0
				m.skipped = 0
				m.preview = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				cmds = append(cmds, m.setFocus(fieldSource))
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}
		cmds = append(cmds, m.waitForEvent())

	case ConvertDoneMsg:
		m.playlists = msg.Playlists
		m.lines = msg.Lines
		m.skipped = msg.Skipped
		m.preview = msg.Preview
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateConverting {
			m.playlists, m.lines, m.skipped = m.manager.GetProgress()
			cmds = append(cmds, m.tickProgress())
		}
	}

	// Update the focused text input
	if m.state == StateInput && m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// setFocus moves form focus, blurring every other input.
func (m *Model) setFocus(field int) tea.Cmd {
	m.focus = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == field {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m Model) sourceValue() string { return strings.TrimSpace(m.inputs[fieldSource].Value()) }
func (m Model) destValue() string   { return strings.TrimSpace(m.inputs[fieldDest].Value()) }

// prepareConversion builds the settings, manager and job list from
// the form.
func (m *Model) prepareConversion() {
	settings := config.DefaultSettings()
	settings.StripAfter = splitList(m.inputs[fieldAnchors].Value())
	settings.ExtendedM3U = m.extended
	settings.GonicBase = strings.TrimSpace(m.inputs[fieldGonic].Value())
	m.settings = settings

	sources := splitList(m.inputs[fieldSource].Value())
	dest := m.destValue()

	m.jobs = nil
	m.outdir = ""
	if len(sources) == 1 {
		m.jobs = []convert.Job{{Source: sources[0], Dest: dest}}
	} else {
		m.outdir = dest
		for _, source := range sources {
			m.jobs = append(m.jobs, convert.Job{
				Source: source,
				Dest:   filepath.Join(dest, convert.DestName(source)),
			})
		}
	}

	events := make(chan convert.ProgressEvent, 64)
	m.events = events
	m.manager = convert.NewManager(settings, func(event convert.ProgressEvent) {
		select {
		case events <- event:
		default: // drop when the UI lags behind
		}
	})
}

// startConversion runs the conversion jobs in the background.
func (m *Model) startConversion() tea.Cmd {
	manager := m.manager
	jobs := m.jobs
	outdir := m.outdir
	ctx := m.ctx

	return func() tea.Msg {
		if outdir != "" {
			if err := ioutils.EnsureDir(outdir); err != nil {
				return ConvertDoneMsg{Err: err}
			}
		}

		var err error
		var preview []string
		if len(jobs) == 1 {
			var result *convert.Result
			result, err = manager.Convert(ctx, jobs[0])
			if result != nil {
				preview = result.Lines
			}
		} else {
			err = manager.ConvertAll(ctx, jobs)
		}

		playlists, lines, skipped := manager.GetProgress()
		return ConvertDoneMsg{
			Playlists: playlists,
			Lines:     lines,
			Skipped:   skipped,
			Preview:   preview,
			Err:       err,
		}
	}
}

// waitForEvent forwards the next manager progress event to the UI.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 XSPF to M3U"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Convert XSPF playlists to M3U (Rockbox/Gonic)"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateConverting:
		b.WriteString(m.viewConverting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	labels := []string{
		"Input .xspf file or URL:",
		"Output .m3u file:",
		"Strip after (comma-separated anchor folders):",
		"Gonic base path:",
	}

	var b strings.Builder
	for i, input := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = subtitleStyle
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	check := "[ ]"
	if m.extended {
		check = "[×]"
	}
	row := fmt.Sprintf("%s Extended M3U (#EXTM3U/#EXTINF lines)", check)
	if m.focus == fieldExtended {
		b.WriteString(subtitleStyle.Render("› " + row))
	} else {
		b.WriteString(infoStyle.Render("  " + row))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Max concurrent conversions: %d", m.settings.MaxConcurrentConversions)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewConverting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Converting..."))
	b.WriteString("\n\n")

	var percent float64
	if len(m.jobs) > 0 {
		percent = float64(m.playlists) / float64(len(m.jobs))
	}
	b.WriteString(m.bar.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Playlists: %d/%d | Lines written: %d",
		m.playlists,
		len(m.jobs),
		m.lines,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Conversion Complete!\n\n"+
			"Playlists: %d\n"+
			"Lines written: %d\n"+
			"Tracks skipped: %d",
		m.playlists,
		m.lines,
		m.skipped,
	))
	b.WriteString(box)
	b.WriteString("\n\n")

	if len(m.preview) > 0 {
		const maxPreview = 8
		b.WriteString(labelStyle.Render("Output preview:"))
		b.WriteString("\n")
		shown := m.preview
		if len(shown) > maxPreview {
			shown = shown[:maxPreview]
		}
		for _, line := range shown {
			b.WriteString(dimStyle.Render("  " + line))
			b.WriteString("\n")
		}
		if rest := len(m.preview) - maxPreview; rest > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more lines", rest)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case convert.LevelError:
			style = errorStyle
			prefix = "✗"
		case convert.LevelWarning:
			style = warningStyle
			prefix = "!"
		case convert.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case convert.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: convert • tab: next field • space: toggle • esc: quit"
	case StateConverting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: convert another • q: quit"
	}
	return ""
}

// splitList splits a comma-separated form value into trimmed,
// non-empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

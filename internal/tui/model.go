package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yuiclaw/internal/color"
	"yuiclaw/internal/reporting"
	"yuiclaw/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const maxLogLines = 5

// StatusSource collects a fresh status report.
type StatusSource func(ctx context.Context) reporting.Report

type statusMsg struct {
	report reporting.Report
	at     time.Time
}

type refreshTickMsg struct{}

type logMsg struct {
	entry logging.LogEntry
}

// Model is the bubbletea model of the watch view.
type Model struct {
	ctx      context.Context
	source   StatusSource
	interval time.Duration
	logCh    <-chan logging.LogEntry

	spinner    spinner.Model
	report     reporting.Report
	loaded     bool
	refreshing bool
	lastUpdate time.Time
	logs       []logging.LogEntry
	quitting   bool
}

// NewModel creates the watch model. logCh may be nil.
func NewModel(ctx context.Context, source StatusSource, interval time.Duration, logCh <-chan logging.LogEntry) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = color.WarnStyle
	return Model{
		ctx:        ctx,
		source:     source,
		interval:   interval,
		logCh:      logCh,
		spinner:    s,
		refreshing: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchStatusCmd(), waitForLog(m.logCh))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if !m.refreshing {
				m.refreshing = true
				return m, m.fetchStatusCmd()
			}
		}
		return m, nil

	case statusMsg:
		m.report = msg.report
		m.lastUpdate = msg.at
		m.loaded = true
		m.refreshing = false
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return refreshTickMsg{} })

	case refreshTickMsg:
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.fetchStatusCmd()

	case logMsg:
		m.logs = append(m.logs, msg.entry)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		return m, waitForLog(m.logCh)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if !m.loaded {
		fmt.Fprintf(&b, "%s Collecting status...\n", m.spinner.View())
		return b.String()
	}

	b.WriteString(reporting.RenderReport(m.report))

	state := "updated " + m.lastUpdate.Format("15:04:05")
	if m.refreshing {
		state = m.spinner.View() + " refreshing"
	}
	b.WriteString(color.Render(color.MutedStyle, fmt.Sprintf("%s · every %s · r refresh · q quit", state, m.interval)))
	b.WriteString("\n")

	if len(m.logs) > 0 {
		b.WriteString("\n")
		for _, e := range m.logs {
			line := fmt.Sprintf("%s [%s] %s: %s", e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message)
			b.WriteString(color.Render(logStyle(e.Level), line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) fetchStatusCmd() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		return statusMsg{report: source(ctx), at: time.Now()}
	}
}

func waitForLog(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg{entry: entry}
	}
}

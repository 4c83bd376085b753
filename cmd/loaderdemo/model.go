package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/corvidae/asyncload/internal/events"
)

type jobRow struct {
	name     string
	status   string // "pending", "running", "succeeded", "failed"
	priority int
}

// model is the Bubble Tea program driving the demo: a list of jobs on
// the left, a scrolling log of lifecycle events on the right, and a
// progress bar summarizing the whole batch.
type model struct {
	jobs      map[string]*jobRow
	jobOrder  []string
	log       viewport.Model
	logLines  []string
	eventSub  <-chan events.Event
	width     int
	height    int
	quitting  bool
	scheduled int
	succeeded int
	failed    int
}

func newModel(sub <-chan events.Event) model {
	vp := viewport.New(0, 0)
	return model{
		jobs:     make(map[string]*jobRow),
		log:      vp,
		eventSub: sub,
	}
}

func waitForEvent(sub <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-sub
		if !ok {
			return nil
		}
		return event
	}
}

func (m model) Init() tea.Cmd {
	return waitForEvent(m.eventSub)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit, keyCtrlC:
			m.quitting = true
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLog()

	case events.JobScheduledEvent:
		m.jobs[msg.Name] = &jobRow{name: msg.Name, status: "pending", priority: msg.Priority}
		m.jobOrder = append(m.jobOrder, msg.Name)
		m.scheduled++
		m.appendLog(fmt.Sprintf("scheduled %s (priority %d)", msg.Name, msg.Priority))
		cmds = append(cmds, waitForEvent(m.eventSub))

	case events.BatchScheduledEvent:
		m.appendLog(fmt.Sprintf("batch %s: %d job(s) newly admitted", msg.Digest, msg.Admitted))
		cmds = append(cmds, waitForEvent(m.eventSub))

	case events.PoolStartedEvent:
		m.appendLog("pool started")
		cmds = append(cmds, waitForEvent(m.eventSub))

	case events.PoolStoppedEvent:
		m.appendLog("pool stopped")
		cmds = append(cmds, waitForEvent(m.eventSub))

	case events.JobStartedEvent:
		if row, ok := m.jobs[msg.Name]; ok {
			row.status = "running"
		}
		m.appendLog(fmt.Sprintf("started %s", msg.Name))
		cmds = append(cmds, waitForEvent(m.eventSub))

	case events.JobSucceededEvent:
		if row, ok := m.jobs[msg.Name]; ok {
			row.status = "succeeded"
		}
		m.succeeded++
		m.appendLog(fmt.Sprintf("succeeded %s", msg.Name))
		cmds = append(cmds, waitForEvent(m.eventSub))

	case events.JobFailedEvent:
		if row, ok := m.jobs[msg.Name]; ok {
			row.status = "failed"
		}
		m.failed++
		m.appendLog(fmt.Sprintf("failed %s: %s (%v)", msg.Name, msg.Kind, msg.Cause))
		cmds = append(cmds, waitForEvent(m.eventSub))

	case events.ProgressEvent:
		cmds = append(cmds, waitForEvent(m.eventSub))
	}

	return m, tea.Batch(cmds...)
}

func (m *model) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	m.log.SetContent(strings.Join(m.logLines, "\n"))
	m.log.GotoBottom()
}

func (m *model) resizeLog() {
	listWidth := 28
	logWidth := m.width - listWidth - 4
	logHeight := m.height - 6
	if logWidth < 10 {
		logWidth = 10
	}
	if logHeight < 3 {
		logHeight = 3
	}
	m.log.Width = logWidth
	m.log.Height = logHeight
}

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	list := m.renderJobList(26)
	log := styleBorder.Width(m.log.Width).Height(m.log.Height).Render(m.log.View())

	main := lipgloss.JoinHorizontal(lipgloss.Top, list, log)
	bar := m.renderProgressBar()
	help := helpView()

	return lipgloss.JoinVertical(lipgloss.Left, main, bar, help)
}

func (m model) renderJobList(width int) string {
	var b strings.Builder
	title := styleTitle.Render("Jobs")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", lipgloss.Width(title)))
	b.WriteString("\n\n")

	for _, name := range m.jobOrder {
		row := m.jobs[name]
		b.WriteString(statusIcon(row.status))
		b.WriteString(" ")
		b.WriteString(stylePriority(row.priority).Render(name))
		b.WriteString("\n")
	}

	return styleBorder.Width(width).Height(m.log.Height + 2).Render(b.String())
}

func (m model) renderProgressBar() string {
	total := m.scheduled
	if total == 0 {
		return ""
	}
	barWidth := 40
	succeededWidth := (m.succeeded * barWidth) / total
	failedWidth := (m.failed * barWidth) / total
	pendingWidth := barWidth - succeededWidth - failedWidth

	bar := styleStatusSucceeded.Render(strings.Repeat("=", max0(succeededWidth)))
	bar += styleStatusFailed.Render(strings.Repeat("!", max0(failedWidth)))
	bar += styleStatusPending.Render(strings.Repeat(".", max0(pendingWidth)))

	return fmt.Sprintf("[%s] %d/%d done", bar, m.succeeded+m.failed, total)
}

func statusIcon(status string) string {
	switch status {
	case "running":
		return styleStatusRunning.Render("●")
	case "succeeded":
		return styleStatusSucceeded.Render("✓")
	case "failed":
		return styleStatusFailed.Render("✗")
	default:
		return styleStatusPending.Render("○")
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

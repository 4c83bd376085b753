package main

import "github.com/charmbracelet/lipgloss"

// styleBorder frames both panes. The demo has no focus toggle between
// the job list and the log — unlike the multi-pane agent dashboard
// this is adapted from, there's nothing here for the user to switch
// focus between — so there is only one border style, not a
// focused/unfocused pair.
var styleBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#5A56E0"))

var (
	styleStatusRunning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E0A526")).
		Bold(true)

	styleStatusSucceeded = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3FB950")).
		Bold(true)

	styleStatusFailed = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E5534B")).
		Bold(true)

	styleStatusPending = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6E7681"))
)

// stylePriority renders a job name by its admitted priority relative
// to the loader's default of 0: jobs pushed above the default stand
// out bold, jobs pushed below it (the way the fan-in Smoke shape
// admits its low-priority merge job) are rendered faint, so a batch
// that mixes priorities is visibly distinguishable in the job list
// without a dedicated priority column.
func stylePriority(p int) lipgloss.Style {
	switch {
	case p > 0:
		return lipgloss.NewStyle().Bold(true)
	case p < 0:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

var (
	styleTitle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
)

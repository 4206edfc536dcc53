package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan, headings
	colorAccent  = lipgloss.Color("#FFD700") // Gold, indices
	colorSuccess = lipgloss.Color("#00E676") // Green, passed
	colorDanger  = lipgloss.Color("#FF5252") // Red, failures
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray, secondary text
)

// Status icons.
const (
	iconDone   = "✓"
	iconFailed = "✗"
	iconBullet = "•"
	iconStep   = "▸"
)

var (
	styleHeading = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleDanger = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleIndex = lipgloss.NewStyle().
			Foreground(colorAccent)
)

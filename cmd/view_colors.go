package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var colorSuccess = lipgloss.Color("#00B785")

var stylePassed = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
var styleInfo = lipgloss.NewStyle().Foreground(lipgloss.Color("#e08dff")).Bold(true)
var styleFailed = lipgloss.NewStyle().Foreground(lipgloss.Color("#e1244c")).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)

var styleSuccessBox = lipgloss.NewStyle().
	Padding(0, 1).
	Margin(1, 0).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorSuccess).
	Width(80)

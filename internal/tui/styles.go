package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-desk-widget/internal/audio"
)

const (
	accentColor  = lipgloss.Color(audio.BarColor)
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	infoColor    = lipgloss.Color("#3B82F6")
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Faint(true)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(accentColor).Underline(true)
	clockStyle     = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	waveStyle      = lipgloss.NewStyle().Foreground(accentColor)
	recordingStyle = lipgloss.NewStyle().Bold(true).Foreground(errorColor)

	noticeStyles = map[string]lipgloss.Style{
		"success": lipgloss.NewStyle().Foreground(successColor),
		"error":   lipgloss.NewStyle().Bold(true).Foreground(errorColor),
		"info":    lipgloss.NewStyle().Foreground(infoColor),
	}
)

// Package tui hosts the incrementally loaded diagram list in a Bubble Tea program.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader      = lipgloss.Color("39")
	ColorLabel       = lipgloss.Color("252")
	ColorMuted       = lipgloss.Color("242")
	ColorPlaceholder = lipgloss.Color("238")
	ColorCollection  = lipgloss.Color("141")
	ColorWarning     = lipgloss.Color("214")
	ColorCritical    = lipgloss.Color("196")
)

// Shared styles.
//
//nolint:gochecknoglobals // Lip Gloss styles are immutable values shared by all views.
var (
	HeaderStyle      = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorLabel)
	SubtleStyle      = lipgloss.NewStyle().Foreground(ColorMuted)
	CollectionStyle  = lipgloss.NewStyle().Foreground(ColorCollection)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(ColorPlaceholder)
	WarningStyle     = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)
	StatusBarStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
)

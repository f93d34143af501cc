package tui

import (
	"yuiclaw/internal/color"
	"yuiclaw/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

func logStyle(level logging.LogLevel) lipgloss.Style {
	switch level {
	case logging.LevelError:
		return color.ErrorStyle
	case logging.LevelWarn:
		return color.WarnStyle
	case logging.LevelDebug:
		return color.MutedStyle
	default:
		return lipgloss.NewStyle()
	}
}

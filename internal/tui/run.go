package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yuiclaw/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the watch view and blocks until the user quits or ctx ends.
// Logging is routed into the view while it runs.
func Run(ctx context.Context, source StatusSource, interval time.Duration, level logging.LogLevel) error {
	logCh := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	p := tea.NewProgram(NewModel(ctx, source, interval, logCh), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("status view failed: %w", err)
	}
	return nil
}

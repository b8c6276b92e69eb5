// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the audition session
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soundgen/soundgen-go/internal/config"
)

// Run starts the audition TUI and blocks until the session ends. outPath may
// be empty for a listen-only session.
func Run(cfg config.Config, outPath string) error {
	p := tea.NewProgram(NewModel(cfg, outPath), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/ice-cold-beer/internal/config"
	"github.com/fchimpan/ice-cold-beer/internal/game"
	"github.com/fchimpan/ice-cold-beer/internal/tui"
)

func defaultRunTUI(session *game.Session, opts config.Options) error {
	if opts.DebugLog != "" {
		f, err := tea.LogToFile(opts.DebugLog, "icebeer")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		// The TUI owns the terminal; drop diagnostics unless asked for them.
		log.SetOutput(io.Discard)
	}

	log.Printf("starting: seed=%d tps=%d", opts.Seed, opts.TPS)
	m := tui.NewModel(session, opts.Seed, opts.TPS)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}

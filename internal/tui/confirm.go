package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	message string
	reply   chan<- bool
}

// answer delivers the choice to the waiting service call exactly once.
func (m *confirmModel) answer(ok bool) {
	if m.reply == nil {
		return
	}
	m.reply <- ok
	m.reply = nil
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

// promptConfirmer implements service.Confirmer by asking the running program.
// It must only be called from a tea.Cmd, never from Update.
type promptConfirmer struct {
	send func(tea.Msg)
}

func (c *promptConfirmer) Confirm(ctx context.Context, message string) bool {
	if c.send == nil {
		return false
	}

	reply := make(chan bool, 1)
	c.send(confirmRequestMsg{message: message, reply: reply})

	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}

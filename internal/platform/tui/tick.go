// Package tui provides the Bubble Tea host for the engine. It turns terminal
// ticks into scheduler frames, keys and mouse presses into input events and
// the engine's screen into styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// FrameMsg asks the host to fire pending engine frames.
type FrameMsg time.Time

// reloadMsg reports that the game's config file changed on disk.
type reloadMsg struct{ path string }

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 60
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// waitForReload blocks until the watcher reports a change. It returns nil
// once the watcher is closed, which ends the command chain.
func waitForReload(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-w.Events
		if !ok {
			return nil
		}
		return reloadMsg{path: path}
	}
}

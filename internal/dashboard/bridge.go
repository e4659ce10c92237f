package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/apex/internal/feed"
)

// Sender is the part of *tea.Program the bridge needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge implements feed.Sink and forwards updates to the Bubble Tea program
// via program.Send(). This is goroutine-safe.
type Bridge struct {
	program Sender
}

var _ feed.Sink = (*Bridge)(nil)

// NewBridge creates a new bridge that forwards updates to the given program.
func NewBridge(program Sender) *Bridge {
	return &Bridge{program: program}
}

// Publish forwards one feed update to the TUI.
func (b *Bridge) Publish(u feed.Update) {
	b.program.Send(UpdateMsg(u))
}

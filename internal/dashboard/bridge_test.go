package dashboard

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/apex/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (f *fakeSender) Send(msg tea.Msg) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
}

func TestBridge_Publish(t *testing.T) {
	sender := &fakeSender{}
	b := NewBridge(sender)

	u := feed.Update{Seq: 4, Session: "s", Status: feed.StatusConnected, Ping: 30}
	b.Publish(u)

	require.Len(t, sender.msgs, 1)
	assert.Equal(t, UpdateMsg(u), sender.msgs[0])
}

func TestSurface_RunUntilCancelled(t *testing.T) {
	var out bytes.Buffer
	s := NewSurface(SurfaceOptions{
		Input:  strings.NewReader(""),
		Output: &out,
		Seed:   feed.DefaultSeed(),
	})
	assert.Equal(t, "terminal", s.Name())
	assert.NotNil(t, s.Sink())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readyCalled := make(chan struct{})
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(ctx, func() {
			s.Sink().Publish(feed.Update{Session: "s", Status: feed.StatusConnecting, Snap: feed.DefaultSeed()})
			close(readyCalled)
			cancel()
		})
	}()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("surface did not stop after cancel")
	}

	select {
	case <-readyCalled:
	default:
		t.Fatal("ready was not called")
	}
}

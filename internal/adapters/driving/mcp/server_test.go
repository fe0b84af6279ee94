package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/slidedeck/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/slidedeck/internal/converters/markdown"
	"github.com/custodia-labs/slidedeck/internal/core/services"
)

func newTestServer(t *testing.T) (*Server, *services.DeckService) {
	t.Helper()
	deck := services.NewDeckService(memory.NewStateStore(), nil, markdown.New(), nil)
	server, err := NewServer(&Ports{Deck: deck})
	require.NoError(t, err)
	return server, deck
}

func TestNewServer(t *testing.T) {
	t.Run("nil deck service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDeckService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, _ := newTestServer(t)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil deck service returns error", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingDeckService)
	})

	t.Run("deck service is valid", func(t *testing.T) {
		deck := services.NewDeckService(nil, nil, markdown.New(), nil)
		ports := &Ports{Deck: deck}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	server, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- server.RunHTTP(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=maestro", manager)

	require.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=maestro", listener.connString)
	assert.NotNil(t, listener.subs)
	assert.Equal(t, manager, listener.manager)
	assert.False(t, listener.started.Load())
}

func TestNotifyListener_BeforeStart(t *testing.T) {
	// Until Start opens the dedicated connection, subscribe must fail loudly
	// and unsubscribe for an untracked channel must be a no-op.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=maestro", manager)

	t.Run("subscribe fails without a connection", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), MissionChannel("m-1"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
		assert.Empty(t, listener.subs)
	})

	t.Run("unsubscribe for untracked channel is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), MissionChannel("m-1"))
		assert.NoError(t, err)
	})
}

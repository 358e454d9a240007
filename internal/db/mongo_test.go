package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFollowsHeartbeats(t *testing.T) {
	m := &Mongo{}
	monitor := m.serverMonitor()

	assert.Equal(t, StateDisconnected, m.State())

	monitor.ServerHeartbeatSucceeded(nil)
	assert.Equal(t, StateConnected, m.State())

	monitor.ServerHeartbeatFailed(nil)
	assert.Equal(t, StateDisconnected, m.State())

	monitor.ServerHeartbeatSucceeded(nil)
	assert.Equal(t, StateConnected, m.State())
}

func TestCloseMarksDisconnected(t *testing.T) {
	m := &Mongo{}
	m.serverMonitor().ServerHeartbeatSucceeded(nil)
	require.Equal(t, StateConnected, m.State())

	require.NoError(t, m.Close(context.Background()))
	assert.Equal(t, StateDisconnected, m.State())
}

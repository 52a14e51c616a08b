//go:build integration
// +build integration

package delivery

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"team-lifecycle-backend/internal/service"
	"team-lifecycle-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

func TestRedisSinkAgainstServer(t *testing.T) {
	client := testutils.SetupRedis(t)
	sink := NewRedisSink(client, "it")
	ctx := context.Background()

	d, err := sink.Notify(ctx, service.Notification{UserID: "U1", Kind: service.EventTeamCreated})
	require.NoError(t, err)
	assert.False(t, d.Delivered, "nobody subscribed yet")

	sub := client.Subscribe(ctx, sink.Channel("U1"))
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	d, err = sink.Notify(ctx, service.Notification{UserID: "U1", Kind: service.EventTeamCreated, TeamNumber: 1})
	require.NoError(t, err)
	assert.True(t, d.Delivered)

	select {
	case msg := <-sub.Channel():
		var env Envelope
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &env))
		assert.Equal(t, d.Ref, env.ID)
		assert.Equal(t, 1, env.TeamNumber)
	case <-time.After(5 * time.Second):
		t.Fatal("no message received")
	}
}

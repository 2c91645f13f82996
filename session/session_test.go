package session

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-classic/constants"
	"snake-classic/models"
	"snake-classic/scores"
)

type envelope struct {
	Type string           `json:"type"`
	Data models.GameState `json:"data"`
}

type capture struct {
	mu       sync.Mutex
	messages []envelope
}

func (c *capture) Send(message []byte) error {
	var env envelope
	if err := json.Unmarshal(message, &env); err != nil {
		return err
	}
	c.mu.Lock()
	c.messages = append(c.messages, env)
	c.mu.Unlock()
	return nil
}

func (c *capture) all() []envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]envelope(nil), c.messages...)
}

func (c *capture) last() envelope {
	msgs := c.all()
	if len(msgs) == 0 {
		return envelope{}
	}
	return msgs[len(msgs)-1]
}

func TestEncode(t *testing.T) {
	raw, err := Encode(constants.MSG_CONNECTED, map[string]any{"session_id": "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"connected","session_id":"abc"}`, string(raw))
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		raw string
		key string
		ok  bool
	}{
		{`{"type":"key","key":"ArrowUp"}`, "ArrowUp", true},
		{`{"type":"key","key":" "}`, " ", true},
		{`{"type":"chat","key":"ArrowUp"}`, "", false},
		{`{"type":"key","key":5}`, "", false},
		{`{"key":"Enter"}`, "", false},
		{`garbage`, "", false},
	}
	for _, tt := range tests {
		key, ok := DecodeKey([]byte(tt.raw))
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.key, key, tt.raw)
	}
}

func TestSessionLifecycle(t *testing.T) {
	sink := &capture{}
	sess := New("test", scores.NewLocal(scores.NewStore()), sink)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "test", sess.Transport)

	// Stop before Start is a no-op
	sess.Stop()

	sess.Start(context.Background())
	sess.Start(context.Background())

	require.Eventually(t, func() bool { return len(sink.all()) > 0 }, time.Second, 5*time.Millisecond)
	first := sink.all()[0]
	assert.Equal(t, constants.MSG_GAME_UPDATE, first.Type)
	assert.Equal(t, models.PhaseNotStarted, first.Data.Phase)
	assert.Equal(t, sess.ID, first.Data.ID)

	sess.HandleKey(constants.KEY_ENTER)
	require.Eventually(t, func() bool { return sink.last().Data.Phase == models.PhaseRunning }, time.Second, 5*time.Millisecond)

	sess.HandleKey(constants.KEY_SPACE)
	require.Eventually(t, func() bool { return sink.last().Data.Phase == models.PhasePaused }, time.Second, 5*time.Millisecond)

	sess.Stop()
	sess.Stop()
}

func TestRenderMessageTypes(t *testing.T) {
	sink := &capture{}
	sess := &Session{ID: "s", sender: sink}

	sess.render(models.GameState{Phase: models.PhaseRunning})
	sess.render(models.GameState{Phase: models.PhaseGameOver})
	sess.render(models.GameState{Phase: models.PhaseGameOver, LeaderboardLoaded: true})
	sess.render(models.GameState{Phase: models.PhaseGameOver, LeaderboardLoaded: true})
	sess.render(models.GameState{Phase: models.PhaseNotStarted})

	var types []string
	for _, m := range sink.all() {
		types = append(types, m.Type)
	}
	assert.Equal(t, []string{
		constants.MSG_GAME_UPDATE,
		constants.MSG_GAME_OVER,
		constants.MSG_LEADERBOARD,
		constants.MSG_GAME_UPDATE,
		constants.MSG_GAME_UPDATE,
	}, types)
}

package webrtc

import (
	"testing"

	"github.com/pion/webrtc/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWithoutPeer(t *testing.T) {
	m := NewManager(nil)
	assert.ErrorIs(t, m.Send("missing", []byte("x")), ErrChannelNotOpen)
}

func TestCreateAndRemovePeer(t *testing.T) {
	m := NewManager(nil)
	closed := 0
	peer, err := m.CreatePeerConnection("s1", PeerHandlers{OnClose: func() { closed++ }})
	require.NoError(t, err)
	assert.Equal(t, "game", peer.DataChannel.Label())
	assert.Equal(t, 1, m.Len())

	got, ok := m.GetPeer("s1")
	assert.True(t, ok)
	assert.Same(t, peer, got)

	// Channel is not open until a remote peer connects
	assert.ErrorIs(t, m.Send("s1", []byte("x")), ErrChannelNotOpen)

	m.RemovePeer("s1")
	assert.Equal(t, 0, m.Len())
	m.RemovePeer("s1")
}

func TestAnswerRejectsBadOffer(t *testing.T) {
	m := NewManager(nil)
	_, err := m.Answer("s1", "not an sdp", PeerHandlers{})
	assert.Error(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestICEConfiguration(t *testing.T) {
	cfg := NewManager([]string{"stun:stun.example:3478"}).getICEConfiguration()
	require.Len(t, cfg.ICEServers, 1)
	assert.Equal(t, []string{"stun:stun.example:3478"}, cfg.ICEServers[0].URLs)
	assert.Equal(t, webrtc.ICETransportPolicyAll, cfg.ICETransportPolicy)

	assert.Empty(t, NewManager(nil).getICEConfiguration().ICEServers)
}

package webrtc

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"github.com/pion/webrtc/v3"
)

var ErrChannelNotOpen = errors.New("data channel not open")

// PeerHandlers are the callbacks a session registers on its data channel.
type PeerHandlers struct {
	OnOpen    func()
	OnMessage func(data []byte)
	OnClose   func()
}

type PeerConnection struct {
	PeerConnection *webrtc.PeerConnection
	DataChannel    *webrtc.DataChannel
	SessionID      string
}

// Manager owns the server side of every WebRTC game session.
type Manager struct {
	peers      map[string]*PeerConnection
	mutex      sync.RWMutex
	iceServers []string
}

func NewManager(iceServers []string) *Manager {
	return &Manager{
		peers:      make(map[string]*PeerConnection),
		iceServers: iceServers,
	}
}

// Answer creates a peer connection for sessionID, applies the remote offer
// and returns the local answer once ICE gathering has finished.
func (m *Manager) Answer(sessionID string, offerSDP string, handlers PeerHandlers) (*webrtc.SessionDescription, error) {
	peer, err := m.CreatePeerConnection(sessionID, handlers)
	if err != nil {
		return nil, err
	}

	offer := webrtc.SessionDescription{
		Type: webrtc.SDPTypeOffer,
		SDP:  offerSDP,
	}
	if err := peer.PeerConnection.SetRemoteDescription(offer); err != nil {
		m.RemovePeer(sessionID)
		return nil, err
	}

	answer, err := peer.PeerConnection.CreateAnswer(nil)
	if err != nil {
		m.RemovePeer(sessionID)
		return nil, err
	}

	gatherComplete := webrtc.GatheringCompletePromise(peer.PeerConnection)
	if err := peer.PeerConnection.SetLocalDescription(answer); err != nil {
		m.RemovePeer(sessionID)
		return nil, err
	}
	<-gatherComplete

	return peer.PeerConnection.LocalDescription(), nil
}

func (m *Manager) CreatePeerConnection(sessionID string, handlers PeerHandlers) (*PeerConnection, error) {
	peerConnection, err := webrtc.NewPeerConnection(m.getICEConfiguration())
	if err != nil {
		return nil, err
	}

	var isClosed atomic.Bool
	closed := func() {
		if !isClosed.CompareAndSwap(false, true) {
			return
		}
		m.RemovePeer(sessionID)
		if handlers.OnClose != nil {
			handlers.OnClose()
		}
	}

	peerConnection.OnICEConnectionStateChange(func(state webrtc.ICEConnectionState) {
		log.Printf("ICE Connection State for session %s: %s", sessionID, state.String())
		if state == webrtc.ICEConnectionStateDisconnected || state == webrtc.ICEConnectionStateFailed {
			closed()
		}
	})

	ordered := true
	dataChannel, err := peerConnection.CreateDataChannel("game", &webrtc.DataChannelInit{Ordered: &ordered})
	if err != nil {
		peerConnection.Close()
		return nil, err
	}

	peer := &PeerConnection{
		PeerConnection: peerConnection,
		DataChannel:    dataChannel,
		SessionID:      sessionID,
	}

	dataChannel.OnOpen(func() {
		log.Printf("DataChannel opened for session %s", sessionID)
		if handlers.OnOpen != nil {
			handlers.OnOpen()
		}
	})

	dataChannel.OnMessage(func(msg webrtc.DataChannelMessage) {
		if handlers.OnMessage != nil {
			handlers.OnMessage(msg.Data)
		}
	})

	dataChannel.OnClose(func() {
		log.Printf("DataChannel closed for session %s", sessionID)
		closed()
	})

	dataChannel.OnError(func(err error) {
		log.Printf("DataChannel error for session %s: %v", sessionID, err)
	})

	m.mutex.Lock()
	m.peers[sessionID] = peer
	m.mutex.Unlock()

	return peer, nil
}

func (m *Manager) GetPeer(sessionID string) (*PeerConnection, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	peer, exists := m.peers[sessionID]
	return peer, exists
}

func (m *Manager) RemovePeer(sessionID string) {
	m.mutex.Lock()
	peer, exists := m.peers[sessionID]
	delete(m.peers, sessionID)
	m.mutex.Unlock()

	if exists && peer.PeerConnection != nil {
		if err := peer.PeerConnection.Close(); err != nil {
			log.Printf("Failed to close peer for session %s: %v", sessionID, err)
		}
	}
}

// Send writes an encoded message on the session's data channel.
func (m *Manager) Send(sessionID string, message []byte) error {
	peer, exists := m.GetPeer(sessionID)
	if !exists || peer.DataChannel == nil {
		return ErrChannelNotOpen
	}
	if peer.DataChannel.ReadyState() != webrtc.DataChannelStateOpen {
		return ErrChannelNotOpen
	}
	return peer.DataChannel.Send(message)
}

func (m *Manager) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.peers)
}

func (m *Manager) getICEConfiguration() webrtc.Configuration {
	config := webrtc.Configuration{
		ICETransportPolicy: webrtc.ICETransportPolicyAll,
	}
	if len(m.iceServers) > 0 {
		config.ICEServers = []webrtc.ICEServer{{URLs: m.iceServers}}
	}
	return config
}

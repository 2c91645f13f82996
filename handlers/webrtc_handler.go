package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"snake-classic/game"
	"snake-classic/session"
	webrtcManager "snake-classic/webrtc"
)

// WebRTCHandler hosts game sessions over a WebRTC data channel.
type WebRTCHandler struct {
	sessions      *session.Service
	scores        game.ScoreService
	webrtcManager *webrtcManager.Manager
	origin        string
	ctx           context.Context
}

func NewWebRTCHandler(ctx context.Context, sessions *session.Service, scores game.ScoreService, webrtcManager *webrtcManager.Manager, origin string) *WebRTCHandler {
	return &WebRTCHandler{
		sessions:      sessions,
		scores:        scores,
		webrtcManager: webrtcManager,
		origin:        origin,
		ctx:           ctx,
	}
}

// HandleOffer answers a browser offer and binds a new session to the
// resulting data channel.
func (h *WebRTCHandler) HandleOffer(w http.ResponseWriter, r *http.Request) {
	enableCORS(w, h.origin)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxScoreBodySize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to read body"})
		return
	}

	var offerData struct {
		Offer struct {
			Type string `json:"type"`
			SDP  string `json:"sdp"`
		} `json:"offer"`
	}
	if err := json.Unmarshal(body, &offerData); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}
	if offerData.Offer.SDP == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Offer SDP is required"})
		return
	}

	var sess *session.Session
	sess = session.New("webrtc", h.scores, session.SenderFunc(func(message []byte) error {
		return h.webrtcManager.Send(sess.ID, message)
	}))

	answer, err := h.webrtcManager.Answer(sess.ID, offerData.Offer.SDP, webrtcManager.PeerHandlers{
		OnOpen: func() {
			h.sessions.Add(sess)
			sess.Start(h.ctx)
			log.Printf("Session %s started over webrtc, active sessions: %d", sess.ID, h.sessions.Len())
		},
		OnMessage: func(data []byte) {
			key, ok := session.DecodeKey(data)
			if !ok {
				log.Printf("Ignoring malformed message from session %s", sess.ID)
				return
			}
			sess.HandleKey(key)
		},
		OnClose: func() {
			go func() {
				sess.Stop()
				h.sessions.Remove(sess.ID)
				log.Printf("Session %s closed, active sessions: %d", sess.ID, h.sessions.Len())
			}()
		},
	})
	if err != nil {
		log.Printf("WebRTC negotiation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to negotiate peer connection"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sess.ID,
		"answer": map[string]string{
			"type": answer.Type.String(),
			"sdp":  answer.SDP,
		},
	})
}

package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"snake-classic/constants"
	"snake-classic/game"
	"snake-classic/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 256
)

var errSendBufferFull = errors.New("send buffer full")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// WebSocketHandler hosts one game session per connection.
type WebSocketHandler struct {
	sessions *session.Service
	scores   game.ScoreService
	ctx      context.Context
}

func NewWebSocketHandler(ctx context.Context, sessions *session.Service, scores game.ScoreService) *WebSocketHandler {
	return &WebSocketHandler{
		sessions: sessions,
		scores:   scores,
		ctx:      ctx,
	}
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	send := make(chan []byte, sendBufferSize)
	sess := session.New("websocket", h.scores, session.SenderFunc(func(message []byte) error {
		select {
		case send <- message:
			return nil
		default:
			return errSendBufferFull
		}
	}))

	connected, err := session.Encode(constants.MSG_CONNECTED, map[string]any{"session_id": sess.ID})
	if err != nil {
		log.Printf("Failed to encode connected message: %v", err)
		conn.Close()
		return
	}
	send <- connected

	h.sessions.Add(sess)
	sess.Start(h.ctx)
	log.Printf("Session %s started over websocket, active sessions: %d", sess.ID, h.sessions.Len())

	go h.writePump(conn, send)
	h.readPump(sess, conn)

	sess.Stop()
	h.sessions.Remove(sess.ID)
	close(send)
	log.Printf("Session %s closed, active sessions: %d", sess.ID, h.sessions.Len())
}

func (h *WebSocketHandler) readPump(sess *session.Session, conn *websocket.Conn) {
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for session %s: %v", sess.ID, err)
			}
			break
		}

		key, ok := session.DecodeKey(message)
		if !ok {
			log.Printf("Ignoring malformed message from session %s", sess.ID)
			continue
		}
		sess.HandleKey(key)
	}
}

func (h *WebSocketHandler) writePump(conn *websocket.Conn, send <-chan []byte) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

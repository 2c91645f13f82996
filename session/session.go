package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"snake-classic/constants"
	"snake-classic/game"
	"snake-classic/models"
)

// Sender delivers encoded messages to the remote player.
type Sender interface {
	Send(message []byte) error
}

type SenderFunc func(message []byte) error

func (f SenderFunc) Send(message []byte) error { return f(message) }

// Session is one browser game hosted by the server.
type Session struct {
	ID        string
	Transport string
	CreatedAt time.Time

	controller *game.Controller
	sender     Sender

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	lastPhase  models.Phase
	lastLoaded bool
}

func New(transport string, scores game.ScoreService, sender Sender) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Transport: transport,
		CreatedAt: time.Now(),
		sender:    sender,
		done:      make(chan struct{}),
	}
	s.controller = game.NewController(game.Options{
		ID:       s.ID,
		Scores:   scores,
		Renderer: game.RendererFunc(s.render),
	})
	return s
}

// Start runs the game loop in the background until Stop or parent is done.
func (s *Session) Start(parent context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	go func() {
		defer close(s.done)
		if err := s.controller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Session %s stopped: %v", s.ID, err)
		}
	}()
}

// HandleKey forwards a key press to the game.
func (s *Session) HandleKey(key string) {
	s.controller.Input(key)
}

// Stop cancels the game loop and waits for it to exit.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-s.done
}

func (s *Session) render(state models.GameState) {
	msgType := constants.MSG_GAME_UPDATE
	switch {
	case state.Phase == models.PhaseGameOver && s.lastPhase != models.PhaseGameOver:
		msgType = constants.MSG_GAME_OVER
	case state.LeaderboardLoaded && !s.lastLoaded:
		msgType = constants.MSG_LEADERBOARD
	}
	s.lastPhase = state.Phase
	s.lastLoaded = state.LeaderboardLoaded

	message, err := Encode(msgType, map[string]any{"data": state})
	if err != nil {
		log.Printf("Session %s: encode %s: %v", s.ID, msgType, err)
		return
	}
	if err := s.sender.Send(message); err != nil {
		log.Printf("Session %s: send %s: %v", s.ID, msgType, err)
	}
}

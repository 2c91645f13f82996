package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-classic/config"
	"snake-classic/handlers"
	"snake-classic/scores"
	"snake-classic/session"
	"snake-classic/webrtc"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := scores.NewStore()
	local := scores.NewLocal(store)
	sessions := session.NewService()
	webrtcManager := webrtc.NewManager(cfg.ICEServers)

	scoresHandler := handlers.NewScoresHandler(store, cfg.CORSOrigin)
	wsHandler := handlers.NewWebSocketHandler(ctx, sessions, local)
	webrtcHandler := handlers.NewWebRTCHandler(ctx, sessions, local, webrtcManager, cfg.CORSOrigin)

	mux := http.NewServeMux()
	mux.HandleFunc("/", scoresHandler.HandleRoot)
	mux.HandleFunc("/scores", scoresHandler.HandleScores)

	// Hosted game sessions
	mux.Handle("/ws", wsHandler)
	mux.HandleFunc("/webrtc/offer", webrtcHandler.HandleOffer)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Printf("Shutting down, stopping %d sessions", sessions.Len())
		sessions.StopAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Server is running at http://localhost:%s", cfg.Port)
	log.Printf("Score endpoints: GET /scores, POST /scores")
	log.Printf("Game session endpoints: /ws, /webrtc/offer")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

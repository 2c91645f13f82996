package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-classic/audio"
	"snake-classic/game"
	"snake-classic/scoreclient"
	"snake-classic/tui"
)

func main() {
	scoreURL := flag.String("url", envOr("SNAKE_SCORE_URL", scoreclient.DefaultBaseURL), "high-score server base URL")
	logPath := flag.String("log", os.Getenv("SNAKE_LOG"), "write logs to this file (default: discard)")
	sound := flag.Bool("sound", false, "play sound effects")
	seed := flag.Uint64("seed", 0, "food placement seed (0: time based)")
	timeout := flag.Duration("timeout", 5*time.Second, "score server request timeout")
	flag.Parse()

	// The terminal belongs to tcell, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var player *audio.Player
	if *sound {
		// Non-fatal, the game runs without sound
		if player, err = audio.New(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
			player = nil
		}
	}
	defer player.Close()

	view := tui.NewView(screen, player)
	controller := game.NewController(game.Options{
		ID:       "local",
		Scores:   scoreclient.New(*scoreURL, *timeout),
		Renderer: view,
		Seed:     *seed,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		controller.Run(ctx)
	}()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			cancel()
			<-done
			return
		case *tcell.EventKey:
			key, quit := tui.KeyFor(ev)
			if quit {
				cancel()
				<-done
				return
			}
			if key != "" {
				controller.Input(key)
			}
		case *tcell.EventResize:
			screen.Sync()
			view.Redraw()
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

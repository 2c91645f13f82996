package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays short game sound effects. A nil *Player is silent.
type Player struct {
	rate beep.SampleRate
}

// New opens the speaker. Callers treat an error as "play without sound".
func New() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{rate: sampleRate}, nil
}

// Eat is the food pickup blip.
func (p *Player) Eat() {
	p.play(880, 50*time.Millisecond)
}

// Crash is played once when the game ends.
func (p *Player) Crash() {
	p.play(180, 300*time.Millisecond)
}

func (p *Player) Close() {
	if p != nil {
		speaker.Close()
	}
}

func (p *Player) play(freq float64, d time.Duration) {
	if p == nil {
		return
	}
	s, err := tone(p.rate, freq, d)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// tone is a quiet sine wave of fixed length.
func tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   -2,
	}, nil
}

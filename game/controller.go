package game

import (
	"context"
	"log"
	"time"

	"snake-classic/constants"
	"snake-classic/models"
)

// ScoreService is the high-score backend a controller reports to.
// Implementations swallow their own failures: SubmitScore is best effort and
// FetchLeaderboard returns an empty slice when the backend is unreachable.
type ScoreService interface {
	SubmitScore(ctx context.Context, score int)
	FetchLeaderboard(ctx context.Context) []models.ScoreRecord
}

// Renderer receives a snapshot after every state change.
type Renderer interface {
	Render(state models.GameState)
}

type RendererFunc func(state models.GameState)

func (f RendererFunc) Render(state models.GameState) { f(state) }

type Options struct {
	ID       string
	Scores   ScoreService
	Renderer Renderer
	Seed     uint64
}

type leaderboardResult struct {
	generation uint64
	records    []models.ScoreRecord
}

// Controller owns one game. Run is the only goroutine that mutates state;
// Input and the leaderboard fetch hand their work to it through channels.
type Controller struct {
	id       string
	state    State
	food     *FoodPlacer
	scores   ScoreService
	renderer Renderer

	keys    chan string
	results chan leaderboardResult

	ctx         context.Context
	generation  uint64
	cancelFetch context.CancelFunc
}

func NewController(opts Options) *Controller {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	food := NewFoodPlacer(seed)
	return &Controller{
		id:       opts.ID,
		state:    NewState(food),
		food:     food,
		scores:   opts.Scores,
		renderer: opts.Renderer,
		keys:     make(chan string, 64),
		results:  make(chan leaderboardResult, 1),
		ctx:      context.Background(),
	}
}

func (c *Controller) ID() string {
	return c.id
}

// Input queues a key press for the Run loop. Keys are dropped when the queue
// is full.
func (c *Controller) Input(key string) {
	select {
	case c.keys <- key:
	default:
		log.Printf("Game %s: input queue full, dropping key %q", c.id, key)
	}
}

// Run drives the game until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.ctx = ctx
	defer c.cancelPending()

	period := c.state.Period
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	c.render()
	for {
		phase := c.state.Phase

		select {
		case <-ctx.Done():
			return ctx.Err()
		case key := <-c.keys:
			c.HandleKey(key)
		case <-ticker.C:
			c.Tick()
		case res := <-c.results:
			c.applyLeaderboard(res)
		}

		started := phase == models.PhaseNotStarted && c.state.Phase == models.PhaseRunning
		if started || c.state.Period != period {
			period = c.state.Period
			ticker.Reset(period)
		}
		c.render()
	}
}

// HandleKey applies one key press to the state machine.
func (c *Controller) HandleKey(key string) {
	switch key {
	case constants.KEY_ENTER:
		if c.state.Phase == models.PhaseNotStarted {
			c.state.Phase = models.PhaseRunning
		}
	case constants.KEY_SPACE:
		switch c.state.Phase {
		case models.PhaseRunning:
			c.state.Phase = models.PhasePaused
		case models.PhasePaused:
			c.state.Phase = models.PhaseRunning
		}
	case constants.KEY_RESTART, "R":
		if c.state.Phase == models.PhaseGameOver {
			c.restart()
		}
	default:
		dir, ok := constants.DirectionForKey(key)
		if !ok || c.state.Phase != models.PhaseRunning {
			return
		}
		if dir == c.state.Snake.Direction.Opposite() {
			return
		}
		c.state.Snake.NextDir = dir
	}
}

// Tick advances a running game by one step.
func (c *Controller) Tick() {
	if c.state.Phase != models.PhaseRunning {
		return
	}

	step := Advance(c.state.Snake, c.state.Snake.NextDir, c.state.Food)
	if step.Collision != CollisionNone {
		log.Printf("Game %s over: %s collision, score=%d", c.id, step.Collision, c.state.Score)
		c.gameOver()
		return
	}
	c.state.Snake = step.Snake
	if !step.Ate {
		return
	}

	c.state.Score++
	food, ok := c.food.Place(c.state.Snake)
	if !ok {
		log.Printf("Game %s over: board cleared, score=%d", c.id, c.state.Score)
		c.state.Cleared = true
		c.gameOver()
		return
	}
	c.state.Food = food
	if period, changed := NextPeriod(c.state.Score, c.state.Period); changed {
		c.state.Period = period
	}
}

// Snapshot returns the current state as renderers see it.
func (c *Controller) Snapshot() models.GameState {
	return c.state.View(c.id)
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.Snapshot())
	}
}

func (c *Controller) gameOver() {
	c.state.Phase = models.PhaseGameOver
	c.state.Leaderboard = nil
	c.state.LeaderboardLoaded = false

	if c.scores == nil {
		c.state.LeaderboardLoaded = true
		return
	}

	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelFetch = cancel
	gen := c.generation
	score := c.state.Score
	go func() {
		c.scores.SubmitScore(ctx, score)
		records := c.scores.FetchLeaderboard(ctx)
		select {
		case c.results <- leaderboardResult{generation: gen, records: records}:
		case <-ctx.Done():
		}
	}()
}

func (c *Controller) applyLeaderboard(res leaderboardResult) {
	if res.generation != c.generation || c.state.Phase != models.PhaseGameOver {
		log.Printf("Game %s: discarding stale leaderboard (generation %d, current %d)", c.id, res.generation, c.generation)
		return
	}
	c.state.Leaderboard = res.records
	c.state.LeaderboardLoaded = true
}

func (c *Controller) restart() {
	c.cancelPending()
	c.generation++
	c.state = NewState(c.food)
}

func (c *Controller) cancelPending() {
	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}
}

package scores

import (
	"context"

	"snake-classic/constants"
	"snake-classic/models"
)

// Local reports scores straight into a Store. Sessions hosted by the server
// use it instead of looping back through HTTP.
type Local struct {
	store *Store
}

func NewLocal(store *Store) *Local {
	return &Local{store: store}
}

func (l *Local) SubmitScore(ctx context.Context, score int) {
	if ctx.Err() != nil {
		return
	}
	l.store.Add(float64(score))
}

func (l *Local) FetchLeaderboard(ctx context.Context) []models.ScoreRecord {
	if ctx.Err() != nil {
		return []models.ScoreRecord{}
	}
	return Top(l.store.All(), constants.LEADERBOARD_TOP)
}

package scores

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-classic/models"
)

func TestStoreAddAndAll(t *testing.T) {
	s := NewStore()
	fixed := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	first := s.Add(7)
	second := s.Add(3)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, fixed, first.CreatedAt)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, float64(7), all[0].Score)
	assert.Equal(t, float64(3), all[1].Score)
	assert.Equal(t, 2, s.Len())
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Add(1)
	all := s.All()
	all[0].Score = 100
	assert.Equal(t, float64(1), s.All()[0].Score)
}

func TestStoreEmptyListIsNotNil(t *testing.T) {
	assert.NotNil(t, NewStore().All())
}

func TestStoreConcurrentAdds(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(float64(i))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}

func scored(values ...float64) []models.ScoreRecord {
	records := make([]models.ScoreRecord, len(values))
	for i, v := range values {
		records[i] = models.ScoreRecord{ID: string(rune('a' + i)), Score: v}
	}
	return records
}

func scoresOf(records []models.ScoreRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Score
	}
	return out
}

func TestTopFive(t *testing.T) {
	records := scored(3, 9, 1, 9, 5, 2)
	top := Top(records, 5)
	assert.Equal(t, []float64{9, 9, 5, 3, 2}, scoresOf(top))

	// Ties keep submission order.
	assert.Equal(t, "b", top[0].ID)
	assert.Equal(t, "d", top[1].ID)

	// Input order is untouched.
	assert.Equal(t, []float64{3, 9, 1, 9, 5, 2}, scoresOf(records))
}

func TestTopFewerThanN(t *testing.T) {
	assert.Equal(t, []float64{4, 1}, scoresOf(Top(scored(1, 4), 5)))
	assert.Empty(t, Top(nil, 5))
}

func TestLocalService(t *testing.T) {
	s := NewStore()
	local := NewLocal(s)
	for _, v := range []int{3, 9, 1, 9, 5, 2} {
		local.SubmitScore(context.Background(), v)
	}
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, []float64{9, 9, 5, 3, 2}, scoresOf(local.FetchLeaderboard(context.Background())))
}

func TestLocalServiceCancelled(t *testing.T) {
	s := NewStore()
	local := NewLocal(s)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	local.SubmitScore(ctx, 5)
	assert.Equal(t, 0, s.Len())
	records := local.FetchLeaderboard(ctx)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

package scores

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"snake-classic/models"
)

// Store keeps every submitted score in memory, in arrival order.
type Store struct {
	mu      sync.RWMutex
	records []models.ScoreRecord
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		records: make([]models.ScoreRecord, 0),
		now:     time.Now,
	}
}

// Add appends a new record and returns it.
func (s *Store) Add(score float64) models.ScoreRecord {
	record := models.ScoreRecord{
		ID:        uuid.New().String(),
		Score:     score,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.records = append(s.records, record)
	s.mu.Unlock()
	return record
}

// All returns a copy of every record.
func (s *Store) All() []models.ScoreRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.ScoreRecord, len(s.records))
	copy(result, s.records)
	return result
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

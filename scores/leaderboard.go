package scores

import (
	"sort"

	"snake-classic/models"
)

// Top returns the n highest records, highest first. Ties keep their input
// order. The input slice is left untouched.
func Top(records []models.ScoreRecord, n int) []models.ScoreRecord {
	sorted := make([]models.ScoreRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

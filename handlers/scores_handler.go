package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"snake-classic/scores"
)

const maxScoreBodySize = 1 << 20

// ScoresHandler serves the high-score API.
type ScoresHandler struct {
	store  *scores.Store
	origin string
}

func NewScoresHandler(store *scores.Store, origin string) *ScoresHandler {
	return &ScoresHandler{
		store:  store,
		origin: origin,
	}
}

// HandleRoot is the liveness endpoint.
func (h *ScoresHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	enableCORS(w, h.origin)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Snake Game Backend is running.")
}

// HandleScores lists scores on GET and records one on POST.
func (h *ScoresHandler) HandleScores(w http.ResponseWriter, r *http.Request) {
	enableCORS(w, h.origin)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.All())
	case http.MethodPost:
		h.createScore(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ScoresHandler) createScore(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxScoreBodySize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to read body"})
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	score, ok := payload["score"].(float64)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Score must be a number"})
		return
	}

	record := h.store.Add(score)
	log.Printf("Score %g saved (%s)", record.Score, record.ID)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Score saved"})
}

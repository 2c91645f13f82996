package scoreclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"snake-classic/constants"
	"snake-classic/models"
	"snake-classic/scores"
)

const DefaultBaseURL = "http://localhost:3000"

// ErrStatus is returned for any non-2xx response.
var ErrStatus = errors.New("unexpected status")

// Client talks to the high-score HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SubmitScore posts a final score. Failures are logged only.
func (c *Client) SubmitScore(ctx context.Context, score int) {
	if err := c.Submit(ctx, score); err != nil {
		log.Printf("Failed to submit score: %v", err)
	}
}

// FetchLeaderboard returns the top scores, or an empty slice on failure.
func (c *Client) FetchLeaderboard(ctx context.Context) []models.ScoreRecord {
	records, err := c.Scores(ctx)
	if err != nil {
		log.Printf("Failed to fetch scores: %v", err)
		return []models.ScoreRecord{}
	}
	return scores.Top(records, constants.LEADERBOARD_TOP)
}

// Submit posts a score and reports any failure.
func (c *Client) Submit(ctx context.Context, score int) error {
	body, err := json.Marshal(map[string]int{"score": score})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/scores", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post score: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("post score: %w %d", ErrStatus, resp.StatusCode)
	}
	return nil
}

// Scores fetches every stored record.
func (c *Client) Scores(ctx context.Context) ([]models.ScoreRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/scores", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get scores: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("get scores: %w %d", ErrStatus, resp.StatusCode)
	}

	var records []models.ScoreRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	return records, nil
}

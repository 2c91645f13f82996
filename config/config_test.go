package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("ICE_SERVERS", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, []string{"stun:stun.l.google.com:19302"}, cfg.ICEServers)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ORIGIN", "http://localhost:5173")
	t.Setenv("ICE_SERVERS", " stun:a.example:3478 ,, turn:b.example:3478")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	assert.Equal(t, []string{"stun:a.example:3478", "turn:b.example:3478"}, cfg.ICEServers)
}

package config

import (
	"os"
	"strings"
	"time"
)

// Server holds the environment-driven server settings.
type Server struct {
	Port         string
	CORSOrigin   string
	ICEServers   []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load() Server {
	cfg := Server{
		Port:         getenv("PORT", "3000"),
		CORSOrigin:   getenv("CORS_ORIGIN", "*"),
		ICEServers:   []string{"stun:stun.l.google.com:19302"},
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	if v := os.Getenv("ICE_SERVERS"); v != "" {
		cfg.ICEServers = splitList(v)
	}
	return cfg
}

func (s Server) Addr() string {
	return ":" + s.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

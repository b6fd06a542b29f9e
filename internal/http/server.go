// Package http exposes the subscription store over a JSON API.
package http

import (
	"net/http"
	"time"

	"subtrack/internal/preset"
	"subtrack/internal/services"
)

type Server struct {
	http.Server

	store   *services.Store
	presets []preset.Preset
	now     func() time.Time
}

// NewServer configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, store *services.Store, presets []preset.Preset) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:   store,
		presets: presets,
		now:     time.Now,
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/api/subscriptions", s.handleSubscriptions)
	mux.HandleFunc("/api/subscriptions/", s.handleSubscriptionByID)
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/upcoming", s.handleUpcoming)
	mux.HandleFunc("/api/presets", s.handlePresets)
	mux.HandleFunc("/api/settings/currency", s.handlePreferredCurrency)

	return s
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

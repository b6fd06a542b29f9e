package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"subtrack/internal/core"
	"subtrack/internal/services"
)

type categoryCostResponse struct {
	Category         string  `json:"category"`
	DisplayName      string  `json:"display_name"`
	MonthlyCents     float64 `json:"monthly_cents"`
	MonthlyFormatted string  `json:"monthly_formatted"`
}

type dashboardResponse struct {
	MonthlyCents     float64                `json:"monthly_cents"`
	MonthlyFormatted string                 `json:"monthly_formatted"`
	YearlyCents      float64                `json:"yearly_cents"`
	YearlyFormatted  string                 `json:"yearly_formatted"`
	ActiveCount      int                    `json:"active_count"`
	Currency         string                 `json:"currency"`
	ByCategory       []categoryCostResponse `json:"by_category"`
	NextPayment      *subscriptionResponse  `json:"next_payment,omitempty"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	now := s.now()
	subs := s.store.List()
	currency := string(s.store.PreferredCurrency())
	summary := services.Summarize(subs)

	byCategory := make([]categoryCostResponse, 0, len(summary.ByCategory))
	for _, cc := range summary.ByCategory {
		byCategory = append(byCategory, categoryCostResponse{
			Category:         string(cc.Category),
			DisplayName:      cc.Category.DisplayName(),
			MonthlyCents:     cc.MonthlyCents,
			MonthlyFormatted: core.FormatCents(cc.MonthlyCents, currency),
		})
	}

	resp := dashboardResponse{
		MonthlyCents:     summary.MonthlyCents,
		MonthlyFormatted: core.FormatCents(summary.MonthlyCents, currency),
		YearlyCents:      summary.YearlyCents,
		YearlyFormatted:  core.FormatCents(summary.YearlyCents, currency),
		ActiveCount:      summary.ActiveCount,
		Currency:         currency,
		ByCategory:       byCategory,
	}
	if next, ok := services.NextUpcomingPayment(subs, now); ok {
		nr := toResponse(next, now)
		resp.NextPayment = &nr
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	days := services.DefaultUpcomingWindowDays
	if v := strings.TrimSpace(r.URL.Query().Get("days")); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d < 0 {
			writeError(w, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}
		days = d
	}

	now := s.now()
	upcoming := services.UpcomingPayments(s.store.List(), now, days)
	out := make([]subscriptionResponse, 0, len(upcoming))
	for _, sub := range upcoming {
		out = append(out, toResponse(sub, now))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.presets)
}

func (s *Server) handlePreferredCurrency(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]string{"currency": string(s.store.PreferredCurrency())})
	case http.MethodPut:
		var req struct {
			Currency string `json:"currency"`
		}
		if err := parseBody(r, &req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		err := s.store.SetPreferredCurrency(r.Context(), core.Currency(req.Currency))
		if errors.Is(err, services.ErrPersistFailed) {
			slog.ErrorContext(r.Context(), "Preferred currency set without durable write", "currency", req.Currency, "error", err)
		} else if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"currency": req.Currency})
	default:
		w.Header().Set("Allow", "GET, PUT")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vitos/cointrackr/internal/domain"
	"github.com/vitos/cointrackr/internal/usecase"
	"go.uber.org/zap"
)

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) handleMarketsJSON(w http.ResponseWriter, r *http.Request) {
	state := s.parseViewState(r)
	snap, fetchErr := s.store.Current()
	result := usecase.BuildView(snap, state)

	resp := struct {
		usecase.ViewResult
		FetchedAt  time.Time `json:"fetched_at"`
		FetchError string    `json:"fetch_error,omitempty"`
	}{ViewResult: result}

	if snap != nil {
		resp.FetchedAt = snap.FetchedAt
	}
	if fetchErr != nil {
		resp.FetchError = fetchErr.Error()
	}

	s.writeJSON(w, resp)
}

func (s *Server) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rng := domain.ParseChartRange(r.URL.Query().Get("range"))

	series, err := s.refresh.ChartSeries(r.Context(), id, rng)
	if err != nil {
		http.Error(w, "Failed to fetch chart data", http.StatusBadGateway)
		return
	}

	resp := struct {
		ID string `json:"id"`
		usecase.ChartSeries
		HighestLabel string `json:"highest_label"`
		LowestLabel  string `json:"lowest_label"`
	}{
		ID:           id,
		ChartSeries:  series,
		HighestLabel: usecase.FormatCurrency(&series.Highest),
		LowestLabel:  usecase.FormatCurrency(&series.Lowest),
	}

	s.writeJSON(w, resp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.refresh.Refresh(r.Context()); err != nil {
		s.logger.Error("Manual refresh failed", zap.Error(err))
		http.Error(w, "Refresh failed", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap, fetchErr := s.store.Current()

	status := struct {
		Entries    int       `json:"entries"`
		FetchedAt  time.Time `json:"fetched_at,omitempty"`
		FetchError string    `json:"fetch_error,omitempty"`
	}{}

	if snap != nil {
		status.Entries = len(snap.Entries)
		status.FetchedAt = snap.FetchedAt
	}
	if fetchErr != nil {
		status.FetchError = fetchErr.Error()
	}

	s.writeJSON(w, status)
}

package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vitos/cointrackr/internal/domain"
	"github.com/vitos/cointrackr/internal/usecase"
	"go.uber.org/zap"
)

// Templates
var templates *template.Template

func InitTemplates(dir string) error {
	var err error
	templates, err = template.ParseGlob(filepath.Join(dir, "*.html"))
	return err
}

// parseViewState builds the pipeline input from query parameters. Bad or
// missing values sanitize to defaults rather than erroring.
func (s *Server) parseViewState(r *http.Request) domain.ViewState {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	return domain.ViewState{
		SearchTerm: q.Get("q"),
		SortKey:    domain.ParseSortKey(q.Get("sort")),
		SortDir:    domain.ParseSortDirection(q.Get("order")),
		Page:       page,
		PageSize:   s.pageSize,
	}
}

type rowView struct {
	domain.MarketEntry
	RankLabel string
	Price     string
	Change1h  string
	Change24h string
	Change7d  string
	MarketCap string
	Volume    string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	state := s.parseViewState(r)
	snap, fetchErr := s.store.Current()
	result := usecase.BuildView(snap, state)

	rows := make([]rowView, 0, len(result.Rows))
	for _, e := range result.Rows {
		rank := "—"
		if e.Rank != nil {
			rank = "#" + strconv.Itoa(*e.Rank)
		}
		rows = append(rows, rowView{
			MarketEntry: e,
			RankLabel:   rank,
			Price:       usecase.FormatCurrency(e.CurrentPrice),
			Change1h:    usecase.FormatSignedPercent(e.Change1h),
			Change24h:   usecase.FormatSignedPercent(e.Change24h),
			Change7d:    usecase.FormatSignedPercent(e.Change7d),
			MarketCap:   usecase.FormatMagnitude(e.MarketCap),
			Volume:      usecase.FormatMagnitude(e.Volume24h),
		})
	}

	var fetchedAt time.Time
	if snap != nil {
		fetchedAt = snap.FetchedAt
	}

	data := map[string]interface{}{
		"Rows":       rows,
		"Page":       result.Page,
		"PageCount":  result.PageCount,
		"PrevPage":   result.Page - 1,
		"NextPage":   result.Page + 1,
		"Range":      result.Range,
		"Search":     state.SearchTerm,
		"SortKey":    string(state.SortKey),
		"SortDir":    string(state.SortDir),
		"FetchedAt":  fetchedAt,
		"FetchError": fetchErr != nil,
	}

	if err := templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("Template error", zap.Error(err))
		http.Error(w, "Internal Server Error", 500)
	}
}

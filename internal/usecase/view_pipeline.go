package usecase

import (
	"sort"
	"strings"

	"github.com/vitos/cointrackr/internal/domain"
)

const DefaultPageSize = 10

// RangeDescriptor locates the visible slice within the filtered set,
// 1-based inclusive ("Showing 1-10 of 97"). All zero when nothing matched.
type RangeDescriptor struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Total int `json:"total"`
}

// ViewResult is everything the table needs to render one page.
type ViewResult struct {
	Rows      []domain.MarketEntry `json:"rows"`
	Page      int                  `json:"page"`
	PageCount int                  `json:"page_count"`
	Range     RangeDescriptor      `json:"range"`
}

// BuildView runs the filter → sort → paginate pipeline over a snapshot.
// It is pure: recomputed in full on every call, no state carried between
// calls. A nil snapshot behaves like an empty one.
func BuildView(snap *domain.Snapshot, state domain.ViewState) ViewResult {
	var entries []domain.MarketEntry
	if snap != nil {
		entries = snap.Entries
	}

	filtered := filterEntries(entries, state.SearchTerm)
	sortEntries(filtered, state.SortKey, state.SortDir)

	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	pageCount := (len(filtered) + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	page := state.Page
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	if start > len(filtered) {
		start = len(filtered)
	}

	rows := filtered[start:end]

	rng := RangeDescriptor{Total: len(filtered)}
	if len(rows) > 0 {
		rng.Start = start + 1
		rng.End = end
	}

	return ViewResult{
		Rows:      rows,
		Page:      page,
		PageCount: pageCount,
		Range:     rng,
	}
}

// filterEntries keeps entries whose name or symbol contains the term,
// case-insensitively. An empty term matches everything.
func filterEntries(entries []domain.MarketEntry, term string) []domain.MarketEntry {
	out := make([]domain.MarketEntry, 0, len(entries))
	needle := strings.ToLower(strings.TrimSpace(term))
	for _, e := range entries {
		if needle == "" ||
			strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.Symbol), needle) {
			out = append(out, e)
		}
	}
	return out
}

// sortEntries orders entries in place by the chosen key. The sort is
// stable. Entries with an absent value for the key always sort after all
// entries with a present value, in both directions; the direction flips
// only present-vs-present comparisons.
func sortEntries(entries []domain.MarketEntry, key domain.SortKey, dir domain.SortDirection) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entryLess(entries[i], entries[j], key, dir)
	})
}

func entryLess(a, b domain.MarketEntry, key domain.SortKey, dir domain.SortDirection) bool {
	if key == domain.SortByName {
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an == bn {
			return false
		}
		if dir == domain.Descending {
			return an > bn
		}
		return an < bn
	}

	av, aok := numericField(a, key)
	bv, bok := numericField(b, key)
	if aok != bok {
		return aok // present before absent, regardless of direction
	}
	if !aok || av == bv {
		return false
	}
	if dir == domain.Descending {
		return av > bv
	}
	return av < bv
}

func numericField(e domain.MarketEntry, key domain.SortKey) (float64, bool) {
	switch key {
	case domain.SortByPrice:
		return deref(e.CurrentPrice)
	case domain.SortByMarketCap:
		return deref(e.MarketCap)
	case domain.SortByChange24h:
		return deref(e.Change24h)
	case domain.SortByVolume:
		return deref(e.Volume24h)
	default: // rank
		if e.Rank == nil {
			return 0, false
		}
		return float64(*e.Rank), true
	}
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

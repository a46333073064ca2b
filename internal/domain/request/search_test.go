package request_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/domain/request"
)

func sampleRecords() []request.Request {
	return []request.Request{
		{ID: "REQ-100", Title: "Grocery run", Category: "Groceries & Errands", Description: "Weekly shop", Date: "2026-08-01", Status: request.StatusPending, Location: "Maple Street"},
		{ID: "101", Title: "Ride to clinic", Category: "Transportation", Description: "Morning appointment", Date: "2026-08-02", Status: request.StatusInProgress, Location: "Oak Avenue"},
		{ID: "REQ-102", Title: "Gutter cleaning", Category: "Home Maintenance", Description: "Before the rains", Date: "2026-08-15", Status: request.StatusCompleted, Location: "Maple Street"},
	}
}

func TestFilter_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	recs := sampleRecords()
	got := request.Filter(recs, request.Criteria{})
	require.Len(t, got, 3)
	require.Equal(t, "REQ-100", got[0].ID)
	require.Equal(t, "101", got[1].ID)
	require.Equal(t, "REQ-102", got[2].ID)
}

func TestFilter_IDMatchesEitherForm(t *testing.T) {
	recs := sampleRecords()

	got := request.Filter(recs, request.Criteria{ID: "101"})
	require.Len(t, got, 1)
	require.Equal(t, "101", got[0].ID)

	got = request.Filter(recs, request.Criteria{ID: "REQ-101"})
	require.Len(t, got, 1)
	require.Equal(t, "101", got[0].ID)

	got = request.Filter(recs, request.Criteria{ID: "req-100"})
	require.Len(t, got, 1)
	require.Equal(t, "REQ-100", got[0].ID)
}

func TestFilter_CategorySubstringCaseInsensitive(t *testing.T) {
	recs := sampleRecords()
	got := request.Filter(recs, request.Criteria{Category: "transport"})
	require.Len(t, got, 1)
	require.Equal(t, "101", got[0].ID)
}

func TestFilter_KeywordSearchesTitleDescriptionCategory(t *testing.T) {
	recs := sampleRecords()

	got := request.Filter(recs, request.Criteria{Keyword: "appointment"})
	require.Len(t, got, 1)
	require.Equal(t, "101", got[0].ID)

	got = request.Filter(recs, request.Criteria{Keyword: "maintenance"})
	require.Len(t, got, 1)
	require.Equal(t, "REQ-102", got[0].ID)
}

func TestFilter_DateSubstring(t *testing.T) {
	recs := sampleRecords()

	got := request.Filter(recs, request.Criteria{Date: "2026-08"})
	require.Len(t, got, 3)

	got = request.Filter(recs, request.Criteria{Date: "2026-08-15"})
	require.Len(t, got, 1)
	require.Equal(t, "REQ-102", got[0].ID)

	got = request.FilterPrevious(recs, request.PreviousCriteria{Date: "2026-08-15"})
	require.Len(t, got, 1)
	require.Equal(t, "REQ-102", got[0].ID)

	got = request.FilterPrevious(recs, request.PreviousCriteria{Date: "2026-07"})
	require.Empty(t, got)
}

func TestFilter_CriteriaAreANDed(t *testing.T) {
	recs := sampleRecords()
	got := request.Filter(recs, request.Criteria{Category: "Groceries", Status: "completed"})
	require.Empty(t, got)
}

func TestFilterPrevious_DefaultsToCompleted(t *testing.T) {
	recs := sampleRecords()
	got := request.FilterPrevious(recs, request.PreviousCriteria{})
	require.Len(t, got, 1)
	require.Equal(t, "REQ-102", got[0].ID)
}

func TestFilterPrevious_ExactStatusMatch(t *testing.T) {
	recs := sampleRecords()

	// Substring is not enough for the terminal-pool filter.
	got := request.FilterPrevious(recs, request.PreviousCriteria{Status: "Complet"})
	require.Empty(t, got)

	got = request.FilterPrevious(recs, request.PreviousCriteria{Status: "completed"})
	require.Len(t, got, 1)
}

func TestFilterPrevious_KeywordIncludesLocation(t *testing.T) {
	recs := sampleRecords()
	got := request.FilterPrevious(recs, request.PreviousCriteria{Keyword: "maple"})
	require.Len(t, got, 1)
	require.Equal(t, "REQ-102", got[0].ID)
}

func TestFilterPrevious_GenericFields(t *testing.T) {
	recs := sampleRecords()

	got := request.FilterPrevious(recs, request.PreviousCriteria{
		Fields: map[string]any{"location": "maple"},
	})
	require.Len(t, got, 1)

	got = request.FilterPrevious(recs, request.PreviousCriteria{
		Fields: map[string]any{"location": "oak"},
	})
	require.Empty(t, got)
}

func TestFilterShortlisted(t *testing.T) {
	recs := sampleRecords()
	shortlisted := map[string]bool{"100": true, "102": true}

	got := request.FilterShortlisted(recs, request.Criteria{}, func(rec request.Request) bool {
		return shortlisted[request.CanonicalID(rec.ID)]
	})
	require.Len(t, got, 2)

	got = request.FilterShortlisted(recs, request.Criteria{Category: "grocer"}, func(rec request.Request) bool {
		return shortlisted[request.CanonicalID(rec.ID)]
	})
	require.Len(t, got, 1)
	require.Equal(t, "REQ-100", got[0].ID)
}

package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/domain/category"
	"github.com/neighborly/carehub/internal/domain/report"
	"github.com/neighborly/carehub/internal/domain/request"
	"github.com/neighborly/carehub/internal/domain/user"
	"github.com/neighborly/carehub/internal/repository/mocks"
)

func ago(d time.Duration) string {
	return time.Now().UTC().Add(-d).Format(time.RFC3339)
}

func newService(t *testing.T, recs []request.Request, cats []category.Category, accts []user.Account) *report.Service {
	t.Helper()
	requests := &mocks.RequestRepository{}
	requests.On("List", context.Background()).Return(recs, nil)
	categories := &mocks.CategoryRepository{}
	categories.On("List", context.Background()).Return(cats, nil)
	users := &mocks.UserRepository{}
	users.On("List", context.Background()).Return(accts, nil)
	return report.NewService(requests, categories, users, nil)
}

func TestReportService_Generate_Daily(t *testing.T) {
	ctx := context.Background()

	svc := newService(t, []request.Request{
		{ID: "REQ-100", Status: request.StatusPending, Created: ago(2 * time.Hour)},
		{ID: "REQ-101", Status: request.StatusInProgress, Created: ago(6 * time.Hour)},
		{ID: "REQ-102", Status: request.StatusCompleted, Created: ago(12 * time.Hour)},
		{ID: "REQ-103", Status: request.StatusPending, Created: ago(72 * time.Hour)},
	}, []category.Category{
		{ID: "CAT-001", Name: "Groceries & Errands"},
	}, []user.Account{
		{ID: 1, Username: "admin"},
		{ID: 2, Username: "casey"},
	})

	rep, err := svc.Generate(ctx, report.PeriodDaily)
	require.NoError(t, err)
	require.Equal(t, 3, rep.Total)
	require.Equal(t, 1, rep.Pending)
	require.Equal(t, 1, rep.Assigned)
	require.Equal(t, 1, rep.Completed)
	require.Equal(t, 1, rep.Categories)
	require.Equal(t, 2, rep.Users)
}

func TestReportService_Generate_WeeklyIncludesOlder(t *testing.T) {
	ctx := context.Background()

	svc := newService(t, []request.Request{
		{ID: "REQ-100", Status: request.StatusPending, Created: ago(72 * time.Hour)},
		{ID: "REQ-101", Status: request.StatusCompleted, Created: ago(30 * 24 * time.Hour)},
	}, nil, nil)

	rep, err := svc.Generate(ctx, report.PeriodWeekly)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Total)
	require.Equal(t, 1, rep.Pending)
}

func TestReportService_Generate_UnparseableCreatedCounts(t *testing.T) {
	ctx := context.Background()

	svc := newService(t, []request.Request{
		{ID: "REQ-100", Status: request.StatusPending, Created: "a while back"},
	}, nil, nil)

	rep, err := svc.Generate(ctx, report.PeriodDaily)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Total)
}

func TestParsePeriod(t *testing.T) {
	p, err := report.ParsePeriod("Weekly")
	require.NoError(t, err)
	require.Equal(t, report.PeriodWeekly, p)

	_, err = report.ParsePeriod("hourly")
	require.ErrorIs(t, err, report.ErrInvalidPeriod)
}

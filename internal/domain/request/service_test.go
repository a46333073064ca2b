package request_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/domain/request"
	"github.com/neighborly/carehub/internal/repository"
	"github.com/neighborly/carehub/internal/repository/mocks"
)

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	repo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		rec := args.Get(1).(*request.Request)
		rec.ID = "REQ-100"
	}).Return(nil)

	svc := request.NewService(repo, nil, nil)
	rec, err := svc.Create(ctx, request.CreateInput{
		Title:       "Grocery run",
		Description: "Weekly shop for an elderly neighbor",
		Category:    "Groceries & Errands",
		Date:        "2026-09-01",
		Location:    "Maple Street",
		Owner:       "pat",
	})
	require.NoError(t, err)
	require.Equal(t, "REQ-100", rec.ID)
	require.Equal(t, request.StatusPending, rec.Status)
	require.Equal(t, "pat", rec.Owner)
	require.NotEmpty(t, rec.Created)
}

func TestRequestService_Create_MissingField(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	svc := request.NewService(repo, nil, nil)

	_, err := svc.Create(ctx, request.CreateInput{
		Title:    "Grocery run",
		Category: "Groceries & Errands",
		Date:     "2026-09-01",
		Location: "Maple Street",
	})
	require.Error(t, err)
	require.True(t, request.IsValidation(err))
	require.Contains(t, err.Error(), "description")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestService_Update_BadDateLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	svc := request.NewService(repo, nil, nil)

	bad := "not-a-date"
	_, err := svc.Update(ctx, "REQ-100", request.UpdateInput{Date: &bad})
	require.Error(t, err)
	require.True(t, request.IsValidation(err))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRequestService_Update_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	svc := request.NewService(repo, nil, nil)

	bogus := "shortlisted"
	_, err := svc.Update(ctx, "REQ-100", request.UpdateInput{Status: &bogus})
	require.Error(t, err)
	require.True(t, request.IsValidation(err))
}

func TestRequestService_Assign(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	repo.On("FindByID", ctx, "REQ-100").Return(&request.Request{
		ID:     "REQ-100",
		Status: request.StatusPending,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := request.NewService(repo, nil, nil)
	rec, err := svc.Assign(ctx, "REQ-100", "casey")
	require.NoError(t, err)
	require.Equal(t, request.StatusInProgress, rec.Status)
	require.NotNil(t, rec.AssignedTo)
	require.Equal(t, "casey", *rec.AssignedTo)
	require.NotNil(t, rec.AssignedAt)
}

func TestRequestService_Assign_CompletedKeepsStatus(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	repo.On("FindByID", ctx, "REQ-100").Return(&request.Request{
		ID:     "REQ-100",
		Status: request.StatusCompleted,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := request.NewService(repo, nil, nil)
	rec, err := svc.Assign(ctx, "REQ-100", "casey")
	require.NoError(t, err)
	require.Equal(t, request.StatusCompleted, rec.Status)
}

func TestRequestService_Unassign(t *testing.T) {
	ctx := context.Background()
	assignee := "casey"

	repo := &mocks.RequestRepository{}
	repo.On("FindByID", ctx, "REQ-100").Return(&request.Request{
		ID:         "REQ-100",
		Status:     request.StatusInProgress,
		AssignedTo: &assignee,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := request.NewService(repo, nil, nil)
	rec, err := svc.Unassign(ctx, "REQ-100", "casey")
	require.NoError(t, err)
	require.Equal(t, request.StatusPending, rec.Status)
	require.Nil(t, rec.AssignedTo)
	require.Nil(t, rec.AssignedAt)
}

func TestRequestService_Complete_BackfillsAssignee(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	repo.On("FindByID", ctx, "REQ-100").Return(&request.Request{
		ID:     "REQ-100",
		Status: request.StatusPending,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := request.NewService(repo, nil, nil)
	rec, err := svc.Complete(ctx, "REQ-100", "casey")
	require.NoError(t, err)
	require.Equal(t, request.StatusCompleted, rec.Status)
	require.NotEmpty(t, rec.CompletedAt)
	require.NotNil(t, rec.AssignedTo)
	require.Equal(t, "casey", *rec.AssignedTo)
}

func TestRequestService_Complete_KeepsExistingAssignee(t *testing.T) {
	ctx := context.Background()
	assignee := "jordan"

	repo := &mocks.RequestRepository{}
	repo.On("FindByID", ctx, "REQ-100").Return(&request.Request{
		ID:         "REQ-100",
		Status:     request.StatusInProgress,
		AssignedTo: &assignee,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := request.NewService(repo, nil, nil)
	rec, err := svc.Complete(ctx, "REQ-100", "casey")
	require.NoError(t, err)
	require.Equal(t, "jordan", *rec.AssignedTo)
}

func TestRequestService_IncrementViewCount_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	repo.On("IncrementViewCount", ctx, "REQ-999").Return(0, repository.ErrNotFound)

	svc := request.NewService(repo, nil, nil)
	_, err := svc.IncrementViewCount(ctx, "REQ-999")
	require.ErrorIs(t, err, request.ErrNotFound)
}

func TestRequestService_GetPrevious_StatusMismatch(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	repo.On("FindByID", ctx, "REQ-100").Return(&request.Request{
		ID:     "REQ-100",
		Status: request.StatusPending,
	}, nil)

	svc := request.NewService(repo, nil, nil)
	_, err := svc.GetPrevious(ctx, "REQ-100", "")
	require.ErrorIs(t, err, request.ErrNotFound)
}

func TestRequestService_ListByOwner(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.RequestRepository{}
	repo.On("List", ctx).Return([]request.Request{
		{ID: "REQ-100", Owner: "pat"},
		{ID: "REQ-101", Owner: "sam"},
		{ID: "REQ-102", Owner: "Pat"},
	}, nil)

	svc := request.NewService(repo, nil, nil)
	recs, err := svc.ListByOwner(ctx, "pat")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "REQ-100", recs[0].ID)
	require.Equal(t, "REQ-102", recs[1].ID)
}

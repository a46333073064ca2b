package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/neighborly/carehub/internal/domain/activity"
	"github.com/neighborly/carehub/internal/domain/category"
	"github.com/neighborly/carehub/internal/domain/request"
	"github.com/neighborly/carehub/internal/domain/user"
)

// RequestRepository is a mock satisfying request.Repository.
type RequestRepository struct {
	mock.Mock
}

func (m *RequestRepository) List(ctx context.Context) ([]request.Request, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]request.Request); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RequestRepository) FindByID(ctx context.Context, id string) (*request.Request, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*request.Request); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RequestRepository) Create(ctx context.Context, rec *request.Request) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *RequestRepository) Update(ctx context.Context, rec *request.Request) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *RequestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RequestRepository) IncrementViewCount(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

// ShortlistRepository is a mock satisfying shortlist.Repository.
type ShortlistRepository struct {
	mock.Mock
}

func (m *ShortlistRepository) ListIDs(ctx context.Context, actor string) ([]string, error) {
	args := m.Called(ctx, actor)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ShortlistRepository) Add(ctx context.Context, actor, id string) (bool, error) {
	args := m.Called(ctx, actor, id)
	return args.Bool(0), args.Error(1)
}

func (m *ShortlistRepository) Remove(ctx context.Context, actor, id string) (bool, error) {
	args := m.Called(ctx, actor, id)
	return args.Bool(0), args.Error(1)
}

// CategoryRepository is a mock satisfying category.Repository.
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]category.Category); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	args := m.Called(ctx, id)
	if cat, ok := args.Get(0).(*category.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) Create(ctx context.Context, cat *category.Category) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *CategoryRepository) Update(ctx context.Context, cat *category.Category) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *CategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// UserRepository is a mock satisfying user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) List(ctx context.Context) ([]user.Account, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]user.Account); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*user.Account, error) {
	args := m.Called(ctx, username)
	if acct, ok := args.Get(0).(*user.Account); ok {
		return acct, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id int) (*user.Account, error) {
	args := m.Called(ctx, id)
	if acct, ok := args.Get(0).(*user.Account); ok {
		return acct, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, acct *user.Account) error {
	args := m.Called(ctx, acct)
	return args.Error(0)
}

func (m *UserRepository) Update(ctx context.Context, storedUsername string, acct *user.Account) error {
	args := m.Called(ctx, storedUsername, acct)
	return args.Error(0)
}

// ActivityRepository is a mock satisfying activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

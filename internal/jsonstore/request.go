package jsonstore

import (
	"context"
	"fmt"
	"time"

	"github.com/neighborly/carehub/internal/domain/request"
	"github.com/neighborly/carehub/internal/repository"
)

// RequestStore persists help requests as a flat JSON array.
type RequestStore struct {
	file *file
	now  func() time.Time
}

// NewRequestStore creates a request store backed by the given file path.
func NewRequestStore(path string) *RequestStore {
	return &RequestStore{
		file: newFile(path),
		now:  time.Now,
	}
}

// List returns all requests in stored order.
func (s *RequestStore) List(ctx context.Context) ([]request.Request, error) {
	var recs []request.Request
	err := s.file.withLock(ctx, func() error {
		loaded, err := load(s.file, []request.Request{})
		if err != nil {
			return err
		}
		recs = loaded
		return nil
	})
	return recs, err
}

// FindByID returns the request matching the id under canonical comparison.
func (s *RequestStore) FindByID(ctx context.Context, id string) (*request.Request, error) {
	var found *request.Request
	err := s.file.withLock(ctx, func() error {
		recs, err := load(s.file, []request.Request{})
		if err != nil {
			return err
		}
		for i := range recs {
			if request.SameID(recs[i].ID, id) {
				rec := recs[i]
				found = &rec
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create appends a request. An empty id gets the next sequential id; ids
// start at 100 so they never collide with sample data shipped in older
// files.
func (s *RequestStore) Create(ctx context.Context, rec *request.Request) error {
	return s.file.withLock(ctx, func() error {
		recs, err := load(s.file, []request.Request{})
		if err != nil {
			return err
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("REQ-%d", len(recs)+100)
		} else {
			rec.ID = request.DisplayID(rec.ID)
		}
		for i := range recs {
			if request.SameID(recs[i].ID, rec.ID) {
				return repository.ErrConflict
			}
		}
		recs = append(recs, *rec)
		return save(s.file, recs)
	})
}

// Update replaces the stored record matching the request's id.
func (s *RequestStore) Update(ctx context.Context, rec *request.Request) error {
	return s.file.withLock(ctx, func() error {
		recs, err := load(s.file, []request.Request{})
		if err != nil {
			return err
		}
		for i := range recs {
			if request.SameID(recs[i].ID, rec.ID) {
				rec.ID = recs[i].ID
				recs[i] = *rec
				return save(s.file, recs)
			}
		}
		return repository.ErrNotFound
	})
}

// Delete removes the request matching the id.
func (s *RequestStore) Delete(ctx context.Context, id string) error {
	return s.file.withLock(ctx, func() error {
		recs, err := load(s.file, []request.Request{})
		if err != nil {
			return err
		}
		for i := range recs {
			if request.SameID(recs[i].ID, id) {
				recs = append(recs[:i], recs[i+1:]...)
				return save(s.file, recs)
			}
		}
		return repository.ErrNotFound
	})
}

// IncrementViewCount bumps the view counter by one and stamps the last
// viewed time, folding any legacy counter spelling into the canonical field.
func (s *RequestStore) IncrementViewCount(ctx context.Context, id string) (int, error) {
	var count int
	err := s.file.withLock(ctx, func() error {
		recs, err := load(s.file, []request.Request{})
		if err != nil {
			return err
		}
		for i := range recs {
			if request.SameID(recs[i].ID, id) {
				count = request.ViewCountOf(recs[i]) + 1
				recs[i].ViewCount = count
				recs[i].ViewCountSnake = nil
				recs[i].Views = nil
				recs[i].LastViewedAt = s.now().UTC().Format(time.RFC3339)
				return save(s.file, recs)
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

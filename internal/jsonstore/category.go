package jsonstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/neighborly/carehub/internal/domain/category"
	"github.com/neighborly/carehub/internal/repository"
)

// CategoryStore persists categories as a flat JSON array.
type CategoryStore struct {
	file *file
}

// NewCategoryStore creates a category store backed by the given file path.
func NewCategoryStore(path string) *CategoryStore {
	return &CategoryStore{file: newFile(path)}
}

// List returns all categories in stored order.
func (s *CategoryStore) List(ctx context.Context) ([]category.Category, error) {
	var cats []category.Category
	err := s.file.withLock(ctx, func() error {
		loaded, err := load(s.file, []category.Category{})
		if err != nil {
			return err
		}
		cats = loaded
		return nil
	})
	return cats, err
}

// FindByID returns the category with the given id.
func (s *CategoryStore) FindByID(ctx context.Context, id string) (*category.Category, error) {
	var found *category.Category
	err := s.file.withLock(ctx, func() error {
		cats, err := load(s.file, []category.Category{})
		if err != nil {
			return err
		}
		for i := range cats {
			if strings.EqualFold(cats[i].ID, id) {
				cat := cats[i]
				found = &cat
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

// Create appends a category, assigning the next sequential id when the
// record carries none.
func (s *CategoryStore) Create(ctx context.Context, cat *category.Category) error {
	return s.file.withLock(ctx, func() error {
		cats, err := load(s.file, []category.Category{})
		if err != nil {
			return err
		}
		if cat.ID == "" {
			cat.ID = fmt.Sprintf("CAT-%03d", nextCategoryNumber(cats))
		}
		for i := range cats {
			if strings.EqualFold(cats[i].ID, cat.ID) {
				return repository.ErrConflict
			}
		}
		cats = append(cats, *cat)
		return save(s.file, cats)
	})
}

// Update replaces the stored category matching the record's id.
func (s *CategoryStore) Update(ctx context.Context, cat *category.Category) error {
	return s.file.withLock(ctx, func() error {
		cats, err := load(s.file, []category.Category{})
		if err != nil {
			return err
		}
		for i := range cats {
			if strings.EqualFold(cats[i].ID, cat.ID) {
				cats[i] = *cat
				return save(s.file, cats)
			}
		}
		return repository.ErrNotFound
	})
}

// Delete removes the category with the given id.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	return s.file.withLock(ctx, func() error {
		cats, err := load(s.file, []category.Category{})
		if err != nil {
			return err
		}
		for i := range cats {
			if strings.EqualFold(cats[i].ID, id) {
				cats = append(cats[:i], cats[i+1:]...)
				return save(s.file, cats)
			}
		}
		return repository.ErrNotFound
	})
}

func nextCategoryNumber(cats []category.Category) int {
	max := 0
	for _, cat := range cats {
		var n int
		if _, err := fmt.Sscanf(cat.ID, "CAT-%d", &n); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

package jsonstore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/neighborly/carehub/internal/domain/user"
	"github.com/neighborly/carehub/internal/repository"
)

// userData is the on-disk shape: role bucket -> username -> account.
type userData map[string]map[string]user.Account

// UserStore persists accounts bucketed by role in a single JSON file.
type UserStore struct {
	file *file
}

// NewUserStore creates a user store backed by the given file path.
func NewUserStore(path string) *UserStore {
	return &UserStore{file: newFile(path)}
}

// List returns all accounts ordered by numeric id.
func (s *UserStore) List(ctx context.Context) ([]user.Account, error) {
	var accts []user.Account
	err := s.file.withLock(ctx, func() error {
		data, err := load(s.file, userData{})
		if err != nil {
			return err
		}
		for _, bucket := range data {
			for _, acct := range bucket {
				accts = append(accts, acct)
			}
		}
		sort.Slice(accts, func(i, j int) bool { return accts[i].ID < accts[j].ID })
		return nil
	})
	return accts, err
}

// FindByUsername returns the account holding the username in any role
// bucket, matched case-insensitively.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*user.Account, error) {
	var found *user.Account
	err := s.file.withLock(ctx, func() error {
		data, err := load(s.file, userData{})
		if err != nil {
			return err
		}
		if acct, _, _, ok := findByUsername(data, username); ok {
			found = acct
			return nil
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FindByID returns the account with the given numeric id.
func (s *UserStore) FindByID(ctx context.Context, id int) (*user.Account, error) {
	var found *user.Account
	err := s.file.withLock(ctx, func() error {
		data, err := load(s.file, userData{})
		if err != nil {
			return err
		}
		for _, bucket := range data {
			for _, acct := range bucket {
				if acct.ID == id {
					a := acct
					found = &a
					return nil
				}
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create stores a new account under its role bucket, assigning the next
// numeric id and a matching uid when the record carries none.
func (s *UserStore) Create(ctx context.Context, acct *user.Account) error {
	return s.file.withLock(ctx, func() error {
		data, err := load(s.file, userData{})
		if err != nil {
			return err
		}
		if _, _, _, ok := findByUsername(data, acct.Username); ok {
			return repository.ErrConflict
		}
		if acct.ID == 0 {
			acct.ID = nextID(data)
		}
		if acct.UID == "" {
			acct.UID = fmt.Sprintf("U-%03d", acct.ID)
		}

		bucket := string(acct.Role)
		if data[bucket] == nil {
			data[bucket] = map[string]user.Account{}
		}
		data[bucket][acct.Username] = *acct
		return save(s.file, data)
	})
}

// Update rewrites an account, moving it between buckets or keys when the
// role or username changed. storedUsername names the entry as currently
// persisted.
func (s *UserStore) Update(ctx context.Context, storedUsername string, acct *user.Account) error {
	return s.file.withLock(ctx, func() error {
		data, err := load(s.file, userData{})
		if err != nil {
			return err
		}
		_, oldBucket, oldKey, ok := findByUsername(data, storedUsername)
		if !ok {
			return repository.ErrNotFound
		}

		if !strings.EqualFold(storedUsername, acct.Username) {
			if other, _, _, taken := findByUsername(data, acct.Username); taken && other.ID != acct.ID {
				return repository.ErrConflict
			}
		}

		delete(data[oldBucket], oldKey)
		if len(data[oldBucket]) == 0 {
			delete(data, oldBucket)
		}

		bucket := string(acct.Role)
		if data[bucket] == nil {
			data[bucket] = map[string]user.Account{}
		}
		data[bucket][acct.Username] = *acct
		return save(s.file, data)
	})
}

func findByUsername(data userData, username string) (*user.Account, string, string, bool) {
	for bucket, accounts := range data {
		for key, acct := range accounts {
			if strings.EqualFold(key, username) || strings.EqualFold(acct.Username, username) {
				a := acct
				return &a, bucket, key, true
			}
		}
	}
	return nil, "", "", false
}

func nextID(data userData) int {
	max := 0
	for _, bucket := range data {
		for _, acct := range bucket {
			if acct.ID > max {
				max = acct.ID
			}
		}
	}
	return max + 1
}

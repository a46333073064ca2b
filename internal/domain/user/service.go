package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/neighborly/carehub/internal/auth"
	"github.com/neighborly/carehub/internal/domain/activity"
	"github.com/neighborly/carehub/internal/repository"
)

// Repository persists accounts. Create assigns the numeric id and uid when
// the record carries none. Update receives the username the record was
// stored under so renames can move the entry.
type Repository interface {
	List(ctx context.Context) ([]Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindByID(ctx context.Context, id int) (*Account, error)
	Create(ctx context.Context, acct *Account) error
	Update(ctx context.Context, storedUsername string, acct *Account) error
}

// ActivityLogger records account events.
type ActivityLogger interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// CreateInput describes a new account.
type CreateInput struct {
	FullName string
	Email    string
	Username string
	Password string
	Role     string
}

// UpdateInput carries a partial account update. A non-nil Password is
// hashed before storage.
type UpdateInput struct {
	FullName *string
	Email    *string
	Username *string
	Password *string
	Role     *string
}

// Service handles account business logic.
type Service struct {
	users      Repository
	activities ActivityLogger
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new user service. The activity logger may be nil.
func NewService(users Repository, activities ActivityLogger, logger *slog.Logger) *Service {
	return &Service{
		users:      users,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// Register creates a self-service account, always in the requester role.
func (s *Service) Register(ctx context.Context, in CreateInput) (*Account, error) {
	in.Role = string(RolePIN)
	return s.CreateProfile(ctx, in)
}

// CreateProfile creates an account in any role. Usernames are unique
// case-insensitively across all roles.
func (s *Service) CreateProfile(ctx context.Context, in CreateInput) (*Account, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || strings.TrimSpace(in.Password) == "" || strings.TrimSpace(in.FullName) == "" {
		return nil, ErrInvalidInput
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return nil, ErrInvalidInput
		}
	}
	role, err := ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Format(time.RFC3339)
	acct := &Account{
		FullName:  strings.TrimSpace(in.FullName),
		Email:     strings.TrimSpace(in.Email),
		Username:  username,
		Password:  hash,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, acct); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}

	s.logActivity(ctx, acct.Username, activity.TypeProfileCreated,
		fmt.Sprintf("created %s account %s", acct.Role, acct.Username))
	return acct, nil
}

// Get returns an account by username.
func (s *Service) Get(ctx context.Context, username string) (*Account, error) {
	acct, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading account: %w", err)
	}
	return acct, nil
}

// GetByID returns an account by its numeric id.
func (s *Service) GetByID(ctx context.Context, id int) (*Account, error) {
	acct, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading account: %w", err)
	}
	return acct, nil
}

// Update applies the supplied fields to the account with the given id.
// A username change into a taken name is rejected.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (*Account, error) {
	acct, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	storedUsername := acct.Username

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, ErrInvalidInput
		}
		if !strings.EqualFold(username, acct.Username) {
			if _, err := s.users.FindByUsername(ctx, username); err == nil {
				return nil, ErrUsernameTaken
			} else if !errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("checking username: %w", err)
			}
		}
		acct.Username = username
	}
	if in.FullName != nil {
		if strings.TrimSpace(*in.FullName) == "" {
			return nil, ErrInvalidInput
		}
		acct.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Email != nil {
		if *in.Email != "" {
			if _, err := mail.ParseAddress(*in.Email); err != nil {
				return nil, ErrInvalidInput
			}
		}
		acct.Email = strings.TrimSpace(*in.Email)
	}
	if in.Password != nil {
		if strings.TrimSpace(*in.Password) == "" {
			return nil, ErrInvalidInput
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		acct.Password = hash
	}
	if in.Role != nil {
		role, err := ParseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		acct.Role = role
	}
	acct.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.users.Update(ctx, storedUsername, acct); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("updating account: %w", err)
	}
	return acct, nil
}

// SetStatus activates or suspends an account.
func (s *Service) SetStatus(ctx context.Context, id int, status string) (*Account, error) {
	parsed, err := ParseAccountStatus(status)
	if err != nil {
		return nil, err
	}

	acct, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	acct.Status = parsed
	acct.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.users.Update(ctx, acct.Username, acct); err != nil {
		return nil, fmt.Errorf("updating account status: %w", err)
	}

	if parsed == StatusSuspended {
		s.logActivity(ctx, acct.Username, activity.TypeProfileSuspended,
			fmt.Sprintf("suspended account %s", acct.Username))
	}
	return acct, nil
}

// List returns all accounts, optionally restricted to one role.
func (s *Service) List(ctx context.Context, role string) ([]Account, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	if role == "" {
		return all, nil
	}
	var matched []Account
	for _, acct := range all {
		if strings.EqualFold(string(acct.Role), role) {
			matched = append(matched, acct)
		}
	}
	return matched, nil
}

// Search returns accounts whose username, full name or email contains the
// query case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]Account, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	if query == "" {
		return all, nil
	}
	q := strings.ToLower(query)
	var matched []Account
	for _, acct := range all {
		if strings.Contains(strings.ToLower(acct.Username), q) ||
			strings.Contains(strings.ToLower(acct.FullName), q) ||
			strings.Contains(strings.ToLower(acct.Email), q) {
			matched = append(matched, acct)
		}
	}
	return matched, nil
}

// Authenticate verifies credentials and returns the account. Suspension is
// checked before the password so a suspended account gets a distinct error
// regardless of the password supplied.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Account, error) {
	acct, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading account: %w", err)
	}

	if acct.Status == StatusSuspended {
		return nil, ErrSuspended
	}
	if !auth.VerifyPassword(acct.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

func (s *Service) logActivity(ctx context.Context, actor string, typ activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	err := s.activities.Log(ctx, &activity.Entry{
		Actor:   actor,
		Type:    typ,
		Summary: summary,
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("activity log failed", "type", typ, "error", err)
	}
}

// ParseRole normalizes a role string.
func ParseRole(role string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		return RoleAdmin, nil
	case "csr":
		return RoleCSR, nil
	case "pin":
		return RolePIN, nil
	case "platform", "platform_manager", "pm":
		return RolePlatform, nil
	default:
		return "", ErrInvalidInput
	}
}

// ParseAccountStatus normalizes a status string.
func ParseAccountStatus(status string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active":
		return StatusActive, nil
	case "suspended":
		return StatusSuspended, nil
	default:
		return "", ErrInvalidInput
	}
}

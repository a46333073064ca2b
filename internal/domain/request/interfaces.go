package request

import (
	"context"

	"github.com/neighborly/carehub/internal/domain/activity"
)

// Repository provides persistence for request records. Implementations must
// match ids through CanonicalID and run every load-mutate-save cycle under an
// exclusive lock.
type Repository interface {
	List(ctx context.Context) ([]Request, error)
	FindByID(ctx context.Context, id string) (*Request, error)
	Create(ctx context.Context, rec *Request) error
	Update(ctx context.Context, rec *Request) error
	Delete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) (int, error)
}

// ActivityLogger records domain events.
type ActivityLogger interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

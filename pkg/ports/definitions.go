package ports

import (
	"context"

	"github.com/wadjakorntonsri/ito/pkg/core/domain"
)

// LinkRepository defines storage operations for links
type LinkRepository interface {
	List(ctx context.Context) ([]domain.Link, error)
	Insert(ctx context.Context, alias, targetURL string) (int64, error)
	FindByAlias(ctx context.Context, alias string) (*domain.Link, error)
	DeleteByID(ctx context.Context, id int64) error // No-op for unknown ids
	Ping(ctx context.Context) error
}

// LinkService defines the link management operations
type LinkService interface {
	Create(ctx context.Context, alias, targetURL string) (*domain.Link, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Link, error)
}

// Resolver looks up the redirect target of an alias
type Resolver interface {
	Resolve(ctx context.Context, alias string) (string, error)
}

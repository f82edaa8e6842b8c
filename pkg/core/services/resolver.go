package services

import (
	"context"

	"github.com/wadjakorntonsri/ito/pkg/logging"
	"github.com/wadjakorntonsri/ito/pkg/ports"
)

type Resolver struct {
	repo   ports.LinkRepository
	logger *logging.Logger
}

func NewResolver(repo ports.LinkRepository, logger *logging.Logger) *Resolver {
	return &Resolver{repo: repo, logger: logger}
}

// Resolve returns the target of alias, or domain.ErrNotFound
func (r *Resolver) Resolve(ctx context.Context, alias string) (string, error) {
	link, err := r.repo.FindByAlias(ctx, alias)
	r.logger.LogLinkOperation(ctx, "resolve", alias, err)
	if err != nil {
		return "", err
	}
	return link.TargetURL, nil
}

var _ ports.Resolver = (*Resolver)(nil)

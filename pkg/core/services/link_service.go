package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/wadjakorntonsri/ito/pkg/core/domain"
	"github.com/wadjakorntonsri/ito/pkg/logging"
	"github.com/wadjakorntonsri/ito/pkg/ports"
)

// Aliases that collide with fixed routes and could never be resolved.
var reservedAliases = map[string]struct{}{
	"links":       {},
	"favicon.ico": {},
	"healthz":     {},
}

type LinkService struct {
	repo   ports.LinkRepository
	logger *logging.Logger
}

func NewLinkService(repo ports.LinkRepository, logger *logging.Logger) *LinkService {
	return &LinkService{repo: repo, logger: logger}
}

func (s *LinkService) Create(ctx context.Context, alias, targetURL string) (*domain.Link, error) {
	link, err := s.create(ctx, alias, targetURL)
	s.logger.LogLinkOperation(ctx, "create", alias, err)
	return link, err
}

func (s *LinkService) create(ctx context.Context, alias, targetURL string) (*domain.Link, error) {
	if err := validateAlias(alias); err != nil {
		return nil, err
	}
	target, err := validateTargetURL(targetURL)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, alias, target)
	if err != nil {
		return nil, err
	}
	return &domain.Link{ID: id, Alias: alias, TargetURL: target}, nil
}

func (s *LinkService) Delete(ctx context.Context, id int64) error {
	err := s.repo.DeleteByID(ctx, id)
	s.logger.LogLinkOperation(ctx, "delete", fmt.Sprintf("#%d", id), err)
	return err
}

func (s *LinkService) List(ctx context.Context) ([]domain.Link, error) {
	return s.repo.List(ctx)
}

func validateAlias(alias string) error {
	if alias == "" {
		return fmt.Errorf("%w: alias is required", domain.ErrInvalidAlias)
	}
	if strings.ContainsAny(alias, "/?#") {
		return fmt.Errorf("%w: %q must not contain '/', '?' or '#'", domain.ErrInvalidAlias, alias)
	}
	if _, ok := reservedAliases[alias]; ok {
		return fmt.Errorf("%w: %q is reserved", domain.ErrInvalidAlias, alias)
	}
	return nil
}

// validateTargetURL returns the normalized form of an absolute URL
func validateTargetURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute url", domain.ErrInvalidURL, raw)
	}
	return u.String(), nil
}

var _ ports.LinkService = (*LinkService)(nil)

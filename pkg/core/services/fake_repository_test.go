package services

import (
	"context"
	"sync"

	"github.com/wadjakorntonsri/ito/pkg/core/domain"
)

// fakeRepository is an in-memory ports.LinkRepository
type fakeRepository struct {
	mu     sync.Mutex
	links  []domain.Link
	nextID int64
	err    error // returned by every call when set
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) List(ctx context.Context) ([]domain.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Link(nil), f.links...), nil
}

func (f *fakeRepository) Insert(ctx context.Context, alias, targetURL string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	for _, l := range f.links {
		if l.Alias == alias {
			return 0, domain.ErrDuplicateAlias
		}
	}
	id := f.nextID
	f.nextID++
	f.links = append(f.links, domain.Link{ID: id, Alias: alias, TargetURL: targetURL})
	return id, nil
}

func (f *fakeRepository) FindByAlias(ctx context.Context, alias string) (*domain.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.links {
		if l.Alias == alias {
			link := l
			return &link, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepository) DeleteByID(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i, l := range f.links {
		if l.ID == id {
			f.links = append(f.links[:i], f.links[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRepository) Ping(ctx context.Context) error {
	return f.err
}

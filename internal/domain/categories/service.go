package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/ports/storage"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo   Repository
	lister Lister
}

// NewService usa lister para el listado público (normalmente un CachedLister).
// Con lister nil se lee directo del repo.
func NewService(repo Repository, lister Lister) *Service {
	if lister == nil {
		lister = repo
	}
	return &Service{repo: repo, lister: lister}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.lister.List(ctx)
}

// ListFresh lee directo del repo, sin pasar por el cache.
func (s *Service) ListFresh(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) CreaturesByCategory(ctx context.Context, categoryID int64) ([]creatures.Creature, error) {
	if err := s.mustExist(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.repo.CreaturesByCategory(ctx, categoryID)
}

// Create no invalida el listado cacheado: la nueva category aparece al expirar la entrada.
func (s *Service) Create(ctx context.Context, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrInvalidInput
	}

	// El chequeo lee del repo, no del cache.
	existing, err := s.repo.List(ctx)
	if err != nil {
		return Category{}, err
	}
	for _, c := range existing {
		if storage.SameName(c.Name, name) {
			return Category{}, fmt.Errorf("category %q: %w", name, storage.ErrConflict)
		}
	}

	return s.repo.Create(ctx, Category{Name: name})
}

func (s *Service) Update(ctx context.Context, c Category) (Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.ID <= 0 || c.Name == "" {
		return Category{}, ErrInvalidInput
	}
	if err := s.mustExist(ctx, c.ID); err != nil {
		return Category{}, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) mustExist(ctx context.Context, id int64) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrNotFound
	}
	return nil
}

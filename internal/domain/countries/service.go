package countries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"creature-reviews/internal/domain/owners"
	"creature-reviews/internal/ports/storage"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo   Repository
	owners storage.Exister
}

func NewService(repo Repository, owners storage.Exister) *Service {
	return &Service{repo: repo, owners: owners}
}

func (s *Service) List(ctx context.Context) ([]Country, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Country, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string) (Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Country{}, ErrInvalidInput
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return Country{}, err
	}
	for _, c := range existing {
		if storage.SameName(c.Name, name) {
			return Country{}, fmt.Errorf("country %q: %w", name, storage.ErrConflict)
		}
	}

	return s.repo.Create(ctx, Country{Name: name})
}

func (s *Service) Update(ctx context.Context, c Country) (Country, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.ID <= 0 || c.Name == "" {
		return Country{}, ErrInvalidInput
	}
	if err := storage.RequireFound(ctx, s.repo, c.ID); err != nil {
		return Country{}, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return Country{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := storage.RequireFound(ctx, s.repo, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) OwnersByCountry(ctx context.Context, countryID int64) ([]owners.Owner, error) {
	if err := storage.RequireFound(ctx, s.repo, countryID); err != nil {
		return nil, err
	}
	return s.repo.OwnersByCountry(ctx, countryID)
}

func (s *Service) CountryByOwner(ctx context.Context, ownerID int64) (Country, error) {
	if err := storage.RequireFound(ctx, s.owners, ownerID); err != nil {
		return Country{}, err
	}
	return s.repo.CountryByOwner(ctx, ownerID)
}

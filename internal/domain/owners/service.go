package owners

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
	repo      Repository
	countries storage.Exister
	creatures storage.Exister
}

func NewService(repo Repository, countries, creatures storage.Exister) *Service {
	return &Service{repo: repo, countries: countries, creatures: creatures}
}

type CreateInput struct {
	Name      string
	Gym       string
	CountryID int64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CountryID <= 0 {
		return Owner{}, ErrInvalidInput
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return Owner{}, err
	}
	for _, o := range existing {
		if storage.SameName(o.Name, name) {
			return Owner{}, fmt.Errorf("owner %q: %w", name, storage.ErrConflict)
		}
	}

	// El país se resuelve antes del insert; la FK cubre el resto.
	if err := storage.RequireReference(ctx, s.countries, "country", in.CountryID); err != nil {
		return Owner{}, err
	}

	return s.repo.Create(ctx, Owner{
		Name:      name,
		Gym:       strings.TrimSpace(in.Gym),
		CountryID: in.CountryID,
	})
}

// Update reemplaza name y gym. El país no cambia.
func (s *Service) Update(ctx context.Context, id int64, name, gym string) (Owner, error) {
	name = strings.TrimSpace(name)
	if id <= 0 || name == "" {
		return Owner{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	current.Name = name
	current.Gym = strings.TrimSpace(gym)

	if err := s.repo.Update(ctx, current); err != nil {
		return Owner{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := storage.RequireFound(ctx, s.repo, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *Service) CreaturesByOwner(ctx context.Context, ownerID int64) ([]creatures.Creature, error) {
	if err := storage.RequireFound(ctx, s.repo, ownerID); err != nil {
		return nil, err
	}
	return s.repo.CreaturesByOwner(ctx, ownerID)
}

func (s *Service) OwnersByCreature(ctx context.Context, creatureID int64) ([]Owner, error) {
	if err := storage.RequireFound(ctx, s.creatures, creatureID); err != nil {
		return nil, err
	}
	return s.repo.OwnersByCreature(ctx, creatureID)
}

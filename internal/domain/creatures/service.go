package creatures

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creature-reviews/internal/ports/storage"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name       string
	BirthDate  time.Time
	OwnerID    int64
	CategoryID int64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Creature, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.OwnerID <= 0 || in.CategoryID <= 0 {
		return Creature{}, ErrInvalidInput
	}

	// Chequeo previo de nombre (trim + case-insensitive). El índice único cubre la carrera.
	existing, err := s.repo.List(ctx)
	if err != nil {
		return Creature{}, err
	}
	for _, c := range existing {
		if storage.SameName(c.Name, name) {
			return Creature{}, fmt.Errorf("creature %q: %w", name, storage.ErrConflict)
		}
	}

	return s.repo.Create(ctx, in.OwnerID, in.CategoryID, Creature{
		Name:      name,
		BirthDate: DateOnly(in.BirthDate),
	})
}

type UpdateInput struct {
	Name      string
	BirthDate time.Time

	// Se aceptan pero no se usan: un update nunca re-resuelve asociaciones.
	OwnerID    int64
	CategoryID int64
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Creature, error) {
	name := strings.TrimSpace(in.Name)
	if id <= 0 || name == "" {
		return Creature{}, ErrInvalidInput
	}

	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return Creature{}, err
	}
	if !ok {
		return Creature{}, storage.ErrNotFound
	}

	c := Creature{ID: id, Name: name, BirthDate: DateOnly(in.BirthDate)}
	if err := s.repo.Update(ctx, c); err != nil {
		return Creature{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Creature, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (Creature, error) {
	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *Service) List(ctx context.Context) ([]Creature, error) {
	return s.repo.List(ctx)
}

// Rating es el promedio de ratings de la criatura; cero si no tiene reviews.
func (s *Service) Rating(ctx context.Context, id int64) (decimal.Decimal, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, storage.ErrNotFound
	}

	sum, count, err := s.repo.RatingStats(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return AverageRating(sum, count), nil
}

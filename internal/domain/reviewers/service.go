package reviewers

import (
	"context"
	"errors"
	"strings"

	"creature-reviews/internal/domain/reviews"
	"creature-reviews/internal/ports/storage"
)

var ErrInvalidInput = errors.New("invalid input")

// Service no valida unicidad de nombre: dos reviewers pueden llamarse igual.
type Service struct {
	repo    Repository
	reviews *reviews.Service
}

func NewService(repo Repository, reviews *reviews.Service) *Service {
	return &Service{repo: repo, reviews: reviews}
}

func (s *Service) List(ctx context.Context) ([]Reviewer, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Reviewer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string) (Reviewer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Reviewer{}, ErrInvalidInput
	}
	return s.repo.Create(ctx, Reviewer{Name: name})
}

func (s *Service) Update(ctx context.Context, r Reviewer) (Reviewer, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.ID <= 0 || r.Name == "" {
		return Reviewer{}, ErrInvalidInput
	}
	if err := storage.RequireFound(ctx, s.repo, r.ID); err != nil {
		return Reviewer{}, err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return Reviewer{}, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := storage.RequireFound(ctx, s.repo, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Reviews(ctx context.Context, reviewerID int64) ([]reviews.Review, error) {
	return s.reviews.ListByReviewer(ctx, reviewerID)
}

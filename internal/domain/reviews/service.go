package reviews

import (
	"context"
	"errors"
	"strings"

	"creature-reviews/internal/ports/storage"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
)

type Service struct {
	repo      Repository
	creatures storage.Exister
	reviewers storage.Exister
}

func NewService(repo Repository, creatures, reviewers storage.Exister) *Service {
	return &Service{repo: repo, creatures: creatures, reviewers: reviewers}
}

type CreateInput struct {
	Title      string
	Text       string
	Rating     int
	CreatureID int64
	ReviewerID int64
}

func validate(title string, rating int) error {
	if strings.TrimSpace(title) == "" {
		return ErrInvalidInput
	}
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// Create rechaza referencias inexistentes en lugar de guardar una review huérfana.
func (s *Service) Create(ctx context.Context, in CreateInput) (Review, error) {
	if err := validate(in.Title, in.Rating); err != nil {
		return Review{}, err
	}
	if in.CreatureID <= 0 || in.ReviewerID <= 0 {
		return Review{}, ErrInvalidInput
	}

	if err := storage.RequireReference(ctx, s.creatures, "creature", in.CreatureID); err != nil {
		return Review{}, err
	}
	if err := storage.RequireReference(ctx, s.reviewers, "reviewer", in.ReviewerID); err != nil {
		return Review{}, err
	}

	return s.repo.Create(ctx, Review{
		Title:      strings.TrimSpace(in.Title),
		Text:       in.Text,
		Rating:     in.Rating,
		CreatureID: in.CreatureID,
		ReviewerID: in.ReviewerID,
	})
}

func (s *Service) Update(ctx context.Context, id int64, title, text string, rating int) (Review, error) {
	if id <= 0 {
		return Review{}, ErrInvalidInput
	}
	if err := validate(title, rating); err != nil {
		return Review{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Review{}, err
	}
	current.Title = strings.TrimSpace(title)
	current.Text = text
	current.Rating = rating

	if err := s.repo.Update(ctx, current); err != nil {
		return Review{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := storage.RequireFound(ctx, s.repo, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Review, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Review, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCreature(ctx context.Context, creatureID int64) ([]Review, error) {
	if err := storage.RequireFound(ctx, s.creatures, creatureID); err != nil {
		return nil, err
	}
	return s.repo.ListByCreature(ctx, creatureID)
}

func (s *Service) ListByReviewer(ctx context.Context, reviewerID int64) ([]Review, error) {
	if err := storage.RequireFound(ctx, s.reviewers, reviewerID); err != nil {
		return nil, err
	}
	return s.repo.ListByReviewer(ctx, reviewerID)
}

package activity

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

type CreateInput struct {
	OwnerID  int64
	Activity string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Entry, error) {
	if in.OwnerID <= 0 || strings.TrimSpace(in.Activity) == "" {
		return Entry{}, ErrInvalidInput
	}

	e := Entry{OwnerID: in.OwnerID, Activity: strings.TrimSpace(in.Activity)}
	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

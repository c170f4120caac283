package service

import (
	"context"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

type NamesService struct {
	Repo *repo.GormRepo
}

func (s *NamesService) GetName(ctx context.Context, id uint) (*models.Name, error) {
	return s.Repo.GetName(ctx, id)
}

func (s *NamesService) GetNames(ctx context.Context, offset, limit int) (int64, []models.Name, error) {
	return s.Repo.GetNames(ctx, offset, limit)
}

func (s *NamesService) CreateName(ctx context.Context, req transport.CreateNameRequest) (*models.Name, error) {
	if req.Name == "" {
		ve := &ValidationError{}
		ve.add("name", "name is required")
		return nil, ve
	}

	return s.Repo.CreateName(ctx, &models.Name{
		Name:    req.Name,
		Meaning: req.Meaning,
		Origin:  req.Origin,
	})
}

func (s *NamesService) PatchName(ctx context.Context, req transport.PatchNameRequest, id uint) (*models.Name, error) {
	if req.Name != nil && *req.Name == "" {
		ve := &ValidationError{}
		ve.add("name", "name cannot be empty")
		return nil, ve
	}

	return s.Repo.PatchName(ctx, req, id)
}

func (s *NamesService) DeleteName(ctx context.Context, id uint) error {
	return s.Repo.DeleteName(ctx, id)
}

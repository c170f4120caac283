package service

import (
	"context"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

type PronunciationService struct {
	Repo *repo.GormRepo
}

func (s *PronunciationService) GetItem(ctx context.Context, id uint) (*models.PronunciationItem, error) {
	return s.Repo.GetPronunciationItem(ctx, id)
}

func (s *PronunciationService) GetItems(ctx context.Context, offset, limit int) (int64, []models.PronunciationItem, error) {
	return s.Repo.GetPronunciationItems(ctx, offset, limit)
}

func (s *PronunciationService) CreateItem(ctx context.Context, req transport.CreatePronunciationItemRequest) (*models.PronunciationItem, error) {
	if req.Text == "" {
		ve := &ValidationError{}
		ve.add("text", "text is required")
		return nil, ve
	}

	return s.Repo.CreatePronunciationItem(ctx, &models.PronunciationItem{
		Text:     req.Text,
		AudioURL: req.AudioURL,
		Tips:     req.Tips,
	})
}

func (s *PronunciationService) PatchItem(ctx context.Context, req transport.PatchPronunciationItemRequest, id uint) (*models.PronunciationItem, error) {
	if req.Text != nil && *req.Text == "" {
		ve := &ValidationError{}
		ve.add("text", "text cannot be empty")
		return nil, ve
	}

	return s.Repo.PatchPronunciationItem(ctx, req, id)
}

func (s *PronunciationService) DeleteItem(ctx context.Context, id uint) error {
	return s.Repo.DeletePronunciationItem(ctx, id)
}

package service

import (
	"context"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

type VocabularyService struct {
	Repo *repo.GormRepo
}

func (s *VocabularyService) GetCategory(ctx context.Context, id uint) (*models.VocabularyCategory, error) {
	return s.Repo.GetVocabularyCategory(ctx, id)
}

func (s *VocabularyService) GetCategories(ctx context.Context, offset, limit int) (int64, []models.VocabularyCategory, error) {
	return s.Repo.GetVocabularyCategories(ctx, offset, limit)
}

func (s *VocabularyService) CreateCategory(ctx context.Context, req transport.CreateVocabularyCategoryRequest) (*models.VocabularyCategory, error) {
	if req.Name == "" {
		ve := &ValidationError{}
		ve.add("name", "name is required")
		return nil, ve
	}

	return s.Repo.CreateVocabularyCategory(ctx, &models.VocabularyCategory{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
}

func (s *VocabularyService) PatchCategory(ctx context.Context, req transport.PatchVocabularyCategoryRequest, id uint) (*models.VocabularyCategory, error) {
	if req.Name != nil && *req.Name == "" {
		ve := &ValidationError{}
		ve.add("name", "name cannot be empty")
		return nil, ve
	}

	return s.Repo.PatchVocabularyCategory(ctx, req, id)
}

func (s *VocabularyService) DeleteCategory(ctx context.Context, id uint) error {
	return s.Repo.DeleteVocabularyCategory(ctx, id)
}

func (s *VocabularyService) GetWord(ctx context.Context, id uint) (*models.VocabularyWord, error) {
	return s.Repo.GetVocabularyWord(ctx, id)
}

func (s *VocabularyService) GetWords(ctx context.Context, categoryID uint, offset, limit int) (int64, []models.VocabularyWord, error) {
	return s.Repo.GetVocabularyWords(ctx, categoryID, offset, limit)
}

func (s *VocabularyService) CreateWord(ctx context.Context, req transport.CreateVocabularyWordRequest) (*models.VocabularyWord, error) {
	ve := &ValidationError{}
	if req.CategoryID == 0 {
		ve.add("category_id", "category id is required")
	}
	if req.Word == "" {
		ve.add("word", "word is required")
	}
	if req.Translation == "" {
		ve.add("translation", "translation is required")
	}
	if err := ve.orNil(); err != nil {
		return nil, err
	}

	return s.Repo.CreateVocabularyWord(ctx, &models.VocabularyWord{
		CategoryID:    req.CategoryID,
		Word:          req.Word,
		Translation:   req.Translation,
		Transcription: req.Transcription,
		AudioURL:      req.AudioURL,
	})
}

func (s *VocabularyService) PatchWord(ctx context.Context, req transport.PatchVocabularyWordRequest, id uint) (*models.VocabularyWord, error) {
	if req.Word != nil && *req.Word == "" {
		ve := &ValidationError{}
		ve.add("word", "word cannot be empty")
		return nil, ve
	}

	return s.Repo.PatchVocabularyWord(ctx, req, id)
}

func (s *VocabularyService) DeleteWord(ctx context.Context, id uint) error {
	return s.Repo.DeleteVocabularyWord(ctx, id)
}

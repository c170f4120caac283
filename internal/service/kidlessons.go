package service

import (
	"context"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

type KidLessonsService struct {
	Repo *repo.GormRepo
}

func (s *KidLessonsService) GetKidLesson(ctx context.Context, id uint) (*models.KidLesson, error) {
	return s.Repo.GetKidLesson(ctx, id)
}

func (s *KidLessonsService) GetKidLessons(ctx context.Context, offset, limit int) (int64, []models.KidLesson, error) {
	return s.Repo.GetKidLessons(ctx, offset, limit)
}

func (s *KidLessonsService) CreateKidLesson(ctx context.Context, req transport.CreateKidLessonRequest) (*models.KidLesson, error) {
	if req.Title == "" {
		ve := &ValidationError{}
		ve.add("title", "title is required")
		return nil, ve
	}

	return s.Repo.CreateKidLesson(ctx, &models.KidLesson{
		Title:      req.Title,
		PictureURL: req.PictureURL,
		Body:       req.Body,
	})
}

func (s *KidLessonsService) PatchKidLesson(ctx context.Context, req transport.PatchKidLessonRequest, id uint) (*models.KidLesson, error) {
	if req.Title != nil && *req.Title == "" {
		ve := &ValidationError{}
		ve.add("title", "title cannot be empty")
		return nil, ve
	}

	return s.Repo.PatchKidLesson(ctx, req, id)
}

func (s *KidLessonsService) DeleteKidLesson(ctx context.Context, id uint) error {
	return s.Repo.DeleteKidLesson(ctx, id)
}

func (s *KidLessonsService) GetKidQuizQuestion(ctx context.Context, id uint) (*models.KidQuizQuestion, error) {
	return s.Repo.GetKidQuizQuestion(ctx, id)
}

func (s *KidLessonsService) GetKidQuizQuestions(ctx context.Context, kidLessonID uint, offset, limit int) (int64, []models.KidQuizQuestion, error) {
	return s.Repo.GetKidQuizQuestions(ctx, kidLessonID, offset, limit)
}

func (s *KidLessonsService) CreateKidQuizQuestion(ctx context.Context, req transport.CreateKidQuizQuestionRequest) (*models.KidQuizQuestion, error) {
	ve := &ValidationError{}
	if req.Question == "" {
		ve.add("question", "question is required")
	}
	if !validCorrectIndex(req.CorrectIndex) {
		ve.add("correct_index", "correct index must be between 0 and 3")
	}
	if err := ve.orNil(); err != nil {
		return nil, err
	}

	return s.Repo.CreateKidQuizQuestion(ctx, &models.KidQuizQuestion{
		KidLessonID:  req.KidLessonID,
		Question:     req.Question,
		PictureURL:   req.PictureURL,
		OptionA:      req.OptionA,
		OptionB:      req.OptionB,
		OptionC:      req.OptionC,
		OptionD:      req.OptionD,
		CorrectIndex: req.CorrectIndex,
	})
}

func (s *KidLessonsService) PatchKidQuizQuestion(ctx context.Context, req transport.PatchKidQuizQuestionRequest, id uint) (*models.KidQuizQuestion, error) {
	if req.CorrectIndex != nil && !validCorrectIndex(*req.CorrectIndex) {
		ve := &ValidationError{}
		ve.add("correct_index", "correct index must be between 0 and 3")
		return nil, ve
	}

	return s.Repo.PatchKidQuizQuestion(ctx, req, id)
}

func (s *KidLessonsService) DeleteKidQuizQuestion(ctx context.Context, id uint) error {
	return s.Repo.DeleteKidQuizQuestion(ctx, id)
}

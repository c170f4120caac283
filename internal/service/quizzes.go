package service

import (
	"context"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

type QuizzesService struct {
	Repo *repo.GormRepo
}

func (s *QuizzesService) GetQuiz(ctx context.Context, id uint) (*models.Quiz, error) {
	return s.Repo.GetQuiz(ctx, id)
}

func (s *QuizzesService) GetQuizzes(ctx context.Context, offset, limit int) (int64, []models.Quiz, error) {
	return s.Repo.GetQuizzes(ctx, offset, limit)
}

func (s *QuizzesService) CreateQuiz(ctx context.Context, req transport.CreateQuizRequest) (*models.Quiz, error) {
	if req.Title == "" {
		ve := &ValidationError{}
		ve.add("title", "title is required")
		return nil, ve
	}

	return s.Repo.CreateQuiz(ctx, &models.Quiz{Title: req.Title, LessonID: req.LessonID})
}

func (s *QuizzesService) PatchQuiz(ctx context.Context, req transport.PatchQuizRequest, id uint) (*models.Quiz, error) {
	if req.Title != nil && *req.Title == "" {
		ve := &ValidationError{}
		ve.add("title", "title cannot be empty")
		return nil, ve
	}

	return s.Repo.PatchQuiz(ctx, req, id)
}

func (s *QuizzesService) DeleteQuiz(ctx context.Context, id uint) error {
	return s.Repo.DeleteQuiz(ctx, id)
}

func validCorrectIndex(idx int) bool {
	return idx >= 0 && idx <= 3
}

func (s *QuizzesService) GetQuizQuestion(ctx context.Context, id uint) (*models.QuizQuestion, error) {
	return s.Repo.GetQuizQuestion(ctx, id)
}

func (s *QuizzesService) GetQuizQuestions(ctx context.Context, quizID uint, offset, limit int) (int64, []models.QuizQuestion, error) {
	return s.Repo.GetQuizQuestions(ctx, quizID, offset, limit)
}

func (s *QuizzesService) CreateQuizQuestion(ctx context.Context, req transport.CreateQuizQuestionRequest) (*models.QuizQuestion, error) {
	ve := &ValidationError{}
	if req.QuizID == 0 {
		ve.add("quiz_id", "quiz id is required")
	}
	if req.Question == "" {
		ve.add("question", "question is required")
	}
	if !validCorrectIndex(req.CorrectIndex) {
		ve.add("correct_index", "correct index must be between 0 and 3")
	}
	if err := ve.orNil(); err != nil {
		return nil, err
	}

	return s.Repo.CreateQuizQuestion(ctx, &models.QuizQuestion{
		QuizID:       req.QuizID,
		Question:     req.Question,
		OptionA:      req.OptionA,
		OptionB:      req.OptionB,
		OptionC:      req.OptionC,
		OptionD:      req.OptionD,
		CorrectIndex: req.CorrectIndex,
	})
}

func (s *QuizzesService) PatchQuizQuestion(ctx context.Context, req transport.PatchQuizQuestionRequest, id uint) (*models.QuizQuestion, error) {
	if req.CorrectIndex != nil && !validCorrectIndex(*req.CorrectIndex) {
		ve := &ValidationError{}
		ve.add("correct_index", "correct index must be between 0 and 3")
		return nil, ve
	}

	return s.Repo.PatchQuizQuestion(ctx, req, id)
}

func (s *QuizzesService) DeleteQuizQuestion(ctx context.Context, id uint) error {
	return s.Repo.DeleteQuizQuestion(ctx, id)
}

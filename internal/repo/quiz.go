package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

func (r *GormRepo) GetQuiz(ctx context.Context, id uint) (*models.Quiz, error) {
	quiz := models.Quiz{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *GormRepo) GetQuizzes(ctx context.Context, offset, limit int) (int64, []models.Quiz, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Quiz{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Quiz
	if err := r.DB.WithContext(ctx).Model(&models.Quiz{}).
		Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateQuiz(ctx context.Context, quiz *models.Quiz) (*models.Quiz, error) {
	if err := r.DB.WithContext(ctx).Create(quiz).Error; err != nil {
		return nil, err
	}
	return quiz, nil
}

func (r *GormRepo) PatchQuiz(ctx context.Context, req transport.PatchQuizRequest, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := r.DB.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, err
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.LessonID != nil {
		quiz.LessonID = req.LessonID
	}

	if err := r.DB.WithContext(ctx).Save(&quiz).Error; err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (r *GormRepo) DeleteQuiz(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Quiz{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) GetQuizQuestion(ctx context.Context, id uint) (*models.QuizQuestion, error) {
	q := models.QuizQuestion{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *GormRepo) GetQuizQuestions(ctx context.Context, quizID uint, offset, limit int) (int64, []models.QuizQuestion, error) {
	q := r.DB.WithContext(ctx).Model(&models.QuizQuestion{})
	if quizID != 0 {
		q = q.Where("quiz_id = ?", quizID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.QuizQuestion
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateQuizQuestion(ctx context.Context, q *models.QuizQuestion) (*models.QuizQuestion, error) {
	if err := r.DB.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (r *GormRepo) PatchQuizQuestion(ctx context.Context, req transport.PatchQuizQuestionRequest, id uint) (*models.QuizQuestion, error) {
	var q models.QuizQuestion
	if err := r.DB.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, err
	}

	if req.Question != nil {
		q.Question = *req.Question
	}
	if req.OptionA != nil {
		q.OptionA = *req.OptionA
	}
	if req.OptionB != nil {
		q.OptionB = *req.OptionB
	}
	if req.OptionC != nil {
		q.OptionC = *req.OptionC
	}
	if req.OptionD != nil {
		q.OptionD = *req.OptionD
	}
	if req.CorrectIndex != nil {
		q.CorrectIndex = *req.CorrectIndex
	}

	if err := r.DB.WithContext(ctx).Save(&q).Error; err != nil {
		return nil, err
	}

	return &q, nil
}

func (r *GormRepo) DeleteQuizQuestion(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.QuizQuestion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

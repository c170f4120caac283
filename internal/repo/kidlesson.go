package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

func (r *GormRepo) GetKidLesson(ctx context.Context, id uint) (*models.KidLesson, error) {
	lesson := models.KidLesson{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *GormRepo) GetKidLessons(ctx context.Context, offset, limit int) (int64, []models.KidLesson, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.KidLesson{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.KidLesson
	if err := r.DB.WithContext(ctx).Model(&models.KidLesson{}).
		Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateKidLesson(ctx context.Context, lesson *models.KidLesson) (*models.KidLesson, error) {
	if err := r.DB.WithContext(ctx).Create(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

func (r *GormRepo) PatchKidLesson(ctx context.Context, req transport.PatchKidLessonRequest, id uint) (*models.KidLesson, error) {
	var lesson models.KidLesson
	if err := r.DB.WithContext(ctx).First(&lesson, id).Error; err != nil {
		return nil, err
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.PictureURL != nil {
		lesson.PictureURL = *req.PictureURL
	}
	if req.Body != nil {
		lesson.Body = *req.Body
	}

	if err := r.DB.WithContext(ctx).Save(&lesson).Error; err != nil {
		return nil, err
	}

	return &lesson, nil
}

func (r *GormRepo) DeleteKidLesson(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.KidLesson{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) GetKidQuizQuestion(ctx context.Context, id uint) (*models.KidQuizQuestion, error) {
	q := models.KidQuizQuestion{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *GormRepo) GetKidQuizQuestions(ctx context.Context, kidLessonID uint, offset, limit int) (int64, []models.KidQuizQuestion, error) {
	q := r.DB.WithContext(ctx).Model(&models.KidQuizQuestion{})
	if kidLessonID != 0 {
		q = q.Where("kid_lesson_id = ?", kidLessonID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.KidQuizQuestion
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateKidQuizQuestion(ctx context.Context, q *models.KidQuizQuestion) (*models.KidQuizQuestion, error) {
	if err := r.DB.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (r *GormRepo) PatchKidQuizQuestion(ctx context.Context, req transport.PatchKidQuizQuestionRequest, id uint) (*models.KidQuizQuestion, error) {
	var q models.KidQuizQuestion
	if err := r.DB.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, err
	}

	if req.Question != nil {
		q.Question = *req.Question
	}
	if req.PictureURL != nil {
		q.PictureURL = *req.PictureURL
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

func (r *GormRepo) DeleteKidQuizQuestion(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.KidQuizQuestion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

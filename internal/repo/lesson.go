package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

func (r *GormRepo) GetLesson(ctx context.Context, id uint) (*models.Lesson, error) {
	lesson := models.Lesson{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *GormRepo) GetLessons(ctx context.Context, offset, limit int) (int64, []models.Lesson, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Lesson{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Lesson
	if err := r.DB.WithContext(ctx).Model(&models.Lesson{}).
		Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	if err := r.DB.WithContext(ctx).Create(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

func (r *GormRepo) PatchLesson(ctx context.Context, req transport.PatchLessonRequest, id uint) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := r.DB.WithContext(ctx).First(&lesson, id).Error; err != nil {
		return nil, err
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Level != nil {
		lesson.Level = *req.Level
	}
	if req.Body != nil {
		lesson.Body = *req.Body
	}
	if req.AudioURL != nil {
		lesson.AudioURL = *req.AudioURL
	}

	if err := r.DB.WithContext(ctx).Save(&lesson).Error; err != nil {
		return nil, err
	}

	return &lesson, nil
}

func (r *GormRepo) DeleteLesson(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Lesson{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

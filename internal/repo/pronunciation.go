package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

func (r *GormRepo) GetPronunciationItem(ctx context.Context, id uint) (*models.PronunciationItem, error) {
	item := models.PronunciationItem{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) GetPronunciationItems(ctx context.Context, offset, limit int) (int64, []models.PronunciationItem, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.PronunciationItem{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.PronunciationItem
	if err := r.DB.WithContext(ctx).Model(&models.PronunciationItem{}).
		Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreatePronunciationItem(ctx context.Context, item *models.PronunciationItem) (*models.PronunciationItem, error) {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormRepo) PatchPronunciationItem(ctx context.Context, req transport.PatchPronunciationItemRequest, id uint) (*models.PronunciationItem, error) {
	var item models.PronunciationItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}

	if req.Text != nil {
		item.Text = *req.Text
	}
	if req.AudioURL != nil {
		item.AudioURL = *req.AudioURL
	}
	if req.Tips != nil {
		item.Tips = *req.Tips
	}

	if err := r.DB.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *GormRepo) DeletePronunciationItem(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.PronunciationItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

func (r *GormRepo) GetName(ctx context.Context, id uint) (*models.Name, error) {
	name := models.Name{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&name).Error; err != nil {
		return nil, err
	}
	return &name, nil
}

func (r *GormRepo) GetNames(ctx context.Context, offset, limit int) (int64, []models.Name, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Name{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Name
	if err := r.DB.WithContext(ctx).Model(&models.Name{}).
		Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateName(ctx context.Context, name *models.Name) (*models.Name, error) {
	if err := r.DB.WithContext(ctx).Create(name).Error; err != nil {
		return nil, err
	}
	return name, nil
}

func (r *GormRepo) PatchName(ctx context.Context, req transport.PatchNameRequest, id uint) (*models.Name, error) {
	var name models.Name
	if err := r.DB.WithContext(ctx).First(&name, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		name.Name = *req.Name
	}
	if req.Meaning != nil {
		name.Meaning = *req.Meaning
	}
	if req.Origin != nil {
		name.Origin = *req.Origin
	}

	if err := r.DB.WithContext(ctx).Save(&name).Error; err != nil {
		return nil, err
	}

	return &name, nil
}

func (r *GormRepo) DeleteName(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Name{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

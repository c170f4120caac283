package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

func (r *GormRepo) GetVocabularyCategory(ctx context.Context, id uint) (*models.VocabularyCategory, error) {
	cat := models.VocabularyCategory{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *GormRepo) GetVocabularyCategories(ctx context.Context, offset, limit int) (int64, []models.VocabularyCategory, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.VocabularyCategory{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.VocabularyCategory
	if err := r.DB.WithContext(ctx).Model(&models.VocabularyCategory{}).
		Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateVocabularyCategory(ctx context.Context, cat *models.VocabularyCategory) (*models.VocabularyCategory, error) {
	if err := r.DB.WithContext(ctx).Create(cat).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

func (r *GormRepo) PatchVocabularyCategory(ctx context.Context, req transport.PatchVocabularyCategoryRequest, id uint) (*models.VocabularyCategory, error) {
	var cat models.VocabularyCategory
	if err := r.DB.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.ImageURL != nil {
		cat.ImageURL = *req.ImageURL
	}

	if err := r.DB.WithContext(ctx).Save(&cat).Error; err != nil {
		return nil, err
	}

	return &cat, nil
}

func (r *GormRepo) DeleteVocabularyCategory(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.VocabularyCategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) GetVocabularyWord(ctx context.Context, id uint) (*models.VocabularyWord, error) {
	word := models.VocabularyWord{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&word).Error; err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *GormRepo) GetVocabularyWords(ctx context.Context, categoryID uint, offset, limit int) (int64, []models.VocabularyWord, error) {
	q := r.DB.WithContext(ctx).Model(&models.VocabularyWord{})
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.VocabularyWord
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateVocabularyWord(ctx context.Context, word *models.VocabularyWord) (*models.VocabularyWord, error) {
	if err := r.DB.WithContext(ctx).Create(word).Error; err != nil {
		return nil, err
	}
	return word, nil
}

func (r *GormRepo) PatchVocabularyWord(ctx context.Context, req transport.PatchVocabularyWordRequest, id uint) (*models.VocabularyWord, error) {
	var word models.VocabularyWord
	if err := r.DB.WithContext(ctx).First(&word, id).Error; err != nil {
		return nil, err
	}

	if req.Word != nil {
		word.Word = *req.Word
	}
	if req.Translation != nil {
		word.Translation = *req.Translation
	}
	if req.Transcription != nil {
		word.Transcription = *req.Transcription
	}
	if req.AudioURL != nil {
		word.AudioURL = *req.AudioURL
	}

	if err := r.DB.WithContext(ctx).Save(&word).Error; err != nil {
		return nil, err
	}

	return &word, nil
}

func (r *GormRepo) DeleteVocabularyWord(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.VocabularyWord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

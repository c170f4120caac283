package repo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/models"
)

var ErrResetTokenInvalid = errors.New("reset token invalid, expired or already used")

// Reset tokens are valid for one hour. Previously issued tokens stay valid
// until they expire or get consumed.
const resetTokenTTL = time.Hour

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// CreateResetToken stores a new single-use token and returns its opaque value.
// Only the hash is persisted.
func (r *GormRepo) CreateResetToken(ctx context.Context, userID uuid.UUID) (string, error) {
	raw := uuid.NewString()
	row := models.PasswordResetToken{
		UserID:    userID,
		TokenHash: sha256Hex(raw),
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL).Unix(),
	}

	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}

	return raw, nil
}

// ConsumeResetToken verifies the token for the user, marks it used and swaps
// the password hash in one transaction.
func (r *GormRepo) ConsumeResetToken(ctx context.Context, userID uuid.UUID, token, newHash string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.PasswordResetToken
		if err := tx.Where("user_id = ? AND token_hash = ?", userID, sha256Hex(token)).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResetTokenInvalid
			}
			return err
		}

		if row.Used || row.ExpiresAt < time.Now().UTC().Unix() {
			return ErrResetTokenInvalid
		}

		if err := tx.Model(&models.PasswordResetToken{}).
			Where("id = ?", row.ID).
			Update("used", true).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("password_hash", newHash).Error
	})
}

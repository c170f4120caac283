package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

type UsersService struct {
	Repo *repo.GormRepo
}

func (s *UsersService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.Repo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UsersService) ListUsers(ctx context.Context, offset, limit int) (int64, []models.User, error) {
	return s.Repo.ListUsers(ctx, offset, limit)
}

func (s *UsersService) RolesForUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	return s.Repo.ListRolesForUsers(ctx, ids)
}

func (s *UsersService) PatchUser(ctx context.Context, req transport.PatchUserRequest, id uuid.UUID) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "users.patch", "user_id", id)

	user, err := s.Repo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.BirthDate != nil {
		bd, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			ve := &ValidationError{}
			ve.add("birth_date", "birth date must be YYYY-MM-DD")
			l.Warn("patch_user_failed", "status", 400, "error", err)
			return nil, ve
		}
		user.BirthDate = &bd
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.NativeLang != nil {
		user.NativeLang = *req.NativeLang
	}
	if req.TargetLang != nil {
		user.TargetLang = *req.TargetLang
	}

	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		l.Error("patch_user_failed", "status", 500, "error", err)
		return nil, err
	}

	l.Info("patch_user_successful")
	return user, nil
}

func (s *UsersService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	l := logging.FromContext(ctx).With("svc", "users.delete", "user_id", id)

	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		l.Error("delete_user_failed", "status", 500, "error", err)
		return err
	}

	l.Info("delete_user_successful")
	return nil
}

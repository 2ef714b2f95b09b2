package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	apperrors "bloghub/internal/errors"
	"bloghub/internal/model"
	"bloghub/internal/repository"
)

// PictureStore persists an uploaded profile picture and returns the stored
// filename.
type PictureStore interface {
	SavePicture(r io.Reader, originalName string) (string, error)
}

// AccountService handles profile reads and updates.
type AccountService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateAccount(ctx context.Context, userID uint, username, email string, picture io.Reader, pictureName string) (*model.User, error)
}

type accountService struct {
	users    repository.UserRepository
	pictures PictureStore
}

// NewAccountService creates a new account service.
func NewAccountService(users repository.UserRepository, pictures PictureStore) AccountService {
	return &accountService{users: users, pictures: pictures}
}

func (s *accountService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateAccount applies a profile update. Uniqueness is re-checked only for
// fields that actually change. The picture, when present, is processed
// before any database write so an invalid image leaves the record untouched.
func (s *accountService) UpdateAccount(ctx context.Context, userID uint, username, email string, picture io.Reader, pictureName string) (*model.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if username != user.Username {
		if _, err := s.users.FindByUsername(ctx, username); err == nil {
			return nil, apperrors.ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check username: %w", err)
		}
		fields["username"] = username
	}

	if email != user.Email {
		if _, err := s.users.FindByEmail(ctx, email); err == nil {
			return nil, apperrors.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		fields["email"] = email
	}

	if picture != nil {
		filename, err := s.pictures.SavePicture(picture, pictureName)
		if err != nil {
			return nil, err
		}
		fields["image_file"] = filename
	}

	if err := s.users.Update(ctx, userID, fields); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	user.Username = username
	user.Email = email
	if name, ok := fields["image_file"].(string); ok {
		user.ImageFile = name
	}
	return user, nil
}

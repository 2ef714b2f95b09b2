package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bloghub/internal/auth"
	apperrors "bloghub/internal/errors"
	"bloghub/internal/mail"
	"bloghub/internal/model"
	"bloghub/internal/repository"
)

// AuthService handles registration, login and the password reset flow.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetToken(token string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	users   repository.UserRepository
	tokens  *auth.TokenService
	mailer  mail.Mailer
	baseURL string
}

// NewAuthService creates a new authentication service. baseURL is the
// externally reachable origin used to build reset links.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService, mailer mail.Mailer, baseURL string) AuthService {
	return &authService{users: users, tokens: tokens, mailer: mailer, baseURL: baseURL}
}

// Register creates a new user with a hashed password. Username and email are
// pre-checked for uniqueness; a duplicate-key error from a concurrent insert
// between check and create is mapped to the same form-level errors.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		ImageFile:    model.DefaultImageFile,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, uerr := s.users.FindByUsername(ctx, username); uerr == nil {
				return nil, apperrors.ErrUsernameTaken
			}
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the user. The error is
// the same whether the email is unknown or the password is wrong.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// RequestPasswordReset emails a tokenized reset link to the address. An
// unknown email is a silent no-op so the flow does not reveal whether an
// account exists. Mail transport failures propagate to the caller.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	body := fmt.Sprintf(`To reset your password, visit the following link:
%s/reset_password/%s

If you did not make this request then simply ignore this email and no changes will be made.
`, s.baseURL, token)

	return s.mailer.Send(user.Email, "Password Reset Request", body)
}

// VerifyResetToken reports whether a reset token is still usable without
// consuming it; the reset form is only shown for valid tokens.
func (s *authService) VerifyResetToken(token string) error {
	if _, err := s.tokens.Verify(token); err != nil {
		return apperrors.ErrTokenInvalid
	}
	return nil
}

// ResetPassword verifies the token and stores a fresh hash of the new
// password for the embedded user.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return apperrors.ErrTokenInvalid
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hashed); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/auth"
	"github.com/fittrack-dev/fittrack/internal/models"
	"github.com/fittrack-dev/fittrack/internal/validate"
)

type AuthService struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenManager) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register validates the payload, rejects duplicate username/email, stores
// the user with a hashed password and issues an identity token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if errs := validate.SignupPayload(username, email, password); len(errs) > 0 {
		return nil, "", apperror.NewValidation(errs)
	}

	if taken, err := s.usernameTaken(ctx, username, 0); err != nil {
		return nil, "", apperror.NewInternal(err)
	} else if taken {
		return nil, "", apperror.NewConflict("Username already exists")
	}

	if email != "" {
		if taken, err := s.emailTaken(ctx, email, 0); err != nil {
			return nil, "", apperror.NewInternal(err)
		} else if taken {
			return nil, "", apperror.NewConflict("Email already exists")
		}
	}

	user := models.User{Username: username}
	if email != "" {
		user.Email = &email
	}
	if err := user.SetPassword(password); err != nil {
		return nil, "", apperror.NewInternal(err)
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, "", apperror.NewInternal(err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.NewInternal(err)
	}

	return &user, token, nil
}

// Login accepts either a username or an email as the identifier. The
// response is identical for an unknown identifier and a wrong password.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	identifier = strings.TrimSpace(identifier)

	if errs := validate.LoginPayload(identifier, password); len(errs) > 0 {
		return nil, "", apperror.NewValidation(errs)
	}

	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, strings.ToLower(identifier)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperror.NewAuth(apperror.ReasonInvalidCredentials, "Invalid username/email or password")
		}
		return nil, "", apperror.NewInternal(err)
	}

	if !user.CheckPassword(password) {
		return nil, "", apperror.NewAuth(apperror.ReasonInvalidCredentials, "Invalid username/email or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.NewInternal(err)
	}

	return &user, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("User")
		}
		return nil, apperror.NewInternal(err)
	}
	return &user, nil
}

// UpdateProfile changes username and/or email; whichever is empty is left
// untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, username, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if errs := validate.ProfileUpdatePayload(username, email); len(errs) > 0 {
		return nil, apperror.NewValidation(errs)
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if username != "" && username != user.Username {
		if taken, err := s.usernameTaken(ctx, username, userID); err != nil {
			return nil, apperror.NewInternal(err)
		} else if taken {
			return nil, apperror.NewConflict("Username is already taken")
		}
		updates["username"] = username
	}

	if email != "" && (user.Email == nil || email != *user.Email) {
		if taken, err := s.emailTaken(ctx, email, userID); err != nil {
			return nil, apperror.NewInternal(err)
		} else if taken {
			return nil, apperror.NewConflict("Email is already in use")
		}
		updates["email"] = email
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			return nil, apperror.NewInternal(err)
		}
	}

	return s.GetUser(ctx, userID)
}

// ChangePassword requires the current password to verify before the new
// one is accepted.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if errs := validate.PasswordChangePayload(currentPassword, newPassword); len(errs) > 0 {
		return apperror.NewValidation(errs)
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !user.CheckPassword(currentPassword) {
		return apperror.NewAuth(apperror.ReasonIncorrectCurrentPassword, "Incorrect current password")
	}

	if err := user.SetPassword(newPassword); err != nil {
		return apperror.NewInternal(err)
	}

	if err := s.db.WithContext(ctx).Model(user).Update("password_hash", user.PasswordHash).Error; err != nil {
		return apperror.NewInternal(err)
	}

	return nil
}

func (s *AuthService) usernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND id != ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (s *AuthService) emailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id != ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

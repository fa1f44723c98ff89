package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/flasheng-api/auth"
	"github.com/andrewpaige1/flasheng-api/models"
	"github.com/andrewpaige1/flasheng-api/utils"
)

const minPasswordLength = 6

type UserStore struct {
	db *gorm.DB
}

// RegisterInput is the payload of signup and admin user creation.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

// Register validates the input, stores a new account with a bcrypt hash and
// creates its default settings in the same transaction.
func (s *UserStore) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := utils.NormalizeEmail(in.Email)
	fullName := utils.CleanText(in.FullName)
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	if email == "" || in.Password == "" || fullName == "" {
		return nil, utils.ValidationError("All fields are required")
	}
	if !utils.ValidEmail(email) {
		return nil, utils.ValidationError("Invalid email format")
	}
	if !models.ValidRole(role) {
		return nil, utils.ValidationError("Invalid role")
	}
	if len(in.Password) < minPasswordLength {
		return nil, utils.ValidationError("Password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(in.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, utils.ValidationError("Password must be at most 72 bytes")
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return utils.ConflictError("User already exists")
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		settings := models.DefaultSettings(user.ID)
		return tx.Create(&settings).Error
	})
	if isDuplicate(err) {
		return nil, utils.ConflictError("User already exists")
	}
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate checks an email and password pair. Unknown emails and wrong
// passwords fail the same way; the active flag is only consulted once the
// password matched.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, utils.ValidationError("Email and password are required")
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if isNotFound(err) {
		auth.CheckPassword("", password)
		return nil, utils.UnauthenticatedError("Invalid credentials")
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, utils.UnauthenticatedError("Invalid credentials")
	}

	if !user.IsActive {
		return nil, utils.ForbiddenError("Account is deactivated")
	}

	return &user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if isNotFound(err) {
		return nil, utils.NotFoundError("User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// List returns every account, newest first.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ToggleStatus flips the active flag of targetID. An admin can never toggle
// their own account.
func (s *UserStore) ToggleStatus(ctx context.Context, actorID, targetID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", targetID).First(&user).Error; err != nil {
			return err
		}
		if user.ID == actorID {
			return utils.ValidationError("Cannot deactivate your own account")
		}

		user.IsActive = !user.IsActive
		return tx.Model(&user).Update("is_active", user.IsActive).Error
	})
	if err != nil {
		return nil, s.adminError(err)
	}
	return &user, nil
}

// Delete removes targetID together with its settings and everything it owns.
// Shared default rows are left alone.
func (s *UserStore) Delete(ctx context.Context, actorID, targetID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", targetID).First(&user).Error; err != nil {
			return err
		}
		if user.ID == actorID {
			return utils.ValidationError("Cannot delete your own account")
		}

		if err := tx.Where("user_id = ? AND is_default = ?", user.ID, false).Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? AND is_default = ?", user.ID, false).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Settings{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return s.adminError(err)
	}
	return nil
}

func (s *UserStore) adminError(err error) error {
	if isNotFound(err) {
		return utils.NotFoundError("User not found")
	}
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("update user: %w", err)
}

// EnsureAdmin creates an admin account when email is not registered yet.
func (s *UserStore) EnsureAdmin(ctx context.Context, fullName, email, password string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", utils.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	_, err = s.Register(ctx, RegisterInput{FullName: fullName, Email: email, Password: password, Role: models.RoleAdmin})
	if err != nil {
		return false, err
	}
	return true, nil
}

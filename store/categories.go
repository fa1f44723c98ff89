package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/andrewpaige1/flasheng-api/models"
	"github.com/andrewpaige1/flasheng-api/utils"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type CategoryStore struct {
	db *gorm.DB
}

// CategoryInput is used both for creation and as a partial update, where
// nil fields are kept.
type CategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// List returns the caller's categories followed by the shared defaults.
func (s *CategoryStore) List(ctx context.Context, actor Actor) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.WithContext(ctx).
		Scopes(VisibleTo(actor.UserID)).
		Order("is_default ASC").
		Order("created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryStore) Get(ctx context.Context, actor Actor, id string) (*models.Category, error) {
	return s.get(s.db.WithContext(ctx), actor, id)
}

func (s *CategoryStore) get(db *gorm.DB, actor Actor, id string) (*models.Category, error) {
	var category models.Category
	err := db.Scopes(VisibleTo(actor.UserID)).Where("id = ?", id).First(&category).Error
	if isNotFound(err) {
		return nil, utils.NotFoundError("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &category, nil
}

func (s *CategoryStore) Create(ctx context.Context, actor Actor, in CategoryInput) (*models.Category, error) {
	category := &models.Category{UserID: actor.UserID}
	if err := applyCategoryInput(category, in); err != nil {
		return nil, err
	}
	if category.Name == "" {
		return nil, utils.ValidationError("Category name is required")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCategoryName(tx, category); err != nil {
			return err
		}
		return tx.Create(category).Error
	})
	if err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

// Update changes a visible category. Default categories need an admin.
func (s *CategoryStore) Update(ctx context.Context, actor Actor, id string, in CategoryInput) (*models.Category, error) {
	var category *models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		category, err = s.get(tx, actor, id)
		if err != nil {
			return err
		}
		if category.IsDefault && !actor.IsAdmin {
			return utils.ForbiddenError("Cannot modify default categories")
		}

		if err := applyCategoryInput(category, in); err != nil {
			return err
		}
		if category.Name == "" {
			return utils.ValidationError("Category name is required")
		}
		if err := checkCategoryName(tx, category); err != nil {
			return err
		}
		return tx.Save(category).Error
	})
	if err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

// Delete removes a visible category and every flashcard filed under it,
// returning how many flashcards went with it.
func (s *CategoryStore) Delete(ctx context.Context, actor Actor, id string) (int64, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.get(tx, actor, id)
		if err != nil {
			return err
		}
		if category.IsDefault && !actor.IsAdmin {
			return utils.ForbiddenError("Cannot delete default categories")
		}

		res := tx.Where("category_id = ?", category.ID).Delete(&models.Flashcard{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		return tx.Delete(category).Error
	})
	if err != nil {
		return 0, categoryError(err)
	}
	return removed, nil
}

func applyCategoryInput(c *models.Category, in CategoryInput) error {
	if in.Name != nil {
		c.Name = utils.CleanText(*in.Name)
	}
	if in.Description != nil {
		c.Description = utils.CleanText(*in.Description)
	}
	if in.Color != nil && *in.Color != "" {
		if !colorPattern.MatchString(*in.Color) {
			return utils.ValidationError("Invalid color")
		}
		c.Color = *in.Color
	}
	return nil
}

// checkCategoryName rejects a name already used by the same owner.
func checkCategoryName(tx *gorm.DB, c *models.Category) error {
	q := tx.Model(&models.Category{}).Scopes(OwnedBy(c.UserID)).Where("name = ?", c.Name)
	if c.ID != "" {
		q = q.Where("id <> ?", c.ID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return utils.ConflictError("Category with this name already exists")
	}
	return nil
}

func categoryError(err error) error {
	if isDuplicate(err) {
		return utils.ConflictError("Category with this name already exists")
	}
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("save category: %w", err)
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// SystemOwner owns the seeded default categories and flashcards.
const SystemOwner = "system"

const DefaultCategoryColor = "#3B82F6"

// Category groups flashcards. Names are unique per owner.
type Category struct {
	ID          string    `gorm:"primaryKey;size:21" json:"_id"`
	UserID      string    `gorm:"not null;size:21;uniqueIndex:idx_categories_owner_name" json:"user_id"`
	Name        string    `gorm:"not null;size:100;uniqueIndex:idx_categories_owner_name" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	Color       string    `gorm:"not null;size:20" json:"color"`
	IsDefault   bool      `gorm:"not null;index" json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return assignID(&c.ID)
}

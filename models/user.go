package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User is a registered account. Email is stored lowercased.
type User struct {
	ID             string    `gorm:"primaryKey;size:21" json:"_id"`
	FullName       string    `gorm:"not null;size:200" json:"full_name"`
	Email          string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	Role           string    `gorm:"not null;size:20" json:"role"`
	IsActive       bool      `gorm:"not null" json:"is_active"`
	ProfilePicture *string   `gorm:"size:500" json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	return assignID(&u.ID)
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package models

import "time"

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"

	ModelGPT35 = "gpt-3.5"
	ModelGPT4  = "gpt-4"
)

// DefaultGenerationLevel is used when a user has no settings row yet.
const DefaultGenerationLevel = LevelIntermediate

func ValidLanguageLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func ValidAIModel(model string) bool {
	return model == ModelGPT35 || model == ModelGPT4
}

// Settings holds per user preferences, one row per user.
type Settings struct {
	UserID               string    `gorm:"primaryKey;size:21" json:"user_id"`
	LanguageLevel        string    `gorm:"not null;size:20" json:"language_level"`
	AIModel              string    `gorm:"column:ai_model;not null;size:20" json:"ai_model"`
	VoiceEnabled         bool      `gorm:"not null" json:"voice_enabled"`
	NotificationsEnabled bool      `gorm:"not null" json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (Settings) TableName() string {
	return "user_settings"
}

func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:               userID,
		LanguageLevel:        LevelBeginner,
		AIModel:              ModelGPT35,
		VoiceEnabled:         true,
		NotificationsEnabled: true,
	}
}

package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/flasheng-api/models"
	"github.com/andrewpaige1/flasheng-api/utils"
)

type SettingsStore struct {
	db *gorm.DB
}

// SettingsPatch holds the fields a PUT may change. Nil fields are kept.
type SettingsPatch struct {
	LanguageLevel        *string `json:"language_level"`
	AIModel              *string `json:"ai_model"`
	VoiceEnabled         *bool   `json:"voice_enabled"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
}

func (p SettingsPatch) Validate() error {
	if p.LanguageLevel != nil && !models.ValidLanguageLevel(*p.LanguageLevel) {
		return utils.ValidationError("Invalid language level")
	}
	if p.AIModel != nil && !models.ValidAIModel(*p.AIModel) {
		return utils.ValidationError("Invalid AI model")
	}
	return nil
}

// GetOrCreate returns the settings of userID, creating the defaults on first
// access.
func (s *SettingsStore) GetOrCreate(ctx context.Context, userID string) (*models.Settings, error) {
	db := s.db.WithContext(ctx)
	var settings models.Settings
	err := db.Where("user_id = ?", userID).
		Attrs(models.DefaultSettings(userID)).
		FirstOrCreate(&settings).Error
	if isDuplicate(err) {
		// created concurrently by another request
		err = db.Where("user_id = ?", userID).First(&settings).Error
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}

// Level returns the configured language level without creating a row.
func (s *SettingsStore) Level(ctx context.Context, userID string) (string, error) {
	var settings models.Settings
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&settings)
	if res.Error != nil {
		return "", fmt.Errorf("find settings: %w", res.Error)
	}
	if res.RowsAffected == 0 || settings.LanguageLevel == "" {
		return models.DefaultGenerationLevel, nil
	}
	return settings.LanguageLevel, nil
}

// Update validates patch and applies it to the settings of userID.
func (s *SettingsStore) Update(ctx context.Context, userID string, patch SettingsPatch) (*models.Settings, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	// created outside the transaction so a duplicate insert cannot abort it
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	var out *models.Settings
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings := &models.Settings{}
		if err := tx.Where("user_id = ?", userID).First(settings).Error; err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		if patch.LanguageLevel != nil {
			settings.LanguageLevel = *patch.LanguageLevel
		}
		if patch.AIModel != nil {
			settings.AIModel = *patch.AIModel
		}
		if patch.VoiceEnabled != nil {
			settings.VoiceEnabled = *patch.VoiceEnabled
		}
		if patch.NotificationsEnabled != nil {
			settings.NotificationsEnabled = *patch.NotificationsEnabled
		}

		if err := tx.Save(settings).Error; err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		out = settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

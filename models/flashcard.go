package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Flashcard is a single vocabulary entry. Cards in default categories are
// flagged IsDefault and owned by SystemOwner.
type Flashcard struct {
	ID               string                      `gorm:"primaryKey;size:21" json:"_id"`
	UserID           string                      `gorm:"not null;size:21;uniqueIndex:idx_flashcards_owner_category_word" json:"user_id"`
	CategoryID       string                      `gorm:"not null;size:21;index;uniqueIndex:idx_flashcards_owner_category_word" json:"category_id"`
	Word             string                      `gorm:"not null;size:200;uniqueIndex:idx_flashcards_owner_category_word" json:"word"`
	Translation      string                      `gorm:"not null;size:500" json:"translation"`
	Transcription    string                      `gorm:"size:300" json:"transcription"`
	ShortDescription string                      `gorm:"size:500" json:"short_description"`
	Examples         datatypes.JSONSlice[string] `json:"examples"`
	Explanation      string                      `gorm:"type:text" json:"explanation"`
	Notes            string                      `gorm:"type:text" json:"notes"`
	Difficulty       string                      `gorm:"not null;size:10" json:"difficulty"`
	TimesPracticed   int                         `gorm:"not null;default:0" json:"times_practiced"`
	TimesCorrect     int                         `gorm:"not null;default:0" json:"times_correct"`
	LastPracticed    *time.Time                  `json:"last_practiced"`
	IsDefault        bool                        `gorm:"not null;index" json:"is_default"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

func (f *Flashcard) BeforeCreate(tx *gorm.DB) error {
	if f.Difficulty == "" {
		f.Difficulty = DifficultyMedium
	}
	return assignID(&f.ID)
}

func (f *Flashcard) BeforeSave(tx *gorm.DB) error {
	if f.Examples == nil {
		f.Examples = datatypes.JSONSlice[string]{}
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/andrewpaige1/flasheng-api/models"
	"github.com/andrewpaige1/flasheng-api/utils"
)

type FlashcardStore struct {
	db         *gorm.DB
	categories *CategoryStore
}

// FlashcardInput is the body of a create or update. On update nil fields are
// kept. Example is the single-example form older clients send; it is
// appended to Examples.
type FlashcardInput struct {
	CategoryID       *string   `json:"category_id"`
	Word             *string   `json:"word"`
	Translation      *string   `json:"translation"`
	Transcription    *string   `json:"transcription"`
	ShortDescription *string   `json:"short_description"`
	Example          *string   `json:"example"`
	Examples         *[]string `json:"examples"`
	Explanation      *string   `json:"explanation"`
	Notes            *string   `json:"notes"`
	Difficulty       *string   `json:"difficulty"`
}

// List returns every flashcard visible to the caller.
func (s *FlashcardStore) List(ctx context.Context, actor Actor) ([]models.Flashcard, error) {
	cards := []models.Flashcard{}
	err := s.db.WithContext(ctx).
		Scopes(VisibleTo(actor.UserID)).
		Order("created_at ASC").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, nil
}

// ListByCategory returns the visible flashcards of a visible category.
func (s *FlashcardStore) ListByCategory(ctx context.Context, actor Actor, categoryID string) ([]models.Flashcard, error) {
	db := s.db.WithContext(ctx)
	if _, err := s.categories.get(db, actor, categoryID); err != nil {
		return nil, err
	}

	cards := []models.Flashcard{}
	err := db.Scopes(VisibleTo(actor.UserID)).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, nil
}

func (s *FlashcardStore) Get(ctx context.Context, actor Actor, id string) (*models.Flashcard, error) {
	return s.get(s.db.WithContext(ctx), actor, id)
}

func (s *FlashcardStore) get(db *gorm.DB, actor Actor, id string) (*models.Flashcard, error) {
	var card models.Flashcard
	err := db.Scopes(VisibleTo(actor.UserID)).Where("id = ?", id).First(&card).Error
	if isNotFound(err) {
		return nil, utils.NotFoundError("Flashcard not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find flashcard: %w", err)
	}
	return &card, nil
}

// Exists reports whether a card with word (case-insensitive) is already
// visible to the caller in categoryID. For an admin filing into a default
// category every owner's cards count.
func (s *FlashcardStore) Exists(ctx context.Context, actor Actor, categoryID, word string) (bool, error) {
	db := s.db.WithContext(ctx)
	card := &models.Flashcard{CategoryID: categoryID, Word: utils.CleanText(word)}
	if actor.IsAdmin {
		category, err := s.categories.get(db, actor, categoryID)
		if err != nil {
			return false, err
		}
		card.IsDefault = category.IsDefault
	}
	return wordTaken(db, actor, card)
}

// Create validates in and stores a new card. Cards an admin files under a
// default category become default cards themselves.
func (s *FlashcardStore) Create(ctx context.Context, actor Actor, in FlashcardInput) (*models.Flashcard, error) {
	card := &models.Flashcard{UserID: actor.UserID}
	if err := applyFlashcardInput(card, in); err != nil {
		return nil, err
	}
	if card.Word == "" || card.Translation == "" {
		return nil, utils.ValidationError("Word and translation are required")
	}
	if card.CategoryID == "" {
		return nil, utils.ValidationError("Category is required")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.categories.get(tx, actor, card.CategoryID)
		if err != nil {
			return err
		}
		if category.IsDefault && actor.IsAdmin {
			markDefault(card)
		}

		taken, err := wordTaken(tx, actor, card)
		if err != nil {
			return err
		}
		if taken {
			return utils.ConflictError("Flashcard with this word already exists in this category")
		}
		return tx.Create(card).Error
	})
	if err != nil {
		return nil, flashcardError(err)
	}
	return card, nil
}

// Update applies in to a visible card. Default cards need an admin.
func (s *FlashcardStore) Update(ctx context.Context, actor Actor, id string, in FlashcardInput) (*models.Flashcard, error) {
	var card *models.Flashcard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		card, err = s.get(tx, actor, id)
		if err != nil {
			return err
		}
		if card.IsDefault && !actor.IsAdmin {
			return utils.ForbiddenError("Cannot modify default flashcards")
		}

		previousCategory, previousWord := card.CategoryID, card.Word
		if err := applyFlashcardInput(card, in); err != nil {
			return err
		}
		if card.Word == "" || card.Translation == "" {
			return utils.ValidationError("Word and translation are required")
		}

		if card.CategoryID != previousCategory {
			category, err := s.categories.get(tx, actor, card.CategoryID)
			if err != nil {
				return err
			}
			switch {
			case card.IsDefault && !category.IsDefault:
				return utils.ValidationError("Default flashcards must stay in a default category")
			case !card.IsDefault && category.IsDefault && actor.IsAdmin:
				markDefault(card)
			}
		}
		if card.CategoryID != previousCategory || !strings.EqualFold(card.Word, previousWord) {
			taken, err := wordTaken(tx, actor, card)
			if err != nil {
				return err
			}
			if taken {
				return utils.ConflictError("Flashcard with this word already exists in this category")
			}
		}

		return tx.Save(card).Error
	})
	if err != nil {
		return nil, flashcardError(err)
	}
	return card, nil
}

func (s *FlashcardStore) Delete(ctx context.Context, actor Actor, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.get(tx, actor, id)
		if err != nil {
			return err
		}
		if card.IsDefault && !actor.IsAdmin {
			return utils.ForbiddenError("Cannot delete default flashcards")
		}
		return tx.Delete(card).Error
	})
	if err != nil {
		return flashcardError(err)
	}
	return nil
}

// markDefault turns card into a shared default card.
func markDefault(card *models.Flashcard) {
	card.UserID = models.SystemOwner
	card.IsDefault = true
}

// wordTaken reports whether another card in card's category already uses its
// word. A default card is checked against every owner's cards since all users
// see it.
func wordTaken(db *gorm.DB, actor Actor, card *models.Flashcard) (bool, error) {
	q := db.Model(&models.Flashcard{}).
		Where("category_id = ? AND LOWER(word) = ?", card.CategoryID, strings.ToLower(card.Word))
	if !card.IsDefault {
		q = q.Scopes(VisibleTo(actor.UserID))
	}
	if card.ID != "" {
		q = q.Where("id <> ?", card.ID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check flashcard word: %w", err)
	}
	return count > 0, nil
}

func applyFlashcardInput(card *models.Flashcard, in FlashcardInput) error {
	if in.Difficulty != nil && *in.Difficulty != "" {
		if !models.ValidDifficulty(*in.Difficulty) {
			return utils.ValidationError("Invalid difficulty")
		}
		card.Difficulty = *in.Difficulty
	}

	setText := func(dst *string, src *string) {
		if src != nil {
			*dst = utils.CleanText(*src)
		}
	}
	if in.CategoryID != nil {
		card.CategoryID = strings.TrimSpace(*in.CategoryID)
	}
	setText(&card.Word, in.Word)
	setText(&card.Translation, in.Translation)
	setText(&card.Transcription, in.Transcription)
	setText(&card.ShortDescription, in.ShortDescription)
	setText(&card.Explanation, in.Explanation)
	setText(&card.Notes, in.Notes)

	if in.Examples != nil {
		card.Examples = datatypes.JSONSlice[string](utils.CleanList(*in.Examples))
	}
	if in.Example != nil {
		if example := utils.CleanText(*in.Example); example != "" {
			card.Examples = append(card.Examples, example)
		}
	}
	return nil
}

func flashcardError(err error) error {
	if isDuplicate(err) {
		return utils.ConflictError("Flashcard with this word already exists in this category")
	}
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("save flashcard: %w", err)
}

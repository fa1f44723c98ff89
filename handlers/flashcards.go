package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flasheng-api/store"
	"github.com/andrewpaige1/flasheng-api/utils"
)

type generateFlashcardRequest struct {
	Word       string `json:"word"`
	CategoryID string `json:"category_id"`
}

// GET /api/flashcards
func (h *DBHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "GetFlashcards", err)
		return
	}

	cards, err := h.Store.Flashcards.List(r.Context(), actor)
	if err != nil {
		h.fail(w, r, "GetFlashcards", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"flashcards": cards})
}

// GET /api/flashcards/{id}
func (h *DBHandler) GetFlashcardByID(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "GetFlashcardByID", err)
		return
	}

	card, err := h.Store.Flashcards.Get(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		h.fail(w, r, "GetFlashcardByID", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, card)
}

// POST /api/flashcards
func (h *DBHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "CreateFlashcard", err)
		return
	}

	var in store.FlashcardInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, "CreateFlashcard", err)
		return
	}

	card, err := h.Store.Flashcards.Create(r.Context(), actor, in)
	if err != nil {
		h.fail(w, r, "CreateFlashcard", err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":   "Flashcard created successfully",
		"flashcard": card,
	})
}

// POST /api/flashcards/generate
//
// Nothing is stored unless the provider call succeeds.
func (h *DBHandler) GenerateFlashcard(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "GenerateFlashcard", err)
		return
	}

	var req generateFlashcardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "GenerateFlashcard", err)
		return
	}

	word := utils.CleanText(req.Word)
	if word == "" || req.CategoryID == "" {
		h.fail(w, r, "GenerateFlashcard", utils.ValidationError("Word and category are required"))
		return
	}

	if _, err := h.Store.Categories.Get(r.Context(), actor, req.CategoryID); err != nil {
		h.fail(w, r, "GenerateFlashcard", err)
		return
	}

	taken, err := h.Store.Flashcards.Exists(r.Context(), actor, req.CategoryID, word)
	if err != nil {
		h.fail(w, r, "GenerateFlashcard", err)
		return
	}
	if taken {
		h.fail(w, r, "GenerateFlashcard", utils.ConflictError("Flashcard with this word already exists in this category"))
		return
	}

	level, err := h.Store.Settings.Level(r.Context(), actor.UserID)
	if err != nil {
		h.fail(w, r, "GenerateFlashcard", err)
		return
	}

	generated, err := h.Generator.Expand(r.Context(), word, level)
	if err != nil {
		h.fail(w, r, "GenerateFlashcard", generationError("Failed to generate flashcard", err))
		return
	}

	card, err := h.Store.Flashcards.Create(r.Context(), actor, store.FlashcardInput{
		CategoryID:       &req.CategoryID,
		Word:             &word,
		Translation:      &generated.Translation,
		Transcription:    &generated.Transcription,
		ShortDescription: &generated.ShortDescription,
		Examples:         &generated.Examples,
		Explanation:      &generated.Explanation,
		Notes:            &generated.Notes,
	})
	if err != nil {
		h.fail(w, r, "GenerateFlashcard", err)
		return
	}

	h.logger(r).Info(r.Context(), "GenerateFlashcard: flashcard generated", "flashcard_id", card.ID, "level", level)
	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":   "Flashcard generated successfully",
		"flashcard": card,
	})
}

// PUT /api/flashcards/{id}
func (h *DBHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "UpdateFlashcard", err)
		return
	}

	var in store.FlashcardInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, "UpdateFlashcard", err)
		return
	}

	card, err := h.Store.Flashcards.Update(r.Context(), actor, r.PathValue("id"), in)
	if err != nil {
		h.fail(w, r, "UpdateFlashcard", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"message":   "Flashcard updated successfully",
		"flashcard": card,
	})
}

// DELETE /api/flashcards/{id}
func (h *DBHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "DeleteFlashcard", err)
		return
	}

	if err := h.Store.Flashcards.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		h.fail(w, r, "DeleteFlashcard", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"message": "Flashcard deleted successfully"})
}

package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flasheng-api/store"
	"github.com/andrewpaige1/flasheng-api/utils"
)

// GET /api/categories
func (h *DBHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "GetCategories", err)
		return
	}

	categories, err := h.Store.Categories.List(r.Context(), actor)
	if err != nil {
		h.fail(w, r, "GetCategories", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// POST /api/categories
func (h *DBHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "CreateCategory", err)
		return
	}

	var in store.CategoryInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, "CreateCategory", err)
		return
	}

	category, err := h.Store.Categories.Create(r.Context(), actor, in)
	if err != nil {
		h.fail(w, r, "CreateCategory", err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":  "Category created successfully",
		"category": category,
	})
}

// PUT /api/categories/{id}
func (h *DBHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "UpdateCategory", err)
		return
	}

	var in store.CategoryInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, "UpdateCategory", err)
		return
	}

	category, err := h.Store.Categories.Update(r.Context(), actor, r.PathValue("id"), in)
	if err != nil {
		h.fail(w, r, "UpdateCategory", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DELETE /api/categories/{id}
func (h *DBHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "DeleteCategory", err)
		return
	}

	removed, err := h.Store.Categories.Delete(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		h.fail(w, r, "DeleteCategory", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"message":            "Category deleted successfully",
		"deleted_flashcards": removed,
	})
}

// GET /api/categories/{id}/flashcards
func (h *DBHandler) GetCategoryFlashcards(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "GetCategoryFlashcards", err)
		return
	}

	cards, err := h.Store.Flashcards.ListByCategory(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		h.fail(w, r, "GetCategoryFlashcards", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"flashcards": cards})
}

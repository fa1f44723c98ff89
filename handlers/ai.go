package handlers

import (
	"errors"
	"net/http"

	"github.com/andrewpaige1/flasheng-api/generation"
	"github.com/andrewpaige1/flasheng-api/utils"
)

type textRequest struct {
	Text string `json:"text"`
}

// generationError maps a provider failure to the error the client sees. The
// upstream message is kept for plain failures.
func generationError(prefix string, err error) error {
	if errors.Is(err, generation.ErrTimedOut) {
		return utils.GenerationTimedOutError("AI provider timed out", err)
	}
	return utils.GenerationFailedError(prefix+": "+err.Error(), err)
}

func (h *DBHandler) readText(w http.ResponseWriter, r *http.Request) (string, error) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return "", err
	}
	text := utils.CleanText(req.Text)
	if text == "" {
		return "", utils.ValidationError("Text is required")
	}
	return text, nil
}

func (h *DBHandler) examples(w http.ResponseWriter, r *http.Request, op string, regenerate bool) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	text, err := h.readText(w, r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	level, err := h.Store.Settings.Level(r.Context(), actor.UserID)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	examples, err := h.Generator.Examples(r.Context(), text, level, regenerate)
	if err != nil {
		h.fail(w, r, op, generationError("Failed to generate examples", err))
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"examples": utils.CleanList(examples)})
}

// POST /api/ai/generate-examples
func (h *DBHandler) GenerateExamples(w http.ResponseWriter, r *http.Request) {
	h.examples(w, r, "GenerateExamples", false)
}

// POST /api/ai/regenerate-examples
func (h *DBHandler) RegenerateExamples(w http.ResponseWriter, r *http.Request) {
	h.examples(w, r, "RegenerateExamples", true)
}

// POST /api/ai/translate
func (h *DBHandler) Translate(w http.ResponseWriter, r *http.Request) {
	text, err := h.readText(w, r)
	if err != nil {
		h.fail(w, r, "Translate", err)
		return
	}

	translation, err := h.Generator.Translate(r.Context(), text)
	if err != nil {
		h.fail(w, r, "Translate", generationError("Failed to translate", err))
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"translation": translation})
}

// POST /api/ai/translate-sentence
func (h *DBHandler) TranslateSentence(w http.ResponseWriter, r *http.Request) {
	text, err := h.readText(w, r)
	if err != nil {
		h.fail(w, r, "TranslateSentence", err)
		return
	}

	translation, err := h.Generator.TranslateSentence(r.Context(), text)
	if err != nil {
		h.fail(w, r, "TranslateSentence", generationError("Failed to translate sentence", err))
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"translation": translation})
}

// Package generation produces flashcard content with a text generation
// provider.
package generation

import (
	"context"
	"errors"
)

var (
	// ErrUnexpectedResponse is returned when the provider answers with
	// anything other than the documented JSON shape.
	ErrUnexpectedResponse = errors.New("unexpected response from generation provider")
	// ErrTimedOut is returned when a call exceeds the configured timeout.
	ErrTimedOut = errors.New("generation provider timed out")
)

// MaxExamples is the number of example sentences kept per card.
const MaxExamples = 3

// Card is the content generated for one word or phrase.
type Card struct {
	Text             string   `json:"text"`
	Translation      string   `json:"translation"`
	Transcription    string   `json:"transcription"`
	ShortDescription string   `json:"short_description"`
	Explanation      string   `json:"explanation"`
	Examples         []string `json:"examples"`
	Notes            string   `json:"notes"`
}

// Generator is the provider facing side of the API. Every method makes at
// most one remote call and never retries.
type Generator interface {
	Expand(ctx context.Context, word, level string) (*Card, error)
	Examples(ctx context.Context, text, level string, regenerate bool) ([]string, error)
	Translate(ctx context.Context, text string) (string, error)
	TranslateSentence(ctx context.Context, text string) (string, error)
}

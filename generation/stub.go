package generation

import (
	"context"
	"fmt"
)

// StubGenerator returns canned content without calling a provider. It backs
// local development when no API key is configured.
type StubGenerator struct{}

func (StubGenerator) Expand(_ context.Context, word, level string) (*Card, error) {
	return &Card{
		Text:             word,
		Translation:      fmt.Sprintf("[%s]", word),
		ShortDescription: fmt.Sprintf("Placeholder description of %q.", word),
		Explanation:      fmt.Sprintf("Generated content for %q is unavailable; this card was filled in for the %s level.", word, level),
		Examples:         stubExamples(word),
	}, nil
}

func (StubGenerator) Examples(_ context.Context, text, _ string, _ bool) ([]string, error) {
	return stubExamples(text), nil
}

func (StubGenerator) Translate(_ context.Context, text string) (string, error) {
	return fmt.Sprintf("[%s]", text), nil
}

func (StubGenerator) TranslateSentence(_ context.Context, text string) (string, error) {
	return fmt.Sprintf("[%s]", text), nil
}

func stubExamples(text string) []string {
	return []string{
		fmt.Sprintf("This is the first example with %q.", text),
		fmt.Sprintf("Here %q is used in another context.", text),
		fmt.Sprintf("A third sentence that mentions %q.", text),
	}
}

package generation

import "fmt"

const (
	tutorRole      = "You are an expert English language teacher creating educational flashcards. Always respond with valid JSON only."
	examplesRole   = "You are an expert English language teacher. Always respond with a JSON object only."
	translatorRole = "You are a professional English-Ukrainian translator. Provide only the translation, no extra text."
)

func expandPrompt(word, level string) string {
	return fmt.Sprintf(`Create a flashcard for the English word or phrase %q for a learner at the %s level.

Respond with a JSON object with exactly these keys:
{
  "text": the word or phrase itself,
  "transcription": UK and US IPA transcriptions separated by a blank line, e.g. "UK: [ˈwɔːtə]\n\nUS: [ˈwɔːtər]",
  "translation": several Ukrainian translations separated by "; ",
  "short_description": one sentence under 100 characters,
  "explanation": 3-4 short paragraphs separated by blank lines covering meaning, usage context, real world use and an interesting fact, without a concluding summary,
  "examples": an array of 3 example sentences showing different contexts,
  "notes": ""
}

All English text must match the %s level.`, word, level, level)
}

func examplesPrompt(text, level string, regenerate bool) string {
	if regenerate {
		return fmt.Sprintf(`Create 3 NEW and DIFFERENT example sentences using %q at the %s English level.
Make them creative and varied, each in a different context.
Respond with a JSON object: {"examples": ["...", "...", "..."]}`, text, level)
	}
	return fmt.Sprintf(`Create 3 different example sentences using %q at the %s English level.
Each sentence should show a different context or meaning.
Respond with a JSON object: {"examples": ["...", "...", "..."]}`, text, level)
}

func translatePrompt(text string) string {
	return fmt.Sprintf(`Translate %q to Ukrainian. Give several translation variants separated by "; ", like "виглядати; дивитися; вигляд". Output only that string.`, text)
}

func translateSentencePrompt(text string) string {
	return fmt.Sprintf(`Translate this English sentence to natural, accurate Ukrainian suitable for a language learner. Keep the meaning without translating word for word. Output only the translation.

%q`, text)
}

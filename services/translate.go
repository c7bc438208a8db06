package services

import (
	"context"
	"encoding/json"
	"fmt"

	"adhkari/models"
)

// TranslateDhikr asks the model for Arabic, English and French renditions of
// a devotional text. The result covers every supported language or the call
// fails as a whole; callers must not persist anything on error.
func TranslateDhikr(ctx context.Context, title, content, explanation string) (map[string]models.DhikrTranslation, error) {
	if explanation == "" {
		explanation = "None"
	}

	prompt := fmt.Sprintf(
		`Translate the following devotional text to Arabic, English, and French.
Respond with ONLY a JSON object with keys "ar", "en", "fr". Each value must be
an object with "title", "content", and "explanation" string fields. Keep the
original wording of the source language unchanged in its own entry.

Title: %s
Content: %s
Explanation: %s`,
		title, content, explanation,
	)

	raw, err := generateDefaultModelText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}

	translations, err := parseTranslations(raw)
	if err != nil {
		return nil, err
	}
	return translations, nil
}

// parseTranslations decodes the model response and verifies every supported
// language carries a usable bundle
func parseTranslations(raw string) (map[string]models.DhikrTranslation, error) {
	var translations map[string]models.DhikrTranslation
	if err := json.Unmarshal([]byte(raw), &translations); err != nil {
		return nil, fmt.Errorf("failed to parse translation response: %w", err)
	}

	for _, lang := range models.SupportedLanguages {
		t, ok := translations[lang]
		if !ok || t.Title == "" || t.Content == "" {
			return nil, fmt.Errorf("translation response is missing language %q", lang)
		}
	}
	return translations, nil
}

package services

import (
	"testing"

	"adhkari/models"
)

const goodPayload = `{
  "ar": {"title": "حديث النية", "content": "إنما الأعمال بالنيات", "explanation": "مدار الدين على النية"},
  "en": {"title": "Hadith of Intention", "content": "Actions are but by intentions", "explanation": "Religion is based on intention"},
  "fr": {"title": "Hadith de l'Intention", "content": "Les actions ne valent que par les intentions", "explanation": "La religion est basee sur l'intention"}
}`

func TestParseTranslationsAllLanguages(t *testing.T) {
	translations, err := parseTranslations(goodPayload)
	if err != nil {
		t.Fatalf("parseTranslations failed: %v", err)
	}

	for _, lang := range models.SupportedLanguages {
		trans, ok := translations[lang]
		if !ok {
			t.Errorf("Missing language %q", lang)
			continue
		}
		if trans.Title == "" || trans.Content == "" {
			t.Errorf("Language %q has empty fields: %+v", lang, trans)
		}
	}
}

func TestParseTranslationsMissingLanguage(t *testing.T) {
	payload := `{"ar": {"title": "t", "content": "c"}, "en": {"title": "t", "content": "c"}}`

	if _, err := parseTranslations(payload); err == nil {
		t.Errorf("Expected error for missing French translation")
	}
}

func TestParseTranslationsEmptyBundle(t *testing.T) {
	payload := `{"ar": {"title": "t", "content": "c"}, "en": {"title": "t", "content": "c"}, "fr": {"title": "", "content": ""}}`

	if _, err := parseTranslations(payload); err == nil {
		t.Errorf("Expected error for empty French bundle")
	}
}

func TestParseTranslationsInvalidJSON(t *testing.T) {
	if _, err := parseTranslations("not json at all"); err == nil {
		t.Errorf("Expected error for malformed response")
	}
}

func TestCleanModelOutputStripsFences(t *testing.T) {
	fenced := "```json\n{\"ar\": {}}\n```"
	cleaned := cleanModelOutput(fenced)
	if cleaned != `{"ar": {}}` {
		t.Errorf("Expected fences stripped, got %q", cleaned)
	}
}

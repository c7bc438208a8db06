package catalog

import (
	"errors"
	"testing"

	"adhkari/models"
)

func sampleDhikr() models.Dhikr {
	return models.Dhikr{
		Category: models.CategoryMorning,
		Count:    1,
		Translations: map[string]models.DhikrTranslation{
			models.LangArabic:  {Title: "أذكار الصباح", Content: "أصبحنا وأصبح الملك لله"},
			models.LangEnglish: {Title: "Morning Dhikr", Content: "We have reached the morning"},
		},
	}
}

func TestLocalizeRequestedLanguage(t *testing.T) {
	item := sampleDhikr()

	trans := Localize(item, models.LangEnglish)
	if trans.Title != "Morning Dhikr" {
		t.Errorf("Expected English translation, got %q", trans.Title)
	}
}

func TestLocalizeFallsBackToArabic(t *testing.T) {
	item := sampleDhikr()
	delete(item.Translations, models.LangEnglish)

	trans := Localize(item, models.LangEnglish)
	if trans.Title != "أذكار الصباح" {
		t.Errorf("Expected Arabic fallback, got %q", trans.Title)
	}
}

func TestLocalizeFallsBackToAnyPopulated(t *testing.T) {
	item := models.Dhikr{
		Translations: map[string]models.DhikrTranslation{
			models.LangFrench: {Title: "Dhikr du Matin", Content: "Nous sommes au matin"},
		},
	}

	trans := Localize(item, models.LangEnglish)
	if trans.Title != "Dhikr du Matin" {
		t.Errorf("Expected the only populated translation, got %q", trans.Title)
	}
}

func TestLocalizeNeverFails(t *testing.T) {
	trans := Localize(models.Dhikr{}, models.LangEnglish)
	if trans.Title == "" || trans.Content == "" {
		t.Errorf("Expected sentinel translation, got %+v", trans)
	}

	// Empty bundles are skipped, not served
	item := models.Dhikr{
		Translations: map[string]models.DhikrTranslation{
			models.LangEnglish: {},
		},
	}
	trans = Localize(item, models.LangEnglish)
	if trans.Title != "Untitled" {
		t.Errorf("Expected sentinel for empty bundle, got %q", trans.Title)
	}
}

func TestIsLockedByTier(t *testing.T) {
	premium := models.Dhikr{IsPremium: true}
	free := models.Dhikr{IsPremium: false}

	cases := []struct {
		tier   string
		locked bool
	}{
		{models.TierFree, true},
		{models.TierPremium, false},
		{models.TierGold, false},
	}
	for _, c := range cases {
		user := models.User{SubscriptionTier: c.tier}
		if IsLocked(premium, user) != c.locked {
			t.Errorf("Tier %s: expected locked=%v for premium item", c.tier, c.locked)
		}
		if IsLocked(free, user) {
			t.Errorf("Tier %s: non-premium item must never lock", c.tier)
		}
	}
}

func filterFixture() []models.Dhikr {
	return []models.Dhikr{
		{Category: models.CategoryHadith, SubCategory: "prophetic", Count: 1},
		{Category: models.CategoryHadith, Count: 1},
		{Category: models.CategoryMorning, Count: 1},
		{Category: models.CategoryHadith, SubCategory: "qudsi", Count: 1},
		{Category: models.CategoryHadith, SubCategory: "prophetic", Count: 3},
	}
}

func TestFilterByCategoryWithoutSubCategory(t *testing.T) {
	filtered := FilterByCategory(filterFixture(), models.CategoryHadith, "")
	if len(filtered) != 1 {
		t.Fatalf("Expected 1 item without sub-category, got %d", len(filtered))
	}
	if filtered[0].SubCategory != "" {
		t.Errorf("Expected item with no sub-category, got %q", filtered[0].SubCategory)
	}
}

func TestFilterByCategoryWithSubCategory(t *testing.T) {
	filtered := FilterByCategory(filterFixture(), models.CategoryHadith, "prophetic")
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 prophetic items, got %d", len(filtered))
	}
	// Storage order is preserved
	if filtered[0].Count != 1 || filtered[1].Count != 3 {
		t.Errorf("Expected storage order preserved, got %+v", filtered)
	}
}

func TestDistinctSubCategories(t *testing.T) {
	subs := DistinctSubCategories(filterFixture(), models.CategoryHadith)
	if len(subs) != 2 {
		t.Fatalf("Expected 2 distinct sub-categories, got %v", subs)
	}
	seen := map[string]bool{}
	for _, s := range subs {
		seen[s] = true
	}
	if !seen["prophetic"] || !seen["qudsi"] {
		t.Errorf("Expected prophetic and qudsi, got %v", subs)
	}
}

func TestValidateRejectsBadItems(t *testing.T) {
	valid := sampleDhikr()
	if err := Validate(valid); err != nil {
		t.Errorf("Expected valid item to pass, got %v", err)
	}

	noCount := sampleDhikr()
	noCount.Count = 0
	if err := Validate(noCount); !errors.Is(err, ErrInvalidDhikr) {
		t.Errorf("Expected ErrInvalidDhikr for zero count, got %v", err)
	}

	noBundles := sampleDhikr()
	noBundles.Translations = map[string]models.DhikrTranslation{models.LangArabic: {}}
	if err := Validate(noBundles); !errors.Is(err, ErrInvalidDhikr) {
		t.Errorf("Expected ErrInvalidDhikr for empty bundles, got %v", err)
	}

	badCategory := sampleDhikr()
	badCategory.Category = "weekly"
	if err := Validate(badCategory); !errors.Is(err, ErrInvalidDhikr) {
		t.Errorf("Expected ErrInvalidDhikr for unknown category, got %v", err)
	}
}

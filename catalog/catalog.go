package catalog

import (
	"errors"
	"fmt"

	"adhkari/models"
)

// FallbackLanguage is served when an item has no translation for the
// requested language.
const FallbackLanguage = models.LangArabic

// ErrInvalidDhikr marks a content item that violates the catalog invariants
var ErrInvalidDhikr = errors.New("invalid dhikr")

var emptyTranslation = models.DhikrTranslation{
	Title:   "Untitled",
	Content: "No content available",
}

// Localize resolves the translation to present for the requested language.
// The chain is: requested language, the fallback language, any populated
// translation, and finally a sentinel bundle. It never fails.
func Localize(item models.Dhikr, language string) models.DhikrTranslation {
	if t, ok := item.Translations[language]; ok && populated(t) {
		return t
	}
	if t, ok := item.Translations[FallbackLanguage]; ok && populated(t) {
		return t
	}
	for _, lang := range models.SupportedLanguages {
		if t, ok := item.Translations[lang]; ok && populated(t) {
			return t
		}
	}
	return emptyTranslation
}

// IsLocked reports whether the viewer may not access the item. Only premium
// items lock, and every tier above free unlocks them. Callers must not reveal
// a locked item's content; the catalog only signals the state.
func IsLocked(item models.Dhikr, user models.User) bool {
	return item.IsPremium && !user.HasPremiumAccess()
}

// FilterByCategory returns the items of a category in their stored order.
// With a subCategory the match is exact; without one, only items that have no
// sub-category are returned. This drives category -> subcategory -> item
// navigation.
func FilterByCategory(items []models.Dhikr, category, subCategory string) []models.Dhikr {
	var filtered []models.Dhikr
	for _, item := range items {
		if item.Category != category {
			continue
		}
		if subCategory == "" && item.SubCategory != "" {
			continue
		}
		if subCategory != "" && item.SubCategory != subCategory {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// DistinctSubCategories returns the non-empty sub-category values among items
// of a category, duplicates removed.
func DistinctSubCategories(items []models.Dhikr, category string) []string {
	seen := make(map[string]bool)
	var subCategories []string
	for _, item := range items {
		if item.Category != category || item.SubCategory == "" || seen[item.SubCategory] {
			continue
		}
		seen[item.SubCategory] = true
		subCategories = append(subCategories, item.SubCategory)
	}
	return subCategories
}

// Validate checks the catalog invariants before an item is persisted
func Validate(item models.Dhikr) error {
	if !models.ValidCategory(item.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidDhikr, item.Category)
	}
	if item.Count < 1 {
		return fmt.Errorf("%w: repetition count must be at least 1", ErrInvalidDhikr)
	}
	if item.PointsReward < 0 {
		return fmt.Errorf("%w: points reward cannot be negative", ErrInvalidDhikr)
	}
	for _, t := range item.Translations {
		if populated(t) {
			return nil
		}
	}
	return fmt.Errorf("%w: at least one populated translation is required", ErrInvalidDhikr)
}

func populated(t models.DhikrTranslation) bool {
	return t.Title != "" || t.Content != ""
}

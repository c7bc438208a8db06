package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Supported content languages. Arabic is the primary language and the
// localization fallback.
const (
	LangArabic  = "ar"
	LangEnglish = "en"
	LangFrench  = "fr"
)

// SupportedLanguages lists the languages every content item may carry,
// in fallback order.
var SupportedLanguages = []string{LangArabic, LangEnglish, LangFrench}

// Dhikr categories
const (
	CategoryMorning = "morning"
	CategoryEvening = "evening"
	CategorySleep   = "sleep"
	CategoryPrayer  = "prayer"
	CategoryHadith  = "hadith"
	CategoryMisc    = "misc"
)

// DhikrCategories lists all valid categories
var DhikrCategories = []string{
	CategoryMorning,
	CategoryEvening,
	CategorySleep,
	CategoryPrayer,
	CategoryHadith,
	CategoryMisc,
}

// ValidCategory reports whether category is one of the fixed set
func ValidCategory(category string) bool {
	for _, c := range DhikrCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidLanguage reports whether lang is a supported content language
func ValidLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// DhikrTranslation is the localized presentation of a dhikr in one language
type DhikrTranslation struct {
	Title       string `bson:"title" json:"title"`
	Content     string `bson:"content" json:"content"`
	Explanation string `bson:"explanation,omitempty" json:"explanation,omitempty"`
}

// Dhikr is one devotional text with per-language translations and a target
// repetition count. Deleted items are tombstoned, not removed, so existing
// references stay resolvable.
type Dhikr struct {
	ID           primitive.ObjectID          `bson:"_id,omitempty" json:"id,omitempty"`
	Category     string                      `bson:"category" json:"category"`
	SubCategory  string                      `bson:"subCategory,omitempty" json:"subCategory,omitempty"`
	Count        int                         `bson:"count" json:"count"`
	IsPremium    bool                        `bson:"isPremium" json:"isPremium"`
	PointsReward int                         `bson:"pointsReward" json:"pointsReward"`
	Translations map[string]DhikrTranslation `bson:"translations" json:"translations"`
	IsDeleted    bool                        `bson:"isDeleted" json:"-"`
	CreatedAt    time.Time                   `bson:"createdAt" json:"createdAt"`
}

package utils

import (
	"context"
	"time"

	"adhkari/db"
	"adhkari/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedDefaultContent inserts starter dhikr items and gifts when the
// collections are empty, so a fresh deployment is usable immediately.
// Existing data is never touched.
func SeedDefaultContent() {
	seedDhikr()
	seedGifts()
}

func seedDhikr() {
	collection := db.GetCollection(db.DhikrCollection)
	count, _ := collection.CountDocuments(context.Background(), bson.M{})
	if count > 0 {
		return
	}

	items := []interface{}{
		models.Dhikr{
			Category:     models.CategoryMorning,
			Count:        1,
			IsPremium:    false,
			PointsReward: 5,
			Translations: map[string]models.DhikrTranslation{
				models.LangArabic: {
					Title:       "أذكار الصباح",
					Content:     "أصبحنا وأصبح الملك لله والحمد لله",
					Explanation: "هذا الذكر يبعث الطمأنينة",
				},
				models.LangEnglish: {
					Title:       "Morning Dhikr",
					Content:     "We have reached the morning and kingship belongs to Allah",
					Explanation: "This dhikr brings tranquility",
				},
				models.LangFrench: {
					Title:       "Dhikr du Matin",
					Content:     "Nous sommes au matin et la royaute appartient a Allah",
					Explanation: "Ce dhikr apporte la tranquillite",
				},
			},
			CreatedAt: time.Now(),
		},
		models.Dhikr{
			Category:     models.CategoryHadith,
			SubCategory:  "prophetic",
			Count:        1,
			IsPremium:    true,
			PointsReward: 10,
			Translations: map[string]models.DhikrTranslation{
				models.LangArabic: {
					Title:       "حديث النية",
					Content:     "إنما الأعمال بالنيات",
					Explanation: "مدار الدين على النية",
				},
				models.LangEnglish: {
					Title:       "Hadith of Intention",
					Content:     "Actions are but by intentions",
					Explanation: "Religion is based on intention",
				},
				models.LangFrench: {
					Title:       "Hadith de l'Intention",
					Content:     "Les actions ne valent que par les intentions",
					Explanation: "La religion est basee sur l'intention",
				},
			},
			CreatedAt: time.Now(),
		},
	}

	collection.InsertMany(context.Background(), items)
}

func seedGifts() {
	collection := db.GetCollection(db.GiftsCollection)
	count, _ := collection.CountDocuments(context.Background(), bson.M{})
	if count > 0 {
		return
	}

	gifts := []interface{}{
		models.Gift{
			Name:           "Beginner of Dhikr",
			RequiredPoints: 10,
			RewardType:     models.RewardBadge,
			RewardValue:    0,
			CreatedAt:      time.Now(),
		},
		models.Gift{
			Name:           "Subscription Extension (3 days)",
			RequiredPoints: 50,
			RewardType:     models.RewardSubscriptionExtension,
			RewardValue:    3,
			CreatedAt:      time.Now(),
		},
	}

	collection.InsertMany(context.Background(), gifts)
}

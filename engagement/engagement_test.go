package engagement

import (
	"testing"
	"time"

	"adhkari/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRecordDailyActivityConsecutiveDay(t *testing.T) {
	user := models.User{Streak: 5, LastActiveDate: "2024-01-01"}

	updated := RecordDailyActivity(user, day("2024-01-02"))
	if updated.Streak != 6 {
		t.Errorf("Expected streak 6, got %d", updated.Streak)
	}
	if updated.LastActiveDate != "2024-01-02" {
		t.Errorf("Expected lastActiveDate 2024-01-02, got %s", updated.LastActiveDate)
	}
}

func TestRecordDailyActivitySameDayIsIdempotent(t *testing.T) {
	user := models.User{Streak: 5, LastActiveDate: "2024-01-01"}

	first := RecordDailyActivity(user, day("2024-01-02"))
	second := RecordDailyActivity(first, day("2024-01-02"))

	if second.Streak != first.Streak {
		t.Errorf("Same-day repeat changed streak: %d -> %d", first.Streak, second.Streak)
	}
	if second.LastActiveDate != first.LastActiveDate {
		t.Errorf("Same-day repeat changed lastActiveDate: %s -> %s", first.LastActiveDate, second.LastActiveDate)
	}
}

func TestRecordDailyActivityGapResetsStreak(t *testing.T) {
	user := models.User{Streak: 12, LastActiveDate: "2024-01-01"}

	updated := RecordDailyActivity(user, day("2024-01-03"))
	if updated.Streak != 1 {
		t.Errorf("Expected streak reset to 1 after gap, got %d", updated.Streak)
	}

	// A much longer gap behaves the same
	updated = RecordDailyActivity(user, day("2024-02-15"))
	if updated.Streak != 1 {
		t.Errorf("Expected streak reset to 1 after long gap, got %d", updated.Streak)
	}
}

func TestRecordDailyActivityFirstEverActivity(t *testing.T) {
	user := models.User{}

	updated := RecordDailyActivity(user, day("2024-01-01"))
	if updated.Streak != 1 {
		t.Errorf("Expected streak 1 for first activity, got %d", updated.Streak)
	}
	if updated.LastActiveDate != "2024-01-01" {
		t.Errorf("Expected lastActiveDate set, got %q", updated.LastActiveDate)
	}
}

func TestRecordDailyActivityMonthBoundary(t *testing.T) {
	user := models.User{Streak: 3, LastActiveDate: "2024-01-31"}

	updated := RecordDailyActivity(user, day("2024-02-01"))
	if updated.Streak != 4 {
		t.Errorf("Expected streak 4 across month boundary, got %d", updated.Streak)
	}
}

func TestCompleteContentAwardsPoints(t *testing.T) {
	user := models.User{Points: 10, CompletedCount: 2}
	item := models.Dhikr{Count: 3, PointsReward: 10}

	updated, err := CompleteContent(user, item)
	if err != nil {
		t.Fatalf("CompleteContent failed: %v", err)
	}
	if updated.Points != 20 {
		t.Errorf("Expected 20 points, got %d", updated.Points)
	}
	if updated.CompletedCount != 3 {
		t.Errorf("Expected completedCount 3, got %d", updated.CompletedCount)
	}
	if updated.Streak != user.Streak {
		t.Errorf("CompleteContent must not touch the streak")
	}
}

func TestCompleteContentDefaultReward(t *testing.T) {
	user := models.User{}
	item := models.Dhikr{Count: 1}

	updated, err := CompleteContent(user, item)
	if err != nil {
		t.Fatalf("CompleteContent failed: %v", err)
	}
	if updated.Points != 5 {
		t.Errorf("Expected default reward of 5 points, got %d", updated.Points)
	}
}

func TestCompleteContentLockedForFreeTier(t *testing.T) {
	user := models.User{SubscriptionTier: models.TierFree, Points: 10}
	item := models.Dhikr{Count: 1, IsPremium: true, PointsReward: 10}

	updated, err := CompleteContent(user, item)
	if err != ErrContentLocked {
		t.Fatalf("Expected ErrContentLocked, got %v", err)
	}
	if updated.Points != 10 || updated.CompletedCount != 0 {
		t.Errorf("Failed completion must not change user state")
	}
}

func TestCompleteContentPremiumTiers(t *testing.T) {
	item := models.Dhikr{Count: 1, IsPremium: true, PointsReward: 10}

	for _, tier := range []string{models.TierPremium, models.TierGold} {
		user := models.User{SubscriptionTier: tier}
		if _, err := CompleteContent(user, item); err != nil {
			t.Errorf("Tier %s should access premium content, got %v", tier, err)
		}
	}
}

func TestClaimRewardInsufficientPoints(t *testing.T) {
	user := models.User{Points: 45}
	gift := models.Gift{ID: primitive.NewObjectID(), RequiredPoints: 50}

	updated, err := ClaimReward(user, gift)
	if err != ErrInsufficientPoints {
		t.Fatalf("Expected ErrInsufficientPoints, got %v", err)
	}
	if updated.Points != 45 {
		t.Errorf("Failed claim must not change points, got %d", updated.Points)
	}
	if len(updated.UnlockedGifts) != 0 {
		t.Errorf("Failed claim must not unlock the gift")
	}
}

func TestClaimRewardDeductsAndUnlocks(t *testing.T) {
	gift := models.Gift{ID: primitive.NewObjectID(), RequiredPoints: 50}
	user := models.User{Points: 50}

	updated, err := ClaimReward(user, gift)
	if err != nil {
		t.Fatalf("ClaimReward failed: %v", err)
	}
	if updated.Points != 0 {
		t.Errorf("Expected 0 points after exact-cost claim, got %d", updated.Points)
	}
	if updated.Points < 0 {
		t.Errorf("Points must never go negative")
	}
	if len(updated.UnlockedGifts) != 1 || updated.UnlockedGifts[0] != gift.ID.Hex() {
		t.Errorf("Expected gift %s unlocked, got %v", gift.ID.Hex(), updated.UnlockedGifts)
	}
}

func TestClaimRewardRejectsDuplicate(t *testing.T) {
	gift := models.Gift{ID: primitive.NewObjectID(), RequiredPoints: 10}
	user := models.User{Points: 100, UnlockedGifts: []string{gift.ID.Hex()}}

	updated, err := ClaimReward(user, gift)
	if err != ErrAlreadyClaimed {
		t.Fatalf("Expected ErrAlreadyClaimed, got %v", err)
	}
	if updated.Points != 100 {
		t.Errorf("Duplicate claim must not deduct points, got %d", updated.Points)
	}
	if len(updated.UnlockedGifts) != 1 {
		t.Errorf("Duplicate claim must not stack unlocks, got %v", updated.UnlockedGifts)
	}
}

func TestClaimRewardDoesNotAliasCallerSlice(t *testing.T) {
	first := models.Gift{ID: primitive.NewObjectID(), RequiredPoints: 10}
	second := models.Gift{ID: primitive.NewObjectID(), RequiredPoints: 10}

	original := models.User{Points: 100, UnlockedGifts: []string{first.ID.Hex()}}
	updated, err := ClaimReward(original, second)
	if err != nil {
		t.Fatalf("ClaimReward failed: %v", err)
	}

	if len(original.UnlockedGifts) != 1 {
		t.Errorf("Input user was mutated: %v", original.UnlockedGifts)
	}
	if len(updated.UnlockedGifts) != 2 {
		t.Errorf("Expected 2 unlocked gifts, got %v", updated.UnlockedGifts)
	}
}

func TestChangeLanguage(t *testing.T) {
	user := models.User{Language: models.LangArabic, Points: 7}

	updated := ChangeLanguage(user, models.LangFrench)
	if updated.Language != models.LangFrench {
		t.Errorf("Expected language fr, got %s", updated.Language)
	}
	if updated.Points != 7 {
		t.Errorf("ChangeLanguage must not touch other fields")
	}
}

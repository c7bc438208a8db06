package engagement

import (
	"errors"
	"time"

	"adhkari/models"
)

// DateLayout is the calendar-date format used for streak tracking. Streaks
// compare whole days only; the time of day never matters.
const DateLayout = "2006-01-02"

// Points granted for completing an item that does not declare its own reward.
const defaultPointsReward = 5

var (
	ErrContentLocked      = errors.New("content is locked for this subscription tier")
	ErrInsufficientPoints = errors.New("not enough points to claim this gift")
	ErrAlreadyClaimed     = errors.New("gift already claimed")
)

// RecordDailyActivity advances the user's streak for today. Calling it again
// on the same calendar day is a no-op, so a second login never touches the
// streak. Activity yesterday extends the streak; any longer gap, or no prior
// activity, resets it to 1.
func RecordDailyActivity(user models.User, today time.Time) models.User {
	day := today.Format(DateLayout)
	if user.LastActiveDate == day {
		return user
	}

	yesterday := today.AddDate(0, 0, -1).Format(DateLayout)
	if user.LastActiveDate == yesterday {
		user.Streak++
	} else {
		user.Streak = 1
	}
	user.LastActiveDate = day
	return user
}

// CompleteContent credits the user for finishing the required repetitions of
// an item. Premium items fail with ErrContentLocked for free-tier users and
// leave the user unchanged. Streaks are date-driven and unaffected here.
func CompleteContent(user models.User, item models.Dhikr) (models.User, error) {
	if item.IsPremium && !user.HasPremiumAccess() {
		return user, ErrContentLocked
	}

	reward := item.PointsReward
	if reward == 0 {
		reward = defaultPointsReward
	}
	user.Points += reward
	user.CompletedCount++
	return user, nil
}

// ClaimReward deducts the gift's cost and records the unlock. The balance can
// never go negative, and a gift can be claimed at most once.
func ClaimReward(user models.User, gift models.Gift) (models.User, error) {
	if user.Points < gift.RequiredPoints {
		return user, ErrInsufficientPoints
	}

	giftID := gift.ID.Hex()
	for _, unlocked := range user.UnlockedGifts {
		if unlocked == giftID {
			return user, ErrAlreadyClaimed
		}
	}

	// Copy before appending so the caller's slice is never aliased.
	unlocked := make([]string, len(user.UnlockedGifts), len(user.UnlockedGifts)+1)
	copy(unlocked, user.UnlockedGifts)

	user.Points -= gift.RequiredPoints
	user.UnlockedGifts = append(unlocked, giftID)
	return user, nil
}

// ChangeLanguage updates the user's preferred language
func ChangeLanguage(user models.User, language string) models.User {
	user.Language = language
	return user
}

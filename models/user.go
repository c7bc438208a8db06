package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription tiers, in ascending order of privilege
const (
	TierFree    = "free"
	TierPremium = "premium"
	TierGold    = "gold"
)

// Subscription statuses
const (
	SubscriptionActive  = "active"
	SubscriptionExpired = "expired"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User defines a registered user and their engagement state
type User struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email                string             `bson:"email" json:"email"`
	Password             string             `bson:"password" json:"-"` // Never return password in JSON
	Role                 string             `bson:"role" json:"role"`
	SubscriptionTier     string             `bson:"subscriptionTier" json:"subscriptionTier"`
	SubscriptionStatus   string             `bson:"subscriptionStatus" json:"subscriptionStatus"`
	Country              string             `bson:"country" json:"country"`
	Language             string             `bson:"language" json:"language"`
	IsEmailVerified      bool               `bson:"isEmailVerified" json:"isEmailVerified"`
	Points               int                `bson:"points" json:"points"`
	CompletedCount       int                `bson:"completedCount" json:"completedCount"`
	UnlockedGifts        []string           `bson:"unlockedGifts" json:"unlockedGifts"`
	Streak               int                `bson:"streak" json:"streak"`
	NotificationsEnabled bool               `bson:"notificationsEnabled" json:"notificationsEnabled"`
	ReminderTime         string             `bson:"reminderTime,omitempty" json:"reminderTime,omitempty"`
	LastActiveDate       string             `bson:"lastActiveDate,omitempty" json:"lastActiveDate,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
}

// HasPremiumAccess reports whether the user's tier grants access to premium
// content. Every tier above free qualifies.
func (u User) HasPremiumAccess() bool {
	return u.SubscriptionTier == TierPremium || u.SubscriptionTier == TierGold
}

// ValidTier reports whether tier is a known subscription tier
func ValidTier(tier string) bool {
	return tier == TierFree || tier == TierPremium || tier == TierGold
}

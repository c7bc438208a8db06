package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gift reward types
const (
	RewardBadge                 = "badge"
	RewardSubscriptionExtension = "subscription_extension"
)

// Gift is a point-redeemable unlock. RewardValue is the magnitude of the
// reward, e.g. days of subscription extension; zero for badges.
type Gift struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	RequiredPoints int                `bson:"requiredPoints" json:"requiredPoints"`
	RewardType     string             `bson:"rewardType" json:"rewardType"`
	RewardValue    int                `bson:"rewardValue" json:"rewardValue"`
	IsDeleted      bool               `bson:"isDeleted" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

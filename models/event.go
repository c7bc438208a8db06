package models

import "time"

// EngagementEvent represents an engagement event to broadcast via WebSocket
type EngagementEvent struct {
	Type       string    `json:"type"` // "points_earned", "reward_claimed", "streak_updated"
	UserID     string    `json:"userId"`
	Points     int       `json:"points,omitempty"`
	NewBalance int       `json:"newBalance,omitempty"`
	Streak     int       `json:"streak,omitempty"`
	GiftName   string    `json:"giftName,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

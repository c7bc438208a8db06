package controllers

import (
	"errors"
	"net/http"
	"time"

	"adhkari/db"
	"adhkari/engagement"
	"adhkari/models"
	"adhkari/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListGifts returns the claimable gifts with the viewer's claim state
func ListGifts(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	gifts, err := db.ListGifts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gifts"})
		return
	}

	claimed := make(map[string]bool, len(user.UnlockedGifts))
	for _, id := range user.UnlockedGifts {
		claimed[id] = true
	}

	entries := make([]gin.H, 0, len(gifts))
	for _, gift := range gifts {
		entries = append(entries, gin.H{
			"id":             gift.ID.Hex(),
			"name":           gift.Name,
			"requiredPoints": gift.RequiredPoints,
			"rewardType":     gift.RewardType,
			"rewardValue":    gift.RewardValue,
			"claimed":        claimed[gift.ID.Hex()],
		})
	}

	c.JSON(http.StatusOK, gin.H{"points": user.Points, "gifts": entries})
}

// ClaimGift redeems a gift against the user's point balance
func ClaimGift(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift id"})
		return
	}

	gift, err := db.FindGiftByID(id)
	if err != nil || gift.IsDeleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gift not found"})
		return
	}

	updated, err := engagement.ClaimReward(*user, *gift)
	if err != nil {
		switch {
		case errors.Is(err, engagement.ErrInsufficientPoints):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough points to claim this gift"})
		case errors.Is(err, engagement.ErrAlreadyClaimed):
			c.JSON(http.StatusConflict, gin.H{"error": "Gift already claimed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim gift"})
		}
		return
	}

	if err := db.ReplaceUser(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save claim", "message": err.Error()})
		return
	}

	websocket.BroadcastEngagementEvent(models.EngagementEvent{
		Type:       "reward_claimed",
		UserID:     updated.ID.Hex(),
		NewBalance: updated.Points,
		GiftName:   gift.Name,
		Timestamp:  time.Now(),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Gift claimed",
		"points":  updated.Points,
		"gift":    gift.Name,
	})
}

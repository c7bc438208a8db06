package controllers

import (
	"net/http"

	"adhkari/db"
	"adhkari/engagement"
	"adhkari/models"
	"adhkari/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateLanguageRequest represents the request to change the preferred
// language
type UpdateLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// UpdatePreferencesRequest represents the request to change notification
// preferences
type UpdatePreferencesRequest struct {
	NotificationsEnabled *bool  `json:"notificationsEnabled" binding:"required"`
	ReminderTime         string `json:"reminderTime"`
}

// currentUser resolves the authenticated user from the request context.
// Writes the error response itself and returns nil when resolution fails.
func currentUser(c *gin.Context) *models.User {
	email, exists := c.Get("userEmail")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil
	}

	user, err := db.FindUserByEmail(email.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil
	}
	return user
}

// GetProfile returns the authenticated user's record with unlocked gift
// names resolved
func GetProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	// Resolve unlocked gift ids to names; tombstoned gifts still resolve
	var unlocked []gin.H
	for _, giftID := range user.UnlockedGifts {
		id, err := primitive.ObjectIDFromHex(giftID)
		if err != nil {
			continue
		}
		gift, err := db.FindGiftByID(id)
		if err != nil {
			continue
		}
		unlocked = append(unlocked, gin.H{
			"id":          gift.ID.Hex(),
			"name":        gift.Name,
			"rewardType":  gift.RewardType,
			"rewardValue": gift.RewardValue,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"name":          utils.ExtractNameFromEmail(user.Email),
		"unlockedGifts": unlocked,
	})
}

// UpdateLanguage changes the user's preferred content language
func UpdateLanguage(c *gin.Context) {
	var request UpdateLanguageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if !models.ValidLanguage(request.Language) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
		return
	}

	user := currentUser(c)
	if user == nil {
		return
	}

	updated := engagement.ChangeLanguage(*user, request.Language)
	if err := db.ReplaceUser(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update language", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Language updated", "language": updated.Language})
}

// UpdatePreferences changes notification settings
func UpdatePreferences(c *gin.Context) {
	var request UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	user := currentUser(c)
	if user == nil {
		return
	}

	updated := *user
	updated.NotificationsEnabled = *request.NotificationsEnabled
	updated.ReminderTime = request.ReminderTime
	if err := db.ReplaceUser(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated"})
}

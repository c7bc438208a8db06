package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"adhkari/catalog"
	"adhkari/db"
	"adhkari/models"
	"adhkari/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateDhikrRequest represents the request to add a content item. The source
// text is written in any supported language; translations are filled in by
// the AI service before anything is persisted.
type CreateDhikrRequest struct {
	Title        string `json:"title" binding:"required"`
	Content      string `json:"content" binding:"required"`
	Explanation  string `json:"explanation"`
	Category     string `json:"category" binding:"required"`
	SubCategory  string `json:"subCategory"`
	Count        int    `json:"count"`
	IsPremium    bool   `json:"isPremium"`
	PointsReward int    `json:"pointsReward"`
}

// UpdateTierRequest represents the request to change a user's subscription
// tier
type UpdateTierRequest struct {
	Tier string `json:"tier" binding:"required"`
}

// CreateGiftRequest represents the request to add a claimable gift
type CreateGiftRequest struct {
	Name           string `json:"name" binding:"required"`
	RequiredPoints int    `json:"requiredPoints"`
	RewardType     string `json:"rewardType" binding:"required"`
	RewardValue    int    `json:"rewardValue"`
}

func adminEmail(c *gin.Context) string {
	email, _ := c.Get("adminEmail")
	if s, ok := email.(string); ok {
		return s
	}
	return ""
}

// AdminListUsers returns all registered users
func AdminListUsers(c *gin.Context) {
	users, err := db.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// AdminUpdateUserTier changes a user's subscription tier
func AdminUpdateUserTier(c *gin.Context) {
	var request UpdateTierRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if !models.ValidTier(request.Tier) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subscription tier"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, err := db.FindUserByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updated := *user
	updated.SubscriptionTier = request.Tier
	if err := db.ReplaceUser(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tier", "message": err.Error()})
		return
	}

	db.AppendAuditLog(adminEmail(c), fmt.Sprintf("Update tier for %s to %s", user.Email, request.Tier))
	c.JSON(http.StatusOK, gin.H{"message": "Tier updated", "tier": request.Tier})
}

// AdminCreateDhikr translates and persists a new content item. The AI call
// happens first: if it fails, nothing is saved.
func AdminCreateDhikr(c *gin.Context) {
	var request CreateDhikrRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if request.Count < 1 {
		request.Count = 1
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	translations, err := services.TranslateDhikr(ctx, request.Title, request.Content, request.Explanation)
	if err != nil {
		log.Printf("AI translation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Translation service unavailable, content not saved"})
		return
	}

	item := models.Dhikr{
		Category:     request.Category,
		SubCategory:  request.SubCategory,
		Count:        request.Count,
		IsPremium:    request.IsPremium,
		PointsReward: request.PointsReward,
		Translations: translations,
		CreatedAt:    time.Now(),
	}

	if err := catalog.Validate(item); err != nil {
		if errors.Is(err, catalog.ErrInvalidDhikr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate content"})
		return
	}

	id, err := db.InsertDhikr(item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content", "message": err.Error()})
		return
	}

	db.AppendAuditLog(adminEmail(c), fmt.Sprintf("Add dhikr: %s (category: %s)", request.Title, request.Category))
	c.JSON(http.StatusOK, gin.H{"message": "Content created", "id": id.Hex()})
}

// AdminDeleteDhikr tombstones a content item
func AdminDeleteDhikr(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dhikr id"})
		return
	}

	if err := db.SoftDeleteDhikr(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dhikr not found"})
		return
	}

	db.AppendAuditLog(adminEmail(c), fmt.Sprintf("Delete dhikr: %s", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}

// AdminListGifts returns all live gifts
func AdminListGifts(c *gin.Context) {
	gifts, err := db.ListGifts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gifts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gifts": gifts})
}

// AdminCreateGift adds a claimable gift
func AdminCreateGift(c *gin.Context) {
	var request CreateGiftRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if request.RequiredPoints < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Required points cannot be negative"})
		return
	}
	if request.RewardType != models.RewardBadge && request.RewardType != models.RewardSubscriptionExtension {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown reward type"})
		return
	}

	gift := models.Gift{
		Name:           request.Name,
		RequiredPoints: request.RequiredPoints,
		RewardType:     request.RewardType,
		RewardValue:    request.RewardValue,
		CreatedAt:      time.Now(),
	}

	id, err := db.InsertGift(gift)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save gift", "message": err.Error()})
		return
	}

	db.AppendAuditLog(adminEmail(c), fmt.Sprintf("Add gift: %s (%d points)", request.Name, request.RequiredPoints))
	c.JSON(http.StatusOK, gin.H{"message": "Gift created", "id": id.Hex()})
}

// AdminDeleteGift tombstones a gift; ids already in users' unlocked sets
// keep resolving
func AdminDeleteGift(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift id"})
		return
	}

	if err := db.SoftDeleteGift(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gift not found"})
		return
	}

	db.AppendAuditLog(adminEmail(c), fmt.Sprintf("Delete gift: %s", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Gift deleted"})
}

// AdminListLogs returns the audit trail, newest first
func AdminListLogs(c *gin.Context) {
	logs, err := db.ListAuditLogs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load audit logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

package controllers

import (
	"errors"
	"net/http"
	"time"

	"adhkari/catalog"
	"adhkari/db"
	"adhkari/engagement"
	"adhkari/models"
	"adhkari/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dhikrSummary is the listing shape: titles only, never the body, so locked
// content cannot leak through list responses
type dhikrSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	SubCategory  string `json:"subCategory,omitempty"`
	Count        int    `json:"count"`
	IsPremium    bool   `json:"isPremium"`
	PointsReward int    `json:"pointsReward"`
	Locked       bool   `json:"locked"`
}

// GetCategories returns the category tree used for navigation
func GetCategories(c *gin.Context) {
	items, err := db.ListDhikr()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	categories := make([]gin.H, 0, len(models.DhikrCategories))
	for _, category := range models.DhikrCategories {
		categories = append(categories, gin.H{
			"category":      category,
			"subCategories": catalog.DistinctSubCategories(items, category),
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListDhikr returns localized summaries for a category, optionally narrowed
// to a sub-category
func ListDhikr(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	category := c.Query("category")
	if !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	subCategory := c.Query("subCategory")

	items, err := db.ListDhikr()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	filtered := catalog.FilterByCategory(items, category, subCategory)
	summaries := make([]dhikrSummary, 0, len(filtered))
	for _, item := range filtered {
		trans := catalog.Localize(item, user.Language)
		summaries = append(summaries, dhikrSummary{
			ID:           item.ID.Hex(),
			Title:        trans.Title,
			Category:     item.Category,
			SubCategory:  item.SubCategory,
			Count:        item.Count,
			IsPremium:    item.IsPremium,
			PointsReward: item.PointsReward,
			Locked:       catalog.IsLocked(item, *user),
		})
	}

	c.JSON(http.StatusOK, gin.H{"dhikr": summaries})
}

// GetDhikr returns one item localized for the viewer. Locked items come back
// with the body redacted; only the title and lock state are revealed.
func GetDhikr(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dhikr id"})
		return
	}

	item, err := db.FindDhikrByID(id)
	if err != nil || item.IsDeleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dhikr not found"})
		return
	}

	trans := catalog.Localize(*item, user.Language)
	locked := catalog.IsLocked(*item, *user)
	if locked {
		trans.Content = ""
		trans.Explanation = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           item.ID.Hex(),
		"category":     item.Category,
		"subCategory":  item.SubCategory,
		"count":        item.Count,
		"isPremium":    item.IsPremium,
		"pointsReward": item.PointsReward,
		"locked":       locked,
		"title":        trans.Title,
		"content":      trans.Content,
		"explanation":  trans.Explanation,
	})
}

// CompleteDhikr credits the user for finishing an item's repetitions
func CompleteDhikr(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dhikr id"})
		return
	}

	item, err := db.FindDhikrByID(id)
	if err != nil || item.IsDeleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dhikr not found"})
		return
	}

	updated, err := engagement.CompleteContent(*user, *item)
	if err != nil {
		if errors.Is(err, engagement.ErrContentLocked) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This content requires a premium subscription"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record completion"})
		return
	}

	if err := db.ReplaceUser(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress", "message": err.Error()})
		return
	}

	websocket.BroadcastEngagementEvent(models.EngagementEvent{
		Type:       "points_earned",
		UserID:     updated.ID.Hex(),
		Points:     updated.Points - user.Points,
		NewBalance: updated.Points,
		Timestamp:  time.Now(),
	})

	c.JSON(http.StatusOK, gin.H{
		"message":        "Completion recorded",
		"points":         updated.Points,
		"completedCount": updated.CompletedCount,
	})
}

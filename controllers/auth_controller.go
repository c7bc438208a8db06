package controllers

import (
	"net/http"
	"time"

	"adhkari/db"
	"adhkari/engagement"
	"adhkari/models"
	"adhkari/structs"
	"adhkari/utils"
	"adhkari/websocket"

	"github.com/gin-gonic/gin"
)

// SignUp registers a new user. New accounts start on the free tier with a
// streak of 1 and today's date as their first activity.
func SignUp(ctx *gin.Context) {
	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if _, err := db.FindUserByEmail(request.Email); err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Account already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	language := request.Language
	if !models.ValidLanguage(language) {
		language = models.LangArabic
	}

	user := models.User{
		Email:                request.Email,
		Password:             hashedPassword,
		Role:                 models.RoleUser,
		SubscriptionTier:     models.TierFree,
		SubscriptionStatus:   models.SubscriptionActive,
		Country:              request.Country,
		Language:             language,
		Points:               0,
		CompletedCount:       0,
		UnlockedGifts:        []string{},
		Streak:               1,
		NotificationsEnabled: true,
		LastActiveDate:       time.Now().Format(engagement.DateLayout),
		CreatedAt:            time.Now(),
	}

	id, err := db.InsertUser(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account", "message": err.Error()})
		return
	}
	user.ID = id

	token, err := utils.GenerateJWTToken(id.Hex(), user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Sign-up successful",
		"accessToken": token,
		"user":        user,
	})
}

// Login checks credentials, records today's activity for the streak, and
// issues a JWT
func Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	user, err := db.FindUserByEmail(request.Email)
	if err != nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// Once-per-day streak check; a second login today is a no-op
	updated := engagement.RecordDailyActivity(*user, time.Now())
	if updated.Streak != user.Streak || updated.LastActiveDate != user.LastActiveDate {
		if err := db.ReplaceUser(updated); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity", "message": err.Error()})
			return
		}
		websocket.BroadcastEngagementEvent(models.EngagementEvent{
			Type:      "streak_updated",
			UserID:    updated.ID.Hex(),
			Streak:    updated.Streak,
			Timestamp: time.Now(),
		})
	}

	token, err := utils.GenerateJWTToken(updated.ID.Hex(), updated.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Sign-in successful",
		"accessToken": token,
		"user":        updated,
	})
}

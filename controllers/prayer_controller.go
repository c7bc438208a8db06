package controllers

import (
	"net/http"

	"adhkari/config"
	"adhkari/services"

	"github.com/gin-gonic/gin"
)

var aladhanBaseURL = "https://api.aladhan.com"

// InitPrayerTimesController wires the lookup endpoint from config
func InitPrayerTimesController(cfg *config.Config) {
	if cfg.Aladhan.BaseURL != "" {
		aladhanBaseURL = cfg.Aladhan.BaseURL
	}
}

// GetPrayerTimes returns today's prayer schedule for the user's country, or
// for an explicit ?country= override. Upstream failures surface as a
// temporarily-unavailable state, never as a hard error.
func GetPrayerTimes(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	country := c.Query("country")
	if country == "" {
		country = user.Country
	}

	times, err := services.FetchPrayerTimes(c.Request.Context(), aladhanBaseURL, country)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Prayer times temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"country": country, "timings": times})
}

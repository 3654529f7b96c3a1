package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Trip settings handler functions

// @Summary Get trip settings
// @Description Retrieve the stored JPY to TWD exchange rate
// @Tags settings
// @Produce json
// @Success 200 {object} TripSettings "Current trip settings"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/settings [get]
func getSettings(c *gin.Context) {
	dbSettings, err := queries.GetTripSettings(context.Background())
	if err != nil {
		log.Printf("Error fetching trip settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching trip settings"})
		return
	}

	c.JSON(http.StatusOK, TripSettings{
		ExchangeRate: dbSettings.ExchangeRate,
		UpdatedAt:    dbSettings.UpdatedAt.Time,
	})
}

// @Summary Update trip settings
// @Description Update the stored JPY to TWD exchange rate. The raw string is stored as entered; reads fall back to the default rate when it does not parse as a positive number.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body SettingsRequest true "New exchange rate"
// @Success 200 {object} TripSettings "Updated trip settings"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/settings [put]
func updateSettings(c *gin.Context) {
	var request SettingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(request.ExchangeRate) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exchange_rate is required"})
		return
	}

	dbSettings, err := queries.UpdateExchangeRate(context.Background(), strings.TrimSpace(request.ExchangeRate))
	if err != nil {
		log.Printf("Error updating exchange rate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating exchange rate"})
		return
	}

	c.JSON(http.StatusOK, TripSettings{
		ExchangeRate: dbSettings.ExchangeRate,
		UpdatedAt:    dbSettings.UpdatedAt.Time,
	})
}

// currentExchangeRate loads the stored rate and parses it with the
// engine's fallback. A missing settings row falls back to the default
// instead of failing the request.
func currentExchangeRate() float64 {
	dbSettings, err := queries.GetTripSettings(context.Background())
	if err != nil {
		log.Printf("Error fetching trip settings, using default rate: %v", err)
		return defaultExchangeRate
	}
	return parseExchangeRate(dbSettings.ExchangeRate)
}

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ujval10/EV-Recharge/internal/models"
	"github.com/ujval10/EV-Recharge/internal/services"
)

// GetAiSuggestion runs the scheduling advisor. Validation failures are
// surfaced per-field; everything past validation collapses into a
// single generic message so the model/provider cause stays in the logs.
func GetAiSuggestion(a *services.AdvisorService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SuggestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		if errs := validateSuggestionRequest(&req); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed. Please check your inputs.",
				"errors":  errs,
			})
			return
		}

		suggestion, err := a.Suggest(c.Request.Context(), &req)
		if err != nil {
			logger.Error("AI suggestion failed", "error", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse("An error occurred while getting suggestions from the AI."))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(suggestion, ""))
	}
}

func validateSuggestionRequest(req *models.SuggestionRequest) map[string]string {
	errs := map[string]string{}
	if len(strings.TrimSpace(req.UserSchedule)) < 10 {
		errs["userSchedule"] = "Please describe your schedule in a bit more detail."
	}
	if len(strings.TrimSpace(req.ChargingDuration)) < 3 {
		errs["chargingDuration"] = "Please enter a valid charging duration (e.g., '2 hours')."
	}
	return errs
}

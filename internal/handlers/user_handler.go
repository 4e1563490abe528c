package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ujval10/EV-Recharge/internal/models"
	"github.com/ujval10/EV-Recharge/internal/services"
)

// GetProfile returns the caller's own profile document.
func GetProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := callerClaims(c)
		if !ok {
			return
		}

		profile, err := u.GetProfile(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, models.ErrProfileNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("profile not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not fetch profile"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(profile, ""))
	}
}

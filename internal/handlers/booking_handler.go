package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ujval10/EV-Recharge/internal/helpers"
	"github.com/ujval10/EV-Recharge/internal/models"
	"github.com/ujval10/EV-Recharge/internal/services"
)

type createBookingRequest struct {
	StationID string `json:"stationId" binding:"required"`
	Slot      string `json:"slot"`
}

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := callerClaims(c)
		if !ok {
			return
		}

		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := b.CreateBooking(c.Request.Context(), claims.UserID, req.StationID, req.Slot)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrSlotNotSelected):
				c.JSON(http.StatusBadRequest, models.ErrorResponse("please select a time slot before booking"))
			case errors.Is(err, models.ErrStationNotFound):
				c.JSON(http.StatusNotFound, models.ErrorResponse("station not found"))
			default:
				c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not book the slot, please try again"))
			}
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking successful"))
	}
}

func ListBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := callerClaims(c)
		if !ok {
			return
		}

		bookings, err := b.ListBookings(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not fetch bookings"))
			return
		}

		if bookings == nil {
			bookings = []*models.Booking{}
		}
		c.JSON(http.StatusOK, models.ListResponse(bookings, len(bookings)))
	}
}

// callerClaims pulls the authenticated caller's claims out of the
// context set by AuthMiddleware, writing the error response itself.
func callerClaims(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}
	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}

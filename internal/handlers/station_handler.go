package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ujval10/EV-Recharge/internal/models"
	"github.com/ujval10/EV-Recharge/internal/services"
)

// ListStations serves the station directory. The optional q parameter
// applies the substring filter over name, city, country and address.
func ListStations(s *services.StationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stations, err := s.ListStations(c.Request.Context(), c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not fetch stations"))
			return
		}

		if stations == nil {
			stations = []*models.Station{}
		}
		c.JSON(http.StatusOK, models.ListResponse(stations, len(stations)))
	}
}

func GetStation(s *services.StationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stationID := strings.TrimSpace(c.Param("id"))
		if stationID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("station ID is required"))
			return
		}

		station, err := s.GetStation(c.Request.Context(), stationID)
		if err != nil {
			if errors.Is(err, models.ErrStationNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("station not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not fetch station"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(station, ""))
	}
}

// MapConfig reports whether the mapping widget can be rendered. A
// missing API key is a configuration-error state, not a server error.
func MapConfig(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.JSON(http.StatusOK, gin.H{
				"configured": false,
				"error":      "The Google Maps API key is missing. Please add it to your environment variables to display the map.",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"configured": true,
			"apiKey":     apiKey,
		})
	}
}

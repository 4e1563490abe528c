package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ujval10/EV-Recharge/internal/models"
	"github.com/ujval10/EV-Recharge/internal/services"
)

func ListUsers(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := u.ListProfiles(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not fetch users"))
			return
		}

		if profiles == nil {
			profiles = []*models.UserProfile{}
		}
		c.JSON(http.StatusOK, models.ListResponse(profiles, len(profiles)))
	}
}

type createStationRequest struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Country      string  `json:"country" binding:"required"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	MobileNumber string  `json:"mobileNumber" binding:"required"`
	ImageData    string  `json:"imageData"`
}

func CreateStation(s *services.StationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createStationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		station := &models.Station{
			Name:         req.Name,
			Address:      req.Address,
			City:         req.City,
			Country:      req.Country,
			Coordinates:  models.NewGeoPoint(req.Latitude, req.Longitude),
			MobileNumber: req.MobileNumber,
		}

		created, err := s.CreateStation(c.Request.Context(), station, req.ImageData)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not add station"))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, fmt.Sprintf("%s has been added", created.Name)))
	}
}

func DeleteStation(s *services.StationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stationID := strings.TrimSpace(c.Param("id"))
		if stationID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("station ID is required"))
			return
		}

		if err := s.DeleteStation(c.Request.Context(), stationID); err != nil {
			if errors.Is(err, models.ErrStationNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("station not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not delete station"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "The station has been successfully removed"))
	}
}

// SeedStations runs the one-time fixture import. It refuses with 409
// when the collection already holds data, so repeated clicks cannot
// duplicate the demo stations.
func SeedStations(s *services.StationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seeded, err := s.Seed(c.Request.Context())
		if err != nil {
			if errors.Is(err, models.ErrSeedNotEmpty) {
				c.JSON(http.StatusConflict, models.ErrorResponse("the stations collection is not empty, seeding has been cancelled to avoid duplicates"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("there was an error while seeding the data"))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(gin.H{"seeded": seeded}, "Station data has been seeded"))
	}
}

type toggleSlotRequest struct {
	Time string `json:"time" binding:"required"`
}

func ToggleSlot(s *services.StationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stationID := strings.TrimSpace(c.Param("id"))
		if stationID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("station ID is required"))
			return
		}

		var req toggleSlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid station or slot"))
			return
		}

		if err := s.ToggleSlot(c.Request.Context(), stationID, req.Time); err != nil {
			if errors.Is(err, models.ErrStationNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("station not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to update the slot, please try again"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, fmt.Sprintf("Slot %s has been updated", req.Time)))
	}
}

// WatchStation streams station document changes to the admin UI as
// server-sent events. The change subscription is torn down when the
// client disconnects.
func WatchStation(s *services.StationService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stationID := strings.TrimSpace(c.Param("id"))
		if stationID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("station ID is required"))
			return
		}

		watcher, err := s.WatchStation(c.Request.Context(), stationID)
		if err != nil {
			if errors.Is(err, models.ErrStationNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("station not found"))
				return
			}
			logger.Error("Failed to open station watch", "station_id", stationID, "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not watch station"))
			return
		}
		defer watcher.Close()

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		c.Stream(func(w io.Writer) bool {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return false
				}
				payload, err := json.Marshal(event)
				if err != nil {
					logger.Error("Failed to marshal station event", "error", err)
					return true
				}
				fmt.Fprintf(w, "data: %s\n\n", payload)
				return event.Type != "delete"
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}

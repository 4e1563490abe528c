package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ujval10/EV-Recharge/internal/models"
)

type BookingService struct {
	bookingsRepo models.BookingsRepo
	stationsRepo models.StationsRepo
}

func NewBookingService(bookingsRepo models.BookingsRepo, stationsRepo models.StationsRepo) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		stationsRepo: stationsRepo,
	}
}

// CreateBooking appends a booking record for the given user, station
// and slot label. The station name is copied into the record at write
// time and never updated afterwards. By design there is no check that
// the slot is still flagged available and no guard against two users
// booking the same label; the slot flag is only ever changed by the
// admin toggle action.
func (bs *BookingService) CreateBooking(ctx context.Context, userID, stationID, slot string) (*models.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(slot) == "" {
		return nil, models.ErrSlotNotSelected
	}

	station, err := bs.stationsRepo.GetStationByID(ctx, stationID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:      userID,
		StationID:   stationID,
		StationName: station.Name,
		Slot:        slot,
		BookingTime: time.Now(),
	}

	created, err := bs.bookingsRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %v", err)
	}
	return created, nil
}

func (bs *BookingService) ListBookings(ctx context.Context, userID string) ([]*models.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	return bs.bookingsRepo.ListBookingsByUser(ctx, userID)
}

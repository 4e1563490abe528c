package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ujval10/EV-Recharge/internal/models"
)

// Mock repository for testing
type mockBookingsRepo struct {
	createBookingFunc      func(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	listBookingsByUserFunc func(ctx context.Context, userID string) ([]*models.Booking, error)
}

func (m *mockBookingsRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if m.createBookingFunc != nil {
		return m.createBookingFunc(ctx, booking)
	}
	return booking, nil
}

func (m *mockBookingsRepo) ListBookingsByUser(ctx context.Context, userID string) ([]*models.Booking, error) {
	if m.listBookingsByUserFunc != nil {
		return m.listBookingsByUserFunc(ctx, userID)
	}
	return []*models.Booking{}, nil
}

func TestCreateBookingRequiresSlot(t *testing.T) {
	createCalled := false
	bookings := &mockBookingsRepo{
		createBookingFunc: func(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
			createCalled = true
			return booking, nil
		},
	}
	stations := &mockStationsRepo{}
	service := NewBookingService(bookings, stations)

	_, err := service.CreateBooking(context.Background(), "user-1", "station-1", "  ")
	if !errors.Is(err, models.ErrSlotNotSelected) {
		t.Fatalf("expected ErrSlotNotSelected, got %v", err)
	}
	if createCalled {
		t.Error("expected no booking record for an empty slot")
	}
}

func TestCreateBookingDenormalizesStationName(t *testing.T) {
	var written *models.Booking
	bookings := &mockBookingsRepo{
		createBookingFunc: func(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
			written = booking
			return booking, nil
		},
	}
	stations := &mockStationsRepo{
		getStationByIDFunc: func(ctx context.Context, id string) (*models.Station, error) {
			return &models.Station{Name: "Ather Grid - Koramangala"}, nil
		},
	}
	service := NewBookingService(bookings, stations)

	before := time.Now()
	booking, err := service.CreateBooking(context.Background(), "user-1", "station-1", "02:00 PM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if written == nil {
		t.Fatal("expected a booking record to be written")
	}
	if booking.StationName != "Ather Grid - Koramangala" {
		t.Errorf("expected the station name to be copied into the record, got %q", booking.StationName)
	}
	if booking.UserID != "user-1" || booking.StationID != "station-1" || booking.Slot != "02:00 PM" {
		t.Errorf("booking fields not carried through: %+v", booking)
	}
	if booking.BookingTime.Before(before) {
		t.Error("expected the booking time to be stamped at creation")
	}
}

func TestCreateBookingStationMissing(t *testing.T) {
	createCalled := false
	bookings := &mockBookingsRepo{
		createBookingFunc: func(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
			createCalled = true
			return booking, nil
		},
	}
	stations := &mockStationsRepo{
		getStationByIDFunc: func(ctx context.Context, id string) (*models.Station, error) {
			return nil, models.ErrStationNotFound
		},
	}
	service := NewBookingService(bookings, stations)

	_, err := service.CreateBooking(context.Background(), "user-1", "missing", "02:00 PM")
	if !errors.Is(err, models.ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}
	if createCalled {
		t.Error("expected no booking record for a missing station")
	}
}

func TestListBookingsRequiresUser(t *testing.T) {
	service := NewBookingService(&mockBookingsRepo{}, &mockStationsRepo{})

	if _, err := service.ListBookings(context.Background(), ""); err == nil {
		t.Fatal("expected an error for a blank user ID")
	}
}

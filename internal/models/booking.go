package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking records a user's intent to charge at a station for a given
// slot label. The station name and slot are denormalized copies taken
// at booking time; they are never updated if the station later changes.
// Bookings are append-only and are not cross-checked against the slot's
// availability flag.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	StationID   string             `bson:"stationId" json:"stationId"`
	StationName string             `bson:"stationName" json:"stationName"`
	Slot        string             `bson:"slot" json:"slot"`
	BookingTime time.Time          `bson:"bookingTime" json:"bookingTime"`
}

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]*Booking, error)
}

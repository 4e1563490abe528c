package models

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BunkStatus string

const (
	BunkAvailable   BunkStatus = "available"
	BunkOccupied    BunkStatus = "occupied"
	BunkMaintenance BunkStatus = "maintenance"
)

// GeoPoint stores a station's position as a GeoJSON Point so the
// driver keeps the native geo encoding ([lng, lat] order on the wire).
// JSON clients see the friendlier {lat, lng} shape.
type GeoPoint struct {
	Type        string     `bson:"type"`
	Coordinates [2]float64 `bson:"coordinates"` // [longitude, latitude]
}

func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: [2]float64{lng, lat},
	}
}

func (g GeoPoint) Lat() float64 { return g.Coordinates[1] }
func (g GeoPoint) Lng() float64 { return g.Coordinates[0] }

func (g GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"lat": g.Lat(),
		"lng": g.Lng(),
	})
}

func (g *GeoPoint) UnmarshalJSON(data []byte) error {
	var pair struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("invalid coordinates: %v", err)
	}
	*g = NewGeoPoint(pair.Lat, pair.Lng)
	return nil
}

// Slot is a named time-of-day interval with a binary availability flag.
// Labels use the 12-hour form the UI renders, e.g. "09:00 AM".
type Slot struct {
	Time      string `bson:"time" json:"time"`
	Available bool   `bson:"available" json:"available"`
}

// Bunk is a physical charging bay. One fixed entry is written at
// station creation and never mutated afterwards.
type Bunk struct {
	ID     string     `bson:"id" json:"id"`
	Name   string     `bson:"name" json:"name"`
	Status BunkStatus `bson:"status" json:"status"`
}

type Station struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Address      string             `bson:"address" json:"address" validate:"required"`
	City         string             `bson:"city" json:"city" validate:"required"`
	Country      string             `bson:"country" json:"country" validate:"required"`
	Coordinates  GeoPoint           `bson:"coordinates" json:"coordinates"`
	MobileNumber string             `bson:"mobileNumber" json:"mobileNumber" validate:"required"`
	Amenities    []string           `bson:"amenities" json:"amenities"`
	Slots        []Slot             `bson:"slots" json:"slots"`
	Rating       float64            `bson:"rating" json:"rating"`
	ReviewCount  int                `bson:"reviewCount" json:"reviewCount"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	ImageHint    string             `bson:"imageHint" json:"imageHint"`
	Bunks        []Bunk             `bson:"bunks" json:"bunks"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// SortSlots orders slots chronologically by their 12-hour labels.
// A plain string sort would put "01:00 PM" before "09:00 AM", which is
// how the old UI got its ordering wrong. Unparseable labels sink to the
// end in lexical order.
func SortSlots(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		ti, erri := time.Parse("03:04 PM", slots[i].Time)
		tj, errj := time.Parse("03:04 PM", slots[j].Time)
		if erri != nil || errj != nil {
			if erri == nil {
				return true
			}
			if errj == nil {
				return false
			}
			return slots[i].Time < slots[j].Time
		}
		return ti.Before(tj)
	})
}

// StationEvent is one delivery from a station change subscription.
type StationEvent struct {
	Type    string   `json:"type"` // insert, update, replace, delete
	Station *Station `json:"station,omitempty"`
}

// StationWatcher is a cancellable handle onto a station's change
// stream. Close stops delivery; Events is closed once the underlying
// stream ends.
type StationWatcher struct {
	Events <-chan StationEvent
	cancel context.CancelFunc
}

func (w *StationWatcher) Close() {
	if w.cancel != nil {
		w.cancel()
	}
}

type StationsRepo interface {
	ListStations(ctx context.Context) ([]*Station, error)
	GetStationByID(ctx context.Context, id string) (*Station, error)
	CreateStation(ctx context.Context, station *Station) (*Station, error)
	DeleteStation(ctx context.Context, id string) error
	UpdateStationSlots(ctx context.Context, id string, slots []Slot) error
	CountStations(ctx context.Context) (int64, error)
	InsertStations(ctx context.Context, stations []*Station) error
	WatchStation(ctx context.Context, id string) (*StationWatcher, error)
}

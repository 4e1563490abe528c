package models

import "errors"

var (
	ErrStationNotFound = errors.New("station not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrSlotNotSelected = errors.New("no slot selected")
	// ErrSeedNotEmpty is returned when seeding is refused because the
	// stations collection already holds documents.
	ErrSeedNotEmpty = errors.New("stations collection is not empty")
)

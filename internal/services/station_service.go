package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/ujval10/EV-Recharge/internal/helpers"
	"github.com/ujval10/EV-Recharge/internal/models"
)

const (
	placeholderImageURL = "https://placehold.co/600x400.png"

	slotCount     = 8
	slotStartHour = 9 // first slot 09:00 AM, last 04:00 PM
	blockedPerDay = 2
)

type StationService struct {
	stationsRepo models.StationsRepo
	cld          *cloudinary.Cloudinary
	rng          *rand.Rand
}

func NewStationService(stationsRepo models.StationsRepo, cld *cloudinary.Cloudinary) *StationService {
	return &StationService{
		stationsRepo: stationsRepo,
		cld:          cld,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ListStations returns the full directory, or the subset matching the
// query. Filtering is a case-insensitive substring match over name,
// city, country and address, recomputed in full per call; a blank query
// resets to the unfiltered set.
func (ss *StationService) ListStations(ctx context.Context, query string) ([]*models.Station, error) {
	stations, err := ss.stationsRepo.ListStations(ctx)
	if err != nil {
		return nil, err
	}
	return filterStations(stations, query), nil
}

func filterStations(stations []*models.Station, query string) []*models.Station {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return stations
	}

	matched := make([]*models.Station, 0, len(stations))
	for _, s := range stations {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.City), q) ||
			strings.Contains(strings.ToLower(s.Country), q) ||
			strings.Contains(strings.ToLower(s.Address), q) {
			matched = append(matched, s)
		}
	}
	return matched
}

func (ss *StationService) GetStation(ctx context.Context, id string) (*models.Station, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.ErrStationNotFound
	}

	station, err := ss.stationsRepo.GetStationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	models.SortSlots(station.Slots)
	return station, nil
}

// CreateStation validates the admin form fields, generates the standard
// business-day slot grid with two randomly blocked entries, applies the
// default rating/review/amenity/bunk values and persists the document.
// imageData, when non-empty, is uploaded to Cloudinary; otherwise the
// placeholder image is used.
func (ss *StationService) CreateStation(ctx context.Context, station *models.Station, imageData string) (*models.Station, error) {
	if err := models.Validate.Struct(station); err != nil {
		return nil, fmt.Errorf("invalid station data provided: %v", err)
	}

	station.Slots = ss.generateSlots()
	station.Rating = 5
	station.ReviewCount = 1
	station.Amenities = []string{"Wi-Fi", "Restroom"}
	station.Bunks = []models.Bunk{
		{ID: "bunk-1", Name: "Bunk 1", Status: models.BunkAvailable},
	}
	station.ImageURL = placeholderImageURL
	station.ImageHint = "electric car"
	station.CreatedAt = time.Now()

	if strings.TrimSpace(imageData) != "" && ss.cld != nil {
		url, err := helpers.UploadStationImage(ctx, ss.cld, imageData)
		if err != nil {
			return nil, fmt.Errorf("failed to upload station image: %v", err)
		}
		station.ImageURL = url
	}

	return ss.stationsRepo.CreateStation(ctx, station)
}

// generateSlots builds the fixed 09:00 AM - 04:00 PM hourly grid and
// blocks exactly two distinct slots chosen uniformly at random.
func (ss *StationService) generateSlots() []models.Slot {
	slots := make([]models.Slot, 0, slotCount)
	for i := 0; i < slotCount; i++ {
		hour24 := slotStartHour + i
		period := "AM"
		if hour24 >= 12 {
			period = "PM"
		}
		hour12 := hour24 % 12
		if hour12 == 0 {
			hour12 = 12
		}
		slots = append(slots, models.Slot{
			Time:      fmt.Sprintf("%02d:00 %s", hour12, period),
			Available: true,
		})
	}

	for _, idx := range ss.rng.Perm(slotCount)[:blockedPerDay] {
		slots[idx].Available = false
	}

	return slots
}

func (ss *StationService) DeleteStation(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return models.ErrStationNotFound
	}
	// Deliberately no cascade: bookings referencing the station keep
	// their denormalized copy of its name.
	return ss.stationsRepo.DeleteStation(ctx, id)
}

// ToggleSlot flips the availability flag of the slot whose label
// matches slotTime and writes back only the slots field. A label with
// no match leaves every slot untouched and the write still succeeds.
// The operation is last-writer-wins at the document level; there is no
// version check against concurrent toggles.
func (ss *StationService) ToggleSlot(ctx context.Context, stationID, slotTime string) error {
	if strings.TrimSpace(stationID) == "" || strings.TrimSpace(slotTime) == "" {
		return fmt.Errorf("station ID and slot time are required")
	}

	station, err := ss.stationsRepo.GetStationByID(ctx, stationID)
	if err != nil {
		return err
	}

	updated := make([]models.Slot, len(station.Slots))
	for i, slot := range station.Slots {
		if slot.Time == slotTime {
			slot.Available = !slot.Available
		}
		updated[i] = slot
	}

	return ss.stationsRepo.UpdateStationSlots(ctx, stationID, updated)
}

// Seed bulk-inserts the static fixture. It refuses to run when the
// stations collection already holds any document, so repeated clicks
// cannot duplicate the demo data.
func (ss *StationService) Seed(ctx context.Context) (int, error) {
	count, err := ss.stationsRepo.CountStations(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, models.ErrSeedNotEmpty
	}

	fixture := models.SeedStations()
	now := time.Now()
	for _, s := range fixture {
		s.CreatedAt = now
	}

	if err := ss.stationsRepo.InsertStations(ctx, fixture); err != nil {
		return 0, err
	}
	return len(fixture), nil
}

func (ss *StationService) WatchStation(ctx context.Context, id string) (*models.StationWatcher, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.ErrStationNotFound
	}

	// Verify existence first so a bad ID fails fast instead of hanging
	// an empty stream.
	if _, err := ss.stationsRepo.GetStationByID(ctx, id); err != nil {
		return nil, err
	}

	return ss.stationsRepo.WatchStation(ctx, id)
}

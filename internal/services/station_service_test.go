package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/ujval10/EV-Recharge/internal/models"
)

// Mock repository for testing
type mockStationsRepo struct {
	listStationsFunc       func(ctx context.Context) ([]*models.Station, error)
	getStationByIDFunc     func(ctx context.Context, id string) (*models.Station, error)
	createStationFunc      func(ctx context.Context, station *models.Station) (*models.Station, error)
	deleteStationFunc      func(ctx context.Context, id string) error
	updateStationSlotsFunc func(ctx context.Context, id string, slots []models.Slot) error
	countStationsFunc      func(ctx context.Context) (int64, error)
	insertStationsFunc     func(ctx context.Context, stations []*models.Station) error
	watchStationFunc       func(ctx context.Context, id string) (*models.StationWatcher, error)
}

func (m *mockStationsRepo) ListStations(ctx context.Context) ([]*models.Station, error) {
	if m.listStationsFunc != nil {
		return m.listStationsFunc(ctx)
	}
	return []*models.Station{}, nil
}

func (m *mockStationsRepo) GetStationByID(ctx context.Context, id string) (*models.Station, error) {
	if m.getStationByIDFunc != nil {
		return m.getStationByIDFunc(ctx, id)
	}
	return nil, models.ErrStationNotFound
}

func (m *mockStationsRepo) CreateStation(ctx context.Context, station *models.Station) (*models.Station, error) {
	if m.createStationFunc != nil {
		return m.createStationFunc(ctx, station)
	}
	return station, nil
}

func (m *mockStationsRepo) DeleteStation(ctx context.Context, id string) error {
	if m.deleteStationFunc != nil {
		return m.deleteStationFunc(ctx, id)
	}
	return nil
}

func (m *mockStationsRepo) UpdateStationSlots(ctx context.Context, id string, slots []models.Slot) error {
	if m.updateStationSlotsFunc != nil {
		return m.updateStationSlotsFunc(ctx, id, slots)
	}
	return nil
}

func (m *mockStationsRepo) CountStations(ctx context.Context) (int64, error) {
	if m.countStationsFunc != nil {
		return m.countStationsFunc(ctx)
	}
	return 0, nil
}

func (m *mockStationsRepo) InsertStations(ctx context.Context, stations []*models.Station) error {
	if m.insertStationsFunc != nil {
		return m.insertStationsFunc(ctx, stations)
	}
	return nil
}

func (m *mockStationsRepo) WatchStation(ctx context.Context, id string) (*models.StationWatcher, error) {
	if m.watchStationFunc != nil {
		return m.watchStationFunc(ctx, id)
	}
	return &models.StationWatcher{}, nil
}

func newTestStationService(repo models.StationsRepo) *StationService {
	return &StationService{
		stationsRepo: repo,
		rng:          rand.New(rand.NewSource(1)),
	}
}

func TestFilterStations(t *testing.T) {
	stations := []*models.Station{
		{Name: "Tata Power EZ Charge - Connaught Place", City: "New Delhi", Country: "India", Address: "Connaught Place"},
		{Name: "ChargeGrid Mumbai", City: "Mumbai", Country: "India", Address: "Bandra Kurla Complex"},
		{Name: "ChargePoint - Canary Wharf", City: "London", Country: "UK", Address: "Canary Wharf"},
	}

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{
			name:      "blank query returns everything",
			query:     "   ",
			wantNames: []string{"Tata Power EZ Charge - Connaught Place", "ChargeGrid Mumbai", "ChargePoint - Canary Wharf"},
		},
		{
			name:      "city match is case-insensitive",
			query:     "mumBAI",
			wantNames: []string{"ChargeGrid Mumbai"},
		},
		{
			name:      "country matches multiple stations",
			query:     "india",
			wantNames: []string{"Tata Power EZ Charge - Connaught Place", "ChargeGrid Mumbai"},
		},
		{
			name:      "address substring matches",
			query:     "canary",
			wantNames: []string{"ChargePoint - Canary Wharf"},
		},
		{
			name:      "no match yields empty set",
			query:     "tokyo",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterStations(stations, tt.query)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("expected %d stations, got %d", len(tt.wantNames), len(got))
			}
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("station %d: expected %q, got %q", i, want, got[i].Name)
				}
			}
		})
	}
}

func TestGenerateSlots(t *testing.T) {
	service := newTestStationService(&mockStationsRepo{})

	wantLabels := []string{
		"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
		"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	}

	// The blocked pair is random, so run the generator repeatedly and
	// verify the invariants hold on every grid.
	for i := 0; i < 50; i++ {
		slots := service.generateSlots()

		if len(slots) != len(wantLabels) {
			t.Fatalf("expected %d slots, got %d", len(wantLabels), len(slots))
		}

		blocked := 0
		for j, slot := range slots {
			if slot.Time != wantLabels[j] {
				t.Errorf("slot %d: expected label %q, got %q", j, wantLabels[j], slot.Time)
			}
			if !slot.Available {
				blocked++
			}
		}

		if blocked != 2 {
			t.Errorf("expected exactly 2 blocked slots, got %d", blocked)
		}
	}
}

func TestGetStationReturnsSortedSlots(t *testing.T) {
	repo := &mockStationsRepo{
		getStationByIDFunc: func(ctx context.Context, id string) (*models.Station, error) {
			return &models.Station{
				Name: "Marina Power Hub",
				Slots: []models.Slot{
					{Time: "01:00 PM", Available: true},
					{Time: "09:00 AM", Available: true},
					{Time: "12:00 PM", Available: false},
				},
			}, nil
		},
	}
	service := newTestStationService(repo)

	station, err := service.GetStation(context.Background(), "some-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"09:00 AM", "12:00 PM", "01:00 PM"}
	for i, want := range wantOrder {
		if station.Slots[i].Time != want {
			t.Errorf("slot %d: expected %q, got %q", i, want, station.Slots[i].Time)
		}
	}
}

func TestToggleSlotFlipsOnlyTheMatchingSlot(t *testing.T) {
	var written []models.Slot
	repo := &mockStationsRepo{
		getStationByIDFunc: func(ctx context.Context, id string) (*models.Station, error) {
			return &models.Station{
				Slots: []models.Slot{
					{Time: "09:00 AM", Available: true},
					{Time: "10:00 AM", Available: false},
					{Time: "11:00 AM", Available: true},
				},
			}, nil
		},
		updateStationSlotsFunc: func(ctx context.Context, id string, slots []models.Slot) error {
			written = slots
			return nil
		},
	}
	service := newTestStationService(repo)

	if err := service.ToggleSlot(context.Background(), "station-1", "10:00 AM"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if written == nil {
		t.Fatal("expected slots to be written back")
	}
	if !written[1].Available {
		t.Error("expected 10:00 AM to flip to available")
	}
	if !written[0].Available || !written[2].Available {
		t.Error("expected the other slots to stay untouched")
	}
}

func TestToggleSlotIsAnInvolution(t *testing.T) {
	state := []models.Slot{
		{Time: "09:00 AM", Available: true},
		{Time: "10:00 AM", Available: false},
	}
	repo := &mockStationsRepo{
		getStationByIDFunc: func(ctx context.Context, id string) (*models.Station, error) {
			current := make([]models.Slot, len(state))
			copy(current, state)
			return &models.Station{Slots: current}, nil
		},
		updateStationSlotsFunc: func(ctx context.Context, id string, slots []models.Slot) error {
			state = slots
			return nil
		},
	}
	service := newTestStationService(repo)

	if err := service.ToggleSlot(context.Background(), "station-1", "09:00 AM"); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if err := service.ToggleSlot(context.Background(), "station-1", "09:00 AM"); err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	if !state[0].Available {
		t.Error("expected two toggles to restore the original availability")
	}
	if state[1].Available {
		t.Error("expected the untouched slot to keep its state")
	}
}

func TestToggleSlotUnknownLabelStillWrites(t *testing.T) {
	writeCalled := false
	repo := &mockStationsRepo{
		getStationByIDFunc: func(ctx context.Context, id string) (*models.Station, error) {
			return &models.Station{
				Slots: []models.Slot{{Time: "09:00 AM", Available: true}},
			}, nil
		},
		updateStationSlotsFunc: func(ctx context.Context, id string, slots []models.Slot) error {
			writeCalled = true
			if !slots[0].Available {
				t.Error("expected slot state to be unchanged for an unknown label")
			}
			return nil
		},
	}
	service := newTestStationService(repo)

	if err := service.ToggleSlot(context.Background(), "station-1", "08:00 PM"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !writeCalled {
		t.Error("expected the write to happen even when no label matched")
	}
}

func TestToggleSlotStationMissing(t *testing.T) {
	repo := &mockStationsRepo{
		getStationByIDFunc: func(ctx context.Context, id string) (*models.Station, error) {
			return nil, models.ErrStationNotFound
		},
	}
	service := newTestStationService(repo)

	err := service.ToggleSlot(context.Background(), "missing", "09:00 AM")
	if !errors.Is(err, models.ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}
}

func TestSeedRefusesWhenCollectionNotEmpty(t *testing.T) {
	insertCalled := false
	repo := &mockStationsRepo{
		countStationsFunc: func(ctx context.Context) (int64, error) {
			return 3, nil
		},
		insertStationsFunc: func(ctx context.Context, stations []*models.Station) error {
			insertCalled = true
			return nil
		},
	}
	service := newTestStationService(repo)

	seeded, err := service.Seed(context.Background())
	if !errors.Is(err, models.ErrSeedNotEmpty) {
		t.Fatalf("expected ErrSeedNotEmpty, got %v", err)
	}
	if seeded != 0 {
		t.Errorf("expected 0 seeded stations, got %d", seeded)
	}
	if insertCalled {
		t.Error("expected no insert when the collection is not empty")
	}
}

func TestSeedInsertsFixture(t *testing.T) {
	var inserted []*models.Station
	repo := &mockStationsRepo{
		countStationsFunc: func(ctx context.Context) (int64, error) {
			return 0, nil
		},
		insertStationsFunc: func(ctx context.Context, stations []*models.Station) error {
			inserted = stations
			return nil
		},
	}
	service := newTestStationService(repo)

	seeded, err := service.Seed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seeded != len(inserted) {
		t.Errorf("expected seeded count %d to match inserted count %d", seeded, len(inserted))
	}
	if len(inserted) == 0 {
		t.Fatal("expected fixture stations to be inserted")
	}
	for _, s := range inserted {
		if s.Name == "" || s.City == "" || s.Country == "" {
			t.Errorf("fixture station %q is missing identity fields", s.Name)
		}
		if len(s.Slots) != 8 {
			t.Errorf("fixture station %q: expected 8 slots, got %d", s.Name, len(s.Slots))
		}
		if s.CreatedAt.IsZero() {
			t.Errorf("fixture station %q: expected createdAt to be stamped", s.Name)
		}
		if time.Since(s.CreatedAt) > time.Minute {
			t.Errorf("fixture station %q: createdAt is stale", s.Name)
		}
	}
}

func TestCreateStationAppliesDefaults(t *testing.T) {
	repo := &mockStationsRepo{
		createStationFunc: func(ctx context.Context, station *models.Station) (*models.Station, error) {
			return station, nil
		},
	}
	service := newTestStationService(repo)

	created, err := service.CreateStation(context.Background(), &models.Station{
		Name:         "Tokyo EV Fast Charge",
		Address:      "1-1 Shibuya",
		City:         "Tokyo",
		Country:      "Japan",
		MobileNumber: "+81-3-1234-5678",
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Rating != 5 || created.ReviewCount != 1 {
		t.Errorf("expected default rating 5 and review count 1, got %v / %v", created.Rating, created.ReviewCount)
	}
	if len(created.Slots) != 8 {
		t.Errorf("expected 8 generated slots, got %d", len(created.Slots))
	}
	if len(created.Bunks) != 1 || created.Bunks[0].Status != models.BunkAvailable {
		t.Errorf("expected one available bunk, got %+v", created.Bunks)
	}
	if created.ImageURL == "" {
		t.Error("expected the placeholder image URL to be set")
	}
}

func TestCreateStationRejectsMissingFields(t *testing.T) {
	createCalled := false
	repo := &mockStationsRepo{
		createStationFunc: func(ctx context.Context, station *models.Station) (*models.Station, error) {
			createCalled = true
			return station, nil
		},
	}
	service := newTestStationService(repo)

	_, err := service.CreateStation(context.Background(), &models.Station{
		Name: "Nameless Station",
	}, "")
	if err == nil {
		t.Fatal("expected a validation error for missing fields")
	}
	if createCalled {
		t.Error("expected no repository write on validation failure")
	}
}

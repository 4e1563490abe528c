package models

import (
	"encoding/json"
	"testing"
)

func TestSortSlotsChronological(t *testing.T) {
	slots := []Slot{
		{Time: "01:00 PM"},
		{Time: "11:00 AM"},
		{Time: "09:00 AM"},
		{Time: "04:00 PM"},
		{Time: "12:00 PM"},
	}

	SortSlots(slots)

	want := []string{"09:00 AM", "11:00 AM", "12:00 PM", "01:00 PM", "04:00 PM"}
	for i, label := range want {
		if slots[i].Time != label {
			t.Errorf("position %d: expected %q, got %q", i, label, slots[i].Time)
		}
	}
}

func TestSortSlotsUnparseableLabelsSink(t *testing.T) {
	slots := []Slot{
		{Time: "whenever"},
		{Time: "09:00 AM"},
		{Time: "bad label"},
	}

	SortSlots(slots)

	if slots[0].Time != "09:00 AM" {
		t.Errorf("expected the parseable label first, got %q", slots[0].Time)
	}
	if slots[1].Time != "bad label" || slots[2].Time != "whenever" {
		t.Errorf("expected unparseable labels in lexical order at the end, got %q, %q", slots[1].Time, slots[2].Time)
	}
}

func TestGeoPointJSONShape(t *testing.T) {
	point := NewGeoPoint(28.6315, 77.2167)

	data, err := json.Marshal(point)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var pair map[string]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if pair["lat"] != 28.6315 || pair["lng"] != 77.2167 {
		t.Errorf("unexpected JSON pair: %v", pair)
	}

	var decoded GeoPoint
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Type != "Point" {
		t.Errorf("expected GeoJSON type Point, got %q", decoded.Type)
	}
	if decoded.Lat() != point.Lat() || decoded.Lng() != point.Lng() {
		t.Errorf("round trip changed the position: %+v vs %+v", decoded, point)
	}
	// GeoJSON stores [lng, lat] on the wire.
	if decoded.Coordinates[0] != 77.2167 || decoded.Coordinates[1] != 28.6315 {
		t.Errorf("unexpected coordinate order: %v", decoded.Coordinates)
	}
}

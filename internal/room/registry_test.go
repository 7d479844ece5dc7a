package room_test

import (
	"errors"
	"testing"

	"room-booking/internal/model"
	"room-booking/internal/room"
)

func newTestRegistry(t *testing.T) *room.Registry {
	t.Helper()
	reg, err := room.New([]model.Building{
		{
			ID:        "sf_commons",
			Address:   "123 Market St, San Francisco, CA 94105",
			Latitude:  37.79,
			Longitude: -122.39,
			Rooms: []model.Room{
				// The full room lists both halves; only one half lists the full room back.
				{Name: "Great Hall", ConflictsWith: []string{"Great Hall East", "Great Hall West"}},
				{Name: "Great Hall East", ConflictsWith: []string{"Great Hall"}},
				{Name: "Great Hall West"},
			},
		},
		{
			ID:      "annex",
			Address: "9 Side Rd",
			Rooms:   []model.Room{{Name: "Phone Booth 1", ConflictsWith: []string{"Ghost Room"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error building registry: %v", err)
	}
	return reg
}

func TestResolve(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("known room", func(t *testing.T) {
		res, err := reg.Resolve("Great Hall West")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Building.ID != "sf_commons" {
			t.Errorf("expected building sf_commons, got %q", res.Building.ID)
		}
		if res.Room.AddressFragment != "123 Market St" {
			t.Errorf("unexpected address fragment %q", res.Room.AddressFragment)
		}
		if res.Building.Latitude != 37.79 {
			t.Errorf("expected coordinates to be carried, got %v", res.Building.Latitude)
		}
	})

	t.Run("address without comma", func(t *testing.T) {
		res, _ := reg.Resolve("Phone Booth 1")
		if res.Room.AddressFragment != "9 Side Rd" {
			t.Errorf("unexpected address fragment %q", res.Room.AddressFragment)
		}
	})

	t.Run("missing room", func(t *testing.T) {
		_, err := reg.Resolve("Room Z")
		if !errors.Is(err, room.ErrRoomNotFound) {
			t.Errorf("expected ErrRoomNotFound, got %v", err)
		}
	})
}

func TestConflicting(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		a, b string
		want bool
	}{
		{"Great Hall", "Great Hall", true},
		{"Great Hall", "Great Hall East", true},
		{"Great Hall East", "Great Hall", true},
		// West does not list the full room, but the full room lists West.
		{"Great Hall West", "Great Hall", true},
		{"Great Hall East", "Great Hall West", false},
		{"Phone Booth 1", "Great Hall", false},
		{"Unknown", "Great Hall", false},
		{"Unknown", "Unknown", true},
		{"Ghost Room", "Phone Booth 1", true},
	}

	for _, tt := range tests {
		if got := reg.Conflicting(tt.a, tt.b); got != tt.want {
			t.Errorf("Conflicting(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestConflictsOfUnknown(t *testing.T) {
	reg := newTestRegistry(t)
	if got := reg.ConflictsOf("Nowhere"); len(got) != 0 {
		t.Errorf("expected no conflicts for unknown room, got %v", got)
	}
}

func TestNamesAndBuildings(t *testing.T) {
	reg := newTestRegistry(t)

	names := reg.Names()
	want := []string{"Great Hall", "Great Hall East", "Great Hall West", "Phone Booth 1"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	names[0] = "mutated"
	if reg.Names()[0] != "Great Hall" {
		t.Errorf("Names must return a copy")
	}

	buildings := reg.Buildings()
	if len(buildings) != 2 || buildings[0].ID != "sf_commons" {
		t.Errorf("unexpected buildings %+v", buildings)
	}
	if buildings[0].Rooms[0].BuildingID != "sf_commons" {
		t.Errorf("expected rooms to carry their building id")
	}
}

func TestNewValidation(t *testing.T) {
	t.Run("duplicate names", func(t *testing.T) {
		_, err := room.New([]model.Building{
			{ID: "a", Rooms: []model.Room{{Name: "Room A"}}},
			{ID: "b", Rooms: []model.Room{{Name: "Room A"}}},
		})
		if !errors.Is(err, room.ErrDuplicateRoom) {
			t.Errorf("expected ErrDuplicateRoom, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := room.New([]model.Building{{ID: "a", Rooms: []model.Room{{Name: " "}}}})
		if !errors.Is(err, room.ErrEmptyRoomName) {
			t.Errorf("expected ErrEmptyRoomName, got %v", err)
		}
	})
}

package room_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"room-booking/internal/room"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "rooms.yaml", `
buildings:
  sf_commons:
    address: "123 Market St, San Francisco, CA"
    coordinates:
      lat: 37.79
      lon: -122.39
    rooms:
      - name: "Hogwarts Hall"
        description: "Main hall"
        conflicts: ["Gryffindor"]
      - name: "Gryffindor"
`)
		reg, err := room.LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res, err := reg.Resolve("Hogwarts Hall")
		if err != nil {
			t.Fatalf("unexpected resolve error: %v", err)
		}
		if res.Building.Longitude != -122.39 || res.Room.Description != "Main hall" {
			t.Errorf("unexpected resolution %+v", res)
		}
		if !reg.Conflicting("Gryffindor", "Hogwarts Hall") {
			t.Errorf("expected configured conflict to be symmetric")
		}
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "rooms.json", `{
			"buildings": {
				"hq": {
					"address": "1 Infinite Loop, Cupertino",
					"coordinates": {"lat": 37.33, "lon": -122.03},
					"rooms": [{"name": "Room A"}, {"name": "Room B", "conflicts": ["Room A"]}]
				}
			}
		}`)
		reg, err := room.LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := reg.Names(); len(got) != 2 {
			t.Errorf("expected 2 rooms, got %v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := room.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Errorf("expected error for missing file")
		}
	})

	t.Run("no buildings", func(t *testing.T) {
		path := writeFile(t, "empty.yaml", "buildings: {}\n")
		if _, err := room.LoadFile(path); !errors.Is(err, room.ErrNoBuildings) {
			t.Errorf("expected ErrNoBuildings, got %v", err)
		}
	})
}

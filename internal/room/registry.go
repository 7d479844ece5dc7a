package room

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"room-booking/internal/model"
)

// Resolution is the result of looking a room up by name.
type Resolution struct {
	Room     model.Room
	Building model.Building
}

// Registry is the immutable building → room mapping loaded at startup.
// It is safe for concurrent use because nothing mutates it after New.
type Registry struct {
	rooms     map[string]model.Room
	buildings map[string]model.Building
	order     []string
	names     []string
}

// New indexes buildings. Room names must be unique across all buildings.
func New(buildings []model.Building) (*Registry, error) {
	r := &Registry{
		rooms:     make(map[string]model.Room),
		buildings: make(map[string]model.Building, len(buildings)),
	}

	for _, b := range buildings {
		fragment := streetPrefix(b.Address)
		rooms := make([]model.Room, 0, len(b.Rooms))
		for _, rm := range b.Rooms {
			if strings.TrimSpace(rm.Name) == "" {
				return nil, fmt.Errorf("building %q: %w", b.ID, ErrEmptyRoomName)
			}
			if _, exists := r.rooms[rm.Name]; exists {
				return nil, fmt.Errorf("%q: %w", rm.Name, ErrDuplicateRoom)
			}
			rm.BuildingID = b.ID
			rm.AddressFragment = fragment
			rm.ConflictsWith = slices.Clone(rm.ConflictsWith)
			r.rooms[rm.Name] = rm
			r.names = append(r.names, rm.Name)
			rooms = append(rooms, rm)
		}
		b.Rooms = rooms
		r.buildings[b.ID] = b
		r.order = append(r.order, b.ID)
	}

	sort.Strings(r.names)
	return r, nil
}

// Resolve looks a room up by its display name.
func (r *Registry) Resolve(name string) (Resolution, error) {
	rm, ok := r.rooms[name]
	if !ok {
		return Resolution{}, fmt.Errorf("%q: %w", name, ErrRoomNotFound)
	}
	return Resolution{Room: rm, Building: r.buildings[rm.BuildingID]}, nil
}

// ConflictsOf returns the rooms listed as conflicting with name in the
// configuration. Unknown names have no configured conflicts.
func (r *Registry) ConflictsOf(name string) []string {
	return slices.Clone(r.rooms[name].ConflictsWith)
}

// Conflicting reports whether rooms a and b cannot be booked at the same time.
// The configured relation may list only one direction, so both are checked.
func (r *Registry) Conflicting(a, b string) bool {
	if a == b {
		return true
	}
	return slices.Contains(r.rooms[a].ConflictsWith, b) || slices.Contains(r.rooms[b].ConflictsWith, a)
}

// Names returns every room display name, sorted.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Buildings returns the buildings in configuration order.
func (r *Registry) Buildings() []model.Building {
	out := make([]model.Building, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.buildings[id])
	}
	return out
}

// streetPrefix returns the first comma-delimited segment of an address.
func streetPrefix(address string) string {
	prefix, _, _ := strings.Cut(address, ",")
	return strings.TrimSpace(prefix)
}

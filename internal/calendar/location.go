package calendar

import (
	"fmt"
	"sort"
	"strings"

	"room-booking/internal/room"
)

const (
	// Separator joins the building street prefix and the room name in the
	// address sent to remote calendars. It is the only way the room survives
	// a round trip, so reads split on it again.
	Separator = " | "

	// UnknownLocation is assigned when no room can be reconstructed.
	UnknownLocation = "Unknown Location"
)

// Address is the location payload for a remote event.
type Address struct {
	Text      string // "<street prefix> | <room name>"
	Latitude  float64
	Longitude float64
}

// LocationFields are the raw location-bearing fields of a remote event.
type LocationFields struct {
	Address     string
	FullAddress string
	Name        string
	Description string
}

// Resolver is the registry capability the Locator needs.
type Resolver interface {
	Resolve(name string) (room.Resolution, error)
	Names() []string
}

// Locator builds composite addresses on write and recovers room names on read.
type Locator struct {
	rooms Resolver
	// longest first, so "Room 10" wins over "Room 1" in substring scans
	names []string
}

// NewLocator creates a Locator over a room registry.
func NewLocator(rooms Resolver) *Locator {
	names := rooms.Names()
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return &Locator{rooms: rooms, names: names}
}

// Address resolves roomName and builds the composite address for it.
// An unknown room yields an error wrapping room.ErrRoomNotFound.
func (l *Locator) Address(roomName string) (Address, error) {
	res, err := l.rooms.Resolve(roomName)
	if err != nil {
		return Address{}, fmt.Errorf("build address: %w", err)
	}
	return Address{
		Text:      res.Room.AddressFragment + Separator + res.Room.Name,
		Latitude:  res.Building.Latitude,
		Longitude: res.Building.Longitude,
	}, nil
}

// Locate reconstructs the location of an event read back from a remote
// calendar. It tries, in order: the room segment of the composite address,
// the unstructured full address, a known room name inside the event name or
// description, and finally UnknownLocation. It never fails.
func (l *Locator) Locate(f LocationFields) string {
	if loc := roomSegment(f.Address); loc != "" {
		return loc
	}
	if loc := strings.TrimSpace(f.FullAddress); loc != "" {
		return loc
	}
	if loc := l.scan(f.Name); loc != "" {
		return loc
	}
	if loc := l.scan(f.Description); loc != "" {
		return loc
	}
	return UnknownLocation
}

// roomSegment returns the text right of the last separator, or "" when the
// address was not built by Address.
func roomSegment(address string) string {
	sep := strings.TrimSpace(Separator)
	idx := strings.LastIndex(address, sep)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(address[idx+len(sep):])
}

func (l *Locator) scan(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, name := range l.names {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}

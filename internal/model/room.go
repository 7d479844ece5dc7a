package model

// Room is one bookable space inside a Building.
// The display name doubles as the room identifier.
type Room struct {
	Name            string
	Description     string
	BuildingID      string
	AddressFragment string   // street prefix of the building address
	ConflictsWith   []string // rooms that cannot be booked at the same time
}

// Building groups rooms under one street address.
type Building struct {
	ID        string
	Address   string
	Latitude  float64
	Longitude float64
	Rooms     []Room
}

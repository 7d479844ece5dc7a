package room

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrDuplicateRoom = errors.New("room name is defined more than once")
	ErrEmptyRoomName = errors.New("room name is empty")
	ErrNoBuildings   = errors.New("room configuration has no buildings")
)

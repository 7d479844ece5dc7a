package usecase

import (
	"context"

	"room-booking/internal/booking"
)

func (uc *implUseCase) Rooms(ctx context.Context) booking.RoomsOutput {
	return booking.RoomsOutput{
		Names:     uc.rooms.Names(),
		Buildings: uc.rooms.Buildings(),
	}
}

package toggle_seat

import (
	"context"

	toggleSeat "github.com/avkotov/KNS-SeatService/internal/usecase/toggle_seat"
)

type ToggleSeatUseCase interface {
	Execute(ctx context.Context, req *toggleSeat.Request) (*toggleSeat.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

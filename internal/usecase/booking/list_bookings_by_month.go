package booking

import (
	"context"

	domain "github.com/RestoSuiteApp/resto-scheduler/internal/domain/booking"
	"github.com/RestoSuiteApp/resto-scheduler/internal/dto"
)

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(
	repo domain.Repository,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	establishmentID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForMonth(ctx, establishmentID, year, month)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Date:        b.Date,
			Time:        b.Time,
			Status:      b.Status,
			PartySize:   b.PartySize,
			ClientName:  b.Client.Name,
			ServiceName: b.ServiceName,
		})
	}

	return out, nil
}

package booking

import (
	"context"

	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	domain "github.com/RestoSuiteApp/resto-scheduler/internal/domain/booking"
	"github.com/RestoSuiteApp/resto-scheduler/internal/dto"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	establishmentID uint,
	dateStr string,
) ([]dto.BookingListDTO, error) {

	if _, err := availability.ParseDate(dateStr); err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, establishmentID, dateStr)
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

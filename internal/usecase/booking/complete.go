package booking

import (
	"context"

	"github.com/RestoSuiteApp/resto-scheduler/internal/audit"
	domain "github.com/RestoSuiteApp/resto-scheduler/internal/domain/booking"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
	"github.com/RestoSuiteApp/resto-scheduler/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	establishmentID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	est, err := uc.repo.GetEstablishmentByID(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForEstablishment(ctx, bookingID, establishmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(est.Timezone)
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &userID,
		Action:          "booking_completed",
		Entity:          "booking",
		EntityID:        &b.ID,
	})

	return b, nil
}

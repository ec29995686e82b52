package booking

import (
	"context"

	"github.com/RestoSuiteApp/resto-scheduler/internal/audit"
	domain "github.com/RestoSuiteApp/resto-scheduler/internal/domain/booking"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
	"github.com/RestoSuiteApp/resto-scheduler/internal/notify"
	"github.com/RestoSuiteApp/resto-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mailer *notify.Mailer
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	mailer *notify.Mailer,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		audit:  audit,
		mailer: mailer,
	}
}

func (uc *CancelBooking) Execute(
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
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &userID,
		Action:          "booking_cancelled",
		Entity:          "booking",
		EntityID:        &b.ID,
	})

	uc.mailer.BookingCancelled(est, b, b.Client.Email)

	return b, nil
}

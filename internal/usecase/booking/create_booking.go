package booking

import (
	"context"
	"strings"
	"time"

	"github.com/RestoSuiteApp/resto-scheduler/internal/audit"
	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	domain "github.com/RestoSuiteApp/resto-scheduler/internal/domain/booking"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
	"github.com/RestoSuiteApp/resto-scheduler/internal/notify"
	"github.com/RestoSuiteApp/resto-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	EstablishmentID uint

	// UserID is the back-office actor, nil for guest bookings.
	UserID *uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	BookingSlotID uint

	Date      string // "YYYY-MM-DD"
	Time      string // "HH:MM"
	PartySize int
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mailer *notify.Mailer
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	mailer *notify.Mailer,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  audit,
		mailer: mailer,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	est, err := uc.repo.GetEstablishmentByID(ctx, in.EstablishmentID)
	if err != nil {
		return nil, err
	}

	date, err := availability.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(est.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	minAdvance := est.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 60
	}

	now := timezone.NowIn(est.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	slot, err := uc.repo.GetBookingSlot(ctx, in.EstablishmentID, in.BookingSlotID)
	if err != nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	if in.PartySize <= 0 {
		return nil, httperr.ErrBusiness("invalid_party_size")
	}

	capacity := slot.MaxCapacity
	if capacity <= 0 {
		capacity = availability.DefaultMaxCapacity
	}
	if in.PartySize > capacity {
		return nil, httperr.ErrBusiness("party_too_large")
	}

	if err := uc.assertTimeIsOpen(ctx, in, date); err != nil {
		return nil, err
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.EstablishmentID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	serviceName := strings.TrimSpace(slot.ServiceName)
	if serviceName == "" {
		serviceName = availability.DefaultServiceName
	}

	b := &models.Booking{
		EstablishmentID: in.EstablishmentID,
		ClientID:        client.ID,
		BookingSlotID:   slot.ID,
		Date:            in.Date,
		Time:            in.Time,
		PartySize:       in.PartySize,
		ServiceName:     serviceName,
		Status:          string(domain.StatusConfirmed),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: in.EstablishmentID,
		UserID:          in.UserID,
		Action:          "booking_created",
		Entity:          "booking",
		EntityID:        &b.ID,
	})

	uc.mailer.BookingConfirmed(est, b, client.Email)

	return b, nil
}

// assertTimeIsOpen recompiles availability for the date and checks the
// requested time is a generated, still-open occurrence of the slot.
func (uc *CreateBooking) assertTimeIsOpen(
	ctx context.Context,
	in CreateBookingInput,
	date availability.Date,
) error {

	slots, err := uc.repo.ListActiveBookingSlots(ctx, in.EstablishmentID)
	if err != nil {
		return err
	}

	rules, err := uc.repo.ListSlotExceptions(ctx, in.EstablishmentID)
	if err != nil {
		return err
	}

	excs, err := exceptionsFromModels(rules)
	if err != nil {
		return err
	}

	groups, err := availability.Compute(slotDefinitions(slots), excs, date)
	if err != nil {
		return err
	}

	for _, g := range groups {
		for _, occ := range g.Slots {
			if occ.SlotID == in.BookingSlotID && occ.Time == in.Time {
				if !occ.Available {
					return httperr.ErrBusiness("slot_closed")
				}
				return nil
			}
		}
	}

	return httperr.ErrBusiness("slot_unavailable")
}

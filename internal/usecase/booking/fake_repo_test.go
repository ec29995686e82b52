package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo is an in-memory Repository for use case tests.
type fakeRepo struct {
	est   *models.Establishment
	slots []models.BookingSlot
	excs  []models.SlotException

	bookings []models.Booking
	clients  []models.Client

	nextID uint
}

func newFakeRepo(est *models.Establishment) *fakeRepo {
	return &fakeRepo{est: est, nextID: 1}
}

func (f *fakeRepo) GetEstablishmentByID(_ context.Context, id uint) (*models.Establishment, error) {
	if f.est == nil || f.est.ID != id {
		return nil, errNotFound
	}
	return f.est, nil
}

func (f *fakeRepo) GetEstablishmentBySlug(_ context.Context, slug string) (*models.Establishment, error) {
	if f.est == nil || f.est.Slug != slug {
		return nil, errNotFound
	}
	return f.est, nil
}

func (f *fakeRepo) ListActiveBookingSlots(_ context.Context, establishmentID uint) ([]models.BookingSlot, error) {
	out := make([]models.BookingSlot, 0, len(f.slots))
	for _, s := range f.slots {
		if s.EstablishmentID == establishmentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSlotExceptions(_ context.Context, establishmentID uint) ([]models.SlotException, error) {
	out := make([]models.SlotException, 0, len(f.excs))
	for _, e := range f.excs {
		if e.EstablishmentID == establishmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetBookingSlot(_ context.Context, establishmentID, slotID uint) (*models.BookingSlot, error) {
	for i := range f.slots {
		if f.slots[i].EstablishmentID == establishmentID && f.slots[i].ID == slotID {
			return &f.slots[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, establishmentID uint, name, phone, email string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].EstablishmentID == establishmentID && f.clients[i].Phone == phone {
			return &f.clients[i], nil
		}
	}

	f.clients = append(f.clients, models.Client{
		ID:              f.nextID,
		EstablishmentID: establishmentID,
		Name:            name,
		Phone:           phone,
		Email:           email,
	})
	f.nextID++
	return &f.clients[len(f.clients)-1], nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) GetBookingForEstablishment(_ context.Context, bookingID, establishmentID uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID && f.bookings[i].EstablishmentID == establishmentID {
			return &f.bookings[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListBookingsForDate(_ context.Context, establishmentID uint, date string) ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.EstablishmentID == establishmentID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForMonth(_ context.Context, establishmentID uint, year, month int) ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.EstablishmentID == establishmentID &&
			len(b.Date) == 10 &&
			b.Date[:7] == fmt.Sprintf("%04d-%02d", year, month) {
			out = append(out, b)
		}
	}
	return out, nil
}

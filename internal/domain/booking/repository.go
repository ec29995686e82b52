package booking

import (
	"context"

	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

type Repository interface {
	// -------- Establishment --------
	GetEstablishmentByID(
		ctx context.Context,
		id uint,
	) (*models.Establishment, error)

	GetEstablishmentBySlug(
		ctx context.Context,
		slug string,
	) (*models.Establishment, error)

	// -------- Availability inputs --------
	// ListActiveBookingSlots returns the recurring slot definitions of
	// an establishment, soft-deleted rows excluded, in display order.
	ListActiveBookingSlots(
		ctx context.Context,
		establishmentID uint,
	) ([]models.BookingSlot, error)

	// ListSlotExceptions returns all closure rules of an establishment,
	// all types mixed, soft-deleted rows excluded.
	ListSlotExceptions(
		ctx context.Context,
		establishmentID uint,
	) ([]models.SlotException, error)

	GetBookingSlot(
		ctx context.Context,
		establishmentID uint,
		slotID uint,
	) (*models.BookingSlot, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		establishmentID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingForEstablishment(
		ctx context.Context,
		bookingID uint,
		establishmentID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForDate(
		ctx context.Context,
		establishmentID uint,
		date string,
	) ([]models.Booking, error)

	ListBookingsForMonth(
		ctx context.Context,
		establishmentID uint,
		year int,
		month int,
	) ([]models.Booking, error)
}

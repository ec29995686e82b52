package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/RestoSuiteApp/resto-scheduler/internal/domain/booking"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Establishment
// --------------------------------------------------

func (r *BookingGormRepository) GetEstablishmentByID(
	ctx context.Context,
	id uint,
) (*models.Establishment, error) {

	var est models.Establishment
	if err := r.db.WithContext(ctx).First(&est, id).Error; err != nil {
		return nil, err
	}
	return &est, nil
}

func (r *BookingGormRepository) GetEstablishmentBySlug(
	ctx context.Context,
	slug string,
) (*models.Establishment, error) {

	var est models.Establishment
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&est).Error; err != nil {
		return nil, err
	}
	return &est, nil
}

// --------------------------------------------------
// Availability inputs
// --------------------------------------------------

// Soft-deleted rows are excluded by gorm's DeletedAt handling; the
// engine only ever sees live definitions, in display order.
func (r *BookingGormRepository) ListActiveBookingSlots(
	ctx context.Context,
	establishmentID uint,
) ([]models.BookingSlot, error) {

	var slots []models.BookingSlot
	if err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Order("display_order ASC, id ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *BookingGormRepository) ListSlotExceptions(
	ctx context.Context,
	establishmentID uint,
) ([]models.SlotException, error) {

	var rules []models.SlotException
	if err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Order("id ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}

	return rules, nil
}

func (r *BookingGormRepository) GetBookingSlot(
	ctx context.Context,
	establishmentID uint,
	slotID uint,
) (*models.BookingSlot, error) {

	var slot models.BookingSlot
	if err := r.db.WithContext(ctx).
		Where("id = ? AND establishment_id = ?", slotID, establishmentID).
		First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	establishmentID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("establishment_id = ? AND phone = ?", establishmentID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		EstablishmentID: establishmentID,
		Name:            name,
		Phone:           phone,
		Email:           email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingForEstablishment(
	ctx context.Context,
	bookingID uint,
	establishmentID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND establishment_id = ?", bookingID, establishmentID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	establishmentID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("BookingSlot").
		Where("establishment_id = ? AND date = ?", establishmentID, date).
		Order("time ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForMonth(
	ctx context.Context,
	establishmentID uint,
	year int,
	month int,
) ([]models.Booking, error) {

	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("BookingSlot").
		Where("establishment_id = ? AND date LIKE ?", establishmentID, prefix).
		Order("date ASC, time ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

func TestGetAvailabilityCompilesStoredRows(t *testing.T) {
	repo := newFakeRepo(&models.Establishment{ID: 1, Slug: "chez-momo"})
	repo.slots = []models.BookingSlot{
		{
			ID: 10, EstablishmentID: 1,
			Weekday: 1, ServiceName: "Déjeuner",
			StartTime: "12:00", EndTime: "13:00",
			MaxCapacity: 30, Active: true,
		},
	}
	repo.excs = []models.SlotException{
		{
			ID: 1, EstablishmentID: 1,
			ExceptionType: models.ExceptionTypeTimeSlots,
			BookingSlotID: 10,
			ClosedSlots:   "[48]",
		},
	}

	uc := NewGetAvailability(repo, nil)

	// 2030-03-11 is a Monday
	groups, err := uc.Execute(context.Background(), 1, "2030-03-11")
	require.NoError(t, err)

	require.Len(t, groups, 1)
	assert.Equal(t, "Déjeuner", groups[0].ServiceName)
	require.Len(t, groups[0].Slots, 4)

	// index 48 is 12:00
	assert.Equal(t, "12:00", groups[0].Slots[0].Time)
	assert.False(t, groups[0].Slots[0].Available)
	assert.True(t, groups[0].Slots[1].Available)
}

func TestGetAvailabilityWrongWeekday(t *testing.T) {
	repo := newFakeRepo(&models.Establishment{ID: 1})
	repo.slots = []models.BookingSlot{
		{ID: 10, EstablishmentID: 1, Weekday: 1, StartTime: "12:00", EndTime: "13:00", Active: true},
	}

	uc := NewGetAvailability(repo, nil)

	// 2030-03-12 is a Tuesday
	groups, err := uc.Execute(context.Background(), 1, "2030-03-12")
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGetAvailabilityRejectsBadDate(t *testing.T) {
	repo := newFakeRepo(&models.Establishment{ID: 1})
	uc := NewGetAvailability(repo, nil)

	_, err := uc.Execute(context.Background(), 1, "11/03/2030")
	assert.ErrorIs(t, err, availability.ErrInvalidDateFormat)
}

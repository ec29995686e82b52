package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/RestoSuiteApp/resto-scheduler/internal/domain/booking"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

func testEstablishment() *models.Establishment {
	return &models.Establishment{
		ID:                1,
		Name:              "Chez Momo",
		Slug:              "chez-momo",
		Timezone:          "Europe/Paris",
		MinAdvanceMinutes: 60,
	}
}

func lunchSlot() models.BookingSlot {
	return models.BookingSlot{
		ID: 10, EstablishmentID: 1,
		Weekday: 1, ServiceName: "Déjeuner",
		StartTime: "12:00", EndTime: "14:00",
		MaxCapacity: 30, Active: true,
	}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		EstablishmentID: 1,
		ClientName:      "Alice Martin",
		ClientPhone:     "0612345678",
		ClientEmail:     "alice@example.com",
		BookingSlotID:   10,
		Date:            "2030-03-11", // a Monday
		Time:            "12:15",
		PartySize:       4,
	}
}

func TestCreateBookingHappyPath(t *testing.T) {
	repo := newFakeRepo(testEstablishment())
	repo.slots = []models.BookingSlot{lunchSlot()}

	uc := NewCreateBooking(repo, nil, nil)

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	assert.Equal(t, "2030-03-11", b.Date)
	assert.Equal(t, "12:15", b.Time)
	assert.Equal(t, "Déjeuner", b.ServiceName)
	assert.Equal(t, 4, b.PartySize)
	assert.NotZero(t, b.ClientID)

	require.Len(t, repo.clients, 1)
	assert.Equal(t, "Alice Martin", repo.clients[0].Name)
}

func TestCreateBookingReusesClientByPhone(t *testing.T) {
	repo := newFakeRepo(testEstablishment())
	repo.slots = []models.BookingSlot{lunchSlot()}

	uc := NewCreateBooking(repo, nil, nil)

	in := validInput()
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.Time = "13:00"
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Len(t, repo.clients, 1)
	assert.Len(t, repo.bookings, 2)
}

func TestCreateBookingBusinessErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateBookingInput)
		withExcs []models.SlotException
		wantCode string
	}{
		{
			name:     "bad date",
			mutate:   func(in *CreateBookingInput) { in.Date = "11/03/2030" },
			wantCode: "invalid_date",
		},
		{
			name:     "bad time",
			mutate:   func(in *CreateBookingInput) { in.Time = "noon" },
			wantCode: "invalid_time",
		},
		{
			name:     "past date",
			mutate:   func(in *CreateBookingInput) { in.Date = "2020-01-06" },
			wantCode: "too_soon",
		},
		{
			name:     "unknown slot",
			mutate:   func(in *CreateBookingInput) { in.BookingSlotID = 99 },
			wantCode: "slot_not_found",
		},
		{
			name:     "zero party",
			mutate:   func(in *CreateBookingInput) { in.PartySize = 0 },
			wantCode: "invalid_party_size",
		},
		{
			name:     "party over capacity",
			mutate:   func(in *CreateBookingInput) { in.PartySize = 31 },
			wantCode: "party_too_large",
		},
		{
			name:     "time not on the grid",
			mutate:   func(in *CreateBookingInput) { in.Time = "12:07" },
			wantCode: "slot_unavailable",
		},
		{
			name:   "day closed",
			mutate: func(in *CreateBookingInput) {},
			withExcs: []models.SlotException{
				{
					ID: 1, EstablishmentID: 1,
					ExceptionType: models.ExceptionTypeSingleDay,
					Date:          "2030-03-11",
				},
			},
			wantCode: "slot_closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(testEstablishment())
			repo.slots = []models.BookingSlot{lunchSlot()}
			repo.excs = tt.withExcs

			uc := NewCreateBooking(repo, nil, nil)

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v, want %s", err, tt.wantCode)
			assert.Empty(t, repo.bookings)
		})
	}
}

func TestCancelBookingLifecycle(t *testing.T) {
	repo := newFakeRepo(testEstablishment())
	repo.slots = []models.BookingSlot{lunchSlot()}

	createUC := NewCreateBooking(repo, nil, nil)
	cancelUC := NewCancelBooking(repo, nil, nil)

	b, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	cancelled, err := cancelUC.Execute(context.Background(), 1, 5, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// a second cancel must be rejected
	_, err = cancelUC.Execute(context.Background(), 1, 5, b.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCompleteBookingLifecycle(t *testing.T) {
	repo := newFakeRepo(testEstablishment())
	repo.slots = []models.BookingSlot{lunchSlot()}

	createUC := NewCreateBooking(repo, nil, nil)
	completeUC := NewCompleteBooking(repo, nil)

	b, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	done, err := completeUC.Execute(context.Background(), 1, 5, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	require.NotNil(t, done.CompletedAt)
}

func TestCancelUnknownBooking(t *testing.T) {
	repo := newFakeRepo(testEstablishment())
	cancelUC := NewCancelBooking(repo, nil, nil)

	_, err := cancelUC.Execute(context.Background(), 1, 5, 999)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestListBookingsByDateMapsDTO(t *testing.T) {
	repo := newFakeRepo(testEstablishment())
	repo.slots = []models.BookingSlot{lunchSlot()}

	createUC := NewCreateBooking(repo, nil, nil)
	listUC := NewListBookingsByDate(repo)

	_, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	out, err := listUC.Execute(context.Background(), 1, "2030-03-11")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "12:15", out[0].Time)
	assert.Equal(t, "Déjeuner", out[0].ServiceName)
}

package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

func TestSlotDefinitionMapping(t *testing.T) {
	def := slotDefinition(models.BookingSlot{
		ID:          7,
		Weekday:     1,
		ServiceName: "Déjeuner",
		StartTime:   "12:00",
		EndTime:     "14:30",
		MaxCapacity: 40,
		Active:      true,
	})

	assert.Equal(t, availability.SlotDefinition{
		ID:          7,
		Weekday:     1,
		ServiceName: "Déjeuner",
		StartTime:   "12:00",
		EndTime:     "14:30",
		MaxCapacity: 40,
		Active:      true,
	}, def)
}

func TestExceptionFromModelDispatch(t *testing.T) {
	tests := []struct {
		name string
		row  models.SlotException
		want availability.Exception
	}{
		{
			name: "period",
			row: models.SlotException{
				ExceptionType: models.ExceptionTypePeriod,
				StartDate:     "2024-08-01",
				EndDate:       "2024-08-15",
			},
			want: availability.PeriodException{
				Start: mustDate(t, "2024-08-01"),
				End:   mustDate(t, "2024-08-15"),
			},
		},
		{
			name: "single day",
			row: models.SlotException{
				ExceptionType: models.ExceptionTypeSingleDay,
				Date:          "2024-12-25",
			},
			want: availability.SingleDayException{Date: mustDate(t, "2024-12-25")},
		},
		{
			name: "service",
			row: models.SlotException{
				ExceptionType: models.ExceptionTypeService,
				Date:          "2024-03-11",
				BookingSlotID: 3,
			},
			want: availability.ServiceException{SlotID: 3, Date: mustDate(t, "2024-03-11")},
		},
		{
			name: "time slots",
			row: models.SlotException{
				ExceptionType: models.ExceptionTypeTimeSlots,
				BookingSlotID: 3,
				ClosedSlots:   "[36,37]",
			},
			want: availability.TimeSlotsException{SlotID: 3, ClosedSlots: []int{36, 37}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exceptionFromModel(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExceptionFromModelUnknownTypeYieldsNoRule(t *testing.T) {
	got, err := exceptionFromModel(models.SlotException{ExceptionType: "lunar_eclipse"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExceptionFromModelBadDate(t *testing.T) {
	_, err := exceptionFromModel(models.SlotException{
		ExceptionType: models.ExceptionTypePeriod,
		StartDate:     "01/08/2024",
		EndDate:       "2024-08-15",
	})
	assert.ErrorIs(t, err, availability.ErrInvalidDateFormat)
}

func TestExceptionFromModelBadClosedSlotsJSON(t *testing.T) {
	_, err := exceptionFromModel(models.SlotException{
		ExceptionType: models.ExceptionTypeTimeSlots,
		BookingSlotID: 3,
		ClosedSlots:   "not json",
	})
	assert.Error(t, err)
}

func TestExceptionsFromModelsSkipsUnknown(t *testing.T) {
	excs, err := exceptionsFromModels([]models.SlotException{
		{ExceptionType: models.ExceptionTypeSingleDay, Date: "2024-12-25"},
		{ExceptionType: "lunar_eclipse"},
	})
	require.NoError(t, err)
	assert.Len(t, excs, 1)
}

func mustDate(t *testing.T, s string) availability.Date {
	t.Helper()
	d, err := availability.ParseDate(s)
	require.NoError(t, err)
	return d
}

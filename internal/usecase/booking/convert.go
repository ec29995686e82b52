package booking

import (
	"encoding/json"
	"fmt"

	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

// slotDefinition maps a persisted booking slot to its engine input.
func slotDefinition(m models.BookingSlot) availability.SlotDefinition {
	return availability.SlotDefinition{
		ID:          m.ID,
		Weekday:     m.Weekday,
		ServiceName: m.ServiceName,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		MaxCapacity: m.MaxCapacity,
		Active:      m.Active,
	}
}

func slotDefinitions(rows []models.BookingSlot) []availability.SlotDefinition {
	defs := make([]availability.SlotDefinition, 0, len(rows))
	for _, row := range rows {
		defs = append(defs, slotDefinition(row))
	}
	return defs
}

// exceptionFromModel dispatches the stored discriminator into the engine's
// typed rule variants. A row with an unknown type yields no rule: closure
// semantics are additive, so an unrecognized rule simply never matches.
func exceptionFromModel(m models.SlotException) (availability.Exception, error) {
	switch m.ExceptionType {

	case models.ExceptionTypePeriod:
		start, err := availability.ParseDate(m.StartDate)
		if err != nil {
			return nil, fmt.Errorf("exception %d: %w", m.ID, err)
		}
		end, err := availability.ParseDate(m.EndDate)
		if err != nil {
			return nil, fmt.Errorf("exception %d: %w", m.ID, err)
		}
		return availability.PeriodException{Start: start, End: end}, nil

	case models.ExceptionTypeSingleDay:
		date, err := availability.ParseDate(m.Date)
		if err != nil {
			return nil, fmt.Errorf("exception %d: %w", m.ID, err)
		}
		return availability.SingleDayException{Date: date}, nil

	case models.ExceptionTypeService:
		date, err := availability.ParseDate(m.Date)
		if err != nil {
			return nil, fmt.Errorf("exception %d: %w", m.ID, err)
		}
		return availability.ServiceException{SlotID: m.BookingSlotID, Date: date}, nil

	case models.ExceptionTypeTimeSlots:
		var closed []int
		if m.ClosedSlots != "" {
			if err := json.Unmarshal([]byte(m.ClosedSlots), &closed); err != nil {
				return nil, fmt.Errorf("exception %d: closed_slots: %w", m.ID, err)
			}
		}
		return availability.TimeSlotsException{SlotID: m.BookingSlotID, ClosedSlots: closed}, nil
	}

	return nil, nil
}

func exceptionsFromModels(rows []models.SlotException) ([]availability.Exception, error) {
	excs := make([]availability.Exception, 0, len(rows))
	for _, row := range rows {
		exc, err := exceptionFromModel(row)
		if err != nil {
			return nil, err
		}
		if exc != nil {
			excs = append(excs, exc)
		}
	}
	return excs, nil
}

package booking

import (
	"context"

	"github.com/RestoSuiteApp/resto-scheduler/internal/cache"
	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	domain "github.com/RestoSuiteApp/resto-scheduler/internal/domain/booking"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, c *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

// Execute compiles the bookable slots of an establishment for one date:
// it fetches the active recurring definitions and closure rules, then
// hands them to the availability compiler. The computation itself is
// pure; everything stateful lives here.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	establishmentID uint,
	dateStr string,
) ([]availability.ServiceGroup, error) {

	date, err := availability.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	if groups, ok := uc.cache.Get(ctx, establishmentID, dateStr); ok {
		return groups, nil
	}

	slots, err := uc.repo.ListActiveBookingSlots(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	rules, err := uc.repo.ListSlotExceptions(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	excs, err := exceptionsFromModels(rules)
	if err != nil {
		return nil, err
	}

	groups, err := availability.Compute(slotDefinitions(slots), excs, date)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, establishmentID, dateStr, groups)

	return groups, nil
}

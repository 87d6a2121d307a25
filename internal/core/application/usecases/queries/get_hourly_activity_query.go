package queries

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const maxActivityHours = 24

var ErrGetHourlyActivityQueryIsNotConstructed = errors.New(
	"GetHourlyActivityQuery must be created via NewGetHourlyActivityQuery constructor",
)

// GetHourlyActivityQuery counts live orders per hour over a trailing window.
type GetHourlyActivityQuery struct {
	hours int

	guard guard.ConstructorGuard
}

// NewGetHourlyActivityQuery accepts 1 to 24 hours; zero selects the default window.
func NewGetHourlyActivityQuery(hours int) (GetHourlyActivityQuery, error) {
	if hours == 0 {
		hours = services.DefaultActivityHours
	}
	if hours < 1 || hours > maxActivityHours {
		return GetHourlyActivityQuery{}, errs.NewValueIsOutOfRangeError("hours", hours, 1, maxActivityHours)
	}
	return GetHourlyActivityQuery{hours: hours, guard: guard.NewConstructorGuard()}, nil
}

func (q GetHourlyActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetHourlyActivityQueryIsNotConstructed)
}

func (q GetHourlyActivityQuery) Hours() int { return q.hours }

type GetHourlyActivityQueryHandler struct {
	orders OrderReader
	clock  kernel.Clock
	loc    *time.Location
}

func NewGetHourlyActivityQueryHandler(orders OrderReader, clock kernel.Clock, loc *time.Location) GetHourlyActivityQueryHandler {
	if clock == nil {
		clock = kernel.SystemClock
	}
	if loc == nil {
		loc = time.Local
	}
	return GetHourlyActivityQueryHandler{orders: orders, clock: clock, loc: loc}
}

func (h GetHourlyActivityQueryHandler) Handle(_ context.Context, query GetHourlyActivityQuery) ([]services.HourlyBucket, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return services.BucketizeHourly(h.orders.Snapshot(), h.clock(), query.Hours(), h.loc), nil
}

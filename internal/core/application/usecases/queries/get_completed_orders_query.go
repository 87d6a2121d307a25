package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/pkg/guard"
)

var ErrGetCompletedOrdersQueryIsNotConstructed = errors.New(
	"GetCompletedOrdersQuery must be created via NewGetCompletedOrdersQuery constructor",
)

// GetCompletedOrdersQuery returns the archive grouped by local day.
type GetCompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCompletedOrdersQuery() GetCompletedOrdersQuery {
	return GetCompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCompletedOrdersQueryIsNotConstructed)
}

type GetCompletedOrdersQueryHandler struct {
	completed CompletedReader
}

func NewGetCompletedOrdersQueryHandler(completed CompletedReader) GetCompletedOrdersQueryHandler {
	return GetCompletedOrdersQueryHandler{completed: completed}
}

// Handle returns days newest first; records inside a day keep completion
// order, newest first.
func (h GetCompletedOrdersQueryHandler) Handle(_ context.Context, query GetCompletedOrdersQuery) ([]archive.DayGroup, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.completed.GroupedByDay(), nil
}

package queries

import (
	"bytes"
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/guard"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportOrdersQuery renders every live order as CSV. Completed orders that
// were deleted from the live list are not exported.
type ExportOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewExportOrdersQuery() ExportOrdersQuery {
	return ExportOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// ExportOrdersQueryResponse is a downloadable CSV document.
type ExportOrdersQueryResponse struct {
	FileName string
	Content  []byte
}

type ExportOrdersQueryHandler struct {
	orders OrderReader
	clock  kernel.Clock
	loc    *time.Location
}

func NewExportOrdersQueryHandler(orders OrderReader, clock kernel.Clock, loc *time.Location) ExportOrdersQueryHandler {
	if clock == nil {
		clock = kernel.SystemClock
	}
	if loc == nil {
		loc = time.Local
	}
	return ExportOrdersQueryHandler{orders: orders, clock: clock, loc: loc}
}

func (h ExportOrdersQueryHandler) Handle(_ context.Context, query ExportOrdersQuery) (ExportOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	var buf bytes.Buffer
	if err := services.ExportCSV(&buf, h.orders.Snapshot(), h.loc); err != nil {
		return ExportOrdersQueryResponse{}, err
	}
	return ExportOrdersQueryResponse{
		FileName: services.CSVFileName(h.clock(), h.loc),
		Content:  buf.Bytes(),
	}, nil
}

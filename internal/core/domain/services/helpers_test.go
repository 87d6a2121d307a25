package services_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

type lineSpec struct {
	name  string
	price float64
	qty   int
}

func buildOrder(
	t *testing.T,
	id, customer string,
	typ order.Type,
	status order.Status,
	createdAt time.Time,
	lines ...lineSpec,
) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []lineSpec{{"Soup", 5, 1}}
	}
	orderLines := make([]order.Line, 0, len(lines))
	for _, l := range lines {
		line, err := order.NewLine("m-"+l.name, l.name, kernel.NewMoney(l.price), l.qty)
		require.NoError(t, err)
		orderLines = append(orderLines, line)
	}
	o, err := order.NewOrder(id, createdAt, order.Details{
		Customer: customer,
		Type:     typ,
		Lines:    orderLines,
		Status:   status,
	})
	require.NoError(t, err)
	return o
}

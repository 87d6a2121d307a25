package services

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

var csvHeader = []string{
	"ID", "Customer", "Type", "Status", "Assigned", "Created At", "Items", "Total",
	"Delivery Name", "Delivery Phone", "Delivery Address", "Delivery Note",
}

// CSVFileName returns the conventional export file name, orders_<yyyy-MM-dd>.csv.
func CSVFileName(now time.Time, loc *time.Location) string {
	return "orders_" + kernel.DayKey(now, loc) + ".csv"
}

// ExportCSV writes one row per order with a header row. Fields containing the
// delimiter, quotes or newlines are quoted with embedded quotes doubled, and
// totals always carry two decimals.
func ExportCSV(w io.Writer, orders []*order.Order, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range orders {
		if err := cw.Write(csvRow(o, loc)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(o *order.Order, loc *time.Location) []string {
	items := make([]string, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		items = append(items, line.Label())
	}

	var d order.DeliveryDetails
	if delivery := o.Delivery(); delivery != nil {
		d = *delivery
	}

	return []string{
		o.ID(),
		o.Customer(),
		o.Type().String(),
		o.Status().String(),
		o.Assigned(),
		o.CreatedAt().In(loc).Format(time.RFC3339),
		strings.Join(items, "; "),
		o.Total().String(),
		d.Name,
		d.Phone,
		d.Address,
		d.Note,
	}
}

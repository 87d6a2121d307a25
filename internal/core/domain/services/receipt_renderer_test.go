package services_test

import (
	"bytes"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/shop"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceipt(t *testing.T) {
	createdAt := time.Date(2026, 10, 18, 19, 5, 0, 0, time.UTC)
	profile := shop.Profile{
		Name:      "Tom & Jerry's",
		Address:   "1 Harbour Rd",
		Phone:     "+1 555 0100",
		TaxNumber: "TX-42",
		Logo:      "data:image/png;base64,iVBORw0KGgo=",
	}

	t.Run("dine-in receipt escapes user text and totals lines", func(t *testing.T) {
		o := buildOrder(t, "ORD-1", `<script>alert("x")</script>`, order.DineIn, order.Pending, createdAt,
			lineSpec{"Fish & Chips", 7.5, 2}, lineSpec{"Tea", 2, 1})

		var buf bytes.Buffer
		require.NoError(t, services.RenderReceipt(&buf, o, profile, time.UTC))
		html := buf.String()

		assert.Contains(t, html, "<!DOCTYPE html>")
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
		assert.Contains(t, html, "Tom &amp; Jerry&#39;s")
		assert.Contains(t, html, "Fish &amp; Chips")
		assert.Contains(t, html, `<img src="data:image/png;base64,iVBORw0KGgo="`)
		assert.Contains(t, html, "Tax No: TX-42")
		assert.Contains(t, html, "2026-10-18 19:05")
		assert.Contains(t, html, "15.00")
		assert.Contains(t, html, "17.00")
		assert.Contains(t, html, "display: table-header-group")
		assert.Contains(t, html, "page-break-inside: avoid")
	})

	t.Run("delivery receipt shows recipient instead of customer", func(t *testing.T) {
		soup, err := order.NewLine("m-soup", "Soup", kernel.NewMoney(5), 1)
		require.NoError(t, err)
		o, err := order.NewOrder("ORD-2", createdAt, order.Details{
			Customer:    "Account Holder",
			Type:        order.Delivery,
			Lines:       []order.Line{soup},
			Status:      order.Ready,
			PaymentType: "Card",
			Delivery:    &order.DeliveryDetails{Name: "Bo", Phone: "555", Address: "Main St 1"},
		})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, services.RenderReceipt(&buf, o, shop.Blank(), time.UTC))
		html := buf.String()

		assert.Contains(t, html, "Deliver to: Bo")
		assert.Contains(t, html, "Address: Main St 1")
		assert.Contains(t, html, "Payment: Card")
		assert.NotContains(t, html, "Account Holder")
		assert.NotContains(t, html, "<img")
	})
}

func TestBuildReceipt_GrandTotalMatchesOrderTotal(t *testing.T) {
	o := buildOrder(t, "ORD-1", "Ana", order.DineIn, order.Pending, time.Now(),
		lineSpec{"Soup", 5, 2}, lineSpec{"Bread", 0.35, 3})

	r := services.BuildReceipt(o, shop.Blank(), time.UTC)

	assert.Equal(t, o.Total().String(), r.Subtotal)
	assert.Equal(t, o.Total().String(), r.GrandTotal)
	assert.Equal(t, "11.05", r.GrandTotal)
	require.Len(t, r.Lines, 2)
	assert.Equal(t, "1.05", r.Lines[1].Total)
}

func TestBuildReceipt_RejectsUnsafeLogo(t *testing.T) {
	o := buildOrder(t, "ORD-1", "Ana", order.DineIn, order.Pending, time.Now())
	r := services.BuildReceipt(o, shop.Profile{Logo: "javascript:alert(1)"}, time.UTC)
	assert.Empty(t, string(r.Logo))
}

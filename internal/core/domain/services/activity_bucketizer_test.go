package services_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketizeHourly(t *testing.T) {
	now := time.Date(2026, 10, 18, 14, 25, 0, 0, time.UTC)
	orders := []*order.Order{
		buildOrder(t, "A", "a", order.DineIn, order.Pending, now.Add(-10*time.Minute)),
		buildOrder(t, "B", "b", order.DineIn, order.Pending, now.Add(-20*time.Minute)),
		buildOrder(t, "C", "c", order.DineIn, order.Pending, now.Add(-2*time.Hour)),
		buildOrder(t, "D", "d", order.DineIn, order.Pending, now.Add(-5*time.Hour)),
	}

	t.Run("seeds a trailing window ending at the current hour", func(t *testing.T) {
		buckets := services.BucketizeHourly(nil, now, 4, time.UTC)

		require.Len(t, buckets, 4)
		assert.Equal(t, "11:00", buckets[0].Label)
		assert.Equal(t, "14:00", buckets[3].Label)
		for _, b := range buckets {
			assert.Zero(t, b.Count)
		}
	})

	t.Run("counts orders by hour label and drops those outside the window", func(t *testing.T) {
		buckets := services.BucketizeHourly(orders, now, 4, time.UTC)

		counts := map[string]int{}
		for _, b := range buckets {
			counts[b.Label] = b.Count
		}
		assert.Equal(t, map[string]int{"11:00": 0, "12:00": 1, "13:00": 0, "14:00": 2}, counts)
	})

	t.Run("the window spans midnight", func(t *testing.T) {
		early := time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)
		buckets := services.BucketizeHourly(nil, early, 3, time.UTC)
		assert.Equal(t, "23:00", buckets[0].Label)
		assert.Equal(t, "01:00", buckets[2].Label)
	})

	t.Run("default width", func(t *testing.T) {
		assert.Len(t, services.BucketizeHourly(nil, now, 0, time.UTC), services.DefaultActivityHours)
	})
}

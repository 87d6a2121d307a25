package services

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// DefaultActivityHours is the width of the hourly activity window.
const DefaultActivityHours = 12

// HourlyBucket counts orders created during one labelled hour.
type HourlyBucket struct {
	Label string
	Count int
}

// BucketizeHourly seeds hours buckets ending at the hour containing now,
// labelled "HH:00" in loc, and counts each order into the bucket whose label
// equals its creation hour label. Orders whose label matches no bucket are
// left out; the window is a sample, not a full histogram.
func BucketizeHourly(orders []*order.Order, now time.Time, hours int, loc *time.Location) []HourlyBucket {
	if hours < 1 {
		hours = DefaultActivityHours
	}

	buckets := make([]HourlyBucket, 0, hours)
	index := make(map[string]int, hours)
	for i := hours - 1; i >= 0; i-- {
		label := kernel.HourLabel(now.Add(-time.Duration(i)*time.Hour), loc)
		if _, dup := index[label]; dup {
			continue
		}
		index[label] = len(buckets)
		buckets = append(buckets, HourlyBucket{Label: label})
	}

	for _, o := range orders {
		if i, ok := index[kernel.HourLabel(o.CreatedAt(), loc)]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

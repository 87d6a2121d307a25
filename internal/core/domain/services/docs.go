// Package services provides stateless domain services that derive read-only
// views from orders: the filter/search/pagination pipeline, the hourly
// activity bucketizer, and the CSV and receipt export formatters.
//
// Every function here is pure with respect to its inputs; identical inputs
// always yield identical output, which keeps the views safe to recompute on
// every change notification.
package services

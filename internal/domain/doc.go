// Package domain holds the marketplace entities (users, services, items,
// categories, bookings and geography), their change sets and the validation
// errors raised before anything reaches storage.
package domain

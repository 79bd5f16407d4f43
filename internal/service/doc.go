// Package service holds the marketplace use cases: validation of client
// input, category resolution, ownership-scoped catalog writes, bookings,
// geography reference data and user accounts. Services depend only on the
// interfaces in internal/store and report failures as domain validation
// errors or wrapped store sentinels, which the API layer turns into HTTP
// responses.
package service

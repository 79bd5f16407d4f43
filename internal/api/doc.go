// Package api adapts HTTP requests to the marketplace services. Handlers
// decode JSON bodies, read the acting identity placed in the context by the
// auth middleware, call a service and translate its errors into status codes
// with stable, client-safe messages (see HandleAPIError).
package api

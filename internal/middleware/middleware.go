// Package middleware holds the echo middleware shared by all routes and the
// route-specific ones: admin authentication, request-scoped logging,
// New Relic tracing, Prometheus metrics and enquiry rate limiting.
package middleware

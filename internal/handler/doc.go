// Package handler implements the HTTP layer for the Roam API.
//
// Handlers are thin: they authenticate via request context, decode request
// bodies, delegate to the service layer, and translate service errors into
// RFC 9457 problem responses through MapServiceError. No business rule
// lives here.
//
// Viewer-scoped reads (feed, adventures, profiles) work for guests; the
// routes behind OptionalAuth pass an empty viewer id through to the
// services, which render the guest view.
package handler

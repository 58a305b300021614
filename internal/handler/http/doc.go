// Package http implements the session gate's HTTP surface.
//
// It exposes route wiring, request handlers, and middleware for the gate
// that fronts the pre-rendered web client. Cross-cutting concerns such as
// session validation, request tracing, and access logging are handled in
// this package; token verification itself is delegated to the record
// service adapter.
package http

// Package http implements the REST API of the companion simulator.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, response compression and HMAC signature checks
// are handled here before requests are delegated to the service layer.
package http

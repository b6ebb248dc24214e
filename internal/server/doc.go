// Package server runs the companion simulator's HTTP server: startup,
// signal handling and graceful shutdown.
package server

// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP server lifecycles, including startup,
// signal handling, and graceful shutdown.
package server

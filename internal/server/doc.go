// Package server wires and runs the application's transport servers.
//
// It runs a plaintext HTTP listener and, when configured, a TLS listener
// serving the same router. It handles stop signals and shuts both listeners
// down gracefully within the configured timeout.
package server

// Package server wires and runs the application's HTTP server.
//
// It provides the server lifecycle: startup, signal handling, and graceful
// shutdown. The process stops on SIGTERM, SIGINT or SIGQUIT, draining
// in-flight requests before exiting.
package server

// Package server runs the widget's optional local preview server.
//
// The server is a [workers.Worker]: it serves until its context is cancelled
// and then shuts down gracefully, so the application stops it together with
// every other background task.
package server

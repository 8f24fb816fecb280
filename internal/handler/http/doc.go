// Package http implements the widget's local preview server.
//
// It serves a read-only view of the note collection: an HTML page, the raw
// JSON collection, export downloads in every supported format and a state
// summary of the timer and recorder. Request tracing, access logging and
// response compression are handled here before requests reach the services.
package http

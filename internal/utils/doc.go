// Package utils provides small helpers shared across the widget: note id
// generation, export file name handling and HTTP response writing for the
// preview server.
package utils

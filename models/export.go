package models

import (
	"fmt"
	"strings"
)

// ExportFormat is a note export format.
type ExportFormat string

const (
	FormatText     ExportFormat = "txt"
	FormatMarkdown ExportFormat = "md"
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatDocument ExportFormat = "doc"
)

// ExportFormats lists the note export formats in menu order.
var ExportFormats = []ExportFormat{FormatText, FormatMarkdown, FormatJSON, FormatCSV, FormatDocument}

// ParseExportFormat accepts a format label case-insensitively, with or
// without a leading dot. "docx" and "markdown" are accepted as aliases.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "txt", "text":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "doc", "docx":
		return FormatDocument, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// MIMEType returns the content type of the textual formats.
func (f ExportFormat) MIMEType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown"
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	case FormatDocument:
		return "application/msword"
	default:
		return "text/plain"
	}
}

// ExportOptions tunes a note export.
type ExportOptions struct {
	// IncludeUnsaved appends the non-blank draft as a final "(Unsaved)" entry.
	IncludeUnsaved bool
}

// ExportRequest is a note export as asked for by the user.
type ExportRequest struct {
	// FileName is the name without extension; empty means the default.
	FileName string
	Format   ExportFormat
	Options  ExportOptions
}

// Artifact is a rendered export before delivery.
type Artifact struct {
	// Extension is the file extension without the dot.
	Extension string
	MIMEType  string
	Data      []byte
}

// ExportResult describes a delivered export.
type ExportResult struct {
	FileName string
	Path     string
	Size     int
	// Warning is set when the payload differs from what the name suggests.
	Warning string
}

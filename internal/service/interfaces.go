// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-desk-widget/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoticeBoard collects transient user notices. Notices expire after the
// configured TTL.
type NoticeBoard interface {
	Publish(severity models.Severity, message string)
	Success(message string)
	Error(message string)
	Info(message string)

	// Active returns the unexpired notices, oldest first.
	Active() []models.Notice
	// Latest returns the newest unexpired notice.
	Latest() (models.Notice, bool)
}

// TimerService is the fixed-length countdown.
type TimerService interface {
	// Start begins or resumes the countdown. A completed countdown starts
	// over from the full duration. No-op while running.
	Start()
	// Pause stops ticking and keeps the remaining time. No-op unless running.
	Pause()
	// Reset stops ticking and restores the full duration.
	Reset()
	// Tick advances a running countdown by one second.
	Tick()
	Snapshot() models.TimerSnapshot
}

// RecorderService captures microphone audio into an in-memory WAV recording.
type RecorderService interface {
	// StartRecording opens the microphone and starts the elapsed and
	// visualization ticks. Returns an error wrapping ErrPermission when the
	// device cannot be opened. Ignored while recording.
	StartRecording(ctx context.Context) error
	// StopRecording finalizes the captured audio. No-op unless recording.
	StopRecording(ctx context.Context) error
	// Play plays the finalized recording. No-op without one.
	Play(ctx context.Context) error
	// ExportAs saves the finalized recording as fileName.format. Any format
	// other than wav still carries WAV data and sets a warning.
	ExportAs(ctx context.Context, fileName, format string) (models.ExportResult, error)
	// DefaultRecordingName is recording_YYYY-MM-DD_HH-MM-SS for now.
	DefaultRecordingName() string
	Snapshot() models.RecorderSnapshot
}

// NoteService owns the note collection and the editing draft.
type NoteService interface {
	// Load reads the stored collection once at startup.
	Load(ctx context.Context) error

	// Create opens an empty draft for a new note.
	Create()
	// Edit opens the note with id in the draft. Unknown ids are ignored.
	Edit(id string)
	// UpdateDraft records the text currently typed into the open draft.
	UpdateDraft(title, content string)
	// CloseDraft discards the draft.
	CloseDraft()
	// Draft returns the open draft.
	Draft() (models.Draft, bool)

	// Save trims and stores the draft. Returns an error wrapping
	// ErrValidation when both fields are blank.
	Save(ctx context.Context, title, content string) (models.Note, error)
	// Delete removes the note with id after confirmation.
	Delete(ctx context.Context, id string, confirm Confirmer) error
	// ClearAll removes every note after confirmation. Returns
	// ErrNothingToClear without asking when the collection is empty.
	ClearAll(ctx context.Context, confirm Confirmer) error

	List() []models.Note
	Count() int

	// Export renders the collection and saves it through the downloader.
	Export(ctx context.Context, fileName string, format models.ExportFormat, opts models.ExportOptions) (models.ExportResult, error)
	// Render renders the collection without saving it.
	Render(ctx context.Context, format models.ExportFormat, opts models.ExportOptions) (*models.Artifact, error)
	// DefaultExportName is the file name proposed for an export.
	DefaultExportName(format models.ExportFormat) string
	// FormatTime renders t as a local "YYYY-MM-DD HH:MM" display time.
	FormatTime(t time.Time) string
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// IDGenerator produces unique note ids.
type IDGenerator interface {
	Generate() string
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, message string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, message string) bool {
	return f(ctx, message)
}

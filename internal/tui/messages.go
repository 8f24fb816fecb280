package tui

import (
	"github.com/MKhiriev/go-desk-widget/models"
)

// refreshMsg redraws the clock, the waveform and the notices.
type refreshMsg struct{}

type recordingToggledMsg struct {
	err error
}

type playbackDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	result models.ExportResult
	err    error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type notesChangedMsg struct {
	err error
}

type previewMsg struct {
	content string
	err     error
}

// confirmRequestMsg is sent by a blocked service call waiting for the user's
// answer on reply.
type confirmRequestMsg struct {
	message string
	reply   chan<- bool
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

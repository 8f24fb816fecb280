// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the desk widget.
//
// Services publish these as notices and the terminal UI shows them verbatim,
// so the wording lives in one place.
package app

const (
	// MsgTimerCompleted is the completion notice; the verb agrees with the
	// formatted duration ("5 minutes have passed", "1 minute has passed").
	MsgTimerCompleted = "Timer completed! %s %s passed."

	// MsgTimerCompletedTitle is the desktop notification title.
	MsgTimerCompletedTitle = "Timer completed!"

	// MsgMicrophoneError is shown when the microphone cannot be opened.
	MsgMicrophoneError = "Error accessing microphone. Please check permissions."

	// MsgRecordingSaved reports the size of a finalized recording in KB.
	MsgRecordingSaved = "Recording saved (%d KB)"

	// MsgPlaybackError is shown when the recording cannot be played.
	MsgPlaybackError = "Could not play the recording."

	// MsgNoRecording is shown when exporting before anything was recorded.
	MsgNoRecording = "No recording available to export"

	// MsgAudioExported confirms an audio download.
	MsgAudioExported = "Audio exported successfully!"

	// MsgAudioFormatWarning explains that a non-WAV label still carries WAV
	// data. The argument is the upper-cased format label.
	MsgAudioFormatWarning = "Note: Audio will be exported as WAV format. %s conversion requires additional libraries."

	// MsgEmptyNote is shown when saving a note with no title and no content.
	MsgEmptyNote = "Please enter a title or content for the note."

	// MsgNoteSaved confirms a save.
	MsgNoteSaved = "Note saved successfully!"

	// MsgNoteDeleted confirms a deletion.
	MsgNoteDeleted = "Note deleted successfully!"

	// MsgConfirmDelete asks before deleting one note.
	MsgConfirmDelete = "Are you sure you want to delete this note?"

	// MsgConfirmClear asks before deleting every note.
	MsgConfirmClear = "Are you sure you want to delete all notes? This action cannot be undone."

	// MsgNoNotesToClear is shown when clearing an empty collection.
	MsgNoNotesToClear = "No notes to clear."

	// MsgNotesCleared confirms clearing the collection.
	MsgNotesCleared = "All notes cleared successfully!"

	// MsgNoNotesToExport is shown when there is nothing to export.
	MsgNoNotesToExport = "No notes to export."

	// MsgNotesExported confirms a notes download; the argument is the file name.
	MsgNotesExported = "Notes exported as %s"

	// MsgDocumentFailed is shown when no document generator succeeded.
	MsgDocumentFailed = "Could not generate the document."

	// MsgStorageError is shown when the note collection cannot be persisted.
	MsgStorageError = "Could not save notes. Your last change was not kept."

	// MsgExportError is shown when an export file cannot be written.
	MsgExportError = "Could not write the export file."

	// MsgInvalidFileName is shown for names that would leave the export folder.
	MsgInvalidFileName = "The file name must not contain path separators."
)

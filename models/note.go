package models

import (
	"strings"
	"time"
)

// DefaultNoteTitle replaces an empty title on save.
const DefaultNoteTitle = "Untitled Note"

// UnsavedSuffix marks the draft entry appended to an export.
const UnsavedSuffix = " (Unsaved)"

// Note is a single user note.
//
// ID and CreatedAt are assigned on the first save and never change;
// UpdatedAt is refreshed on every save.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Draft is the editing context: the title and content currently open for
// creation (empty NoteID) or modification.
type Draft struct {
	NoteID  string
	Title   string
	Content string
}

// IsNew reports whether saving the draft creates a note.
func (d Draft) IsNew() bool {
	return d.NoteID == ""
}

// IsBlank reports whether both fields are empty after trimming.
func (d Draft) IsBlank() bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}

// AsUnsavedNote turns a non-blank draft into the trailing export entry.
func (d Draft) AsUnsavedNote(at time.Time) Note {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = DefaultNoteTitle
	}

	return Note{
		ID:        d.NoteID,
		Title:     title + UnsavedSuffix,
		Content:   strings.TrimSpace(d.Content),
		CreatedAt: at,
		UpdatedAt: at,
	}
}

package document

import "strings"

// Document is the format-independent content of a notes export. All
// timestamps are already formatted by the caller.
type Document struct {
	Title      string
	ExportedOn string
	Entries    []Entry
}

// Entry is one note in a [Document].
type Entry struct {
	Title   string
	Created string
	Content string
}

// Lines splits the entry content into paragraphs, normalising line endings.
func (e Entry) Lines() []string {
	content := strings.ReplaceAll(e.Content, "\r\n", "\n")
	return strings.Split(content, "\n")
}

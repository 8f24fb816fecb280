package http

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/utils"
	"github.com/MKhiriev/go-desk-widget/models"
)

//go:embed notes.html
var notesPageSource string

var notesPage = template.Must(template.New("notes").Parse(notesPageSource))

type notesPageData struct {
	Count int
	Notes []notesPageEntry
}

type notesPageEntry struct {
	Title   string
	Content string
	Updated string
}

// notesPage renders the collection in stored order. html/template escapes
// titles and content.
func (h *Handler) notesPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	notes := h.services.Notes

	list := notes.List()
	data := notesPageData{Count: len(list), Notes: make([]notesPageEntry, 0, len(list))}
	for _, n := range list {
		data.Notes = append(data.Notes, notesPageEntry{
			Title:   n.Title,
			Content: n.Content,
			Updated: notes.FormatTime(n.UpdatedAt),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := notesPage.Execute(w, data); err != nil {
		log.Err(err).Str("func", "*Handler.notesPage").Msg("error rendering notes page")
	}
}

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, h.services.Notes.List(), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getNotes").Msg("error writing notes")
	}
}

type stateResponse struct {
	Timer     timerState    `json:"timer"`
	Recorder  recorderState `json:"recorder"`
	NoteCount int           `json:"noteCount"`
}

type timerState struct {
	Clock     string  `json:"clock"`
	Progress  float64 `json:"progress"`
	Running   bool    `json:"running"`
	Completed bool    `json:"completed"`
}

type recorderState struct {
	Recording    bool   `json:"recording"`
	HasRecording bool   `json:"hasRecording"`
	Clock        string `json:"clock"`
	SizeKB       int    `json:"sizeKB"`
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	timer := h.services.Timer.Snapshot()
	rec := h.services.Recorder.Snapshot()
	state := stateResponse{
		Timer: timerState{
			Clock:     timer.Clock(),
			Progress:  timer.Progress(),
			Running:   timer.Running,
			Completed: timer.Completed,
		},
		Recorder: recorderState{
			Recording:    rec.Recording,
			HasRecording: rec.HasRecording,
			Clock:        rec.Clock(),
			SizeKB:       rec.SizeKB,
		},
		NoteCount: h.services.Notes.Count(),
	}

	if _, err := utils.WriteJSON(w, state, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getState").Msg("error writing state")
	}
}

// exportNotes streams an export as an attachment. ?unsaved=true appends the
// open draft.
func (h *Handler) exportNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	format, err := models.ParseExportFormat(chi.URLParam(r, "format"))
	if err != nil {
		err = fmt.Errorf("%w: %w", errUnknownFormat, err)
		log.Err(err).Str("func", "*Handler.exportNotes").Msg("bad export format")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	includeUnsaved, _ := strconv.ParseBool(r.URL.Query().Get("unsaved"))
	artifact, err := h.services.Notes.Render(ctx, format, models.ExportOptions{IncludeUnsaved: includeUnsaved})
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportNotes").Str("format", string(format)).Msg("error rendering export")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	fileName := utils.WithExtension(h.services.Notes.DefaultExportName(format), artifact.Extension)
	if _, err = utils.WriteAttachment(w, fileName, artifact.MIMEType, artifact.Data); err != nil {
		log.Err(err).Str("func", "*Handler.exportNotes").Msg("error writing export")
	}
}

package document_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-desk-widget/internal/document"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/mock"
	"github.com/MKhiriev/go-desk-widget/models"
)

func sampleDocument() document.Document {
	return document.Document{
		Title:      "Notes Export",
		ExportedOn: "2026-03-01 10:00",
		Entries: []document.Entry{
			{Title: "Groceries", Created: "2026-03-01 09:00", Content: "milk\r\neggs"},
			{Title: "<script>", Created: "2026-03-01 09:30", Content: "a & b"},
		},
	}
}

func readZipEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatalf("zip entry %s not found", name)
	return ""
}

// ── Entry ────────────────────────────────────────────────────────────────────

func TestEntry_Lines(t *testing.T) {
	e := document.Entry{Content: "one\r\ntwo\nthree"}
	assert.Equal(t, []string{"one", "two", "three"}, e.Lines())
}

// ── DocxGenerator ────────────────────────────────────────────────────────────

func TestDocxGenerator_Generate(t *testing.T) {
	g := document.NewDocxGenerator()
	assert.True(t, g.Available())
	assert.Equal(t, "docx", g.Name())

	artifact, err := g.Generate(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, "docx", artifact.Extension)
	assert.Equal(t, document.DocxMIMEType, artifact.MIMEType)

	body := readZipEntry(t, artifact.Data, "word/document.xml")
	assert.Contains(t, body, "Notes Export")
	assert.Contains(t, body, "Exported on 2026-03-01 10:00")
	assert.Contains(t, body, "Groceries")
	assert.Contains(t, body, "Created: 2026-03-01 09:00")
	assert.Contains(t, body, "milk")
	assert.Contains(t, body, "eggs")
	assert.Contains(t, body, "a &amp; b")
}

func TestDocxGenerator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := document.NewDocxGenerator().Generate(ctx, sampleDocument())
	assert.ErrorIs(t, err, context.Canceled)
}

// ── HTMLGenerator ────────────────────────────────────────────────────────────

func TestHTMLGenerator_Generate(t *testing.T) {
	artifact, err := document.NewHTMLGenerator().Generate(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, "doc", artifact.Extension)
	assert.Equal(t, "application/msword", artifact.MIMEType)

	html := string(artifact.Data)
	assert.Contains(t, html, `xmlns:w="urn:schemas-microsoft-com:office:word"`)
	assert.Contains(t, html, "<h1>Notes Export</h1>")
	assert.Contains(t, html, "<h2>Groceries</h2>")
	assert.Contains(t, html, "<p>milk<br>eggs</p>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<h2><script>")
	assert.Contains(t, html, "a &amp; b")
	assert.Equal(t, 2, strings.Count(html, "<hr>"))
}

// ── Chain ────────────────────────────────────────────────────────────────────

func TestChain_FallsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mock.NewMockGenerator(ctrl)
	fallback := mock.NewMockGenerator(ctrl)
	want := &models.Artifact{Extension: "doc"}

	primary.EXPECT().Name().Return("primary").AnyTimes()
	primary.EXPECT().Available().Return(true)
	primary.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	fallback.EXPECT().Name().Return("fallback").AnyTimes()
	fallback.EXPECT().Available().Return(true)
	fallback.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(want, nil)

	got, err := document.NewChain(logger.Nop(), primary, fallback).Generate(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestChain_SkipsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mock.NewMockGenerator(ctrl)
	fallback := mock.NewMockGenerator(ctrl)
	want := &models.Artifact{Extension: "doc"}

	primary.EXPECT().Name().Return("primary").AnyTimes()
	primary.EXPECT().Available().Return(false)
	fallback.EXPECT().Available().Return(true)
	fallback.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(want, nil)

	got, err := document.NewChain(logger.Nop(), primary, fallback).Generate(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestChain_AllFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mock.NewMockGenerator(ctrl)
	fallback := mock.NewMockGenerator(ctrl)
	cause := errors.New("disk full")

	primary.EXPECT().Name().Return("primary").AnyTimes()
	primary.EXPECT().Available().Return(true)
	primary.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	fallback.EXPECT().Name().Return("fallback").AnyTimes()
	fallback.EXPECT().Available().Return(true)
	fallback.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, cause)

	chain := document.NewChain(logger.Nop(), primary, fallback)
	_, err := chain.Generate(context.Background(), sampleDocument())
	assert.ErrorIs(t, err, document.ErrGenerationFailure)
	assert.ErrorIs(t, err, cause)
}

func TestChain_NoneAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mock.NewMockGenerator(ctrl)
	g.EXPECT().Name().Return("g").AnyTimes()
	g.EXPECT().Available().Return(false).Times(2)

	chain := document.NewChain(logger.Nop(), g)
	assert.False(t, chain.Available())

	_, err := chain.Generate(context.Background(), sampleDocument())
	assert.ErrorIs(t, err, document.ErrGenerationFailure)
	assert.ErrorIs(t, err, document.ErrNoGenerators)
}

func TestChain_Empty(t *testing.T) {
	chain := document.NewChain(logger.Nop())
	assert.False(t, chain.Available())

	_, err := chain.Generate(context.Background(), sampleDocument())
	assert.ErrorIs(t, err, document.ErrNoGenerators)
}

func TestNewDefaultChain(t *testing.T) {
	chain := document.NewDefaultChain(logger.Nop())
	assert.True(t, chain.Available())

	artifact, err := chain.Generate(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, "docx", artifact.Extension)
}

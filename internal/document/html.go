package document

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/MKhiriev/go-desk-widget/models"
)

// wordHTML is HTML that word processors open as a document when saved
// with a .doc extension.
var wordHTML = template.Must(template.New("doc").Parse(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word" xmlns="http://www.w3.org/TR/REC-html40">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Calibri, Arial, sans-serif; }
h1 { color: #333333; }
h2 { color: #8B5CF6; }
.meta { color: #666666; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Exported on {{.ExportedOn}}</p>
<hr>
{{- range $i, $e := .Entries}}
{{- if $i}}
<hr>
{{- end}}
<h2>{{$e.Title}}</h2>
<p class="meta">Created: {{$e.Created}}</p>
<p>{{range $j, $line := $e.Lines}}{{if $j}}<br>{{end}}{{$line}}{{end}}</p>
{{- end}}
</body>
</html>
`))

// HTMLGenerator writes Word-compatible HTML saved as .doc.
type HTMLGenerator struct{}

func NewHTMLGenerator() *HTMLGenerator {
	return &HTMLGenerator{}
}

func (g *HTMLGenerator) Name() string { return "html-doc" }

func (g *HTMLGenerator) Available() bool { return true }

func (g *HTMLGenerator) Generate(_ context.Context, doc Document) (*models.Artifact, error) {
	var buf bytes.Buffer
	if err := wordHTML.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("error rendering document html: %w", err)
	}

	return &models.Artifact{
		Extension: string(models.FormatDocument),
		MIMEType:  models.FormatDocument.MIMEType(),
		Data:      buf.Bytes(),
	}, nil
}

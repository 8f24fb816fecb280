package document

import (
	"bytes"
	"context"
	"fmt"

	ooxml "baliance.com/gooxml/document"

	"github.com/MKhiriev/go-desk-widget/models"
)

// DocxMIMEType is the content type of Office Open XML documents.
const DocxMIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocxGenerator writes .docx documents with gooxml.
type DocxGenerator struct{}

func NewDocxGenerator() *DocxGenerator {
	return &DocxGenerator{}
}

func (g *DocxGenerator) Name() string { return "docx" }

func (g *DocxGenerator) Available() bool { return true }

func (g *DocxGenerator) Generate(ctx context.Context, doc Document) (*models.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := ooxml.New()

	title := d.AddParagraph()
	title.SetStyle("Title")
	title.AddRun().AddText(doc.Title)

	stamp := d.AddParagraph().AddRun()
	stamp.Properties().SetItalic(true)
	stamp.AddText("Exported on " + doc.ExportedOn)

	for _, e := range doc.Entries {
		heading := d.AddParagraph()
		heading.SetStyle("Heading1")
		heading.AddRun().AddText(e.Title)

		created := d.AddParagraph().AddRun()
		created.Properties().SetItalic(true)
		created.AddText("Created: " + e.Created)

		body := d.AddParagraph().AddRun()
		for i, line := range e.Lines() {
			if i > 0 {
				body.AddBreak()
			}
			body.AddText(line)
		}
	}

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, fmt.Errorf("error saving docx: %w", err)
	}

	return &models.Artifact{
		Extension: "docx",
		MIMEType:  DocxMIMEType,
		Data:      buf.Bytes(),
	}, nil
}

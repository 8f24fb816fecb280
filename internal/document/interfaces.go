package document

import (
	"context"

	"github.com/MKhiriev/go-desk-widget/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_mock.go -package=mock

// Generator renders a [Document] into a downloadable artifact.
type Generator interface {
	// Name identifies the generator in logs.
	Name() string
	// Available reports whether the generator can run in this process.
	Available() bool
	Generate(ctx context.Context, doc Document) (*models.Artifact, error)
}

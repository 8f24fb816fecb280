package handler

import (
	"github.com/MKhiriev/go-desk-widget/internal/config"
	"github.com/MKhiriev/go-desk-widget/internal/handler/http"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/service"
	"github.com/MKhiriev/go-desk-widget/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.WidgetServices, cfg config.WidgetPreview, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if !cfg.Enabled() {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, buildInfo, logger),
	}, nil
}

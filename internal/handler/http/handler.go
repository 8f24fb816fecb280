package http

import (
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/service"
	"github.com/MKhiriev/go-desk-widget/models"
)

type Handler struct {
	services  *service.WidgetServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.WidgetServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

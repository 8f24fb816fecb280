package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-desk-widget/internal/service"
)

var errorStatusMap = map[error]int{
	errUnknownFormat:             http.StatusBadRequest,
	service.ErrValidation:        http.StatusBadRequest,
	service.ErrNothingToExport:   http.StatusNotFound,
	service.ErrGenerationFailure: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-desk-widget/internal/config"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/models"
)

// TestNewHandlers_PreviewEnabled verifies that a configured preview address
// initialises the HTTP handler.
func TestNewHandlers_PreviewEnabled(t *testing.T) {
	cfg := config.WidgetPreview{Address: "127.0.0.1:8765"}

	h, err := NewHandlers(nil, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_PreviewDisabled verifies that an empty address yields
// errNoHandlersAreCreated.
func TestNewHandlers_PreviewDisabled(t *testing.T) {
	h, err := NewHandlers(nil, config.WidgetPreview{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls produce
// independent handlers.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.WidgetPreview{Address: ":0"}

	h1, err1 := NewHandlers(nil, cfg, models.AppBuildInfo{}, logger.Nop())
	h2, err2 := NewHandlers(nil, cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}

package config

import (
	"fmt"
	"time"
)

// WidgetApp holds process-wide runtime settings.
type WidgetApp struct {
	// LogFile is the log destination.
	LogFile string
	// LogLevel is a zerolog level name.
	LogLevel string
	// NoticeTTL is how long a transient notice stays visible.
	NoticeTTL time.Duration
	// Location formats dates for display and exports.
	Location *time.Location
}

// WidgetStorage holds the database and download directory paths.
type WidgetStorage struct {
	// DSN is the SQLite database path.
	DSN string
	// ExportsDir receives exported files.
	ExportsDir string
}

// WidgetTimer holds countdown settings.
type WidgetTimer struct {
	// TotalSeconds is the countdown length in whole seconds.
	TotalSeconds int
	// Silent disables the completion cue.
	Silent bool
}

// WidgetRecorder holds capture and visualization settings.
type WidgetRecorder struct {
	SampleRate   int
	Bins         int
	FrameRate    int
	CanvasWidth  int
	CanvasHeight int
}

// FrameInterval is the delay between two visualization redraws.
func (r WidgetRecorder) FrameInterval() time.Duration {
	return time.Second / time.Duration(r.FrameRate)
}

// WidgetPreview holds the preview server settings.
type WidgetPreview struct {
	// Address is empty when the preview server is disabled.
	Address        string
	RequestTimeout time.Duration
}

// Enabled reports whether the preview server should be started.
func (p WidgetPreview) Enabled() bool {
	return p.Address != ""
}

// WidgetConfig is the validated runtime configuration view assembled from
// [StructuredConfig].
type WidgetConfig struct {
	App      WidgetApp
	Storage  WidgetStorage
	Timer    WidgetTimer
	Recorder WidgetRecorder
	Preview  WidgetPreview
}

// GetWidgetConfig builds and validates the runtime configuration view from
// the merged structured configuration.
func GetWidgetConfig() (*WidgetConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewWidgetConfig(cfg)
}

// NewWidgetConfig maps cfg to a [WidgetConfig] and validates it.
func NewWidgetConfig(cfg *StructuredConfig) (*WidgetConfig, error) {
	location, err := time.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	widgetCfg := &WidgetConfig{
		App: WidgetApp{
			LogFile:   cfg.App.LogFile,
			LogLevel:  cfg.App.LogLevel,
			NoticeTTL: cfg.App.NoticeTTL,
			Location:  location,
		},
		Storage: WidgetStorage{
			DSN:        cfg.Storage.DB.DSN,
			ExportsDir: cfg.Storage.Exports.Dir,
		},
		Timer: WidgetTimer{
			TotalSeconds: int(cfg.Timer.Total / time.Second),
			Silent:       cfg.Timer.Silent,
		},
		Recorder: WidgetRecorder{
			SampleRate:   cfg.Recorder.SampleRate,
			Bins:         cfg.Recorder.Bins,
			FrameRate:    cfg.Recorder.FrameRate,
			CanvasWidth:  cfg.Recorder.CanvasWidth,
			CanvasHeight: cfg.Recorder.CanvasHeight,
		},
		Preview: WidgetPreview{
			Address:        cfg.Preview.Address,
			RequestTimeout: cfg.Preview.RequestTimeout,
		},
	}

	return widgetCfg, widgetCfg.validate()
}

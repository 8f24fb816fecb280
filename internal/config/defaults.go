package config

import "time"

// Built-in defaults applied with the lowest priority.
const (
	DefaultDSN            = "widget.db"
	DefaultExportsDir     = "exports"
	DefaultLogFile        = "widget.log"
	DefaultLogLevel       = "info"
	DefaultNoticeTTL      = 3 * time.Second
	DefaultTimeZone       = "Local"
	DefaultTimerTotal     = 5 * time.Minute
	DefaultSampleRate     = 44100
	DefaultBins           = 64
	DefaultFrameRate      = 30
	DefaultCanvasWidth    = 128
	DefaultCanvasHeight   = 32
	DefaultRequestTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:   DefaultLogFile,
			LogLevel:  DefaultLogLevel,
			NoticeTTL: DefaultNoticeTTL,
			TimeZone:  DefaultTimeZone,
		},
		Storage: Storage{
			DB:      DB{DSN: DefaultDSN},
			Exports: Exports{Dir: DefaultExportsDir},
		},
		Timer: Timer{Total: DefaultTimerTotal},
		Recorder: Recorder{
			SampleRate:   DefaultSampleRate,
			Bins:         DefaultBins,
			FrameRate:    DefaultFrameRate,
			CanvasWidth:  DefaultCanvasWidth,
			CanvasHeight: DefaultCanvasHeight,
		},
		Preview: Preview{RequestTimeout: DefaultRequestTimeout},
	}
}

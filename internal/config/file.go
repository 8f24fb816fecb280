package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML config
// files.
type StructuredFileConfig struct {
	App struct {
		LogFile   string   `json:"log_file" yaml:"log_file"`
		LogLevel  string   `json:"log_level" yaml:"log_level"`
		NoticeTTL Duration `json:"notice_ttl" yaml:"notice_ttl"`
		TimeZone  string   `json:"time_zone" yaml:"time_zone"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Exports struct {
			Dir string `json:"dir" yaml:"dir"`
		} `json:"exports,omitempty" yaml:"exports,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Timer struct {
		Total  Duration `json:"total" yaml:"total"`
		Silent bool     `json:"silent" yaml:"silent"`
	} `json:"timer,omitempty" yaml:"timer,omitempty"`

	Recorder struct {
		SampleRate   int `json:"sample_rate" yaml:"sample_rate"`
		Bins         int `json:"bins" yaml:"bins"`
		FrameRate    int `json:"frame_rate" yaml:"frame_rate"`
		CanvasWidth  int `json:"canvas_width" yaml:"canvas_width"`
		CanvasHeight int `json:"canvas_height" yaml:"canvas_height"`
	} `json:"recorder,omitempty" yaml:"recorder,omitempty"`

	Preview struct {
		Address        string   `json:"address" yaml:"address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"preview,omitempty" yaml:"preview,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			LogFile:   fileCfg.App.LogFile,
			LogLevel:  fileCfg.App.LogLevel,
			NoticeTTL: time.Duration(fileCfg.App.NoticeTTL),
			TimeZone:  fileCfg.App.TimeZone,
		},
		Storage: Storage{
			DB:      DB{DSN: fileCfg.Storage.DB.DSN},
			Exports: Exports{Dir: fileCfg.Storage.Exports.Dir},
		},
		Timer: Timer{
			Total:  time.Duration(fileCfg.Timer.Total),
			Silent: fileCfg.Timer.Silent,
		},
		Recorder: Recorder{
			SampleRate:   fileCfg.Recorder.SampleRate,
			Bins:         fileCfg.Recorder.Bins,
			FrameRate:    fileCfg.Recorder.FrameRate,
			CanvasWidth:  fileCfg.Recorder.CanvasWidth,
			CanvasHeight: fileCfg.Recorder.CanvasHeight,
		},
		Preview: Preview{
			Address:        fileCfg.Preview.Address,
			RequestTimeout: time.Duration(fileCfg.Preview.RequestTimeout),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" and from integer nanoseconds, in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the widget's command-line flags from args.
//
// Flags:
//
//	-d sqlite database path
//	-o export directory
//	-t countdown length (e.g. "5m", "90s")
//	-silent disable the completion cue
//	-rate capture sample rate in Hz
//	-bins number of visualization bars
//	-fps visualization frames per second
//	-preview preview server address in format [host]:[port]
//	-log-file log file path
//	-log-level log level
//	-tz time zone used for dates
//	-c/-config JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var previewAddress NetAddress
	var databaseDSN, exportsDir string
	var timerTotal time.Duration
	var silent bool
	var sampleRate, bins, frameRate int
	var logFile, logLevel, timeZone string
	var configPath string

	fs := flag.NewFlagSet("widget", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "SQLite database path")
	fs.StringVar(&exportsDir, "o", "", "Export directory")
	fs.DurationVar(&timerTotal, "t", 0, "Countdown length (e.g., 5m, 90s)")
	fs.BoolVar(&silent, "silent", false, "Disable the completion cue")
	fs.IntVar(&sampleRate, "rate", 0, "Capture sample rate in Hz")
	fs.IntVar(&bins, "bins", 0, "Number of visualization bars")
	fs.IntVar(&frameRate, "fps", 0, "Visualization frames per second")
	fs.Var(&previewAddress, "preview", "Preview server address host:port")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&timeZone, "tz", "", "Time zone for displayed dates")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:  logFile,
			LogLevel: logLevel,
			TimeZone: timeZone,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Exports: Exports{Dir: exportsDir},
		},
		Timer: Timer{
			Total:  timerTotal,
			Silent: silent,
		},
		Recorder: Recorder{
			SampleRate: sampleRate,
			Bins:       bins,
			FrameRate:  frameRate,
		},
		Preview: Preview{
			Address: previewAddress.String(),
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

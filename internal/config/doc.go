// Package config provides configuration loading, merging, and validation
// facilities for the desk widget.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON, or YAML when the file ends in .yaml/.yml)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetWidgetConfig] for the validated runtime view.
package config

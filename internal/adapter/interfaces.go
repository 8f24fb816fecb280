// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the widget's services to the host desktop.
//
// [Downloader] is the local replacement for a browser download: it writes an
// export payload into the export directory under a file name that never
// overwrites an existing file. [Alerter] raises the timer completion signal
// as a sound plus a desktop notification.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Downloader delivers a named payload to the user.
type Downloader interface {
	// Save writes data as fileName and returns the path actually written,
	// which differs from fileName when that name was already taken.
	Save(ctx context.Context, fileName string, data []byte) (string, error)
}

// Alerter raises an attention signal.
type Alerter interface {
	// Alert starts the signal and returns without waiting for it to finish.
	Alert(title, message string)
}

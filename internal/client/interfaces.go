// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable widget
// applications.
type Client interface {
	// Run starts the application and blocks until exit.
	Run(ctx context.Context) error
	// Close releases every resource. Safe to call more than once.
	Close() error
}

var _ Client = (*App)(nil)

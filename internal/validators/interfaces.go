// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before the services act on it:
// note drafts on save, stored notes on load and export requests.
//
// Validators accept optional field names that restrict which rules run, so
// a caller can check a single aspect (for example only the file name of an
// export request).
package validators

import "context"

// Validator validates a value, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

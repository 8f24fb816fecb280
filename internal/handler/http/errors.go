// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errUnknownFormat is returned when the {format} path segment of an export
// request does not name a supported export format.
var errUnknownFormat = errors.New("unknown export format")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the widget application runtime.
//
// It wires storage, audio, the feature services, the optional preview
// server and the terminal UI into a single process lifecycle.
package client

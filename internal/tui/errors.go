// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

func humanizeClipboardError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "no clipboard utilities") ||
		strings.Contains(s, "executable file not found") ||
		strings.Contains(s, "can't open display") {
		return "Clipboard is not available. Install xclip, xsel or wl-clipboard."
	}

	return "Could not copy to clipboard: " + err.Error()
}

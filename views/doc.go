// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the voting and results pages from embedded
// html/template files. Page models are built from a flow.State or a
// dashboard.Dashboard; rendering never touches the backend.
package views

// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package pipeline

import "errors"

var (
	// ErrNotConfigured is returned when a Pipeline is used before being
	// built with New.
	ErrNotConfigured = errors.New("pipeline: not configured (build with pipeline.New)")

	// ErrNilDocument is returned when Run is given a nil document.
	ErrNilDocument = errors.New("pipeline: nil document")

	// ErrFilter marks an error raised by a filter during a run. Wrapped
	// errors name the failing filter and the node being processed.
	ErrFilter = errors.New("pipeline: filter failed")
)

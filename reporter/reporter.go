// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporter contains the types used for reporting errors and warnings
// while naming and validating schema files. Diagnostics are scoped to a file
// path; this layer never sees source offsets.
package reporter

import "sync"

// ErrorReporter is responsible for handling the given error. If the reporter
// returns a non-nil error, the enclosing operation aborts with that error. If
// the reporter returns nil, the operation continues, allowing it to report as
// many problems as it can find.
type ErrorReporter func(err ErrorWithFile) error

// WarningReporter is responsible for handling the given warning. Warnings
// indicate things that do not prevent generation but are considered bad
// practice. Though they are just warnings, the details are supplied to the
// reporter via an error type.
type WarningReporter func(ErrorWithFile)

type Reporter interface {
	Error(ErrorWithFile) error
	Warning(ErrorWithFile)
}

func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithFile) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithFile) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler wraps a Reporter with bookkeeping: it remembers whether any errors
// have been reported and what the first fatal error was.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf reports an error about the given file. It returns a non-nil
// error when the operation should abort: either the reporter's verdict or,
// once aborted, the same error for every subsequent call.
func (h *Handler) HandleErrorf(file string, format string, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	err := h.reporter.Error(Errorf(file, format, args...))
	h.err = err
	return err
}

// HandleError is like HandleErrorf for an already-constructed error. Errors
// that do not implement ErrorWithFile abort unconditionally without passing
// through the reporter.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewf, ok := err.(ErrorWithFile); ok {
		h.errsReported = true
		err = h.reporter.Error(ewf)
	}
	h.err = err
	return err
}

// HandleWarningf reports a warning about the given file. Warnings never stop
// processing.
func (h *Handler) HandleWarningf(file string, format string, args ...any) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(Errorf(file, format, args...))
}

// Error returns the error that aborted processing, if any. If errors were
// reported but the reporter swallowed all of them, ErrInvalidPrefixes is
// returned instead.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidPrefixes
	}
	return h.err
}

// ReporterError returns the error returned by the handler's reporter, without
// substituting ErrInvalidPrefixes.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

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

package reporter

import (
	"errors"
	"fmt"
)

// ErrInvalidPrefixes is a sentinel error returned by Handler.Error in the
// event that hard errors were reported but the configured ErrorReporter
// always returned nil.
var ErrInvalidPrefixes = errors.New("validation failed: invalid class prefixes")

// ErrorWithFile is an error about a schema file that includes the path of the
// file that caused it.
//
// The value of Error() will contain both the file path and the underlying
// error. The value of Unwrap() will only be the underlying error.
type ErrorWithFile interface {
	error
	// File returns the path of the file the diagnostic is about.
	File() string
	Unwrap() error
}

// Error creates a new ErrorWithFile from the given error and file path.
func Error(file string, err error) ErrorWithFile {
	return errorWithFile{file: file, underlying: err}
}

// Errorf creates a new ErrorWithFile whose underlying error is created with
// fmt.Errorf.
func Errorf(file string, format string, args ...any) ErrorWithFile {
	return errorWithFile{file: file, underlying: fmt.Errorf(format, args...)}
}

type errorWithFile struct {
	underlying error
	file       string
}

func (e errorWithFile) Error() string {
	return fmt.Sprintf("%s: %v", e.file, e.underlying)
}

func (e errorWithFile) File() string {
	return e.file
}

func (e errorWithFile) Unwrap() error {
	return e.underlying
}

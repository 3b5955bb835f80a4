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

package names

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/btree"
)

// parseSimpleFile feeds each meaningful line of the file at path to fn.
// Leading and trailing whitespace is trimmed; blank lines and # comments are
// skipped. Errors from fn are annotated with the path and 1-based line
// number.
func parseSimpleFile(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
	}
	return scanner.Err()
}

// loadPrefixMappings reads a file of `package = prefix` lines into an ordered
// map. The same format serves both the prefix mappings file and the expected
// prefixes file. Both sides of the first equal sign are trimmed and one level
// of single or double quotes is stripped from the prefix; a line with no
// equal sign at all is an error. The package and prefix themselves are not
// validated; the file is assumed to be checked when it is edited.
//
// An ordered map keeps scans over the table deterministic.
func loadPrefixMappings(path string) (*btree.Map[string, string], error) {
	mappings := new(btree.Map[string, string])
	err := parseSimpleFile(path, func(line string) error {
		pkg, prefix, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("line without equal sign: %q", line)
		}
		mappings.Set(strings.TrimSpace(pkg), unquote(strings.TrimSpace(prefix)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

// loadPackageExceptions reads a file of bare package names, one per line.
func loadPackageExceptions(path string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	err := parseSimpleFile(path, func(line string) error {
		set[line] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// unquote strips one level of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

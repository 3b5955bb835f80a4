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
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Apple's memory management conventions give special meaning to selectors
// starting with certain words; generated accessors that happen to spell one
// need annotating so ARC makes the right ownership assumptions.

var retainedNamePrefixes = []string{"new", "alloc", "copy", "mutableCopy"}

// IsRetainedName reports whether name begins with a word that ARC treats as
// returning a retained value.
func IsRetainedName(name string) bool {
	return hasSpecialPrefix(name, retainedNamePrefixes)
}

// IsInitName reports whether name begins with "init".
func IsInitName(name string) bool {
	return hasSpecialPrefix(name, []string{"init"})
}

// hasSpecialPrefix reports whether name starts with one of the given words.
// When name is longer than the matched word, the next character must not be
// lowercase, so "newton" does not count as "new" but "newTon" and "new_ton"
// do.
func hasSpecialPrefix(name string, words []string) bool {
	for _, word := range words {
		if !strings.HasPrefix(name, word) {
			continue
		}
		if len(name) == len(word) || !isASCIILower(name[len(word)]) {
			return true
		}
	}
	return false
}

// IsCreateName reports whether name contains a word that Core Foundation's
// Create Rule claims: "Create" or "Copy" not followed by a lowercase letter.
//
// The docs don't say anything about the characters before the special word,
// so something like "FOOCreate" counts too; callers then annotate with
// cf_returns_not_retained and things work as desired either way.
func IsCreateName(name string) bool {
	for _, word := range []string{"Create", "Copy"} {
		pos := strings.Index(name, word)
		if pos < 0 {
			continue
		}
		end := pos + len(word)
		return end == len(name) || !isASCIILower(name[end])
	}
	return false
}

// UnCamelCaseEnumShortName converts a short enum value name back to its
// declared UPPER_SNAKE form for use in text format.
func UnCamelCaseEnumShortName(name string) string {
	var buf strings.Builder
	for i := range len(name) {
		c := name[i]
		if i > 0 && isASCIIUpper(c) {
			buf.WriteByte('_')
		}
		if isASCIILower(c) {
			c &^= 0x20
		}
		buf.WriteByte(c)
	}
	return buf.String()
}

// UnCamelCaseFieldName reverses FieldName for diagnostics that want the
// declared name: it strips the _p and Array decorations and undoes the camel
// casing. Group fields keep their leading capital instead of being
// snake-cased.
func UnCamelCaseFieldName(name string, fd protoreflect.FieldDescriptor) string {
	worker := strings.TrimSuffix(name, "_p")
	if fd.Cardinality() == protoreflect.Repeated {
		worker = strings.TrimSuffix(worker, "Array")
	}
	if fd.Kind() == protoreflect.GroupKind {
		return capitalizeFirst(worker)
	}
	var buf strings.Builder
	for i := range len(worker) {
		c := worker[i]
		if isASCIIUpper(c) {
			if i > 0 {
				buf.WriteByte('_')
			}
			c |= 0x20
		}
		buf.WriteByte(c)
	}
	return buf.String()
}

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

// Package cases converts declared schema names into camel case for use in
// generated Objective-C identifiers.
//
// Declared names are ASCII by the proto language grammar, so all of the
// scanning here is byte-wise.
package cases

import (
	"iter"
	"strings"
)

// upperSegments are words that render fully uppercase in camel-case output,
// matching Apple's conventions for initialisms.
var upperSegments = map[string]bool{
	"url":   true,
	"http":  true,
	"https": true,
}

// Words yields the word segments of a declared name, already folded to
// lowercase.
//
// A segment is a maximal run of digits, of letters continuing a word, or of
// uppercase letters. A lowercase letter continues both a lowercase and an
// uppercase run, so "FOOBar" splits as [foobar], while "FooBar" splits as
// [foo, bar]. Any other byte is a separator: it closes the current run and
// contributes nothing.
func Words(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		const (
			sep = iota
			digit
			lower
			upper
		)
		var cur []byte
		prev := sep
		flush := func() bool {
			if len(cur) == 0 {
				return true
			}
			word := string(cur)
			cur = cur[:0]
			return yield(word)
		}
		for i := range len(s) {
			c := s[i]
			switch {
			case c >= '0' && c <= '9':
				if prev != digit && !flush() {
					return
				}
				cur = append(cur, c)
				prev = digit
			case c >= 'a' && c <= 'z':
				if prev != lower && prev != upper && !flush() {
					return
				}
				cur = append(cur, c)
				prev = lower
			case c >= 'A' && c <= 'Z':
				if prev != upper && !flush() {
					return
				}
				cur = append(cur, c|0x20)
				prev = upper
			default:
				if !flush() {
					return
				}
				prev = sep
			}
		}
		flush()
	}
}

// Camel joins the words of s in camel case. Words in the upper-segment set
// render fully uppercase; when such a word leads the result it keeps its
// first character uppercase even if capitalizeFirst is false.
func Camel(s string, capitalizeFirst bool) string {
	buf := new(strings.Builder)
	firstWordForcesUpper := false
	for word := range Words(s) {
		if upperSegments[word] {
			if buf.Len() == 0 {
				firstWordForcesUpper = true
			}
			buf.WriteString(strings.ToUpper(word))
			continue
		}
		for i := range len(word) {
			c := word[i]
			if i == 0 && c >= 'a' && c <= 'z' {
				c &^= 0x20
			}
			buf.WriteByte(c)
		}
	}
	out := buf.String()
	if out != "" && !capitalizeFirst && !firstWordForcesUpper && out[0] >= 'A' && out[0] <= 'Z' {
		out = string(out[0]|0x20) + out[1:]
	}
	return out
}

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

import "strings"

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isASCIILower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// capitalizeFirst upper-cases the first byte of s if it is a lowercase
// letter.
func capitalizeFirst(s string) string {
	if s == "" || !isASCIILower(s[0]) {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}

// isReservedCIdentifier reports whether input is an identifier C reserves for
// the implementation: an underscore followed by an uppercase letter or
// another underscore. Callers hand in camel-cased names, so this mostly
// guards declared names that arrive with a leading underscore.
func isReservedCIdentifier(input string) bool {
	return len(input) > 2 && input[0] == '_' &&
		(input[1] == '_' || isASCIIUpper(input[1]))
}

// sanitizeName prepends prefix when input is missing it and appends suffix
// when the prefixed spelling collides with a reserved identifier. The second
// return value is the suffix that was applied, or "" when none was.
//
// Prefixing happens before the collision check: collisions are defined on the
// final, prefixed spelling. The name is "missing a prefix" when it does not
// start with prefix, is exactly the prefix, or has a lowercase letter right
// after the matched prefix ("ABCfoo" still needs prefixing, "ABCFoo" does
// not).
func sanitizeName(prefix, input, suffix string) (string, string) {
	var sanitized string
	if strings.HasPrefix(input, prefix) {
		if len(input) == len(prefix) || !isASCIIUpper(input[len(prefix)]) {
			sanitized = prefix + input
		} else {
			sanitized = input
		}
	} else {
		sanitized = prefix + input
	}
	if isReservedCIdentifier(sanitized) || reservedWords[sanitized] || nsObjectMethods[sanitized] {
		return sanitized + suffix, suffix
	}
	return sanitized, ""
}

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

package names_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/protoc-gen-objc/names"
)

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                    string
		prefix, input, suffix   string
		want, wantSuffixApplied string
	}{
		{
			name:   "prefix added",
			prefix: "ABC", input: "Foo", suffix: "_Class",
			want: "ABCFoo",
		},
		{
			name:   "already prefixed",
			prefix: "ABC", input: "ABCFoo", suffix: "_Class",
			want: "ABCFoo",
		},
		{
			name: "lowercase after matched prefix forces re-prefixing",
			// "ABCclass" only accidentally starts with the prefix.
			prefix: "ABC", input: "ABCclass", suffix: "_Class",
			want: "ABCABCclass",
		},
		{
			name:   "input equal to prefix forces re-prefixing",
			prefix: "ABC", input: "ABC", suffix: "_Class",
			want: "ABCABC",
		},
		{
			name:  "C++ keyword",
			input: "class", suffix: "_Class",
			want: "class_Class", wantSuffixApplied: "_Class",
		},
		{
			name:  "objc keyword",
			input: "id", suffix: "_p",
			want: "id_p", wantSuffixApplied: "_p",
		},
		{
			name:  "NSObject method",
			input: "retain", suffix: "_p",
			want: "retain_p", wantSuffixApplied: "_p",
		},
		{
			name:  "MacTypes name",
			input: "Size", suffix: "_Value",
			want: "Size_Value", wantSuffixApplied: "_Value",
		},
		{
			name:   "prefixing resolves the collision",
			prefix: "ABC", input: "Fixed", suffix: "_Class",
			want: "ABCFixed",
		},
		{
			name:  "reserved C identifier",
			input: "_Foo", suffix: "_p",
			want: "_Foo_p", wantSuffixApplied: "_p",
		},
		{
			name:  "not reserved",
			input: "fooBar", suffix: "_p",
			want: "fooBar",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, suffixApplied := names.SanitizeName(test.prefix, test.input, test.suffix)
			assert.Equal(t, test.want, got)
			assert.Equal(t, test.wantSuffixApplied, suffixApplied)
		})
	}
}

func TestIsReservedCIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"_Foo", true},
		{"__foo", true},
		{"___", true},
		{"_foo", false},
		{"foo", false},
		{"", false},
		// Too short for the rule to apply.
		{"_F", false},
		{"__", false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, names.IsReservedCIdentifier(test.input))
		})
	}
}

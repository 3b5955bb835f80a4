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

package cases_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/protoc-gen-objc/internal/cases"
)

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		str  string
		want []string
	}{
		{str: ""},
		{str: "_"},
		{str: "__"},

		{str: "foo", want: []string{"foo"}},
		{str: "_foo", want: []string{"foo"}},
		{str: "foo_", want: []string{"foo"}},
		{str: "foo_bar", want: []string{"foo", "bar"}},
		{str: "foo__bar", want: []string{"foo", "bar"}},

		{str: "fooBar", want: []string{"foo", "bar"}},
		{str: "FooBar", want: []string{"foo", "bar"}},
		{str: "foo_Bar", want: []string{"foo", "bar"}},

		// An uppercase letter only starts a word when it does not follow
		// another uppercase letter, and a lowercase letter continues an
		// uppercase run.
		{str: "FOOBar", want: []string{"foobar"}},
		{str: "FOO_BAR", want: []string{"foo", "bar"}},

		{str: "foo4bar", want: []string{"foo", "4", "bar"}},
		{str: "foo42bar", want: []string{"foo", "42", "bar"}},
		{str: "foo_4_bar", want: []string{"foo", "4", "bar"}},
		{str: "4foo", want: []string{"4", "foo"}},
		{str: "http2", want: []string{"http", "2"}},
	}

	for _, test := range tests {
		t.Run(test.str, func(t *testing.T) {
			t.Parallel()
			got := slices.Collect(cases.Words(test.str))
			assert.Equal(t, test.want, got)
		})
	}
}

func TestCamel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		str          string
		upper, lower string
	}{
		{str: "", upper: "", lower: ""},
		{str: "___", upper: "", lower: ""},

		{str: "foo", upper: "Foo", lower: "foo"},
		{str: "foo_bar", upper: "FooBar", lower: "fooBar"},
		{str: "foo_bar_baz", upper: "FooBarBaz", lower: "fooBarBaz"},
		{str: "fooBar", upper: "FooBar", lower: "fooBar"},
		{str: "FooBar", upper: "FooBar", lower: "fooBar"},
		{str: "foo7bar", upper: "Foo7Bar", lower: "foo7Bar"},
		{str: "data_type", upper: "DataType", lower: "dataType"},

		// Upper-segment words render fully uppercase, and pin the first
		// character when they lead the name.
		{str: "http_request_url", upper: "HTTPRequestURL", lower: "HTTPRequestURL"},
		{str: "url_key", upper: "URLKey", lower: "URLKey"},
		{str: "foo_http", upper: "FooHTTP", lower: "fooHTTP"},
		{str: "https_port", upper: "HTTPSPort", lower: "HTTPSPort"},
		{str: "request_http_url", upper: "RequestHTTPURL", lower: "requestHTTPURL"},
	}

	for _, test := range tests {
		t.Run(test.str, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.upper, cases.Camel(test.str, true))
			assert.Equal(t, test.lower, cases.Camel(test.str, false))
		})
	}
}

func TestCamelIdempotent(t *testing.T) {
	t.Parallel()

	// Re-applying the conversion to an already camel-cased name is a no-op
	// (for names that do not contain upper-segment words, which collapse).
	for _, str := range []string{
		"foo", "foo_bar", "foo7bar", "FooBar", "storage_modes", "foo_4_bar",
	} {
		once := cases.Camel(str, true)
		assert.Equal(t, once, cases.Camel(once, true), "input %q", str)
	}
}

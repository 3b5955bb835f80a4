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
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/btree"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/protoc-gen-objc/reporter"
)

// ValidateOptions controls ValidateClassPrefixes.
type ValidateOptions struct {
	// ExpectedPrefixesPath is the file registering the sanctioned prefix for
	// each package. Empty means no registry; "-" disables validation
	// entirely.
	ExpectedPrefixesPath string
	// Suppressions lists files to skip validation for. An entry matches a
	// file's path verbatim or as a doublestar glob pattern.
	Suppressions []string
	// MustBeRegistered makes an explicit prefix that is missing from the
	// expected prefixes file an error instead of a warning.
	MustBeRegistered bool
	// RequirePrefixes makes a file without any objc_class_prefix option an
	// error.
	RequirePrefixes bool
}

// ValidateClassPrefixes checks the objc_class_prefix option of every given
// file against the expected prefixes file: a registered package must declare
// exactly its registered prefix, and an unregistered prefix must not reuse a
// prefix registered to some other package. Style findings are reported as
// warnings through handler.
//
// Validation stops at the first hard error. A host that wants all errors at
// once can install an ErrorReporter on handler that records the error and
// returns nil; handler.Error then reports whether any were seen.
func ValidateClassPrefixes(files []protoreflect.FileDescriptor, opts ValidateOptions, handler *reporter.Handler) error {
	// A path of "-" turns off even the most basic of checks.
	if opts.ExpectedPrefixesPath == "-" {
		return nil
	}

	expected := new(btree.Map[string, string])
	if opts.ExpectedPrefixesPath != "" {
		var err error
		expected, err = loadPrefixMappings(opts.ExpectedPrefixesPath)
		if err != nil {
			return fmt.Errorf("failed to load expected package prefixes file %q: %w", opts.ExpectedPrefixesPath, err)
		}
	}

	for _, fd := range files {
		if suppressed(fd.Path(), opts.Suppressions) {
			continue
		}
		if err := validateClassPrefix(fd, opts, expected, handler); err != nil {
			return err
		}
	}
	return handler.Error()
}

// suppressed reports whether path is covered by a suppression entry, either
// verbatim or as a doublestar pattern.
func suppressed(path string, suppressions []string) bool {
	if slices.Contains(suppressions, path) {
		return true
	}
	for _, pattern := range suppressions {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

func validateClassPrefix(
	fd protoreflect.FileDescriptor,
	opts ValidateOptions,
	expected *btree.Map[string, string],
	handler *reporter.Handler,
) error {
	// Reminder: an explicit prefix option of "" is valid. With package
	// prefixing enabled, a legacy file may need to be generated without any
	// prefix at all.
	prefix, hasPrefix := explicitPrefix(fd)
	key := lookupKey(fd)

	// See if there is an expected prefix for this package, and report when
	// it doesn't match (wrong or missing).
	if want, ok := expected.Get(key); ok {
		if hasPrefix && prefix == want {
			return nil
		}
		msg := fmt.Sprintf("expected 'option objc_class_prefix = %q;'", want)
		if pkg := fd.Package(); pkg != "" {
			msg += fmt.Sprintf(" for package %q", pkg)
		}
		if hasPrefix {
			msg += fmt.Sprintf("; but found %q instead", prefix)
		}
		return handler.HandleErrorf(fd.Path(), "%s", msg)
	}

	if !hasPrefix {
		if opts.RequirePrefixes {
			return handler.HandleErrorf(fd.Path(), "does not have a required 'option objc_class_prefix'")
		}
		return nil
	}

	haveExpectedFile := opts.ExpectedPrefixesPath != ""

	if prefix != "" && haveExpectedFile {
		// Overlap with another package is allowed, but only when the
		// registry lists it explicitly. When both a package entry and a
		// no_package entry claim the prefix, report the package one.
		var otherKey string
		expected.Scan(func(k, v string) bool {
			if v != prefix {
				return true
			}
			otherKey = k
			// Stop on the first real package listing; keep looking past
			// no_package file entries in case a package one follows.
			return strings.HasPrefix(k, noPackageKey)
		})
		if otherKey != "" {
			var owner string
			if other, ok := strings.CutPrefix(otherKey, noPackageKey); ok {
				owner = fmt.Sprintf("file %q", other)
			} else {
				owner = fmt.Sprintf("package %q", otherKey)
			}
			return handler.HandleErrorf(fd.Path(),
				"found 'option objc_class_prefix = %q;' but that prefix is already used for %s;"+
					" it can only be reused by adding '%s = %s' to the expected prefixes file (%s)",
				prefix, owner, key, prefix, opts.ExpectedPrefixesPath)
		}
	}

	// Make sure the prefix is a reasonable value by Apple's rules. The
	// registered-prefix path above implicitly whitelists anything that
	// doesn't meet them.
	if prefix != "" && !isASCIIUpper(prefix[0]) {
		handler.HandleWarningf(fd.Path(),
			"invalid 'option objc_class_prefix = %q;'; it should start with a capital letter", prefix)
	}
	if prefix != "" && len(prefix) < 3 {
		// Apple reserves two-character prefixes for themselves; they do use
		// some three-character ones but haven't updated the rules.
		handler.HandleWarningf(fd.Path(),
			"invalid 'option objc_class_prefix = %q;'; it should be at least 3 characters long", prefix)
	}

	if haveExpectedFile {
		registration := key + " = " + registryValue(prefix)
		if opts.MustBeRegistered {
			return handler.HandleErrorf(fd.Path(),
				"'option objc_class_prefix = %q;' is not registered; add '%s' to the expected prefixes file (%s)",
				prefix, registration, opts.ExpectedPrefixesPath)
		}
		handler.HandleWarningf(fd.Path(),
			"found unexpected 'option objc_class_prefix = %q;'; consider adding '%s' to the expected prefixes file (%s)",
			prefix, registration, opts.ExpectedPrefixesPath)
	}
	return nil
}

// registryValue renders a prefix the way it would be written on the right of
// a registry line; an empty prefix needs explicit quotes to survive.
func registryValue(prefix string) string {
	if prefix == "" {
		return `""`
	}
	return prefix
}

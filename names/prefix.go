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
	"os"
	"strings"

	"github.com/tidwall/btree"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/bufbuild/protoc-gen-objc/internal/cases"
	"github.com/bufbuild/protoc-gen-objc/reporter"
)

// noPackageKey is the lookup key prefix used to address files that declare no
// package in the mappings, exceptions, and expected prefixes files. There is
// no ambiguity with real packages since package names never contain ':'.
const noPackageKey = "no_package:"

// Namer resolves class prefixes and synthesizes Objective-C identifiers for
// schema entities.
//
// The exported fields configure prefix resolution and must not change once
// any method has been called; to point at a different mappings or exceptions
// file, build a new Namer. The mappings and exceptions files are read at most
// once, on first use. A Namer is not safe for concurrent use.
type Namer struct {
	// UsePackageAsPrefix enables deriving a class prefix from the proto
	// package for files that declare no prefix and have no mapping entry.
	UsePackageAsPrefix bool
	// ForcedPrefix, when using the proto package as the prefix, is added in
	// front of the derived value.
	ForcedPrefix string
	// MappingsPath is an optional file of `package = prefix` lines consulted
	// for files that do not declare an explicit prefix.
	MappingsPath string
	// ExceptionsPath is an optional file listing packages, one per line,
	// exempt from package-derived prefixing.
	ExceptionsPath string
	// Reporter receives a warning when the mappings or exceptions file
	// cannot be parsed; resolution then proceeds as if the file were empty.
	// When nil, warnings are written to stderr.
	Reporter reporter.Reporter

	mappings   *btree.Map[string, string]
	exceptions map[string]struct{}
}

// lookupKey returns the key addressing fd in the mappings and expected
// prefixes files.
func lookupKey(fd protoreflect.FileDescriptor) string {
	if pkg := fd.Package(); pkg != "" {
		return string(pkg)
	}
	return noPackageKey + fd.Path()
}

func fileOptions(fd protoreflect.FileDescriptor) *descriptorpb.FileOptions {
	opts, _ := fd.Options().(*descriptorpb.FileOptions)
	return opts
}

// explicitPrefix returns the file's objc_class_prefix option and whether it
// was present at all. An explicitly empty prefix is meaningful: it means "no
// prefix, by design" even when package-derived prefixing is on.
func explicitPrefix(fd protoreflect.FileDescriptor) (string, bool) {
	opts := fileOptions(fd)
	if opts == nil || opts.ObjcClassPrefix == nil {
		return "", false
	}
	return opts.GetObjcClassPrefix(), true
}

// FilePrefix resolves the class prefix for fd. The file's own option always
// wins, then a mappings-file entry, then a prefix derived from the package
// when that is enabled and the package is not exempted; otherwise the prefix
// is empty.
func (n *Namer) FilePrefix(fd protoreflect.FileDescriptor) string {
	if prefix, ok := explicitPrefix(fd); ok {
		return prefix
	}
	if prefix := n.mappedPrefix(fd); prefix != "" {
		return prefix
	}
	if !n.UsePackageAsPrefix || n.isPackageExempted(string(fd.Package())) {
		return ""
	}
	return n.derivePrefix(string(fd.Package()))
}

func (n *Namer) mappedPrefix(fd protoreflect.FileDescriptor) string {
	if n.mappings == nil {
		// A non-nil empty map marks the file as loaded (or failed) so it is
		// not re-read on every call.
		n.mappings = new(btree.Map[string, string])
		if n.MappingsPath != "" {
			mappings, err := loadPrefixMappings(n.MappingsPath)
			if err != nil {
				n.warnf(n.MappingsPath, "failed to parse proto package to prefix mappings file: %v", err)
			} else {
				n.mappings = mappings
			}
		}
	}
	prefix, _ := n.mappings.Get(lookupKey(fd))
	return prefix
}

func (n *Namer) isPackageExempted(pkg string) bool {
	if n.exceptions == nil {
		n.exceptions = make(map[string]struct{})
		if n.ExceptionsPath != "" {
			exceptions, err := loadPackageExceptions(n.ExceptionsPath)
			if err != nil {
				n.warnf(n.ExceptionsPath, "failed to parse package prefix exceptions file: %v", err)
			} else {
				n.exceptions = exceptions
			}
		}
	}
	_, ok := n.exceptions[pkg]
	return ok
}

// derivePrefix transforms a package into a prefix: each dot-separated segment
// is camel-cased, the segments are joined with underscores, and an underscore
// is appended; the forced prefix, if any, goes in front. An empty package
// derives to no prefix at all.
func (n *Namer) derivePrefix(pkg string) string {
	var result strings.Builder
	for segment := range strings.SplitSeq(pkg, ".") {
		part := cases.Camel(segment, true)
		if part == "" {
			continue
		}
		if result.Len() > 0 {
			result.WriteByte('_')
		}
		result.WriteString(part)
	}
	if result.Len() == 0 {
		return ""
	}
	return n.ForcedPrefix + result.String() + "_"
}

func (n *Namer) warnf(path, format string, args ...any) {
	warning := reporter.Errorf(path, format, args...)
	if n.Reporter != nil {
		n.Reporter.Warning(warning)
		return
	}
	fmt.Fprintf(os.Stderr, "warning: %v\n", warning)
}

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

	"github.com/bufbuild/protoc-gen-objc/internal/cases"
)

// DefaultFrameworkName is the name of the framework the runtime library
// ships in under CocoaPods.
const DefaultFrameworkName = "Protobuf"

func pathSplit(path string) (dir, base string) {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

// stripProto removes a trailing .proto or .protodevel extension.
func stripProto(name string) string {
	if stripped, ok := strings.CutSuffix(name, ".protodevel"); ok {
		return stripped
	}
	stripped, _ := strings.CutSuffix(name, ".proto")
	return stripped
}

// BaseFileName returns the final path component of the file's name.
func BaseFileName(fd protoreflect.FileDescriptor) string {
	_, base := pathSplit(fd.Path())
	return base
}

// FilePath returns the path for the files generated from fd: the directory is
// kept and the basename is camel-cased, extension stripped, to be more
// Objective-C friendly.
func FilePath(fd protoreflect.FileDescriptor) string {
	dir, base := pathSplit(fd.Path())
	base = cases.Camel(stripProto(base), true)
	if dir != "" {
		return dir + "/" + base
	}
	return base
}

// FilePathBasename is FilePath without the directory.
func FilePathBasename(fd protoreflect.FileDescriptor) string {
	_, base := pathSplit(fd.Path())
	return cases.Camel(stripProto(base), true)
}

// FrameworkImportSymbol returns the preprocessor symbol that switches
// generated imports for the given framework into framework form:
// GPB_USE_<NAME>_FRAMEWORK_IMPORTS.
func FrameworkImportSymbol(framework string) string {
	return "GPB_USE_" + strings.ToUpper(framework) + "_FRAMEWORK_IMPORTS"
}

// IsBundledProtoFile reports whether fd is one of the well-known types
// shipped generated with the runtime library. The check is by path, not by
// package or prefix, because some google/protobuf files (descriptor.proto)
// are not shipped generated.
func IsBundledProtoFile(fd protoreflect.FileDescriptor) bool {
	switch fd.Path() {
	case "google/protobuf/any.proto",
		"google/protobuf/api.proto",
		"google/protobuf/duration.proto",
		"google/protobuf/empty.proto",
		"google/protobuf/field_mask.proto",
		"google/protobuf/source_context.proto",
		"google/protobuf/struct.proto",
		"google/protobuf/timestamp.proto",
		"google/protobuf/type.proto",
		"google/protobuf/wrappers.proto":
		return true
	}
	return false
}

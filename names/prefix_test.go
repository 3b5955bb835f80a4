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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/bufbuild/protoc-gen-objc/internal/prototest"
	"github.com/bufbuild/protoc-gen-objc/names"
	"github.com/bufbuild/protoc-gen-objc/reporter"
)

func fileWithPackage(t *testing.T, path, pkg string) protoreflect.FileDescriptor {
	t.Helper()
	fd := &descriptorpb.FileDescriptorProto{
		Name:   proto.String(path),
		Syntax: proto.String("proto3"),
	}
	if pkg != "" {
		fd.Package = proto.String(pkg)
	}
	return prototest.File(t, fd)
}

func fileWithPrefix(t *testing.T, path, pkg, prefix string) protoreflect.FileDescriptor {
	t.Helper()
	fd := &descriptorpb.FileDescriptorProto{
		Name:   proto.String(path),
		Syntax: proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			ObjcClassPrefix: proto.String(prefix),
		},
	}
	if pkg != "" {
		fd.Package = proto.String(pkg)
	}
	return prototest.File(t, fd)
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestFilePrefixExplicitOption(t *testing.T) {
	t.Parallel()

	// The file's own option always wins, even over the mappings file, and
	// even when it is explicitly empty.
	n := names.Namer{
		UsePackageAsPrefix: true,
		MappingsPath:       writeFile(t, "mappings.txt", "my.pkg = XYZ\n"),
	}
	assert.Equal(t, "ABC", n.FilePrefix(fileWithPrefix(t, "a.proto", "my.pkg", "ABC")))
	assert.Equal(t, "", n.FilePrefix(fileWithPrefix(t, "b.proto", "my.pkg", "")))
}

func TestFilePrefixMappings(t *testing.T) {
	t.Parallel()

	n := names.Namer{
		MappingsPath: writeFile(t, "mappings.txt",
			"# prefix assignments\n"+
				"\n"+
				"my.pkg = XYZ\n"+
				"quoted.pkg = \"QUO\"\n"+
				"no_package:plain/no_pkg.proto = 'NPK'\n"),
	}
	assert.Equal(t, "XYZ", n.FilePrefix(fileWithPackage(t, "a.proto", "my.pkg")))
	assert.Equal(t, "QUO", n.FilePrefix(fileWithPackage(t, "b.proto", "quoted.pkg")))
	assert.Equal(t, "NPK", n.FilePrefix(fileWithPackage(t, "plain/no_pkg.proto", "")))
	assert.Equal(t, "", n.FilePrefix(fileWithPackage(t, "c.proto", "other.pkg")))
}

func TestFilePrefixDerived(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pkg, forced, want string
	}{
		{pkg: "my_pkg.sub", want: "MyPkg_Sub_"},
		{pkg: "a.b", want: "A_B_"},
		{pkg: "http.service", want: "HTTP_Service_"},
		{pkg: "my_pkg.sub", forced: "GPB", want: "GPBMyPkg_Sub_"},
		// An empty package derives to no prefix at all.
		{pkg: "", forced: "GPB", want: ""},
	}
	for _, test := range tests {
		n := names.Namer{
			UsePackageAsPrefix: true,
			ForcedPrefix:       test.forced,
		}
		assert.Equal(t, test.want, n.FilePrefix(fileWithPackage(t, "a.proto", test.pkg)), "package %q", test.pkg)
	}

	// Derivation is gated on the flag.
	var off names.Namer
	assert.Equal(t, "", off.FilePrefix(fileWithPackage(t, "a.proto", "my_pkg.sub")))
}

func TestFilePrefixExceptions(t *testing.T) {
	t.Parallel()

	n := names.Namer{
		UsePackageAsPrefix: true,
		ExceptionsPath:     writeFile(t, "exceptions.txt", "exempt.pkg\n"),
	}
	assert.Equal(t, "", n.FilePrefix(fileWithPackage(t, "a.proto", "exempt.pkg")))
	assert.Equal(t, "Other_Pkg_", n.FilePrefix(fileWithPackage(t, "b.proto", "other.pkg")))
}

func TestFilePrefixMalformedMappings(t *testing.T) {
	t.Parallel()

	// A broken mappings file warns and degrades to an empty table; it is
	// only read once.
	var warnings []reporter.ErrorWithFile
	n := names.Namer{
		UsePackageAsPrefix: true,
		MappingsPath:       writeFile(t, "mappings.txt", "my.pkg XYZ\n"),
		Reporter: reporter.NewReporter(nil, func(err reporter.ErrorWithFile) {
			warnings = append(warnings, err)
		}),
	}
	assert.Equal(t, "My_Pkg_", n.FilePrefix(fileWithPackage(t, "a.proto", "my.pkg")))
	assert.Equal(t, "My_Pkg_", n.FilePrefix(fileWithPackage(t, "b.proto", "my.pkg")))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Error(), "line without equal sign")
}

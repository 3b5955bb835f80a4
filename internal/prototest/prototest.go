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

// Package prototest has helpers for building linked descriptors in tests.
package prototest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// File links a FileDescriptorProto into a protoreflect.FileDescriptor. Any
// dependencies must already be linked and are made resolvable by path.
func File(t *testing.T, fd *descriptorpb.FileDescriptorProto, deps ...protoreflect.FileDescriptor) protoreflect.FileDescriptor {
	t.Helper()
	files := new(protoregistry.Files)
	for _, dep := range deps {
		require.NoError(t, files.RegisterFile(dep))
	}
	file, err := protodesc.NewFile(fd, files)
	require.NoError(t, err)
	return file
}

// Message looks up a message declared in file by its full name.
func Message(t *testing.T, file protoreflect.FileDescriptor, name protoreflect.FullName) protoreflect.MessageDescriptor {
	t.Helper()
	md, ok := descriptor(t, file, name).(protoreflect.MessageDescriptor)
	require.True(t, ok, "%s is not a message", name)
	return md
}

// Enum looks up an enum declared in file by its full name.
func Enum(t *testing.T, file protoreflect.FileDescriptor, name protoreflect.FullName) protoreflect.EnumDescriptor {
	t.Helper()
	ed, ok := descriptor(t, file, name).(protoreflect.EnumDescriptor)
	require.True(t, ok, "%s is not an enum", name)
	return ed
}

func descriptor(t *testing.T, file protoreflect.FileDescriptor, name protoreflect.FullName) protoreflect.Descriptor {
	t.Helper()
	files := new(protoregistry.Files)
	require.NoError(t, files.RegisterFile(file))
	d, err := files.FindDescriptorByName(name)
	require.NoError(t, err)
	return d
}

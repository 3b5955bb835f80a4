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

// Package names synthesizes legal, collision-free Objective-C identifiers
// from the declared names in a set of compiled proto files, and validates the
// class prefixes those files declare against an externally maintained
// registry.
//
// There is one function per kind of generated identifier (FileClassName,
// ClassName, FieldName, ...) so the prefixing and suffixing rules stay
// consistent; templates should never case-convert or suffix names on their
// own. Operations that depend on the resolved class prefix are methods on
// [Namer]; the rest are plain functions.
package names

import (
	"slices"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/protoc-gen-objc/internal/cases"
)

// FileClassName returns the name of the root class generated for fd, which
// carries the file's descriptor data and extension registry.
func (n *Namer) FileClassName(fd protoreflect.FileDescriptor) string {
	prefix := n.FilePrefix(fd)
	name := cases.Camel(stripProto(BaseFileName(fd)), true) + "Root"
	// There aren't really any reserved words that end in "Root", but playing
	// it safe and checking.
	name, _ = sanitizeName(prefix, name, "_RootClass")
	return name
}

// classNameWorker joins the names of d's ancestor chain with underscores,
// outermost type first. Declared type names are used as is; the style guide
// calls for CamelCase and we trust it.
func classNameWorker(d protoreflect.Descriptor) string {
	var chain []string
	for cur := d; cur != nil; cur = cur.Parent() {
		if _, ok := cur.(protoreflect.FileDescriptor); ok {
			break
		}
		chain = append(chain, string(cur.Name()))
	}
	slices.Reverse(chain)
	return strings.Join(chain, "_")
}

// ClassName returns the name of the class generated for the message.
func (n *Namer) ClassName(md protoreflect.MessageDescriptor) string {
	name, _ := n.ClassNameAndSuffix(md)
	return name
}

// ClassNameAndSuffix is like ClassName, and also reports the disambiguation
// suffix that was appended to avoid a reserved name, if any.
func (n *Namer) ClassNameAndSuffix(md protoreflect.MessageDescriptor) (string, string) {
	prefix := n.FilePrefix(md.ParentFile())
	return sanitizeName(prefix, classNameWorker(md), "_Class")
}

// EnumName returns the name of the enum generated for ed.
//
//	message Fixed {
//	  message Size {...}
//	  enum Mumble {...}
//	}
//
// yields Fixed_Class, Fixed_Size, and Fixed_Mumble.
func (n *Namer) EnumName(ed protoreflect.EnumDescriptor) string {
	prefix := n.FilePrefix(ed.ParentFile())
	name, _ := sanitizeName(prefix, classNameWorker(ed), "_Enum")
	return name
}

// EnumValueName returns the generated name for a single enum value. For
// switch statement compatibility the value carries the full enum name, so it
// slightly diverges from how nested types work:
//
//	enum Fixed { FOO = 1; }
//
// yields Fixed_Enum with the value named Fixed_Enum_Foo, not Fixed_Foo.
func (n *Namer) EnumValueName(evd protoreflect.EnumValueDescriptor) string {
	enumName := n.EnumName(enumOf(evd))
	name := enumName + "_" + cases.Camel(string(evd.Name()), true)
	// There aren't really any reserved words with an underscore and a
	// leading capital letter, but playing it safe and checking.
	name, _ = sanitizeName("", name, "_Value")
	return name
}

// EnumValueShortName returns the leaf form of EnumValueName: just the value,
// without the enum name.
//
// The short name is recovered by stripping the enum name off the full value
// name, never by sanitizing the bare value. Sanitizing can diverge: enum
// StorageModes with a value "size" yields StorageModes_Size, but sanitizing
// "Size" on its own would grow a suffix the full name never got.
func (n *Namer) EnumValueShortName(evd protoreflect.EnumValueDescriptor) string {
	enumName := n.EnumName(enumOf(evd))
	return strings.TrimPrefix(n.EnumValueName(evd), enumName+"_")
}

func enumOf(evd protoreflect.EnumValueDescriptor) protoreflect.EnumDescriptor {
	return evd.Parent().(protoreflect.EnumDescriptor)
}

// nameForField returns the declared name the generated accessors are based
// on; groups use their message type's name instead of the field name.
func nameForField(fd protoreflect.FieldDescriptor) string {
	if fd.Kind() == protoreflect.GroupKind {
		return string(fd.Message().Name())
	}
	return string(fd.Name())
}

// FieldName returns the property name generated for the field.
func FieldName(fd protoreflect.FieldDescriptor) string {
	name := cases.Camel(nameForField(fd), false)
	if fd.IsList() {
		// Add "Array" before the reserved-word check runs.
		name += "Array"
	} else if strings.HasSuffix(name, "Array") {
		// A singular field that happens to end in "Array" forces the _p
		// suffix so it can never read as a repeated one.
		name += "_p"
	}
	name, _ = sanitizeName("", name, "_p")
	return name
}

// FieldNameCapitalized returns FieldName with the first letter upper-cased,
// for use in has*/set* selectors. The suffix decision is shared with
// FieldName, not recomputed.
func FieldNameCapitalized(fd protoreflect.FieldDescriptor) string {
	return capitalizeFirst(FieldName(fd))
}

// OneofName returns the property name generated for a oneof group. There is
// no sanitize pass: callers always pair the name with a suffix such as
// OneOfCase, which never collides with a reserved word.
func OneofName(od protoreflect.OneofDescriptor) string {
	return cases.Camel(string(od.Name()), false)
}

// OneofNameCapitalized returns OneofName with the first letter upper-cased.
func OneofNameCapitalized(od protoreflect.OneofDescriptor) string {
	return capitalizeFirst(OneofName(od))
}

// OneofEnumName returns the name of the enum that reports which of the
// oneof's fields is set.
func (n *Namer) OneofEnumName(od protoreflect.OneofDescriptor) string {
	containing := n.ClassName(od.Parent().(protoreflect.MessageDescriptor))
	return containing + "_" + cases.Camel(string(od.Name()), true) + "_OneOfCase"
}

// ExtensionMethodName returns the accessor name generated for an extension
// field.
func ExtensionMethodName(fd protoreflect.FieldDescriptor) string {
	name, _ := sanitizeName("", cases.Camel(nameForField(fd), false), "_Extension")
	return name
}

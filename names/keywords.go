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

func makeWordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}

// reservedWords are identifiers a generated name must never spell exactly:
// language keywords, macros, and runtime method names that would otherwise
// end up overridden or shadowed.
var reservedWords = makeWordSet([]string{
	// Objective-C "keywords" that aren't in C.
	"id", "_cmd", "super", "in", "out", "inout", "bycopy", "byref", "oneway",
	"self", "instancetype", "nullable", "nonnull", "nil", "Nil",
	"YES", "NO", "weak",

	// C/C++ keywords (incl. C++11).
	"and", "and_eq", "alignas", "alignof", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char16_t", "char32_t", "class",
	"compl", "const", "constexpr", "const_cast", "continue", "decltype",
	"default", "delete", "double", "dynamic_cast", "else", "enum", "explicit",
	"export", "extern", "false", "float", "for", "friend", "goto", "if",
	"inline", "int", "long", "mutable", "namespace", "new", "noexcept", "not",
	"not_eq", "nullptr", "operator", "or", "or_eq", "private", "protected",
	"public", "register", "reinterpret_cast", "return", "short", "signed",
	"sizeof", "static", "static_assert", "static_cast", "struct", "switch",
	"template", "this", "thread_local", "throw", "true", "try", "typedef",
	"typeid", "typename", "union", "unsigned", "using", "virtual", "void",
	"volatile", "wchar_t", "while", "xor", "xor_eq",

	// C99 keywords.
	"restrict",

	// GCC/Clang extension.
	"typeof",

	// Not a keyword, but will break you.
	"NULL",

	// C spec calls for these to be macros, so depending on what they are
	// defined to be they can lead to odd errors for some Xcode/SDK versions.
	"stdin", "stdout", "stderr",

	// Objective-C runtime typedefs from <objc/runtime.h>.
	"Category", "Ivar", "Method", "Protocol",

	// GPBMessage instance methods that a field or type name could collide
	// with. Only no-argument methods matter; setFoo:/hasFoo: style selectors
	// can't be spelled by a bare identifier.
	"clear", "data", "delimitedData", "descriptor", "extensionRegistry",
	"extensionsCurrentlySet", "initialized", "isInitialized", "serializedSize",
	"sortedExtensionsInUse", "unknownFields",

	// MacTypes.h names.
	"Fixed", "Fract", "Size", "LogicalAddress", "PhysicalAddress", "ByteCount",
	"ByteOffset", "Duration", "AbsoluteTime", "OptionBits", "ItemCount",
	"PBVersion", "ScriptCode", "LangCode", "RegionCode", "OSType",
	"ProcessSerialNumber", "Point", "Rect", "FixedPoint", "FixedRect", "Style",
	"StyleParameter", "StyleField", "TimeScale", "TimeBase", "TimeRecord",
})

// nsObjectMethods are NSObject instance and class method selectors (and the
// leading words of keyed selectors) that a generated property getter could
// accidentally override.
var nsObjectMethods = makeWordSet([]string{
	"accessibilityActivate",
	"accessibilityActivationPoint",
	"accessibilityElements",
	"accessibilityElementsHidden",
	"accessibilityFrame",
	"accessibilityHint",
	"accessibilityIdentifier",
	"accessibilityLabel",
	"accessibilityLanguage",
	"accessibilityNavigationStyle",
	"accessibilityPath",
	"accessibilityPerformEscape",
	"accessibilityPerformMagicTap",
	"accessibilityTraits",
	"accessibilityValue",
	"accessibilityViewIsModal",
	"alloc",
	"allocWithZone",
	"allowsWeakReference",
	"attributeKeys",
	"autoContentAccessingProxy",
	"autorelease",
	"awakeAfterUsingCoder",
	"bindingCategories",
	"class",
	"classCode",
	"classDescription",
	"classForArchiver",
	"classForCoder",
	"classForKeyedArchiver",
	"classForKeyedUnarchiver",
	"classForPortCoder",
	"classFallbacksForKeyedArchiver",
	"className",
	"conformsToProtocol",
	"copy",
	"copyWithZone",
	"dealloc",
	"debugDescription",
	"description",
	"dictionaryWithValuesForKeys",
	"doesNotRecognizeSelector",
	"exposedBindings",
	"finalize",
	"forwardInvocation",
	"forwardingTargetForSelector",
	"hash",
	"init",
	"initialize",
	"instanceMethodForSelector",
	"instanceMethodSignatureForSelector",
	"instancesRespondToSelector",
	"isEqual",
	"isFault",
	"isKindOfClass",
	"isMemberOfClass",
	"isProxy",
	"isSubclassOfClass",
	"load",
	"methodForSelector",
	"methodSignatureForSelector",
	"mutableCopy",
	"mutableCopyWithZone",
	"new",
	"objectSpecifier",
	"observationInfo",
	"performSelector",
	"performSelectorInBackground",
	"performSelectorOnMainThread",
	"release",
	"respondsToSelector",
	"retain",
	"retainCount",
	"retainWeakReference",
	"scriptingProperties",
	"self",
	"setNilValueForKey",
	"setObservationInfo",
	"setScriptingProperties",
	"setValue",
	"setValuesForKeysWithDictionary",
	"superclass",
	"toManyRelationshipKeys",
	"toOneRelationshipKeys",
	"validateValue",
	"valueForKey",
	"valueForKeyPath",
	"valueForUndefinedKey",
	"version",
	"zone",
})

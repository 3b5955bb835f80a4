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

// Package options defines the configuration surface of the naming core. A
// host can fill GenerationOptions from its own flags, or load it from a YAML
// config file with Load.
package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/protoc-gen-objc/names"
	"github.com/bufbuild/protoc-gen-objc/reporter"
)

// GenerationOptions collects every knob the naming core reads.
type GenerationOptions struct {
	// UsePackageAsPrefix derives a class prefix from the proto package for
	// files that declare none.
	UsePackageAsPrefix bool `yaml:"use_package_as_prefix"`
	// ForcedPrefix is prepended to every package-derived prefix.
	ForcedPrefix string `yaml:"forced_prefix"`
	// PrefixMappingsPath points at an optional `package = prefix` mappings
	// file.
	PrefixMappingsPath string `yaml:"prefix_mappings_path"`
	// PrefixExceptionsPath points at an optional file of packages exempt
	// from package-derived prefixing, one per line.
	PrefixExceptionsPath string `yaml:"prefix_exceptions_path"`
	// ExpectedPrefixesPath points at the expected prefixes file used for
	// validation; "-" disables validation.
	ExpectedPrefixesPath string `yaml:"expected_prefixes_path"`
	// ExpectedPrefixesSuppressions lists file paths (or doublestar patterns)
	// excused from prefix validation.
	ExpectedPrefixesSuppressions []string `yaml:"expected_prefixes_suppressions"`
	// PrefixesMustBeRegistered requires every explicit prefix to appear in
	// the expected prefixes file.
	PrefixesMustBeRegistered bool `yaml:"prefixes_must_be_registered"`
	// RequirePrefixes requires every file to carry an objc_class_prefix
	// option.
	RequirePrefixes bool `yaml:"require_prefixes"`
}

// Load reads GenerationOptions from a YAML file. Unknown keys are an error so
// a typo cannot silently turn a governance check off.
func Load(path string) (*GenerationOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var opts GenerationOptions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse generation options file %s: %w", path, err)
	}
	return &opts, nil
}

// Namer builds a names.Namer configured from o. The reporter receives
// warnings when an optional mappings or exceptions file fails to parse and
// may be nil.
func (o *GenerationOptions) Namer(rep reporter.Reporter) *names.Namer {
	return &names.Namer{
		UsePackageAsPrefix: o.UsePackageAsPrefix,
		ForcedPrefix:       o.ForcedPrefix,
		MappingsPath:       o.PrefixMappingsPath,
		ExceptionsPath:     o.PrefixExceptionsPath,
		Reporter:           rep,
	}
}

// ValidateOptions extracts the subset of o consumed by
// names.ValidateClassPrefixes.
func (o *GenerationOptions) ValidateOptions() names.ValidateOptions {
	return names.ValidateOptions{
		ExpectedPrefixesPath: o.ExpectedPrefixesPath,
		Suppressions:         slices.Clone(o.ExpectedPrefixesSuppressions),
		MustBeRegistered:     o.PrefixesMustBeRegistered,
		RequirePrefixes:      o.RequirePrefixes,
	}
}

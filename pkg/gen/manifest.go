// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2024 The arcdps plugin-sdk-go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/


package gen

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.schema.json
var manifestSchema string

// ErrInvalidManifest is wrapped by every schema violation reported by
// Load.
var ErrInvalidManifest = errors.New("invalid manifest")

// Callback holds the Go expressions implementing a slot. Raw must be an
// expression of type unsafe.Pointer, Safe a function value matching the
// slot's callback type.
type Callback struct {
	Raw  string `yaml:"raw,omitempty"`
	Safe string `yaml:"safe,omitempty"`
}

// Manifest describes the plugin a generated registration file sets up.
type Manifest struct {
	// Package of the generated file, defaults to "main".
	Package   string              `yaml:"package,omitempty"`
	Sig       uint32              `yaml:"sig"`
	Name      string              `yaml:"name"`
	Build     string              `yaml:"build,omitempty"`
	Init      string              `yaml:"init,omitempty"`
	Release   string              `yaml:"release,omitempty"`
	Callbacks map[string]Callback `yaml:"callbacks,omitempty"`
}

// Validate checks a YAML document against the manifest schema. Every
// violation is reported in the returned error.
func Validate(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding manifest: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidManifest)
	}

	schema := gojsonschema.NewStringLoader(manifestSchema)
	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validating manifest: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []error
	for _, e := range result.Errors() {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalidManifest, e.Field(), e.Description()))
	}
	return errors.Join(errs...)
}

// Load reads and validates a manifest.
func Load(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := Validate(data); err != nil {
		return nil, err
	}

	m := &Manifest{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if m.Package == "" {
		m.Package = "main"
	}
	return m, nil
}

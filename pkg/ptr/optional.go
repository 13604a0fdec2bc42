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

package ptr

import (
	"encoding/json"
	"strings"
)

// OptionalString represents a string that may be absent, which is how the
// host encodes a nil C string. It allows differentiating between a nil
// pointer and an empty string.
// If null and empty should be treated the same way, use String().
type OptionalString struct {
	Set bool
	// Value is the string value when Set is true. When Set is false,
	// this field must be ignored.
	Value string
}

func NewOptionalStringUnset() OptionalString {
	return OptionalString{}
}

func NewOptionalStringSet(value string) OptionalString {
	return OptionalString{
		Set:   true,
		Value: value,
	}
}

// String maps an unset value to the empty string.
func (o OptionalString) String() string {
	if !o.Set {
		return ""
	}
	return o.Value
}

// Get returns the value and whether it is set.
func (o OptionalString) Get() (string, bool) {
	return o.Value, o.Set
}

// Map applies fn to a set value and leaves an unset value untouched.
func (o OptionalString) Map(fn func(string) string) OptionalString {
	if !o.Set {
		return o
	}
	return NewOptionalStringSet(fn(o.Value))
}

// Clone returns a copy whose value does not alias the memory of o.
func (o OptionalString) Clone() OptionalString {
	return o.Map(strings.Clone)
}

// MarshalJSON encodes a set value as a JSON string and an unset value as null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON decodes a JSON string to a set value and null to an unset one.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = NewOptionalStringUnset()
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = NewOptionalStringSet(value)
	return nil
}

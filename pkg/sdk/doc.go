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

// Package sdk provides definitions and constructs for developers that
// would like to write arcdps plugins in Go.
//
// arcdps discovers a plugin through the get_init_addr and get_release_addr
// exports of its DLL and through an export table listing the callbacks the
// plugin implements. This package mirrors the C structures of that
// protocol (RawExport, CombatEvent, RawAgent), defines the safe signatures
// of every callback, and implements the conversions from the raw values
// passed by arcdps to the safe values handed to plugin code.
//
// Safe values returned by the conversions alias host memory and are only
// valid for the duration of the callback that received them. Values that
// must be retained have to be copied with their Owned method.
//
// The exported C symbols are implemented by the sub-packages of
// sdk/symbols, and the sdk/plugins package wires a plugin value into all of
// them.
package sdk

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


// This package provides support code for developers that would like to
// write arcdps plugins for Guild Wars 2 in Go. arcdps loads plugins as
// DLLs and talks to them through a small C ABI: two entry points, an
// export table of optional callbacks, and the unofficial extras
// subscriber protocol.
//
// The SDK is organized in layers:
//   - pkg/sdk: Go mirrors of the C structs, safe types and conversions
//   - pkg/sdk/extras: the unofficial extras subscriber protocol
//   - pkg/sdk/symbols: prebuilt exported C symbols, one package per group
//   - pkg/sdk/plugins: high-level registration of a plugin value
//   - pkg/gen and cmd/arcdps-gen: registration code generated from a manifest
//   - pkg/loader: loads a built plugin outside of the game, for tests
//
// Plugins are built with -buildmode=c-shared. See the examples directory
// for complete plugins.
package sdk

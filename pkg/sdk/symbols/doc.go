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


// Package symbols provides prebuilt implementations for all the C symbols
// arcdps and the unofficial extras addon look up in a plugin DLL, and the
// adapters that convert raw callback arguments to the safe types of the
// sdk package.
//
// This package defines low-level constructs for plugin development meant
// for advanced users that wish to use only a portion of the SDK internals.
// The sdk/plugins package should normally be used instead for the most
// general use cases, as it provides more high-level constructs.
//
// The C symbol set is divided in different sub-packages to allow plugin
// developers to import only the ones they need. Importing one of the
// sub-packages automatically includes its prebuilt symbols in the plugin.
// In particular, arcdps_unofficial_extras_subscriber_init is only part of
// the DLL if the extras sub-package is imported.
//
// The mapping between the prebuilt C exported symbols and their
// sub-package is designed as follows:
//   - initialize: get_init_addr, get_release_addr
//   - combat:     combat and combat_local adapters
//   - imgui:      imgui, options_end and options_windows adapters
//   - wndproc:    wnd_filter and wnd_nofilter adapters
//   - extras:     arcdps_unofficial_extras_subscriber_init and the
//     squad update, language changed and chat message adapters
//
// Every slot can either be set with a safe Go callback (SetOnX) or with a
// raw C function pointer (SetRawX). A raw function is placed in the export
// table as is and wins over a safe callback. Setters must be called before
// arcdps loads the plugin, usually from an init function, and panic
// afterwards.
//
// Every sub-package imports initialize, which owns the export table and
// the host state shared with the adapters.
package symbols

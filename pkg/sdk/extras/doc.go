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


// Package extras models the subscriber protocol of the unofficial extras
// addon: squad member updates, chat messages of both generations and the
// versioned subscriber info negotiation.
//
// Raw types mirror the C declarations in ../arcdps.h and are only valid
// for the duration of the host call that delivered them. Safe types alias
// the same host memory unless they are copied with Owned.
package extras

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

package sdk

import "unsafe"

// UI is an opaque handle to the ImGui context shared by arcdps. The SDK
// does not bind ImGui itself: plugins pass Context to the ImGui binding of
// their choice, together with the allocator functions arcdps uses.
type UI struct {
	ctx      unsafe.Pointer
	mallocFn unsafe.Pointer
	freeFn   unsafe.Pointer
}

func NewUI(ctx, mallocFn, freeFn unsafe.Pointer) *UI {
	return &UI{
		ctx:      ctx,
		mallocFn: mallocFn,
		freeFn:   freeFn,
	}
}

// Context returns the ImGuiContext pointer.
func (u *UI) Context() unsafe.Pointer {
	return u.ctx
}

// AllocatorFunctions returns the malloc and free functions ImGui must
// be configured with.
func (u *UI) AllocatorFunctions() (mallocFn, freeFn unsafe.Pointer) {
	return u.mallocFn, u.freeFn
}

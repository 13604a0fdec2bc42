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

/*
#include <stdlib.h>
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
)

// RawExport mirrors the arcdps_exports struct that arcdps reads to discover
// the plugin. Field order and size must match the host exactly.
//
// In the error export, Size does not hold a size but the address of a
// null-terminated error message. arcdps detects this because Size does not
// match ExportSize.
type RawExport struct {
	Size           uintptr
	Sig            uint32
	ImguiVersion   uint32
	OutBuild       unsafe.Pointer
	OutName        unsafe.Pointer
	Combat         unsafe.Pointer
	CombatLocal    unsafe.Pointer
	Imgui          unsafe.Pointer
	OptionsEnd     unsafe.Pointer
	OptionsWindows unsafe.Pointer
	WndFilter      unsafe.Pointer
	WndNofilter    unsafe.Pointer
}

// ExportSize is the byte size of RawExport, as written in its Size field.
const ExportSize = unsafe.Sizeof(RawExport{})

// NewExport allocates a zeroed export table in C memory and fills in the
// fixed header fields. The table is never freed: arcdps keeps its address
// for the whole lifetime of the process.
func NewExport(sig uint32, build, name unsafe.Pointer) *RawExport {
	e := (*RawExport)(C.calloc(1, C.size_t(ExportSize)))
	e.Size = ExportSize
	e.Sig = sig
	e.ImguiVersion = ImguiVersion
	e.OutBuild = build
	e.OutName = name
	return e
}

// NewErrorExport allocates the export table used to report an
// initialization failure. All callbacks are null, sig is zero and the size
// field carries the address of a persisted copy of msg.
func NewErrorExport(build, name unsafe.Pointer, msg string) *RawExport {
	e := NewExport(0, build, name)
	e.Size = uintptr(ptr.Persist(msg))
	return e
}

// IsError returns true if e is an error export.
func (e *RawExport) IsError() bool {
	return e.Size != ExportSize
}

// ErrorMessage returns the message carried by an error export, or an
// empty string if e is a regular export table.
func (e *RawExport) ErrorMessage() string {
	if !e.IsError() || e.Size == 0 {
		return ""
	}
	return ptr.GoString(unsafe.Pointer(e.Size))
}

func (e *RawExport) entry(slot Slot) *unsafe.Pointer {
	switch slot {
	case SlotCombat:
		return &e.Combat
	case SlotCombatLocal:
		return &e.CombatLocal
	case SlotImgui:
		return &e.Imgui
	case SlotOptionsEnd:
		return &e.OptionsEnd
	case SlotOptionsWindows:
		return &e.OptionsWindows
	case SlotWndFilter:
		return &e.WndFilter
	case SlotWndNofilter:
		return &e.WndNofilter
	}
	panic(fmt.Sprintf("plugin-sdk-go/sdk: slot %s is not an export table entry", slot))
}

// SetCallback sets the function pointer of an export table slot.
func (e *RawExport) SetCallback(slot Slot, fn unsafe.Pointer) {
	*e.entry(slot) = fn
}

// Callback returns the function pointer of an export table slot.
func (e *RawExport) Callback(slot Slot) unsafe.Pointer {
	return *e.entry(slot)
}

// Build returns the build string referenced by the table.
func (e *RawExport) Build() string {
	return ptr.GoString(e.OutBuild)
}

// Name returns the plugin name referenced by the table.
func (e *RawExport) Name() string {
	return ptr.GoString(e.OutName)
}

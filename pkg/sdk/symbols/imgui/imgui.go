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


// This package exports the adapters of the imgui, options_end and
// options_windows slots. They receive the UI handle arcdps passed to
// get_init_addr.
package imgui

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"
import (
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/boundary"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/slots"

	// the entry points are part of every plugin
	_ "github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/symbols/initialize"
)

var (
	onImgui          sdk.ImguiCallback
	onOptionsEnd     sdk.OptionsEndCallback
	onOptionsWindows sdk.OptionsWindowsCallback
)

// SetOnImgui sets the callback arcdps calls on every frame.
func SetOnImgui(fn sdk.ImguiCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/imgui.SetOnImgui: fn must not be nil")
	}
	onImgui = fn
	slots.SetSafe(sdk.SlotImgui, imguiAddr())
}

// SetOnOptionsEnd sets the callback drawing the plugin's section at the
// end of the arcdps options window.
func SetOnOptionsEnd(fn sdk.OptionsEndCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/imgui.SetOnOptionsEnd: fn must not be nil")
	}
	onOptionsEnd = fn
	slots.SetSafe(sdk.SlotOptionsEnd, optionsEndAddr())
}

// SetOnOptionsWindows sets the callback called for every window checkbox
// of the arcdps options, and once more with an unset name.
func SetOnOptionsWindows(fn sdk.OptionsWindowsCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/imgui.SetOnOptionsWindows: fn must not be nil")
	}
	onOptionsWindows = fn
	slots.SetSafe(sdk.SlotOptionsWindows, optionsWindowsAddr())
}

func SetRawImgui(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotImgui, fn)
}

func SetRawOptionsEnd(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotOptionsEnd, fn)
}

func SetRawOptionsWindows(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotOptionsWindows, fn)
}

//export arcdps_sdk_imgui
func arcdps_sdk_imgui(notCharSelOrLoading uint32) {
	defer boundary.Recover(sdk.SlotImgui)
	onImgui(slots.CurrentUI(), notCharSelOrLoading != 0)
}

//export arcdps_sdk_options_end
func arcdps_sdk_options_end() {
	defer boundary.Recover(sdk.SlotOptionsEnd)
	onOptionsEnd(slots.CurrentUI())
}

//export arcdps_sdk_options_windows
func arcdps_sdk_options_windows(windowName unsafe.Pointer) bool {
	defer boundary.Recover(sdk.SlotOptionsWindows)
	return onOptionsWindows(slots.CurrentUI(), ptr.CStringView(windowName))
}

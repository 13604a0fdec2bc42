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


// This package exports the adapters of the wnd_filter and wnd_nofilter
// slots. wnd_filter sees the window messages arcdps did not consume,
// wnd_nofilter sees all of them. Only key messages reach the callbacks.
package wndproc

/*
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/boundary"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/slots"

	// the entry points are part of every plugin
	_ "github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/symbols/initialize"
)

var (
	onWndFilter   sdk.WndProcCallback
	onWndNofilter sdk.WndProcCallback
)

func SetOnWndFilter(fn sdk.WndProcCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/wndproc.SetOnWndFilter: fn must not be nil")
	}
	onWndFilter = fn
	slots.SetSafe(sdk.SlotWndFilter, wndFilterAddr())
}

func SetOnWndNofilter(fn sdk.WndProcCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/wndproc.SetOnWndNofilter: fn must not be nil")
	}
	onWndNofilter = fn
	slots.SetSafe(sdk.SlotWndNofilter, wndNofilterAddr())
}

func SetRawWndFilter(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotWndFilter, fn)
}

func SetRawWndNofilter(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotWndNofilter, fn)
}

//export arcdps_sdk_wnd_filter
func arcdps_sdk_wnd_filter(hWnd unsafe.Pointer, msg uint32, wParam uintptr, lParam int) uintptr {
	defer boundary.Recover(sdk.SlotWndFilter)
	return uintptr(sdk.FilterWndProc(onWndFilter, msg, wParam, lParam))
}

//export arcdps_sdk_wnd_nofilter
func arcdps_sdk_wnd_nofilter(hWnd unsafe.Pointer, msg uint32, wParam uintptr, lParam int) uintptr {
	defer boundary.Recover(sdk.SlotWndNofilter)
	return uintptr(sdk.FilterWndProc(onWndNofilter, msg, wParam, lParam))
}

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


// This package exports the entry points arcdps looks up when it loads
// the plugin: get_init_addr and get_release_addr. Every plugin must
// import it.
//
// get_init_addr stores the UI context and swap chain and returns the
// address of arcdps_load. arcdps_load runs the plugin init function once
// and returns either the export table or, if init failed, the error
// export. get_release_addr returns the address of arcdps_unload, which
// runs the release function.
package initialize

/*
#include <stdint.h>
*/
import "C"
import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/extras"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/boundary"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/slots"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/logging"
)

var (
	onInit    sdk.InitFunc    = func(unsafe.Pointer) error { return nil }
	onRelease sdk.ReleaseFunc = func() {}

	loadOnce sync.Once
	export   *sdk.RawExport
)

// SetInfo sets the identity of the plugin. sig must be unique among the
// plugins loaded by arcdps.
func SetInfo(sig uint32, name, build string) {
	slots.SetInfo(slots.Info{Sig: sig, Name: name, Build: build})
}

func SetOnInit(fn sdk.InitFunc) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/initialize.SetOnInit: fn must not be nil")
	}
	onInit = fn
}

func SetOnRelease(fn sdk.ReleaseFunc) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/initialize.SetOnRelease: fn must not be nil")
	}
	onRelease = fn
}

//export get_init_addr
func get_init_addr(arcVersion, imguiCtx, id3dptr, arcDLL, mallocFn, freeFn unsafe.Pointer) unsafe.Pointer {
	defer boundary.Recover(boundary.Symbol("get_init_addr"))
	published := slots.PublishHost(&slots.Host{
		ArcVersion: strings.Clone(ptr.GoString(arcVersion)),
		UI:         sdk.NewUI(imguiCtx, mallocFn, freeFn),
		Swapchain:  id3dptr,
		Module:     arcDLL,
	})
	if published {
		logging.Init(slots.PluginInfo().Name, arcDLL)
	}
	return loadAddr()
}

//export arcdps_load
func arcdps_load() unsafe.Pointer {
	defer boundary.Recover(boundary.Symbol("arcdps_load"))
	loadOnce.Do(load)
	return unsafe.Pointer(export)
}

//export get_release_addr
func get_release_addr() unsafe.Pointer {
	return unloadAddr()
}

//export arcdps_unload
func arcdps_unload() {
	defer boundary.Recover(boundary.Symbol("arcdps_unload"))
	onRelease()
}

func checkLayout() error {
	if err := errors.Join(sdk.CheckLayout(), extras.CheckLayout()); err != nil {
		return fmt.Errorf("struct layout does not match arcdps: %w", err)
	}
	return nil
}

func load() {
	slots.Freeze()
	name, build := slots.CStrings()

	err := checkLayout()
	if err == nil {
		var swapchain unsafe.Pointer
		if h := slots.CurrentHost(); h != nil {
			swapchain = h.Swapchain
		}
		err = onInit(swapchain)
	}
	if err != nil {
		slog.Error("initialization failed", "err", err)
		export = sdk.NewErrorExport(build, name, err.Error())
		return
	}

	export = sdk.NewExport(slots.PluginInfo().Sig, build, name)
	for s := sdk.Slot(0); s.InExportTable(); s++ {
		export.SetCallback(s, slots.Resolve(s))
	}
	slog.Debug("plugin loaded")
}

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


package slots

import (
	"path"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
)

// Info is the identity of the plugin as shown to the host.
type Info struct {
	// Sig must be unique among the loaded arcdps plugins.
	Sig   uint32
	Name  string
	Build string
}

var (
	info      = defaultInfo()
	infoSet   bool
	persisted struct {
		once  sync.Once
		name  unsafe.Pointer
		build unsafe.Pointer
	}
)

// defaultInfo derives a name and a build string from the main module,
// for plugins that never call SetInfo.
func defaultInfo() Info {
	res := Info{Name: "arcdps-plugin", Build: "(devel)"}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Path != "" {
			res.Name = path.Base(bi.Path)
		}
		if bi.Main.Version != "" {
			res.Build = strings.TrimPrefix(bi.Main.Version, "v")
		}
	}
	return res
}

// SetInfo sets the identity of the plugin.
func SetInfo(i Info) {
	mu.Lock()
	defer mu.Unlock()
	if frozen.Load() {
		panic("plugin-sdk-go/sdk/internal/slots.SetInfo: info set after the plugin was loaded")
	}
	if i.Name == "" {
		panic("plugin-sdk-go/sdk/internal/slots.SetInfo: name must not be empty")
	}
	info = i
	infoSet = true
}

// PluginInfo returns the identity of the plugin.
func PluginInfo() Info {
	mu.Lock()
	defer mu.Unlock()
	return info
}

// InfoSet returns true if SetInfo was called.
func InfoSet() bool {
	mu.Lock()
	defer mu.Unlock()
	return infoSet
}

// CStrings returns the name and build of the plugin as persisted
// null-terminated strings. They are copied once and the host may keep
// them for the whole lifetime of the process.
func CStrings() (name, build unsafe.Pointer) {
	persisted.once.Do(func() {
		i := PluginInfo()
		persisted.name = ptr.Persist(i.Name)
		persisted.build = ptr.Persist(i.Build)
	})
	return persisted.name, persisted.build
}

// Host is the process-wide state received by get_init_addr.
type Host struct {
	ArcVersion string
	UI         *sdk.UI
	// Swapchain is the IDXGISwapChain, nil if arcdps did not pass one.
	Swapchain unsafe.Pointer
	// Module is the handle of the arcdps module.
	Module unsafe.Pointer
}

var host atomic.Pointer[Host]

// PublishHost stores the host state. Only the first call has an effect:
// the state is immutable afterwards, so adapters running on other host
// threads can read it without locking.
func PublishHost(h *Host) bool {
	return host.CompareAndSwap(nil, h)
}

// CurrentHost returns the host state, or nil before get_init_addr ran.
func CurrentHost() *Host {
	return host.Load()
}

// CurrentUI returns the UI handle. It panics if the host has not called
// get_init_addr yet, which arcdps guarantees never happens before a UI
// callback.
func CurrentUI() *sdk.UI {
	h := host.Load()
	if h == nil || h.UI == nil {
		panic("plugin-sdk-go/sdk/internal/slots.CurrentUI: UI callback invoked before get_init_addr")
	}
	return h.UI
}

// ResetHost forgets the host state. It is only meant for tests.
func ResetHost() {
	host.Store(nil)
}

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


package loader

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
)

func (p *Plugin) call(slot sdk.Slot, args ...uintptr) (uintptr, bool) {
	p.m.Lock()
	defer p.m.Unlock()
	if !p.loaded {
		return 0, false
	}
	fn := uintptr(p.export.Callback(slot))
	if fn == 0 {
		return 0, false
	}
	r, _, _ := purego.SyscallN(fn, args...)
	return r, true
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// Combat calls the combat slot. It returns false if the plugin does not
// implement it.
func (p *Plugin) Combat(ev *sdk.CombatEvent, src, dst *sdk.RawAgent, skillName string, id, revision uint64) bool {
	return p.combat(sdk.SlotCombat, ev, src, dst, skillName, id, revision)
}

// CombatLocal calls the combat_local slot.
func (p *Plugin) CombatLocal(ev *sdk.CombatEvent, src, dst *sdk.RawAgent, skillName string, id, revision uint64) bool {
	return p.combat(sdk.SlotCombatLocal, ev, src, dst, skillName, id, revision)
}

func (p *Plugin) combat(slot sdk.Slot, ev *sdk.CombatEvent, src, dst *sdk.RawAgent, skillName string, id, revision uint64) bool {
	var name unsafe.Pointer
	if skillName != "" {
		name = ptr.Persist(skillName)
	}
	_, ok := p.call(slot,
		uintptr(unsafe.Pointer(ev)),
		uintptr(unsafe.Pointer(src)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(name),
		uintptr(id),
		uintptr(revision))
	runtime.KeepAlive(ev)
	runtime.KeepAlive(src)
	runtime.KeepAlive(dst)
	return ok
}

// Imgui calls the imgui slot.
func (p *Plugin) Imgui(notCharSelOrLoading bool) bool {
	_, ok := p.call(sdk.SlotImgui, boolArg(notCharSelOrLoading))
	return ok
}

// OptionsEnd calls the options_end slot.
func (p *Plugin) OptionsEnd() bool {
	_, ok := p.call(sdk.SlotOptionsEnd)
	return ok
}

// OptionsWindows calls the options_windows slot and returns what the
// plugin answered. windowName may be empty for the final call.
func (p *Plugin) OptionsWindows(windowName string) (answer, ok bool) {
	var name unsafe.Pointer
	if windowName != "" {
		name = ptr.Persist(windowName)
	}
	r, ok := p.call(sdk.SlotOptionsWindows, uintptr(name))
	return r&0xff != 0, ok
}

// WndFilter calls the wnd_filter slot and returns the message the plugin
// passes on, 0 if it swallowed it.
func (p *Plugin) WndFilter(msg uint32, wParam uintptr, lParam int) (uint32, bool) {
	return p.wnd(sdk.SlotWndFilter, msg, wParam, lParam)
}

// WndNofilter calls the wnd_nofilter slot.
func (p *Plugin) WndNofilter(msg uint32, wParam uintptr, lParam int) (uint32, bool) {
	return p.wnd(sdk.SlotWndNofilter, msg, wParam, lParam)
}

func (p *Plugin) wnd(slot sdk.Slot, msg uint32, wParam uintptr, lParam int) (uint32, bool) {
	r, ok := p.call(slot, 0, uintptr(msg), wParam, uintptr(lParam))
	return uint32(r), ok
}

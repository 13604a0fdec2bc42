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

import (
	"fmt"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
)

// ImguiVersion is the value arcdps expects in the imgui_version field of
// the export table.
const ImguiVersion uint32 = 18000

// Window messages decoded by the wnd_filter and wnd_nofilter adapters.
const (
	WMKeyDown    uint32 = 0x0100
	WMKeyUp      uint32 = 0x0101
	WMSysKeyDown uint32 = 0x0104
	WMSysKeyUp   uint32 = 0x0105
)

// Slot identifies one of the extension points a plugin can implement.
// The first seven slots are entries of the arcdps export table, the
// others are negotiated with the unofficial extras addon.
type Slot int

const (
	SlotCombat Slot = iota
	SlotCombatLocal
	SlotImgui
	SlotOptionsEnd
	SlotOptionsWindows
	SlotWndFilter
	SlotWndNofilter
	SlotExtrasSquadUpdate
	SlotExtrasLanguageChanged
	SlotExtrasChatMessage
	SlotExtrasChatMessage2
	SlotExtrasInit

	// NumSlots is the number of known slots.
	NumSlots
)

var slotNames = [NumSlots]string{
	SlotCombat:                "combat",
	SlotCombatLocal:           "combat_local",
	SlotImgui:                 "imgui",
	SlotOptionsEnd:            "options_end",
	SlotOptionsWindows:        "options_windows",
	SlotWndFilter:             "wnd_filter",
	SlotWndNofilter:           "wnd_nofilter",
	SlotExtrasSquadUpdate:     "extras_squad_update",
	SlotExtrasLanguageChanged: "extras_language_changed",
	SlotExtrasChatMessage:     "extras_chat_message",
	SlotExtrasChatMessage2:    "extras_chat_message2",
	SlotExtrasInit:            "extras_init",
}

func (s Slot) String() string {
	if s < 0 || s >= NumSlots {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotNames[s]
}

// InExportTable returns true if the slot is an entry of the export table.
func (s Slot) InExportTable() bool {
	return s >= SlotCombat && s <= SlotWndNofilter
}

// IsExtras returns true if the slot belongs to the unofficial extras
// subscriber protocol.
func (s Slot) IsExtras() bool {
	return s >= SlotExtrasSquadUpdate && s < NumSlots
}

// ParseSlot returns the slot with the given name.
func ParseSlot(name string) (Slot, error) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("unknown slot: %q", name)
}

// StripAccountPrefix removes the leading ':' the game puts in front of
// account names. Only a single character is removed.
func StripAccountPrefix(name string) string {
	if len(name) > 0 && name[0] == ':' {
		return name[1:]
	}
	return name
}

// CombatCallback is the safe signature of the combat and combat_local
// slots. ev, src and dst are nil when the host passes a null pointer.
// All values are only valid for the duration of the call.
type CombatCallback func(ev *CombatEvent, src, dst *Agent, skillName ptr.OptionalString, id, revision uint64)

// ImguiCallback is the safe signature of the imgui slot.
type ImguiCallback func(ui *UI, notCharSelOrLoading bool)

// OptionsEndCallback is the safe signature of the options_end slot.
type OptionsEndCallback func(ui *UI)

// OptionsWindowsCallback is the safe signature of the options_windows
// slot. Returning true hides the checkbox of the named window.
type OptionsWindowsCallback func(ui *UI, windowName ptr.OptionalString) bool

// WndProcCallback is the safe signature of the wnd_filter and
// wnd_nofilter slots. It is only invoked for key messages. Returning
// false swallows the message.
type WndProcCallback func(key uintptr, keyDown, prevKeyDown bool) bool

// InitFunc is called once when arcdps loads the plugin, with the
// swap chain pointer (nil if unavailable). A non-nil error makes the
// plugin report the failure to arcdps through the error export.
type InitFunc func(swapchain unsafe.Pointer) error

// ReleaseFunc is called once when arcdps unloads the plugin.
type ReleaseFunc func()

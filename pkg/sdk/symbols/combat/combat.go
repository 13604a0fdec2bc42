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


// This package exports the adapters of the combat and combat_local
// slots. Combat events from the area are delivered to combat, events
// from the local chat log to combat_local.
package combat

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
	onCombat      sdk.CombatCallback
	onCombatLocal sdk.CombatCallback
)

func SetOnCombat(fn sdk.CombatCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/combat.SetOnCombat: fn must not be nil")
	}
	onCombat = fn
	slots.SetSafe(sdk.SlotCombat, combatAddr())
}

func SetOnCombatLocal(fn sdk.CombatCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/combat.SetOnCombatLocal: fn must not be nil")
	}
	onCombatLocal = fn
	slots.SetSafe(sdk.SlotCombatLocal, combatLocalAddr())
}

// SetRawCombat installs fn, a C function with the arcdps combat
// signature, in the export table as is.
func SetRawCombat(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotCombat, fn)
}

// SetRawCombatLocal is the combat_local version of SetRawCombat.
func SetRawCombatLocal(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotCombatLocal, fn)
}

func dispatch(fn sdk.CombatCallback, ev, src, dst, skillName unsafe.Pointer, id, revision uint64) {
	args := sdk.ConvertCombatArgs(ev, src, dst, skillName)
	fn(args.Ev, args.Src, args.Dst, args.SkillName, id, revision)
}

//export arcdps_sdk_combat
func arcdps_sdk_combat(ev, src, dst, skillName unsafe.Pointer, id, revision uint64) {
	defer boundary.Recover(sdk.SlotCombat)
	dispatch(onCombat, ev, src, dst, skillName, id, revision)
}

//export arcdps_sdk_combat_local
func arcdps_sdk_combat_local(ev, src, dst, skillName unsafe.Pointer, id, revision uint64) {
	defer boundary.Recover(sdk.SlotCombatLocal)
	dispatch(onCombatLocal, ev, src, dst, skillName, id, revision)
}

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


package gen

import (
	"fmt"
	"sort"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
)

const symbolsPath = "github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/symbols/"

// Kind is how a slot ends up implemented in the generated file.
type Kind int

const (
	KindAbsent Kind = iota
	KindRaw
	KindSafe
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindSafe:
		return "safe"
	}
	return "absent"
}

type setters struct {
	pkg  string
	safe string
	raw  string
}

var slotSetters = [sdk.NumSlots]setters{
	sdk.SlotCombat:                {"combat", "SetOnCombat", "SetRawCombat"},
	sdk.SlotCombatLocal:           {"combat", "SetOnCombatLocal", "SetRawCombatLocal"},
	sdk.SlotImgui:                 {"imgui", "SetOnImgui", "SetRawImgui"},
	sdk.SlotOptionsEnd:            {"imgui", "SetOnOptionsEnd", "SetRawOptionsEnd"},
	sdk.SlotOptionsWindows:        {"imgui", "SetOnOptionsWindows", "SetRawOptionsWindows"},
	sdk.SlotWndFilter:             {"wndproc", "SetOnWndFilter", "SetRawWndFilter"},
	sdk.SlotWndNofilter:           {"wndproc", "SetOnWndNofilter", "SetRawWndNofilter"},
	sdk.SlotExtrasSquadUpdate:     {"extras", "SetOnSquadUpdate", "SetRawSquadUpdate"},
	sdk.SlotExtrasLanguageChanged: {"extras", "SetOnLanguageChanged", "SetRawLanguageChanged"},
	sdk.SlotExtrasChatMessage:     {"extras", "SetOnChatMessage", "SetRawChatMessage"},
	sdk.SlotExtrasChatMessage2:    {"extras", "SetOnChatMessage2", "SetRawChatMessage2"},
	sdk.SlotExtrasInit:            {"extras", "SetOnInit", "SetRawInit"},
}

// SlotPlan is the decision taken for one slot.
type SlotPlan struct {
	Slot sdk.Slot
	Kind Kind
	// Expr is the expression passed to the setter, empty when absent.
	Expr string
	// Shadowed is true when a safe callback was configured but a raw one
	// took precedence.
	Shadowed bool
}

// Setter returns the import path and name of the function registering
// the slot, or empty strings for an absent slot.
func (p SlotPlan) Setter() (path, name string) {
	s := slotSetters[p.Slot]
	switch p.Kind {
	case KindRaw:
		return symbolsPath + s.pkg, s.raw
	case KindSafe:
		return symbolsPath + s.pkg, s.safe
	}
	return "", ""
}

// Plan returns one entry per known slot, in slot order. A raw callback
// wins over a safe one.
func Plan(m *Manifest) ([]SlotPlan, error) {
	names := make([]string, 0, len(m.Callbacks))
	for name := range m.Callbacks {
		names = append(names, name)
	}
	sort.Strings(names)

	plan := make([]SlotPlan, sdk.NumSlots)
	for i := range plan {
		plan[i].Slot = sdk.Slot(i)
	}
	for _, name := range names {
		slot, err := sdk.ParseSlot(name)
		if err != nil {
			return nil, err
		}
		cb := m.Callbacks[name]
		p := &plan[slot]
		switch {
		case cb.Raw != "":
			p.Kind = KindRaw
			p.Expr = cb.Raw
			p.Shadowed = cb.Safe != ""
		case cb.Safe != "":
			p.Kind = KindSafe
			p.Expr = cb.Safe
		default:
			return nil, fmt.Errorf("slot %s: neither raw nor safe is set", name)
		}
	}
	return plan, nil
}

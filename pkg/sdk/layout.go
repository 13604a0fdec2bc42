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
#include "arcdps.h"

enum {
	L_EXPORT_SIZE,
	L_EXPORT_SIG,
	L_EXPORT_IMGUIVERS,
	L_EXPORT_OUT_BUILD,
	L_EXPORT_OUT_NAME,
	L_EXPORT_COMBAT,
	L_EXPORT_COMBAT_LOCAL,
	L_EXPORT_IMGUI,
	L_EXPORT_OPTIONS_END,
	L_EXPORT_OPTIONS_WINDOWS,
	L_EXPORT_WND_FILTER,
	L_EXPORT_WND_NOFILTER,
	L_CBTEVENT_SIZE,
	L_CBTEVENT_VALUE,
	L_CBTEVENT_SKILLID,
	L_CBTEVENT_SRC_INSTID,
	L_CBTEVENT_IFF,
	L_CBTEVENT_IS_STATECHANGE,
	L_CBTEVENT_PAD61,
	L_AG_SIZE,
	L_AG_ID,
	L_AG_PROF,
	L_AG_TEAM,
};

static size_t sdk_layout(int q)
{
	switch (q) {
	case L_EXPORT_SIZE: return sizeof(arcdps_exports);
	case L_EXPORT_SIG: return offsetof(arcdps_exports, sig);
	case L_EXPORT_IMGUIVERS: return offsetof(arcdps_exports, imguivers);
	case L_EXPORT_OUT_BUILD: return offsetof(arcdps_exports, out_build);
	case L_EXPORT_OUT_NAME: return offsetof(arcdps_exports, out_name);
	case L_EXPORT_COMBAT: return offsetof(arcdps_exports, combat);
	case L_EXPORT_COMBAT_LOCAL: return offsetof(arcdps_exports, combat_local);
	case L_EXPORT_IMGUI: return offsetof(arcdps_exports, imgui);
	case L_EXPORT_OPTIONS_END: return offsetof(arcdps_exports, options_end);
	case L_EXPORT_OPTIONS_WINDOWS: return offsetof(arcdps_exports, options_windows);
	case L_EXPORT_WND_FILTER: return offsetof(arcdps_exports, wnd_filter);
	case L_EXPORT_WND_NOFILTER: return offsetof(arcdps_exports, wnd_nofilter);
	case L_CBTEVENT_SIZE: return sizeof(cbtevent);
	case L_CBTEVENT_VALUE: return offsetof(cbtevent, value);
	case L_CBTEVENT_SKILLID: return offsetof(cbtevent, skillid);
	case L_CBTEVENT_SRC_INSTID: return offsetof(cbtevent, src_instid);
	case L_CBTEVENT_IFF: return offsetof(cbtevent, iff);
	case L_CBTEVENT_IS_STATECHANGE: return offsetof(cbtevent, is_statechange);
	case L_CBTEVENT_PAD61: return offsetof(cbtevent, pad61);
	case L_AG_SIZE: return sizeof(ag);
	case L_AG_ID: return offsetof(ag, id);
	case L_AG_PROF: return offsetof(ag, prof);
	case L_AG_TEAM: return offsetof(ag, team);
	}
	return (size_t)-1;
}
*/
import "C"
import (
	"errors"
	"fmt"
	"unsafe"
)

// LayoutField pairs a size or an offset of a Go mirror with the value the
// C compiler computes for the declaration it mirrors.
type LayoutField struct {
	Name string
	Go   uintptr
	C    uintptr
}

// CheckLayoutFields returns an error listing every mismatching field.
func CheckLayoutFields(fields []LayoutField) error {
	var errs []error
	for _, f := range fields {
		if f.Go != f.C {
			errs = append(errs, fmt.Errorf("%s: Go %d, C %d", f.Name, f.Go, f.C))
		}
	}
	return errors.Join(errs...)
}

func cLayout(q C.int) uintptr {
	return uintptr(C.sdk_layout(q))
}

func layoutFields() []LayoutField {
	var e RawExport
	var ev CombatEvent
	var ag RawAgent
	return []LayoutField{
		{"arcdps_exports", unsafe.Sizeof(e), cLayout(C.L_EXPORT_SIZE)},
		{"arcdps_exports.sig", unsafe.Offsetof(e.Sig), cLayout(C.L_EXPORT_SIG)},
		{"arcdps_exports.imguivers", unsafe.Offsetof(e.ImguiVersion), cLayout(C.L_EXPORT_IMGUIVERS)},
		{"arcdps_exports.out_build", unsafe.Offsetof(e.OutBuild), cLayout(C.L_EXPORT_OUT_BUILD)},
		{"arcdps_exports.out_name", unsafe.Offsetof(e.OutName), cLayout(C.L_EXPORT_OUT_NAME)},
		{"arcdps_exports.combat", unsafe.Offsetof(e.Combat), cLayout(C.L_EXPORT_COMBAT)},
		{"arcdps_exports.combat_local", unsafe.Offsetof(e.CombatLocal), cLayout(C.L_EXPORT_COMBAT_LOCAL)},
		{"arcdps_exports.imgui", unsafe.Offsetof(e.Imgui), cLayout(C.L_EXPORT_IMGUI)},
		{"arcdps_exports.options_end", unsafe.Offsetof(e.OptionsEnd), cLayout(C.L_EXPORT_OPTIONS_END)},
		{"arcdps_exports.options_windows", unsafe.Offsetof(e.OptionsWindows), cLayout(C.L_EXPORT_OPTIONS_WINDOWS)},
		{"arcdps_exports.wnd_filter", unsafe.Offsetof(e.WndFilter), cLayout(C.L_EXPORT_WND_FILTER)},
		{"arcdps_exports.wnd_nofilter", unsafe.Offsetof(e.WndNofilter), cLayout(C.L_EXPORT_WND_NOFILTER)},
		{"cbtevent", unsafe.Sizeof(ev), cLayout(C.L_CBTEVENT_SIZE)},
		{"cbtevent.value", unsafe.Offsetof(ev.Value), cLayout(C.L_CBTEVENT_VALUE)},
		{"cbtevent.skillid", unsafe.Offsetof(ev.SkillID), cLayout(C.L_CBTEVENT_SKILLID)},
		{"cbtevent.src_instid", unsafe.Offsetof(ev.SrcInstID), cLayout(C.L_CBTEVENT_SRC_INSTID)},
		{"cbtevent.iff", unsafe.Offsetof(ev.IFF), cLayout(C.L_CBTEVENT_IFF)},
		{"cbtevent.is_statechange", unsafe.Offsetof(ev.IsStateChange), cLayout(C.L_CBTEVENT_IS_STATECHANGE)},
		{"cbtevent.pad61", unsafe.Offsetof(ev.Pad61), cLayout(C.L_CBTEVENT_PAD61)},
		{"ag", unsafe.Sizeof(ag), cLayout(C.L_AG_SIZE)},
		{"ag.id", unsafe.Offsetof(ag.ID), cLayout(C.L_AG_ID)},
		{"ag.prof", unsafe.Offsetof(ag.Prof), cLayout(C.L_AG_PROF)},
		{"ag.team", unsafe.Offsetof(ag.Team), cLayout(C.L_AG_TEAM)},
	}
}

// CheckLayout verifies that the Go mirrors of the arcdps structs have the
// same sizes and field offsets as the C declarations in arcdps.h.
func CheckLayout() error {
	return CheckLayoutFields(layoutFields())
}

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


package overlay

import (
	"testing"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/slots"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/plugins"
	"github.com/stretchr/testify/assert"
)

type minimalPlugin struct{}

func (m *minimalPlugin) Info() *plugins.Info {
	return &plugins.Info{Sig: 0xfeed, Name: "minimal", Build: "0.0.1"}
}

type renderPlugin struct {
	minimalPlugin
	released bool
}

func (r *renderPlugin) Init(swapchain unsafe.Pointer) error { return nil }

func (r *renderPlugin) Release() { r.released = true }

func (r *renderPlugin) OnCombat(ev *sdk.CombatEvent, src, dst *sdk.Agent, skillName ptr.OptionalString, id, revision uint64) {
}

func (r *renderPlugin) Render(ui *sdk.UI, notCharSelOrLoading bool) {}

func (r *renderPlugin) WndNofilter(key uintptr, keyDown, prevKeyDown bool) bool { return true }

func reset(t *testing.T) {
	registered = false
	slots.Reset()
	t.Cleanup(func() {
		registered = false
		slots.Reset()
	})
}

func TestRegisterMinimal(t *testing.T) {
	reset(t)
	Register(&minimalPlugin{})

	info := slots.PluginInfo()
	assert.Equal(t, uint32(0xfeed), info.Sig)
	assert.Equal(t, "minimal", info.Name)
	assert.Equal(t, "0.0.1", info.Build)
	for s := sdk.SlotCombat; s < sdk.NumSlots; s++ {
		assert.Equal(t, slots.KindAbsent, slots.KindOf(s), s.String())
	}
}

func TestRegisterOptional(t *testing.T) {
	reset(t)
	Register(&renderPlugin{})

	expected := map[sdk.Slot]slots.Kind{
		sdk.SlotCombat:         slots.KindSafe,
		sdk.SlotImgui:          slots.KindSafe,
		sdk.SlotWndNofilter:    slots.KindSafe,
		sdk.SlotCombatLocal:    slots.KindAbsent,
		sdk.SlotOptionsEnd:     slots.KindAbsent,
		sdk.SlotOptionsWindows: slots.KindAbsent,
		sdk.SlotWndFilter:      slots.KindAbsent,
	}
	for s, k := range expected {
		assert.Equal(t, k, slots.KindOf(s), s.String())
	}
	assert.False(t, slots.AnyExtras())
}

func TestRegisterTwice(t *testing.T) {
	reset(t)
	Register(&minimalPlugin{})
	assert.Panics(t, func() { Register(&minimalPlugin{}) })
}

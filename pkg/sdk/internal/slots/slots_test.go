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
	"testing"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rawFn   = ptr.Persist("raw")
	adapter = ptr.Persist("adapter")
)

func TestResolve(t *testing.T) {
	Reset()
	defer Reset()

	assert.Equal(t, KindAbsent, KindOf(sdk.SlotCombat))
	assert.Nil(t, Resolve(sdk.SlotCombat))
	assert.False(t, AnyExtras())

	SetSafe(sdk.SlotCombat, adapter)
	assert.Equal(t, KindSafe, KindOf(sdk.SlotCombat))
	assert.Equal(t, adapter, Resolve(sdk.SlotCombat))

	// raw wins regardless of the registration order
	SetRaw(sdk.SlotCombat, rawFn)
	assert.Equal(t, KindRaw, KindOf(sdk.SlotCombat))
	assert.Equal(t, rawFn, Resolve(sdk.SlotCombat))
	SetSafe(sdk.SlotCombat, adapter)
	assert.Equal(t, rawFn, Resolve(sdk.SlotCombat))
	assert.Equal(t, rawFn, Raw(sdk.SlotCombat))

	SetRaw(sdk.SlotImgui, rawFn)
	assert.Equal(t, rawFn, Resolve(sdk.SlotImgui))
	assert.Nil(t, Resolve(sdk.SlotCombatLocal))

	SetSafe(sdk.SlotExtrasInit, nil)
	assert.Equal(t, KindSafe, KindOf(sdk.SlotExtrasInit))
	assert.Nil(t, Resolve(sdk.SlotExtrasInit))
	assert.True(t, AnyExtras())
}

func TestSetPanics(t *testing.T) {
	Reset()
	defer Reset()

	assert.Panics(t, func() { SetRaw(sdk.SlotCombat, nil) })
	assert.Panics(t, func() { SetRaw(sdk.NumSlots, rawFn) })
	assert.Panics(t, func() { SetSafe(sdk.Slot(-1), adapter) })

	Freeze()
	assert.True(t, Frozen())
	assert.Panics(t, func() { SetRaw(sdk.SlotCombat, rawFn) })
	assert.Panics(t, func() { SetSafe(sdk.SlotCombat, adapter) })
	assert.Panics(t, func() { SetInfo(Info{Name: "late"}) })

	Reset()
	assert.False(t, Frozen())
	assert.NotPanics(t, func() { SetRaw(sdk.SlotCombat, rawFn) })
}

func TestInfo(t *testing.T) {
	Reset()
	defer Reset()

	assert.False(t, InfoSet())
	assert.NotEmpty(t, PluginInfo().Name)
	assert.Panics(t, func() { SetInfo(Info{}) })

	SetInfo(Info{Sig: 0xc0ffee, Name: "squad tracker", Build: "1.2.3"})
	assert.True(t, InfoSet())
	assert.Equal(t, Info{Sig: 0xc0ffee, Name: "squad tracker", Build: "1.2.3"}, PluginInfo())

	name, build := CStrings()
	assert.Equal(t, "squad tracker", ptr.GoString(name))
	assert.Equal(t, "1.2.3", ptr.GoString(build))
	name2, _ := CStrings()
	assert.Equal(t, name, name2)
}

func TestHost(t *testing.T) {
	ResetHost()
	defer ResetHost()

	assert.Nil(t, CurrentHost())
	assert.Panics(t, func() { CurrentUI() })

	ctx := ptr.Persist("ctx")
	h := &Host{ArcVersion: "20240101", UI: sdk.NewUI(ctx, nil, nil)}
	require.True(t, PublishHost(h))
	assert.False(t, PublishHost(&Host{ArcVersion: "other"}))
	assert.Same(t, h, CurrentHost())
	assert.Equal(t, ctx, CurrentUI().Context())
	assert.Equal(t, unsafe.Pointer(nil), CurrentHost().Swapchain)
}

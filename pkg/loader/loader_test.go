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
	"path/filepath"
	"testing"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/extras"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fnA = ptr.Persist("a")
	fnB = ptr.Persist("b")
	fnC = ptr.Persist("c")
	fnD = ptr.Persist("d")
)

func TestNewPlugin(t *testing.T) {
	_, err := NewPlugin(filepath.Join(t.TempDir(), "missing.dll"))
	assert.Error(t, err)

	_, err = NewLoadedPlugin(filepath.Join(t.TempDir(), "missing.dll"), &Host{})
	assert.Error(t, err)
}

func TestValidateExport(t *testing.T) {
	build := ptr.Persist("1.0")
	name := ptr.Persist("valid")

	e := sdk.NewExport(0x1234, build, name)
	assert.NoError(t, ValidateExport(e))

	err := ValidateExport(sdk.NewErrorExport(build, name, "cannot open config"))
	require.ErrorIs(t, err, ErrSizeMismatch)
	assert.Contains(t, err.Error(), "cannot open config")

	e = sdk.NewExport(0, build, name)
	assert.ErrorIs(t, ValidateExport(e), ErrZeroSig)

	e = sdk.NewExport(0, build, name)
	e.ImguiVersion = 1
	err = ValidateExport(e)
	assert.ErrorIs(t, err, ErrZeroSig)
	assert.ErrorIs(t, err, ErrImguiVersion)
}

func TestReadSubscription(t *testing.T) {
	sub := extras.Subscriber{
		Name:            ptr.Persist("subscriber"),
		SquadUpdate:     fnA,
		LanguageChanged: fnB,
		ChatMessage:     fnC,
		ChatMessage2:    fnD,
	}

	for _, maxVersion := range []uint32{1, 2, 3} {
		info := &extras.RawSubscriberInfoV3{}
		addon := &extras.RawAddonInfo{APIVersion: extras.APIVersion, MaxInfoVersion: maxVersion}
		version, err := extras.Negotiate(addon, info.V2().V1().Header(), sub)
		require.NoError(t, err)

		s, err := ReadSubscription(info)
		require.NoError(t, err)
		assert.Equal(t, version, s.InfoVersion)
		assert.Equal(t, "subscriber", s.Name)
		assert.Equal(t, uintptr(fnA), s.SquadUpdate)
		assert.Equal(t, uintptr(fnB), s.LanguageChanged)
		assert.Zero(t, s.KeyBindChanged)
		if maxVersion >= 2 {
			assert.Equal(t, uintptr(fnC), s.ChatMessage)
		} else {
			assert.Zero(t, s.ChatMessage)
		}
		if maxVersion >= 3 {
			assert.Equal(t, uintptr(fnD), s.ChatMessage2)
		} else {
			assert.Zero(t, s.ChatMessage2)
		}
	}
}

func TestReadSubscriptionErrors(t *testing.T) {
	_, err := ReadSubscription(&extras.RawSubscriberInfoV3{})
	assert.ErrorIs(t, err, ErrNotSubscribed)

	info := &extras.RawSubscriberInfoV3{}
	info.V2().V1().InfoVersion = 9
	_, err = ReadSubscription(info)
	assert.ErrorIs(t, err, extras.ErrInfoVersion)
}

func TestNotLoaded(t *testing.T) {
	p := &Plugin{}
	assert.ErrorIs(t, p.Load(&Host{}), ErrNotLoaded)
	assert.False(t, p.HasExtras())
	for s := sdk.SlotCombat; s < sdk.NumSlots; s++ {
		assert.False(t, p.HasSlot(s))
	}

	_, err := p.SubscribeExtras(extras.APIVersion, extras.MaxInfoVersion, ":Account.1234", "1.0")
	assert.ErrorIs(t, err, ErrNoExtras)

	assert.False(t, p.Combat(&sdk.CombatEvent{}, nil, nil, "", 0, 0))
	assert.False(t, p.Imgui(true))
	assert.False(t, p.OptionsEnd())
	_, ok := p.OptionsWindows("")
	assert.False(t, ok)
	_, ok = p.WndFilter(sdk.WMKeyDown, 0x41, 0)
	assert.False(t, ok)
	assert.NoError(t, p.Unload())
}

func TestHasSlot(t *testing.T) {
	p := &Plugin{loaded: true}
	p.export.Imgui = fnA
	assert.True(t, p.HasSlot(sdk.SlotImgui))
	assert.False(t, p.HasSlot(sdk.SlotCombat))
	assert.False(t, p.HasSlot(sdk.SlotExtrasInit))
}

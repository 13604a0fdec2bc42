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


package extras

import (
	"testing"
	"time"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	sdkextras "github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/extras"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/slots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fill = 0xabababababababab

type buffer [8]uint64

func newBuffer() *buffer {
	var b buffer
	for i := range b {
		b[i] = fill
	}
	return &b
}

func (b *buffer) ptr() unsafe.Pointer {
	return unsafe.Pointer(b)
}

func (b *buffer) untouched() bool {
	for _, w := range b {
		if w != fill {
			return false
		}
	}
	return true
}

func reset(t *testing.T) {
	slots.Reset()
	onSquadUpdate = nil
	onLanguageChanged = nil
	onChatMessage = nil
	onChatMessage2 = nil
	onInit = nil
	callRawInit = callRawInitC
	t.Cleanup(slots.Reset)
}

func addon(api, maxVersion uint32) *sdkextras.RawAddonInfo {
	return &sdkextras.RawAddonInfo{
		APIVersion:      api,
		MaxInfoVersion:  maxVersion,
		StringVersion:   ptr.Persist("v1.9.0.1"),
		SelfAccountName: ptr.Persist(":Self.1234"),
	}
}

func TestNothingConfigured(t *testing.T) {
	reset(t)

	b := newBuffer()
	arcdps_unofficial_extras_subscriber_init(unsafe.Pointer(addon(2, 3)), b.ptr())
	assert.True(t, b.untouched())
}

func TestWrongAPIVersion(t *testing.T) {
	reset(t)

	initCalled := false
	SetOnSquadUpdate(func(*sdkextras.UserInfoIter) {})
	SetOnChatMessage(func(*sdkextras.SquadMessageInfo) {})
	SetOnInit(func(_, _ ptr.OptionalString) { initCalled = true })

	for _, a := range []*sdkextras.RawAddonInfo{addon(1, 3), addon(3, 3), addon(2, 0)} {
		b := newBuffer()
		arcdps_unofficial_extras_subscriber_init(unsafe.Pointer(a), b.ptr())
		assert.True(t, b.untouched())
	}
	assert.False(t, initCalled)
}

func TestSubscribeV1(t *testing.T) {
	reset(t)

	SetOnSquadUpdate(func(*sdkextras.UserInfoIter) {})
	SetOnChatMessage(func(*sdkextras.SquadMessageInfo) {})

	b := newBuffer()
	arcdps_unofficial_extras_subscriber_init(unsafe.Pointer(addon(2, 1)), b.ptr())

	v1 := (*sdkextras.RawSubscriberInfoV1)(b.ptr())
	assert.Equal(t, uint32(1), v1.InfoVersion)
	name, _ := slots.CStrings()
	assert.Equal(t, name, v1.SubscriberName)
	assert.Equal(t, squadUpdateAddr(), v1.SquadUpdateCallback)
	assert.Nil(t, v1.LanguageChangedCallback)
	assert.Nil(t, v1.KeyBindChangedCallback)

	// the V2 chat message field lies past a V1 sized buffer
	for _, w := range b[sdkextras.InfoSize(1)/8:] {
		assert.Equal(t, uint64(fill), w)
	}
}

func TestSubscribeV3(t *testing.T) {
	reset(t)

	rawChat := ptr.Persist("raw chat")
	SetRawChatMessage(rawChat)
	SetOnChatMessage(func(*sdkextras.SquadMessageInfo) {})
	SetOnChatMessage2(func(*sdkextras.ChatMessageInfo2) {})
	SetOnLanguageChanged(func(sdkextras.Language) {})

	var account, version ptr.OptionalString
	SetOnInit(func(a, v ptr.OptionalString) { account, version = a, v })

	b := newBuffer()
	arcdps_unofficial_extras_subscriber_init(unsafe.Pointer(addon(2, 3)), b.ptr())

	v3 := (*sdkextras.RawSubscriberInfoV3)(b.ptr())
	assert.Equal(t, uint32(3), v3.InfoVersion)
	assert.Nil(t, v3.SquadUpdateCallback)
	assert.Equal(t, languageChangedAddr(), v3.LanguageChangedCallback)
	assert.Equal(t, rawChat, v3.ChatMessageCallback)
	assert.Equal(t, chatMessage2Addr(), v3.ChatMessageCallback2)
	assert.Equal(t, uint64(fill), b[7])

	assert.Equal(t, ptr.NewOptionalStringSet("Self.1234"), account)
	assert.Equal(t, ptr.NewOptionalStringSet("v1.9.0.1"), version)
	assert.True(t, slots.Frozen())
}

func TestInitOnly(t *testing.T) {
	reset(t)

	called := 0
	SetOnInit(func(_, _ ptr.OptionalString) { called++ })
	b := newBuffer()
	arcdps_unofficial_extras_subscriber_init(unsafe.Pointer(addon(2, 2)), b.ptr())
	assert.Equal(t, 1, called)
	v2 := (*sdkextras.RawSubscriberInfoV2)(b.ptr())
	assert.Equal(t, uint32(2), v2.InfoVersion)
	assert.Nil(t, v2.SquadUpdateCallback)
	assert.Nil(t, v2.ChatMessageCallback)
}

func TestRawInit(t *testing.T) {
	reset(t)

	raw := ptr.Persist("raw init")
	var forwarded []unsafe.Pointer
	callRawInit = func(fn, a, sub unsafe.Pointer) {
		forwarded = append(forwarded, fn, a, sub)
	}
	SetRawInit(raw)
	SetOnSquadUpdate(func(*sdkextras.UserInfoIter) {})
	safeInit := false
	SetOnInit(func(_, _ ptr.OptionalString) { safeInit = true })

	a := addon(1, 0)
	b := newBuffer()
	arcdps_unofficial_extras_subscriber_init(unsafe.Pointer(a), b.ptr())
	assert.Equal(t, []unsafe.Pointer{raw, unsafe.Pointer(a), b.ptr()}, forwarded)
	assert.True(t, b.untouched())
	assert.False(t, safeInit)
}

func TestSetterPanics(t *testing.T) {
	reset(t)

	assert.Panics(t, func() { SetOnSquadUpdate(nil) })
	assert.Panics(t, func() { SetOnLanguageChanged(nil) })
	assert.Panics(t, func() { SetOnChatMessage(nil) })
	assert.Panics(t, func() { SetOnChatMessage2(nil) })
	assert.Panics(t, func() { SetOnInit(nil) })
	assert.Panics(t, func() { SetRawInit(nil) })
	assert.Panics(t, func() { SetRawSquadUpdate(nil) })
	assert.Panics(t, func() { SetRawLanguageChanged(nil) })
	assert.Panics(t, func() { SetRawChatMessage2(nil) })
}

func TestSquadUpdateAdapter(t *testing.T) {
	reset(t)

	var got []sdkextras.UserInfo
	SetOnSquadUpdate(func(users *sdkextras.UserInfoIter) {
		got = users.Collect()
	})

	arcdps_sdk_extras_squad_update(nil, 0)
	assert.Empty(t, got)

	users := []sdkextras.RawUserInfo{
		{AccountName: ptr.Persist(":Leader.1"), Role: sdkextras.UserRoleSquadLeader, ReadyStatus: 1},
		{AccountName: ptr.Persist(":Left.2"), Role: sdkextras.UserRoleNone, Subgroup: 2},
	}
	arcdps_sdk_extras_squad_update(unsafe.Pointer(&users[0]), uint64(len(users)))
	require.Len(t, got, 2)
	assert.Equal(t, "Leader.1", got[0].AccountName.Value)
	assert.True(t, got[0].ReadyStatus)
	assert.Equal(t, "Left.2", got[1].AccountName.Value)
	assert.Equal(t, sdkextras.UserRoleNone, got[1].Role)
}

func span(s string) (unsafe.Pointer, uint64) {
	return ptr.Persist(s), uint64(len(s))
}

func TestChatAdapters(t *testing.T) {
	reset(t)

	raw := &sdkextras.RawSquadMessageInfo{ChannelType: sdkextras.ChannelTypeParty, IsBroadcast: 0x02}
	raw.Timestamp, raw.TimestampLength = span("2022-07-09T11:45:24.888Z")
	raw.AccountName, raw.AccountNameLength = span(":Sender.1")
	raw.CharacterName, raw.CharacterNameLength = span("Caithe")
	raw.Text, raw.TextLength = span("hello")

	var msgs []sdkextras.SquadMessageInfo
	SetOnChatMessage(func(m *sdkextras.SquadMessageInfo) { msgs = append(msgs, m.Owned()) })
	arcdps_sdk_extras_chat_message(unsafe.Pointer(raw))
	require.Len(t, msgs, 1)
	assert.Equal(t, "Sender.1", msgs[0].AccountName)
	assert.False(t, msgs[0].IsBroadcast)
	assert.Equal(t, "hello", msgs[0].Text)

	npc := &sdkextras.RawNpcMessageInfo{Timestamp: uint64(time.Second)}
	npc.CharacterName, npc.CharacterNameLength = span("Ogden")
	npc.Message, npc.MessageLength = span("Welcome")

	var msgs2 []sdkextras.ChatMessageInfo2
	SetOnChatMessage2(func(m *sdkextras.ChatMessageInfo2) { msgs2 = append(msgs2, m.Owned()) })
	arcdps_sdk_extras_chat_message2(int32(sdkextras.ChatMessageTypeNPC), unsafe.Pointer(npc))
	arcdps_sdk_extras_chat_message2(int32(sdkextras.ChatMessageTypeSquad), unsafe.Pointer(raw))
	arcdps_sdk_extras_chat_message2(5, unsafe.Pointer(raw))
	require.Len(t, msgs2, 3)
	require.NotNil(t, msgs2[0].NPC)
	assert.Equal(t, "Ogden", msgs2[0].NPC.CharacterName)
	assert.Equal(t, time.Unix(1, 0).UTC(), msgs2[0].NPC.Timestamp)
	require.NotNil(t, msgs2[1].Squad)
	assert.Equal(t, "Caithe", msgs2[1].Squad.CharacterName)
	assert.Nil(t, msgs2[2].Squad)
	assert.Nil(t, msgs2[2].NPC)
}

func TestLanguageAdapter(t *testing.T) {
	reset(t)

	var langs []sdkextras.Language
	SetOnLanguageChanged(func(l sdkextras.Language) { langs = append(langs, l) })
	arcdps_sdk_extras_language_changed(3)
	arcdps_sdk_extras_language_changed(0)
	assert.Equal(t, []sdkextras.Language{sdkextras.LanguageGerman, sdkextras.LanguageEnglish}, langs)
	assert.Equal(t, languageChangedAddr(), slots.Resolve(sdk.SlotExtrasLanguageChanged))
}

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


// This package exports arcdps_unofficial_extras_subscriber_init, which
// the unofficial extras addon calls to subscribe the plugin to its
// events, and the adapters of the events themselves.
//
// Import it only if the plugin uses extras events: the mere presence of
// the init symbol makes the extras addon call it.
package extras

/*
#include <stdint.h>
*/
import "C"
import (
	"log/slog"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	sdkextras "github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/extras"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/boundary"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/internal/slots"

	// the entry points are part of every plugin
	_ "github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/symbols/initialize"
)

var (
	onSquadUpdate     sdkextras.SquadUpdateCallback
	onLanguageChanged sdkextras.LanguageChangedCallback
	onChatMessage     sdkextras.ChatMessageCallback
	onChatMessage2    sdkextras.ChatMessage2Callback
	onInit            sdkextras.InitCallback

	callRawInit = callRawInitC
)

func SetOnSquadUpdate(fn sdkextras.SquadUpdateCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/extras.SetOnSquadUpdate: fn must not be nil")
	}
	onSquadUpdate = fn
	slots.SetSafe(sdk.SlotExtrasSquadUpdate, squadUpdateAddr())
}

func SetOnLanguageChanged(fn sdkextras.LanguageChangedCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/extras.SetOnLanguageChanged: fn must not be nil")
	}
	onLanguageChanged = fn
	slots.SetSafe(sdk.SlotExtrasLanguageChanged, languageChangedAddr())
}

func SetOnChatMessage(fn sdkextras.ChatMessageCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/extras.SetOnChatMessage: fn must not be nil")
	}
	onChatMessage = fn
	slots.SetSafe(sdk.SlotExtrasChatMessage, chatMessageAddr())
}

func SetOnChatMessage2(fn sdkextras.ChatMessage2Callback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/extras.SetOnChatMessage2: fn must not be nil")
	}
	onChatMessage2 = fn
	slots.SetSafe(sdk.SlotExtrasChatMessage2, chatMessage2Addr())
}

// SetOnInit sets the callback run after a successful subscription.
func SetOnInit(fn sdkextras.InitCallback) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/symbols/extras.SetOnInit: fn must not be nil")
	}
	onInit = fn
	slots.SetSafe(sdk.SlotExtrasInit, nil)
}

func SetRawSquadUpdate(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotExtrasSquadUpdate, fn)
}

func SetRawLanguageChanged(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotExtrasLanguageChanged, fn)
}

func SetRawChatMessage(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotExtrasChatMessage, fn)
}

func SetRawChatMessage2(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotExtrasChatMessage2, fn)
}

// SetRawInit makes arcdps_unofficial_extras_subscriber_init forward its
// arguments to fn and do nothing else. The negotiation is then entirely
// up to fn.
func SetRawInit(fn unsafe.Pointer) {
	slots.SetRaw(sdk.SlotExtrasInit, fn)
}

//export arcdps_unofficial_extras_subscriber_init
func arcdps_unofficial_extras_subscriber_init(addon, sub unsafe.Pointer) {
	defer boundary.Recover(sdk.SlotExtrasInit)
	slots.Freeze()

	if raw := slots.Raw(sdk.SlotExtrasInit); raw != nil {
		callRawInit(raw, addon, sub)
		return
	}
	if !slots.AnyExtras() {
		return
	}

	name, _ := slots.CStrings()
	info := (*sdkextras.RawAddonInfo)(addon)
	version, err := sdkextras.Negotiate(info, (*sdkextras.RawSubscriberInfoHeader)(sub), sdkextras.Subscriber{
		Name:            name,
		SquadUpdate:     slots.Resolve(sdk.SlotExtrasSquadUpdate),
		LanguageChanged: slots.Resolve(sdk.SlotExtrasLanguageChanged),
		ChatMessage:     slots.Resolve(sdk.SlotExtrasChatMessage),
		ChatMessage2:    slots.Resolve(sdk.SlotExtrasChatMessage2),
	})
	if err != nil {
		slog.Warn("unofficial extras subscription refused", "err", err)
		return
	}
	slog.Debug("subscribed to unofficial extras", "version", version)

	if onInit != nil {
		a := sdkextras.ConvertAddonInfo(info)
		onInit(a.AccountName, a.StringVersion)
	}
}

//export arcdps_sdk_extras_squad_update
func arcdps_sdk_extras_squad_update(users unsafe.Pointer, count uint64) {
	defer boundary.Recover(sdk.SlotExtrasSquadUpdate)
	onSquadUpdate(sdkextras.NewUserInfoIter((*sdkextras.RawUserInfo)(users), count))
}

//export arcdps_sdk_extras_language_changed
func arcdps_sdk_extras_language_changed(lang int32) {
	defer boundary.Recover(sdk.SlotExtrasLanguageChanged)
	onLanguageChanged(sdkextras.Language(lang))
}

//export arcdps_sdk_extras_chat_message
func arcdps_sdk_extras_chat_message(msg unsafe.Pointer) {
	defer boundary.Recover(sdk.SlotExtrasChatMessage)
	m := sdkextras.ConvertSquadMessage((*sdkextras.RawSquadMessageInfo)(msg))
	onChatMessage(&m)
}

//export arcdps_sdk_extras_chat_message2
func arcdps_sdk_extras_chat_message2(msgType int32, info unsafe.Pointer) {
	defer boundary.Recover(sdk.SlotExtrasChatMessage2)
	m := sdkextras.ConvertChatMessage2(sdkextras.ChatMessageType(msgType), sdkextras.NewRawChatMessageInfo2(info))
	onChatMessage2(&m)
}

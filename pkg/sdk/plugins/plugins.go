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


// Package plugins defines the interfaces of a plugin registered as a
// value instead of as a set of callbacks. A plugin implements Plugin and
// any of the optional interfaces below; each optional interface fills
// the slot of the same name.
//
// Use the overlay package to register the arcdps callbacks, and the
// subscriber package to register the unofficial extras ones.
package plugins

import (
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/extras"
)

type Info struct {
	// Sig must be unique among the plugins loaded by arcdps.
	Sig   uint32
	Name  string
	Build string
}

type Plugin interface {
	Info() *Info
	// (optional): Initializer
	// (optional): Releaser
}

type Initializer interface {
	Init(swapchain unsafe.Pointer) error
}

type Releaser interface {
	Release()
}

type CombatHandler interface {
	OnCombat(ev *sdk.CombatEvent, src, dst *sdk.Agent, skillName ptr.OptionalString, id, revision uint64)
}

type CombatLocalHandler interface {
	OnCombatLocal(ev *sdk.CombatEvent, src, dst *sdk.Agent, skillName ptr.OptionalString, id, revision uint64)
}

type Renderer interface {
	Render(ui *sdk.UI, notCharSelOrLoading bool)
}

type OptionsEndRenderer interface {
	RenderOptionsEnd(ui *sdk.UI)
}

type OptionsWindowsRenderer interface {
	RenderOptionsWindows(ui *sdk.UI, windowName ptr.OptionalString) bool
}

type WndFilter interface {
	WndFilter(key uintptr, keyDown, prevKeyDown bool) bool
}

type WndNofilter interface {
	WndNofilter(key uintptr, keyDown, prevKeyDown bool) bool
}

type SquadUpdateHandler interface {
	OnSquadUpdate(users *extras.UserInfoIter)
}

type LanguageChangedHandler interface {
	OnLanguageChanged(lang extras.Language)
}

type ChatMessageHandler interface {
	OnChatMessage(msg *extras.SquadMessageInfo)
}

type ChatMessage2Handler interface {
	OnChatMessage2(msg *extras.ChatMessageInfo2)
}

type ExtrasInitializer interface {
	InitExtras(accountName, extrasVersion ptr.OptionalString)
}

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


package subscriber

import (
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/plugins"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/symbols/extras"
)

var registered = false

// Register subscribes p to the unofficial extras events it implements.
// It must be called from an init function, and only once.
func Register(p plugins.Plugin) {
	if registered {
		panic("plugin-sdk-go/sdk/plugins/subscriber: register can be called only once")
	}

	if v, ok := p.(plugins.SquadUpdateHandler); ok {
		extras.SetOnSquadUpdate(v.OnSquadUpdate)
	}
	if v, ok := p.(plugins.LanguageChangedHandler); ok {
		extras.SetOnLanguageChanged(v.OnLanguageChanged)
	}
	if v, ok := p.(plugins.ChatMessageHandler); ok {
		extras.SetOnChatMessage(v.OnChatMessage)
	}
	if v, ok := p.(plugins.ChatMessage2Handler); ok {
		extras.SetOnChatMessage2(v.OnChatMessage2)
	}
	if v, ok := p.(plugins.ExtrasInitializer); ok {
		extras.SetOnInit(v.InitExtras)
	}

	registered = true
}

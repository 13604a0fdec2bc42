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
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/plugins"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/symbols/combat"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/symbols/imgui"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/symbols/initialize"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/symbols/wndproc"
)

var registered = false

// Register fills the arcdps export table from p. It must be called from
// an init function, and only once.
func Register(p plugins.Plugin) {
	if registered {
		panic("plugin-sdk-go/sdk/plugins/overlay: register can be called only once")
	}

	i := p.Info()
	initialize.SetInfo(i.Sig, i.Name, i.Build)
	if v, ok := p.(plugins.Initializer); ok {
		initialize.SetOnInit(v.Init)
	}
	if v, ok := p.(plugins.Releaser); ok {
		initialize.SetOnRelease(v.Release)
	}

	if v, ok := p.(plugins.CombatHandler); ok {
		combat.SetOnCombat(v.OnCombat)
	}
	if v, ok := p.(plugins.CombatLocalHandler); ok {
		combat.SetOnCombatLocal(v.OnCombatLocal)
	}
	if v, ok := p.(plugins.Renderer); ok {
		imgui.SetOnImgui(v.Render)
	}
	if v, ok := p.(plugins.OptionsEndRenderer); ok {
		imgui.SetOnOptionsEnd(v.RenderOptionsEnd)
	}
	if v, ok := p.(plugins.OptionsWindowsRenderer); ok {
		imgui.SetOnOptionsWindows(v.RenderOptionsWindows)
	}
	if v, ok := p.(plugins.WndFilter); ok {
		wndproc.SetOnWndFilter(v.WndFilter)
	}
	if v, ok := p.(plugins.WndNofilter); ok {
		wndproc.SetOnWndNofilter(v.WndNofilter)
	}

	registered = true
}

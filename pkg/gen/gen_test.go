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
	"bytes"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullManifest = `
package: overlay
sig: 3735928559
name: test plugin
build: 1.2.3
init: onInit
release: onRelease
callbacks:
  combat:
    raw: rawCombat
    safe: onCombat
  imgui:
    safe: onImgui
  wnd_nofilter:
    safe: onKey
  extras_squad_update:
    safe: onSquadUpdate
`

const minimalManifest = `
sig: 42
name: minimal
callbacks:
  combat_local:
    raw: rawCombatLocal
`

func load(t *testing.T, doc string) *Manifest {
	m, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	return m
}

func TestLoad(t *testing.T) {
	m := load(t, fullManifest)
	assert.Equal(t, "overlay", m.Package)
	assert.Equal(t, uint32(0xdeadbeef), m.Sig)
	assert.Equal(t, "test plugin", m.Name)
	assert.Equal(t, "1.2.3", m.Build)
	assert.Equal(t, "onInit", m.Init)
	assert.Equal(t, Callback{Raw: "rawCombat", Safe: "onCombat"}, m.Callbacks["combat"])
	assert.Len(t, m.Callbacks, 4)

	m = load(t, minimalManifest)
	assert.Equal(t, "main", m.Package)
	assert.Empty(t, m.Build)
}

func TestValidate(t *testing.T) {
	invalid := map[string]string{
		"empty":          ``,
		"missing name":   `sig: 1`,
		"zero sig":       "sig: 0\nname: x",
		"sig overflow":   "sig: 4294967296\nname: x",
		"unknown field":  "sig: 1\nname: x\nversion: 2",
		"unknown slot":   "sig: 1\nname: x\ncallbacks:\n  combat_remote:\n    safe: f",
		"empty callback": "sig: 1\nname: x\ncallbacks:\n  combat: {}",
		"bad callback":   "sig: 1\nname: x\ncallbacks:\n  combat:\n    unsafe: f",
		"bad package":    "package: 1x\nsig: 1\nname: x",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			err := Validate([]byte(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}

	assert.NoError(t, Validate([]byte(fullManifest)))
	assert.NoError(t, Validate([]byte(minimalManifest)))

	_, err := Load(strings.NewReader("sig: [1"))
	assert.Error(t, err)
}

func TestValidateAggregates(t *testing.T) {
	err := Validate([]byte("sig: 0\ncallbacks:\n  nope:\n    safe: f"))
	require.Error(t, err)
	lines := strings.Split(err.Error(), "\n")
	assert.GreaterOrEqual(t, len(lines), 3)
}

func TestPlan(t *testing.T) {
	plan, err := Plan(load(t, fullManifest))
	require.NoError(t, err)
	require.Len(t, plan, int(sdk.NumSlots))

	for i, p := range plan {
		assert.Equal(t, sdk.Slot(i), p.Slot)
	}

	assert.Equal(t, KindRaw, plan[sdk.SlotCombat].Kind)
	assert.Equal(t, "rawCombat", plan[sdk.SlotCombat].Expr)
	assert.True(t, plan[sdk.SlotCombat].Shadowed)
	assert.Equal(t, KindSafe, plan[sdk.SlotImgui].Kind)
	assert.False(t, plan[sdk.SlotImgui].Shadowed)
	assert.Equal(t, KindSafe, plan[sdk.SlotWndNofilter].Kind)
	assert.Equal(t, KindSafe, plan[sdk.SlotExtrasSquadUpdate].Kind)
	assert.Equal(t, KindAbsent, plan[sdk.SlotCombatLocal].Kind)
	assert.Equal(t, KindAbsent, plan[sdk.SlotExtrasInit].Kind)

	path, name := plan[sdk.SlotCombat].Setter()
	assert.Equal(t, symbolsPath+"combat", path)
	assert.Equal(t, "SetRawCombat", name)
	path, name = plan[sdk.SlotCombatLocal].Setter()
	assert.Empty(t, path)
	assert.Empty(t, name)

	_, err = Plan(&Manifest{Callbacks: map[string]Callback{"foo": {Safe: "f"}}})
	assert.Error(t, err)
	_, err = Plan(&Manifest{Callbacks: map[string]Callback{"imgui": {}}})
	assert.Error(t, err)
}

func render(t *testing.T, m *Manifest) (string, []string) {
	var buf bytes.Buffer
	require.NoError(t, Render(m, &buf))
	src := buf.String()

	f, err := parser.ParseFile(token.NewFileSet(), OutputFile, src, parser.ParseComments)
	require.NoError(t, err, src)
	assert.Equal(t, m.Package, f.Name.Name)

	var imports []string
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)
		imports = append(imports, path)
	}
	return src, imports
}

func TestRender(t *testing.T) {
	src, imports := render(t, load(t, fullManifest))

	assert.True(t, strings.HasPrefix(src, "// Code generated by arcdps-gen. DO NOT EDIT."))
	assert.ElementsMatch(t, []string{
		symbolsPath + "initialize",
		symbolsPath + "combat",
		symbolsPath + "imgui",
		symbolsPath + "wndproc",
		symbolsPath + "extras",
	}, imports)

	assert.Contains(t, src, "initialize.SetInfo(0xdeadbeef, \"test plugin\", \"1.2.3\")")
	assert.Contains(t, src, "initialize.SetOnInit(onInit)")
	assert.Contains(t, src, "initialize.SetOnRelease(onRelease)")
	assert.Contains(t, src, "combat.SetRawCombat(rawCombat)")
	assert.NotContains(t, src, "SetOnCombat")
	assert.Contains(t, src, "imgui.SetOnImgui(onImgui)")
	assert.Contains(t, src, "wndproc.SetOnWndNofilter(onKey)")
	assert.Contains(t, src, "extras.SetOnSquadUpdate(onSquadUpdate)")
}

func TestRenderMinimal(t *testing.T) {
	src, imports := render(t, load(t, minimalManifest))

	// no extras slot configured: the subscriber entry point is not linked
	assert.ElementsMatch(t, []string{
		symbolsPath + "initialize",
		symbolsPath + "combat",
	}, imports)
	assert.Contains(t, src, "initialize.SetInfo(0x2a, \"minimal\", \"\")")
	assert.Contains(t, src, "combat.SetRawCombatLocal(rawCombatLocal)")
	assert.NotContains(t, src, "SetOnInit")
}

func TestRenderError(t *testing.T) {
	m := &Manifest{Sig: 1, Name: "x", Callbacks: map[string]Callback{"nope": {Safe: "f"}}}
	assert.Error(t, Render(m, &bytes.Buffer{}))
}

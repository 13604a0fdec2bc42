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


// Package loader loads a plugin library the way arcdps does, and lets Go
// code inspect its export table and drive its callbacks. It is meant for
// testing built plugins outside of the game.
package loader

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/extras"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk/plugins"
)

const (
	symInitAddr    = "get_init_addr"
	symReleaseAddr = "get_release_addr"
	symExtrasInit  = "arcdps_unofficial_extras_subscriber_init"
)

var (
	ErrMissingSymbol = errors.New("missing required symbol")
	// ErrSizeMismatch is returned when the plugin answers with an error
	// export. The error also carries the message of the plugin.
	ErrSizeMismatch  = errors.New("export size mismatch")
	ErrImguiVersion  = errors.New("unsupported imgui version")
	ErrZeroSig       = errors.New("plugin signature is zero")
	ErrNilExport     = errors.New("plugin returned a nil export")
	ErrNotLoaded     = errors.New("plugin is not loaded")
	ErrNoExtras      = errors.New("plugin does not subscribe to unofficial extras")
	ErrNotSubscribed = errors.New("plugin did not fill the subscriber info")
)

// library is the platform dependent handle of an opened shared library.
type library interface {
	sym(name string) (uintptr, error)
	close() error
}

// Host holds the values passed to get_init_addr.
type Host struct {
	ArcVersion   string
	ImguiContext unsafe.Pointer
	D3DPtr       unsafe.Pointer
	ArcModule    unsafe.Pointer
	MallocFn     unsafe.Pointer
	FreeFn       unsafe.Pointer
}

// Plugin represents an arcdps plugin loaded from an external shared
// dynamic library.
type Plugin struct {
	m           sync.Mutex
	lib         library
	initAddr    uintptr
	releaseAddr uintptr
	extrasInit  uintptr
	export      sdk.RawExport
	info        plugins.Info
	loaded      bool
}

// NewPlugin opens the library at path and resolves its entry points. This
// does not call any of them, see Load.
func NewPlugin(path string) (*Plugin, error) {
	lib, err := openLibrary(path)
	if err != nil {
		return nil, err
	}

	p := &Plugin{lib: lib}
	var errs []error
	if p.initAddr, err = lib.sym(symInitAddr); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSymbol, symInitAddr))
	}
	if p.releaseAddr, err = lib.sym(symReleaseAddr); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSymbol, symReleaseAddr))
	}
	if len(errs) > 0 {
		lib.close()
		return nil, errors.Join(errs...)
	}

	// optional
	p.extrasInit, _ = lib.sym(symExtrasInit)
	return p, nil
}

// NewLoadedPlugin is the same as NewPlugin, but also calls Load and
// unloads the library if it fails.
func NewLoadedPlugin(path string, host *Host) (*Plugin, error) {
	p, err := NewPlugin(path)
	if err != nil {
		return nil, err
	}
	if err := p.Load(host); err != nil {
		p.Unload()
		return nil, err
	}
	return p, nil
}

// Load calls get_init_addr and then the load function it returns, and
// validates the export table.
func (p *Plugin) Load(host *Host) error {
	p.m.Lock()
	defer p.m.Unlock()
	if p.lib == nil {
		return ErrNotLoaded
	}

	arcVersion := ptr.Persist(host.ArcVersion)
	loadFn, _, _ := purego.SyscallN(p.initAddr,
		uintptr(arcVersion),
		uintptr(host.ImguiContext),
		uintptr(host.D3DPtr),
		uintptr(host.ArcModule),
		uintptr(host.MallocFn),
		uintptr(host.FreeFn))
	if loadFn == 0 {
		return fmt.Errorf("%s returned a nil load function", symInitAddr)
	}

	e, _, _ := purego.SyscallN(loadFn)
	if e == 0 {
		return ErrNilExport
	}
	p.export = *(*sdk.RawExport)(unsafe.Pointer(e))
	if err := ValidateExport(&p.export); err != nil {
		return err
	}
	p.info = plugins.Info{
		Sig:   p.export.Sig,
		Name:  p.export.Name(),
		Build: p.export.Build(),
	}
	p.loaded = true
	return nil
}

// ValidateExport returns nil if e is a valid export table, and describes
// what is wrong with it otherwise.
func ValidateExport(e *sdk.RawExport) error {
	if e.IsError() {
		return fmt.Errorf("%w: %s", ErrSizeMismatch, e.ErrorMessage())
	}
	var errs []error
	if e.Sig == 0 {
		errs = append(errs, ErrZeroSig)
	}
	if e.ImguiVersion != sdk.ImguiVersion {
		errs = append(errs, fmt.Errorf("%w: %d", ErrImguiVersion, e.ImguiVersion))
	}
	return errors.Join(errs...)
}

// Info returns the identity read from the export table. It is empty
// until Load succeeds.
func (p *Plugin) Info() *plugins.Info {
	return &p.info
}

// Export returns a copy of the export table read by Load.
func (p *Plugin) Export() sdk.RawExport {
	return p.export
}

// HasSlot returns true if the export table has a function for slot.
func (p *Plugin) HasSlot(slot sdk.Slot) bool {
	return slot.InExportTable() && p.export.Callback(slot) != nil
}

// HasExtras returns true if the library exports the unofficial extras
// subscriber entry point.
func (p *Plugin) HasExtras() bool {
	return p.extrasInit != 0
}

// Subscription is what a plugin wrote in the subscriber info buffer.
type Subscription struct {
	InfoVersion     uint32
	Name            string
	SquadUpdate     uintptr
	LanguageChanged uintptr
	KeyBindChanged  uintptr
	ChatMessage     uintptr
	ChatMessage2    uintptr
}

// SubscribeExtras plays the unofficial extras addon: it calls the
// subscriber entry point with an addon info advertising apiVersion and
// maxInfoVersion, and returns the subscription the plugin wrote.
func (p *Plugin) SubscribeExtras(apiVersion, maxInfoVersion uint32, accountName, extrasVersion string) (*Subscription, error) {
	p.m.Lock()
	defer p.m.Unlock()
	if p.extrasInit == 0 {
		return nil, ErrNoExtras
	}

	addon := &extras.RawAddonInfo{
		APIVersion:      apiVersion,
		MaxInfoVersion:  maxInfoVersion,
		StringVersion:   ptr.Persist(extrasVersion),
		SelfAccountName: ptr.Persist(accountName),
	}
	info := &extras.RawSubscriberInfoV3{}
	purego.SyscallN(p.extrasInit, uintptr(unsafe.Pointer(addon)), uintptr(unsafe.Pointer(info)))
	runtime.KeepAlive(addon)
	return ReadSubscription(info)
}

// ReadSubscription decodes a subscriber info buffer, reading only the
// fields of the version the subscriber chose.
func ReadSubscription(info *extras.RawSubscriberInfoV3) (*Subscription, error) {
	v1 := info.V2().V1()
	version := v1.Header().InfoVersion
	if version == 0 {
		return nil, ErrNotSubscribed
	}
	if extras.InfoSize(version) == 0 {
		return nil, fmt.Errorf("%w: %d", extras.ErrInfoVersion, version)
	}

	s := &Subscription{
		InfoVersion:     version,
		Name:            ptr.GoString(v1.SubscriberName),
		SquadUpdate:     uintptr(v1.SquadUpdateCallback),
		LanguageChanged: uintptr(v1.LanguageChangedCallback),
		KeyBindChanged:  uintptr(v1.KeyBindChangedCallback),
	}
	if version >= 2 {
		s.ChatMessage = uintptr(info.V2().ChatMessageCallback)
	}
	if version >= 3 {
		s.ChatMessage2 = uintptr(info.ChatMessageCallback2)
	}
	return s, nil
}

// Unload runs the release function of a loaded plugin and closes the
// library.
//
// The behavior of Unload() an already-unloaded Plugin is undefined.
func (p *Plugin) Unload() error {
	p.m.Lock()
	defer p.m.Unlock()
	if p.lib == nil {
		return nil
	}
	if p.loaded {
		if unload, _, _ := purego.SyscallN(p.releaseAddr); unload != 0 {
			purego.SyscallN(unload)
		}
		p.loaded = false
	}
	err := p.lib.close()
	p.lib = nil
	return err
}

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


// Package slots is the registry shared by the symbol packages. It records
// which slots a plugin implements, with a raw function pointer or with a
// safe callback behind an adapter, and holds the process-wide state the
// host hands to get_init_addr.
//
// Symbol packages never import each other: everything they need to know
// about the rest of the plugin goes through this package.
package slots

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
)

// Kind tells how a slot is implemented.
type Kind int

const (
	KindAbsent Kind = iota
	KindRaw
	KindSafe
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindRaw:
		return "raw"
	case KindSafe:
		return "safe"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type entry struct {
	raw     unsafe.Pointer
	adapter unsafe.Pointer
	safe    bool
}

func (e *entry) kind() Kind {
	switch {
	case e.raw != nil:
		return KindRaw
	case e.safe:
		return KindSafe
	}
	return KindAbsent
}

var (
	mu      sync.Mutex
	entries [sdk.NumSlots]entry
	frozen  atomic.Bool
)

func checkSlot(fn string, slot sdk.Slot) {
	if slot < 0 || slot >= sdk.NumSlots {
		panic(fmt.Sprintf("plugin-sdk-go/sdk/internal/slots.%s: invalid slot %d", fn, int(slot)))
	}
	if frozen.Load() {
		panic(fmt.Sprintf("plugin-sdk-go/sdk/internal/slots.%s: slot %s set after the plugin was loaded", fn, slot))
	}
}

// SetRaw registers a raw C function pointer for slot. A raw function
// takes precedence over a safe callback registered for the same slot.
func SetRaw(slot sdk.Slot, fn unsafe.Pointer) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/internal/slots.SetRaw: fn must not be nil")
	}
	mu.Lock()
	defer mu.Unlock()
	checkSlot("SetRaw", slot)
	entries[slot].raw = fn
}

// SetSafe records that slot has a safe callback. adapter is the address
// of the exported function converting the raw arguments for it. It may
// be nil for slots that are not called through a function pointer, such
// as the extras init.
func SetSafe(slot sdk.Slot, adapter unsafe.Pointer) {
	mu.Lock()
	defer mu.Unlock()
	checkSlot("SetSafe", slot)
	entries[slot].adapter = adapter
	entries[slot].safe = true
}

// KindOf returns how slot is implemented.
func KindOf(slot sdk.Slot) Kind {
	mu.Lock()
	defer mu.Unlock()
	return entries[slot].kind()
}

// Raw returns the raw function registered for slot, or nil.
func Raw(slot sdk.Slot) unsafe.Pointer {
	mu.Lock()
	defer mu.Unlock()
	return entries[slot].raw
}

// Resolve returns the single function pointer the host must see for slot:
// the raw function if any, otherwise the adapter of the safe callback,
// otherwise nil.
func Resolve(slot sdk.Slot) unsafe.Pointer {
	mu.Lock()
	defer mu.Unlock()
	e := &entries[slot]
	if e.raw != nil {
		return e.raw
	}
	if e.safe {
		return e.adapter
	}
	return nil
}

// AnyExtras returns true if any slot of the extras protocol is
// implemented.
func AnyExtras() bool {
	mu.Lock()
	defer mu.Unlock()
	for s := sdk.Slot(0); s < sdk.NumSlots; s++ {
		if s.IsExtras() && entries[s].kind() != KindAbsent {
			return true
		}
	}
	return false
}

// Freeze forbids further registrations. It is called as soon as the host
// starts using the plugin.
func Freeze() {
	frozen.Store(true)
}

// Frozen returns true once Freeze was called.
func Frozen() bool {
	return frozen.Load()
}

// Reset clears every registration and unfreezes the registry. It is only
// meant for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	entries = [sdk.NumSlots]entry{}
	info = defaultInfo()
	infoSet = false
	frozen.Store(false)
}

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


// Package boundary stops panics from unwinding into the host. Every
// exported function defers Recover, which logs the panic and aborts the
// process.
package boundary

/*
#include <stdlib.h>
*/
import "C"
import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
)

// AbortFn terminates the process.
type AbortFn func()

var abortFn atomic.Pointer[AbortFn]

func init() {
	SetAbort(func() { C.abort() })
}

// SetAbort replaces the function called after a panic was logged.
func SetAbort(fn AbortFn) {
	if fn == nil {
		panic("plugin-sdk-go/sdk/internal/boundary.SetAbort: fn must not be nil")
	}
	abortFn.Store(&fn)
}

// Recover must be deferred directly by exported functions. where names
// the function for the log line.
func Recover(where fmt.Stringer) {
	if r := recover(); r != nil {
		slog.Error(fmt.Sprintf("panic in %s: %v", where, r), "stack", string(debug.Stack()))
		(*abortFn.Load())()
	}
}

// Symbol names an exported function that is not a callback slot.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

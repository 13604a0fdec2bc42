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


package logging

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// names of the log functions exported by arcdps
const (
	fileLogProc   = "e3"
	windowLogProc = "e8"
)

// HostSinks resolves the file and window log functions of the arcdps
// module. Missing functions are skipped.
func HostSinks(module unsafe.Pointer) []Sink {
	if module == nil {
		return nil
	}
	var sinks []Sink
	for _, name := range []string{fileLogProc, windowLogProc} {
		addr, err := windows.GetProcAddress(windows.Handle(uintptr(module)), name)
		if err != nil || addr == 0 {
			continue
		}
		sinks = append(sinks, CSink(unsafe.Pointer(addr)))
	}
	return sinks
}

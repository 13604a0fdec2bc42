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


package loader

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type dllLibrary struct {
	handle windows.Handle
}

func openLibrary(path string) (library, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return &dllLibrary{handle: h}, nil
}

func (l *dllLibrary) sym(name string) (uintptr, error) {
	return windows.GetProcAddress(l.handle, name)
}

func (l *dllLibrary) close() error {
	return windows.FreeLibrary(l.handle)
}

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


package imgui

/*
#include <stdint.h>
#include <stdbool.h>

extern void arcdps_sdk_imgui(uint32_t);
extern void arcdps_sdk_options_end(void);
extern bool arcdps_sdk_options_windows(void*);

static void* imgui_addr(void)
{
	return (void*)arcdps_sdk_imgui;
}

static void* options_end_addr(void)
{
	return (void*)arcdps_sdk_options_end;
}

static void* options_windows_addr(void)
{
	return (void*)arcdps_sdk_options_windows;
}
*/
import "C"
import "unsafe"

func imguiAddr() unsafe.Pointer {
	return C.imgui_addr()
}

func optionsEndAddr() unsafe.Pointer {
	return C.options_end_addr()
}

func optionsWindowsAddr() unsafe.Pointer {
	return C.options_windows_addr()
}

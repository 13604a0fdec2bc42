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


package wndproc

/*
#include <stdint.h>

extern uintptr_t arcdps_sdk_wnd_filter(void*, uint32_t, uintptr_t, intptr_t);
extern uintptr_t arcdps_sdk_wnd_nofilter(void*, uint32_t, uintptr_t, intptr_t);

static void* wnd_filter_addr(void)
{
	return (void*)arcdps_sdk_wnd_filter;
}

static void* wnd_nofilter_addr(void)
{
	return (void*)arcdps_sdk_wnd_nofilter;
}
*/
import "C"
import "unsafe"

func wndFilterAddr() unsafe.Pointer {
	return C.wnd_filter_addr()
}

func wndNofilterAddr() unsafe.Pointer {
	return C.wnd_nofilter_addr()
}

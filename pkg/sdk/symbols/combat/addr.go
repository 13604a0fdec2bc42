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


package combat

/*
#include <stdint.h>

extern void arcdps_sdk_combat(void*, void*, void*, void*, uint64_t, uint64_t);
extern void arcdps_sdk_combat_local(void*, void*, void*, void*, uint64_t, uint64_t);

static void* combat_addr(void)
{
	return (void*)arcdps_sdk_combat;
}

static void* combat_local_addr(void)
{
	return (void*)arcdps_sdk_combat_local;
}
*/
import "C"
import "unsafe"

func combatAddr() unsafe.Pointer {
	return C.combat_addr()
}

func combatLocalAddr() unsafe.Pointer {
	return C.combat_local_addr()
}

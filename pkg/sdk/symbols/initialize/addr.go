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


package initialize

/*
extern void* arcdps_load(void);
extern void arcdps_unload(void);

static void* load_addr(void)
{
	return (void*)arcdps_load;
}

static void* unload_addr(void)
{
	return (void*)arcdps_unload;
}
*/
import "C"
import "unsafe"

func loadAddr() unsafe.Pointer {
	return C.load_addr()
}

func unloadAddr() unsafe.Pointer {
	return C.unload_addr()
}

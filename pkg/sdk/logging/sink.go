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

/*
#include <stddef.h>

typedef void (*log_fn)(char*);

static void call_sink(void* fn, char* line)
{
	((log_fn)fn)(line);
}
*/
import "C"
import "unsafe"

// CSink returns a Sink calling the C function fn, which takes a single
// null-terminated string.
func CSink(fn unsafe.Pointer) Sink {
	if fn == nil {
		return nil
	}
	return func(line []byte) {
		C.call_sink(fn, (*C.char)(unsafe.Pointer(&line[0])))
	}
}

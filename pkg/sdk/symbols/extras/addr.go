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


package extras

/*
#include <stdint.h>

typedef void (*subscriber_init_fn)(void*, void*);

extern void arcdps_sdk_extras_squad_update(void*, uint64_t);
extern void arcdps_sdk_extras_language_changed(int32_t);
extern void arcdps_sdk_extras_chat_message(void*);
extern void arcdps_sdk_extras_chat_message2(int32_t, void*);

static void* squad_update_addr(void)
{
	return (void*)arcdps_sdk_extras_squad_update;
}

static void* language_changed_addr(void)
{
	return (void*)arcdps_sdk_extras_language_changed;
}

static void* chat_message_addr(void)
{
	return (void*)arcdps_sdk_extras_chat_message;
}

static void* chat_message2_addr(void)
{
	return (void*)arcdps_sdk_extras_chat_message2;
}

static void call_raw_init(void* fn, void* addon, void* sub)
{
	((subscriber_init_fn)fn)(addon, sub);
}
*/
import "C"
import "unsafe"

func squadUpdateAddr() unsafe.Pointer {
	return C.squad_update_addr()
}

func languageChangedAddr() unsafe.Pointer {
	return C.language_changed_addr()
}

func chatMessageAddr() unsafe.Pointer {
	return C.chat_message_addr()
}

func chatMessage2Addr() unsafe.Pointer {
	return C.chat_message2_addr()
}

func callRawInitC(fn, addon, sub unsafe.Pointer) {
	C.call_raw_init(fn, addon, sub)
}

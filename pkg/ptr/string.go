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

package ptr

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"unicode/utf8"
	"unsafe"
)

const cStringNullTerminator = byte(0)

// GoString converts a C string to a Go string without copying. The
// returned string aliases the C memory and is only valid as long as the
// memory pointed by charPtr is. A nil pointer yields an empty string.
func GoString(charPtr unsafe.Pointer) string {
	if charPtr == nil {
		return ""
	}
	return unsafe.String((*byte)(charPtr), int(C.strlen((*C.char)(charPtr))))
}

// CStringView converts a possibly-nil C string into an OptionalString.
// A nil pointer maps to an unset value. A string that is not valid UTF-8
// maps to a set, empty value: decoding never fails.
//
// The returned value aliases the C memory, use Clone on it if the value
// must outlive the memory it was read from.
func CStringView(charPtr unsafe.Pointer) OptionalString {
	if charPtr == nil {
		return NewOptionalStringUnset()
	}
	s := GoString(charPtr)
	if !utf8.ValidString(s) {
		return NewOptionalStringSet("")
	}
	return NewOptionalStringSet(s)
}

// StringN converts a pointer and an explicit length into a Go string
// without copying. The length is authoritative, the memory does not need
// to be null-terminated. The pointer must not be nil.
func StringN(p unsafe.Pointer, n uint64) string {
	if p == nil {
		panic("plugin-sdk-go/ptr.StringN: nil pointer")
	}
	return unsafe.String((*byte)(p), int(n))
}

// StringBuffer represents a persistent, null-terminated C string owned by
// the plugin. It is meant to hand strings to the host that must stay valid
// after the call that produced them returns.
//
// The underlying C memory is out of the scope of garbage collection and
// must be released manually with Free.
type StringBuffer struct {
	cPtr *C.char
	len  int
}

// Write copies str into the buffer, reallocating it if needed.
func (s *StringBuffer) Write(str string) {
	if s.cPtr == nil || len(str) > s.len {
		if s.cPtr != nil {
			C.free(unsafe.Pointer(s.cPtr))
		}
		s.cPtr = (*C.char)(C.malloc(C.size_t(len(str) + 1)))
		s.len = len(str)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(s.cPtr)), len(str)+1)
	copy(buf, str)
	buf[len(str)] = cStringNullTerminator
}

// String returns a Go view of the buffer content.
func (s *StringBuffer) String() string {
	return GoString(unsafe.Pointer(s.cPtr))
}

// CharPtr returns the address of the null-terminated C string, or nil if
// nothing has been written yet.
func (s *StringBuffer) CharPtr() unsafe.Pointer {
	return unsafe.Pointer(s.cPtr)
}

// Free releases the C memory. The buffer can be reused afterwards.
func (s *StringBuffer) Free() {
	if s.cPtr != nil {
		C.free(unsafe.Pointer(s.cPtr))
		s.cPtr = nil
		s.len = 0
	}
}

// Persist copies str into C memory that is never released and returns
// its address. Use it for strings the host keeps for the whole lifetime
// of the plugin, such as the plugin name.
func Persist(str string) unsafe.Pointer {
	var buf StringBuffer
	buf.Write(str)
	return buf.CharPtr()
}

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

package sdk

// KeyEvent is a decoded key message.
type KeyEvent struct {
	Key         uintptr
	KeyDown     bool
	PrevKeyDown bool
}

// DecodeKeyMessage decodes WM_KEYDOWN, WM_KEYUP, WM_SYSKEYDOWN and
// WM_SYSKEYUP. It returns false for any other message.
func DecodeKeyMessage(msg uint32, wParam uintptr, lParam int) (KeyEvent, bool) {
	switch msg {
	case WMKeyDown, WMKeyUp, WMSysKeyDown, WMSysKeyUp:
		return KeyEvent{
			Key: wParam,
			// down messages have an even id
			KeyDown: msg&1 == 0,
			// bit 30 is the previous key state
			PrevKeyDown: (lParam>>30)&1 == 1,
		}, true
	}
	return KeyEvent{}, false
}

// FilterWndProc runs fn on key messages and returns what the wnd_filter
// and wnd_nofilter slots must return: msg to pass the message on, or 0
// to swallow it. Other messages are passed on without calling fn.
func FilterWndProc(fn WndProcCallback, msg uint32, wParam uintptr, lParam int) uint32 {
	ev, ok := DecodeKeyMessage(msg, wParam, lParam)
	if !ok {
		return msg
	}
	if fn(ev.Key, ev.KeyDown, ev.PrevKeyDown) {
		return msg
	}
	return 0
}

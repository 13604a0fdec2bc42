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

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
)

const (
	// APIVersion is the only extras API version subscribers accept.
	APIVersion uint32 = 2
	// MaxInfoVersion is the newest subscriber info struct known to the SDK.
	MaxInfoVersion uint32 = 3
)

var (
	ErrAPIVersion  = errors.New("unsupported extras api version")
	ErrInfoVersion = errors.New("unsupported extras subscriber info version")
)

// RawAddonInfo mirrors the extras_addon_info struct the extras addon
// passes to arcdps_unofficial_extras_subscriber_init.
type RawAddonInfo struct {
	APIVersion uint32
	// MaxInfoVersion also bounds the size of the subscriber info buffer.
	MaxInfoVersion uint32
	// Valid for the lifetime of the extras addon.
	StringVersion unsafe.Pointer
	// Includes the leading ':', only valid during the init call.
	SelfAccountName unsafe.Pointer
	ExtrasHandle    unsafe.Pointer
}

// AddonInfo is the safe view of a RawAddonInfo.
type AddonInfo struct {
	APIVersion     uint32
	MaxInfoVersion uint32
	StringVersion  ptr.OptionalString
	// AccountName has the leading ':' removed.
	AccountName ptr.OptionalString
}

func ConvertAddonInfo(raw *RawAddonInfo) AddonInfo {
	return AddonInfo{
		APIVersion:     raw.APIVersion,
		MaxInfoVersion: raw.MaxInfoVersion,
		StringVersion:  ptr.CStringView(raw.StringVersion),
		AccountName:    ptr.CStringView(raw.SelfAccountName).Map(sdk.StripAccountPrefix),
	}
}

// RawSubscriberInfoHeader is shared by every subscriber info version.
type RawSubscriberInfoHeader struct {
	InfoVersion uint32
	Unused1     uint32
}

// RawSubscriberInfoV1 mirrors extras_subscriber_info_v1.
type RawSubscriberInfoV1 struct {
	RawSubscriberInfoHeader
	// Must stay valid for the lifetime of the plugin.
	SubscriberName          unsafe.Pointer
	SquadUpdateCallback     unsafe.Pointer
	LanguageChangedCallback unsafe.Pointer
	KeyBindChangedCallback  unsafe.Pointer
}

// Header returns the version header.
func (v *RawSubscriberInfoV1) Header() *RawSubscriberInfoHeader {
	return &v.RawSubscriberInfoHeader
}

// RawSubscriberInfoV2 mirrors extras_subscriber_info_v2.
type RawSubscriberInfoV2 struct {
	RawSubscriberInfoV1
	ChatMessageCallback unsafe.Pointer
}

// V1 returns the version 1 part of v.
func (v *RawSubscriberInfoV2) V1() *RawSubscriberInfoV1 {
	return &v.RawSubscriberInfoV1
}

// RawSubscriberInfoV3 mirrors extras_subscriber_info_v3.
type RawSubscriberInfoV3 struct {
	RawSubscriberInfoV2
	ChatMessageCallback2 unsafe.Pointer
}

// V2 returns the version 2 part of v.
func (v *RawSubscriberInfoV3) V2() *RawSubscriberInfoV2 {
	return &v.RawSubscriberInfoV2
}

// InfoSize returns the size of the subscriber info struct of the given
// version, or 0 for unknown versions.
func InfoSize(version uint32) uintptr {
	switch version {
	case 1:
		return unsafe.Sizeof(RawSubscriberInfoV1{})
	case 2:
		return unsafe.Sizeof(RawSubscriberInfoV2{})
	case 3:
		return unsafe.Sizeof(RawSubscriberInfoV3{})
	}
	return 0
}

// SelectVersion returns the subscriber info version to use with the given
// addon: the highest version both sides support.
func SelectVersion(addon *RawAddonInfo) (uint32, error) {
	if addon.APIVersion != APIVersion {
		return 0, fmt.Errorf("%w: %d", ErrAPIVersion, addon.APIVersion)
	}
	if addon.MaxInfoVersion < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInfoVersion, addon.MaxInfoVersion)
	}
	return min(addon.MaxInfoVersion, MaxInfoVersion), nil
}

// Subscriber holds what a plugin writes into the subscriber info buffer.
// Callbacks are C function pointers, nil for absent ones.
type Subscriber struct {
	Name            unsafe.Pointer
	SquadUpdate     unsafe.Pointer
	LanguageChanged unsafe.Pointer
	ChatMessage     unsafe.Pointer
	ChatMessage2    unsafe.Pointer
}

// Negotiate selects the subscriber info version for addon and populates
// the buffer starting at sub with it. Only the fields of the selected
// version are written, so nothing past InfoSize(version) is touched. If
// the addon is incompatible, an error is returned and the buffer is left
// untouched, which the extras addon treats as a failed subscription.
func Negotiate(addon *RawAddonInfo, sub *RawSubscriberInfoHeader, s Subscriber) (uint32, error) {
	version, err := SelectVersion(addon)
	if err != nil {
		return 0, err
	}

	v1 := (*RawSubscriberInfoV1)(unsafe.Pointer(sub))
	v1.InfoVersion = version
	v1.SubscriberName = s.Name
	v1.SquadUpdateCallback = s.SquadUpdate
	v1.LanguageChangedCallback = s.LanguageChanged
	v1.KeyBindChangedCallback = nil
	if version >= 2 {
		v2 := (*RawSubscriberInfoV2)(unsafe.Pointer(sub))
		v2.ChatMessageCallback = s.ChatMessage
	}
	if version >= 3 {
		v3 := (*RawSubscriberInfoV3)(unsafe.Pointer(sub))
		v3.ChatMessageCallback2 = s.ChatMessage2
	}
	return version, nil
}

// SquadUpdateCallback receives the users whose squad state changed. The
// iterator and its elements must not be retained after the call.
type SquadUpdateCallback func(users *UserInfoIter)

// LanguageChangedCallback is called on language changes and once right
// after the subscription with the current language.
type LanguageChangedCallback func(lang Language)

// ChatMessageCallback receives generation 1 squad and party messages.
type ChatMessageCallback func(msg *SquadMessageInfo)

// ChatMessage2Callback receives generation 2 chat messages.
type ChatMessage2Callback func(msg *ChatMessageInfo2)

// InitCallback is called once the subscription succeeded, with the
// account name of the player and the version of the extras addon.
type InitCallback func(accountName, extrasVersion ptr.OptionalString)

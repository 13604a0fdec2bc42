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
	"fmt"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
)

// UserRole is the role of a user in the squad.
type UserRole uint8

const (
	UserRoleSquadLeader UserRole = iota
	UserRoleLieutenant
	UserRoleMember
	UserRoleInvited
	UserRoleApplied
	// UserRoleNone is sent for users that left the squad.
	UserRoleNone
	// UserRoleInvalid is internal to the extras addon and never a valid
	// role of an incoming user.
	UserRoleInvalid
)

var userRoleNames = [...]string{
	UserRoleSquadLeader: "SquadLeader",
	UserRoleLieutenant:  "Lieutenant",
	UserRoleMember:      "Member",
	UserRoleInvited:     "Invited",
	UserRoleApplied:     "Applied",
	UserRoleNone:        "None",
	UserRoleInvalid:     "Invalid",
}

// Valid returns true if r is a role the host may legitimately report.
func (r UserRole) Valid() bool {
	return r < UserRoleInvalid
}

func (r UserRole) String() string {
	if int(r) < len(userRoleNames) {
		return userRoleNames[r]
	}
	return fmt.Sprintf("UserRole(%d)", uint8(r))
}

// RawUserInfo mirrors the extras_user_info struct.
type RawUserInfo struct {
	// Null-terminated account name including the leading ':'.
	AccountName unsafe.Pointer
	JoinTime    uint64
	Role        UserRole
	Subgroup    uint8
	ReadyStatus uint8
	Unused1     uint8
	Unused2     uint32
}

// UserInfo is the safe view of a RawUserInfo.
type UserInfo struct {
	// AccountName has the leading ':' removed.
	AccountName ptr.OptionalString `json:"accountName"`
	// JoinTime is a unix timestamp, or 0 if unknown.
	JoinTime uint64 `json:"joinTime"`
	// Role is UserRoleNone for users removed from the squad. Roles the
	// host should never send are reported as UserRoleInvalid.
	Role     UserRole `json:"role"`
	Subgroup uint8    `json:"subgroup"`
	// ReadyStatus reports the user's state in a ready check. For the
	// squad leader, true means a ready check started and false that it
	// ended.
	ReadyStatus bool `json:"readyStatus"`
}

// ConvertUser converts a raw user. Padding fields are ignored.
func ConvertUser(raw *RawUserInfo) UserInfo {
	role := raw.Role
	if !role.Valid() {
		role = UserRoleInvalid
	}
	return UserInfo{
		AccountName: ptr.CStringView(raw.AccountName).Map(sdk.StripAccountPrefix),
		JoinTime:    raw.JoinTime,
		Role:        role,
		Subgroup:    raw.Subgroup,
		ReadyStatus: raw.ReadyStatus != 0,
	}
}

// Owned returns a copy of u that does not alias host memory.
func (u UserInfo) Owned() UserInfo {
	u.AccountName = u.AccountName.Clone()
	return u
}

// UserInfoIter lazily converts a host array of users. It does not own the
// array and is only valid until the squad update callback returns. An
// iterator cannot be rewound.
type UserInfoIter struct {
	users []RawUserInfo
	pos   int
}

// NewUserInfoIter returns an iterator over count users starting at users.
func NewUserInfoIter(users *RawUserInfo, count uint64) *UserInfoIter {
	if users == nil || count == 0 {
		return &UserInfoIter{}
	}
	return &UserInfoIter{users: unsafe.Slice(users, count)}
}

// Len returns the number of users not yet returned by Next.
func (it *UserInfoIter) Len() int {
	return len(it.users) - it.pos
}

// Next converts and returns the next user. The second return value is
// false once the iterator is exhausted.
func (it *UserInfoIter) Next() (UserInfo, bool) {
	if it.pos >= len(it.users) {
		return UserInfo{}, false
	}
	u := ConvertUser(&it.users[it.pos])
	it.pos++
	return u, true
}

// Collect drains the iterator into owned copies that may be retained
// after the callback returns.
func (it *UserInfoIter) Collect() []UserInfo {
	res := make([]UserInfo, 0, it.Len())
	for u, ok := it.Next(); ok; u, ok = it.Next() {
		res = append(res, u.Owned())
	}
	return res
}

// Language is the game language reported by the language changed event.
type Language int32

const (
	LanguageEnglish Language = 0
	LanguageFrench  Language = 2
	LanguageGerman  Language = 3
	LanguageSpanish Language = 4
	LanguageChinese Language = 5
)

func (l Language) String() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageFrench:
		return "French"
	case LanguageGerman:
		return "German"
	case LanguageSpanish:
		return "Spanish"
	case LanguageChinese:
		return "Chinese"
	}
	return fmt.Sprintf("Language(%d)", int32(l))
}

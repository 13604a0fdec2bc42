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
	"strings"
	"time"
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
)

// ChannelType tells whether a message was sent to a party or a squad.
// Party chat messages sent while in a squad are reported as
// ChannelTypeSquad.
type ChannelType uint8

const (
	ChannelTypeParty ChannelType = iota
	ChannelTypeSquad
	ChannelTypeReserved
	ChannelTypeInvalid
)

func (c ChannelType) String() string {
	switch c {
	case ChannelTypeParty:
		return "Party"
	case ChannelTypeSquad:
		return "Squad"
	case ChannelTypeReserved:
		return "Reserved"
	case ChannelTypeInvalid:
		return "Invalid"
	}
	return fmt.Sprintf("ChannelType(%d)", uint8(c))
}

// ChatMessageType is the tag of a RawChatMessageInfo2.
type ChatMessageType int32

const (
	ChatMessageTypeSquad ChatMessageType = 0
	ChatMessageTypeNPC   ChatMessageType = 1
)

func (c ChatMessageType) String() string {
	switch c {
	case ChatMessageTypeSquad:
		return "Squad"
	case ChatMessageTypeNPC:
		return "NPC"
	}
	return fmt.Sprintf("ChatMessageType(%d)", int32(c))
}

const broadcastBit = 0x01

// RawSquadMessageInfo mirrors the extras_squad_message_info struct. All
// strings are given as pointer and length and are never null.
type RawSquadMessageInfo struct {
	ChannelID   uint32
	ChannelType ChannelType
	Subgroup    uint8
	// Only the lowest bit is defined, the others are reserved.
	IsBroadcast uint8
	Unused1     uint8

	// ISO-8601 time at which the server received the message.
	Timestamp           unsafe.Pointer
	TimestampLength     uint64
	AccountName         unsafe.Pointer
	AccountNameLength   uint64
	CharacterName       unsafe.Pointer
	CharacterNameLength uint64
	Text                unsafe.Pointer
	TextLength          uint64
}

// SquadMessageInfo is the safe view of a RawSquadMessageInfo. The strings
// alias host memory and are only valid for the duration of the callback.
type SquadMessageInfo struct {
	// ChannelID differs between squads, for instance.
	ChannelID   uint32      `json:"channelId"`
	ChannelType ChannelType `json:"channelType"`
	// Subgroup is the subgroup the message was sent to, or 0 for the
	// whole squad.
	Subgroup    uint8 `json:"subgroup"`
	IsBroadcast bool  `json:"isBroadcast"`
	// Timestamp keeps the offset the host sent. It is the zero time if
	// the host sent a malformed timestamp.
	Timestamp time.Time `json:"timestamp"`
	// AccountName has the leading ':' removed.
	AccountName   string `json:"accountName"`
	CharacterName string `json:"characterName"`
	Text          string `json:"text"`
}

// ConvertSquadMessage converts a generation 1 chat message.
func ConvertSquadMessage(raw *RawSquadMessageInfo) SquadMessageInfo {
	return SquadMessageInfo{
		ChannelID:     raw.ChannelID,
		ChannelType:   raw.ChannelType,
		Subgroup:      raw.Subgroup,
		IsBroadcast:   raw.IsBroadcast&broadcastBit != 0,
		Timestamp:     ParseTimestamp(ptr.StringN(raw.Timestamp, raw.TimestampLength)),
		AccountName:   sdk.StripAccountPrefix(ptr.StringN(raw.AccountName, raw.AccountNameLength)),
		CharacterName: ptr.StringN(raw.CharacterName, raw.CharacterNameLength),
		Text:          ptr.StringN(raw.Text, raw.TextLength),
	}
}

// Owned returns a copy of m that does not alias host memory.
func (m SquadMessageInfo) Owned() SquadMessageInfo {
	m.AccountName = strings.Clone(m.AccountName)
	m.CharacterName = strings.Clone(m.CharacterName)
	m.Text = strings.Clone(m.Text)
	return m
}

// ParseTimestamp parses an ISO-8601 timestamp such as
// "2022-07-09T11:45:24.888Z", keeping its offset. It returns the zero time
// if s is malformed.
func ParseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// RawNpcMessageInfo mirrors the extras_npc_message_info struct.
type RawNpcMessageInfo struct {
	CharacterName       unsafe.Pointer
	CharacterNameLength uint64
	Message             unsafe.Pointer
	MessageLength       uint64
	// Nanoseconds since the unix epoch.
	Timestamp uint64
}

// NpcMessageInfo is the safe view of a RawNpcMessageInfo.
type NpcMessageInfo struct {
	// CharacterName is the NPC or the player character that spoke.
	CharacterName string    `json:"characterName"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}

// ConvertNpcMessage converts an NPC chat message. The timestamp is in UTC.
func ConvertNpcMessage(raw *RawNpcMessageInfo) NpcMessageInfo {
	return NpcMessageInfo{
		CharacterName: ptr.StringN(raw.CharacterName, raw.CharacterNameLength),
		Message:       ptr.StringN(raw.Message, raw.MessageLength),
		Timestamp:     time.Unix(0, int64(raw.Timestamp)).UTC(),
	}
}

// Owned returns a copy of m that does not alias host memory.
func (m NpcMessageInfo) Owned() NpcMessageInfo {
	m.CharacterName = strings.Clone(m.CharacterName)
	m.Message = strings.Clone(m.Message)
	return m
}

// RawChatMessageInfo2 mirrors the extras_chat_message_info2 union. Which
// arm is valid is only known from the ChatMessageType passed alongside.
type RawChatMessageInfo2 struct {
	p unsafe.Pointer
}

// NewRawChatMessageInfo2 wraps the pointer word of the union.
func NewRawChatMessageInfo2(p unsafe.Pointer) RawChatMessageInfo2 {
	return RawChatMessageInfo2{p: p}
}

// Pointer returns the pointer word of the union.
func (r RawChatMessageInfo2) Pointer() unsafe.Pointer {
	return r.p
}

// ChatMessageInfo2 is the safe view of a generation 2 chat message. At
// most one of Squad and NPC is set, according to Type.
type ChatMessageInfo2 struct {
	Type  ChatMessageType   `json:"type"`
	Squad *SquadMessageInfo `json:"squad,omitempty"`
	NPC   *NpcMessageInfo   `json:"npc,omitempty"`
}

// ConvertChatMessage2 converts a generation 2 chat message. The union is
// read only through the arm selected by msgType. Unknown tags and null
// arms yield a value with neither arm set.
func ConvertChatMessage2(msgType ChatMessageType, raw RawChatMessageInfo2) ChatMessageInfo2 {
	res := ChatMessageInfo2{Type: msgType}
	if raw.p == nil {
		return res
	}
	switch msgType {
	case ChatMessageTypeSquad:
		m := ConvertSquadMessage((*RawSquadMessageInfo)(raw.p))
		res.Squad = &m
	case ChatMessageTypeNPC:
		m := ConvertNpcMessage((*RawNpcMessageInfo)(raw.p))
		res.NPC = &m
	}
	return res
}

// Owned returns a copy of m that does not alias host memory.
func (m ChatMessageInfo2) Owned() ChatMessageInfo2 {
	if m.Squad != nil {
		s := m.Squad.Owned()
		m.Squad = &s
	}
	if m.NPC != nil {
		n := m.NPC.Owned()
		m.NPC = &n
	}
	return m
}

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
#include "../arcdps.h"

enum {
	L_USER_SIZE,
	L_USER_JOIN_TIME,
	L_USER_ROLE,
	L_USER_READY_STATUS,
	L_SQUAD_MSG_SIZE,
	L_SQUAD_MSG_IS_BROADCAST,
	L_SQUAD_MSG_TIMESTAMP,
	L_SQUAD_MSG_ACCOUNT_NAME,
	L_SQUAD_MSG_TEXT_LENGTH,
	L_NPC_MSG_SIZE,
	L_NPC_MSG_MESSAGE,
	L_NPC_MSG_TIMESTAMP,
	L_CHAT_MSG2_SIZE,
	L_CHAT_MSG_TYPE_SIZE,
	L_ADDON_SIZE,
	L_ADDON_STRING_VERSION,
	L_ADDON_EXTRAS_HANDLE,
	L_HEADER_SIZE,
	L_V1_SIZE,
	L_V1_SUBSCRIBER_NAME,
	L_V1_KEY_BIND,
	L_V2_SIZE,
	L_V2_CHAT,
	L_V3_SIZE,
	L_V3_CHAT2,
};

static size_t extras_layout(int q)
{
	switch (q) {
	case L_USER_SIZE: return sizeof(extras_user_info);
	case L_USER_JOIN_TIME: return offsetof(extras_user_info, join_time);
	case L_USER_ROLE: return offsetof(extras_user_info, role);
	case L_USER_READY_STATUS: return offsetof(extras_user_info, ready_status);
	case L_SQUAD_MSG_SIZE: return sizeof(extras_squad_message_info);
	case L_SQUAD_MSG_IS_BROADCAST: return offsetof(extras_squad_message_info, is_broadcast);
	case L_SQUAD_MSG_TIMESTAMP: return offsetof(extras_squad_message_info, timestamp);
	case L_SQUAD_MSG_ACCOUNT_NAME: return offsetof(extras_squad_message_info, account_name);
	case L_SQUAD_MSG_TEXT_LENGTH: return offsetof(extras_squad_message_info, text_length);
	case L_NPC_MSG_SIZE: return sizeof(extras_npc_message_info);
	case L_NPC_MSG_MESSAGE: return offsetof(extras_npc_message_info, message);
	case L_NPC_MSG_TIMESTAMP: return offsetof(extras_npc_message_info, timestamp);
	case L_CHAT_MSG2_SIZE: return sizeof(extras_chat_message_info2);
	case L_CHAT_MSG_TYPE_SIZE: return sizeof(extras_chat_message_type);
	case L_ADDON_SIZE: return sizeof(extras_addon_info);
	case L_ADDON_STRING_VERSION: return offsetof(extras_addon_info, string_version);
	case L_ADDON_EXTRAS_HANDLE: return offsetof(extras_addon_info, extras_handle);
	case L_HEADER_SIZE: return sizeof(extras_subscriber_info_header);
	case L_V1_SIZE: return sizeof(extras_subscriber_info_v1);
	case L_V1_SUBSCRIBER_NAME: return offsetof(extras_subscriber_info_v1, subscriber_name);
	case L_V1_KEY_BIND: return offsetof(extras_subscriber_info_v1, key_bind_changed_callback);
	case L_V2_SIZE: return sizeof(extras_subscriber_info_v2);
	case L_V2_CHAT: return offsetof(extras_subscriber_info_v2, chat_message_callback);
	case L_V3_SIZE: return sizeof(extras_subscriber_info_v3);
	case L_V3_CHAT2: return offsetof(extras_subscriber_info_v3, chat_message_callback2);
	}
	return (size_t)-1;
}
*/
import "C"
import (
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/sdk"
)

func cLayout(q C.int) uintptr {
	return uintptr(C.extras_layout(q))
}

// CheckLayout verifies the Go mirrors of the extras structs against the C
// declarations.
func CheckLayout() error {
	var u RawUserInfo
	var sm RawSquadMessageInfo
	var nm RawNpcMessageInfo
	var ai RawAddonInfo
	var v1 RawSubscriberInfoV1
	var v2 RawSubscriberInfoV2
	var v3 RawSubscriberInfoV3
	return sdk.CheckLayoutFields([]sdk.LayoutField{
		{"extras_user_info", unsafe.Sizeof(u), cLayout(C.L_USER_SIZE)},
		{"extras_user_info.join_time", unsafe.Offsetof(u.JoinTime), cLayout(C.L_USER_JOIN_TIME)},
		{"extras_user_info.role", unsafe.Offsetof(u.Role), cLayout(C.L_USER_ROLE)},
		{"extras_user_info.ready_status", unsafe.Offsetof(u.ReadyStatus), cLayout(C.L_USER_READY_STATUS)},
		{"extras_squad_message_info", unsafe.Sizeof(sm), cLayout(C.L_SQUAD_MSG_SIZE)},
		{"extras_squad_message_info.is_broadcast", unsafe.Offsetof(sm.IsBroadcast), cLayout(C.L_SQUAD_MSG_IS_BROADCAST)},
		{"extras_squad_message_info.timestamp", unsafe.Offsetof(sm.Timestamp), cLayout(C.L_SQUAD_MSG_TIMESTAMP)},
		{"extras_squad_message_info.account_name", unsafe.Offsetof(sm.AccountName), cLayout(C.L_SQUAD_MSG_ACCOUNT_NAME)},
		{"extras_squad_message_info.text_length", unsafe.Offsetof(sm.TextLength), cLayout(C.L_SQUAD_MSG_TEXT_LENGTH)},
		{"extras_npc_message_info", unsafe.Sizeof(nm), cLayout(C.L_NPC_MSG_SIZE)},
		{"extras_npc_message_info.message", unsafe.Offsetof(nm.Message), cLayout(C.L_NPC_MSG_MESSAGE)},
		{"extras_npc_message_info.timestamp", unsafe.Offsetof(nm.Timestamp), cLayout(C.L_NPC_MSG_TIMESTAMP)},
		{"extras_chat_message_info2", unsafe.Sizeof(RawChatMessageInfo2{}), cLayout(C.L_CHAT_MSG2_SIZE)},
		{"extras_chat_message_type", unsafe.Sizeof(ChatMessageType(0)), cLayout(C.L_CHAT_MSG_TYPE_SIZE)},
		{"extras_addon_info", unsafe.Sizeof(ai), cLayout(C.L_ADDON_SIZE)},
		{"extras_addon_info.string_version", unsafe.Offsetof(ai.StringVersion), cLayout(C.L_ADDON_STRING_VERSION)},
		{"extras_addon_info.extras_handle", unsafe.Offsetof(ai.ExtrasHandle), cLayout(C.L_ADDON_EXTRAS_HANDLE)},
		{"extras_subscriber_info_header", unsafe.Sizeof(RawSubscriberInfoHeader{}), cLayout(C.L_HEADER_SIZE)},
		{"extras_subscriber_info_v1", unsafe.Sizeof(v1), cLayout(C.L_V1_SIZE)},
		{"extras_subscriber_info_v1.subscriber_name", unsafe.Offsetof(v1.SubscriberName), cLayout(C.L_V1_SUBSCRIBER_NAME)},
		{"extras_subscriber_info_v1.key_bind_changed_callback", unsafe.Offsetof(v1.KeyBindChangedCallback), cLayout(C.L_V1_KEY_BIND)},
		{"extras_subscriber_info_v2", unsafe.Sizeof(v2), cLayout(C.L_V2_SIZE)},
		{"extras_subscriber_info_v2.chat_message_callback", unsafe.Offsetof(v2.ChatMessageCallback), cLayout(C.L_V2_CHAT)},
		{"extras_subscriber_info_v3", unsafe.Sizeof(v3), cLayout(C.L_V3_SIZE)},
		{"extras_subscriber_info_v3.chat_message_callback2", unsafe.Offsetof(v3.ChatMessageCallback2), cLayout(C.L_V3_CHAT2)},
	})
}

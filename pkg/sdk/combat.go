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

import (
	"unsafe"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/ptr"
)

// CombatEvent mirrors the cbtevent struct. Events are delivered by
// arcdps and are only valid for the duration of the callback.
type CombatEvent struct {
	Time            uint64
	SrcAgent        uintptr
	DstAgent        uintptr
	Value           int32
	BuffDmg         int32
	OverstackValue  uint32
	SkillID         uint32
	SrcInstID       uint16
	DstInstID       uint16
	SrcMasterInstID uint16
	DstMasterInstID uint16
	IFF             Affinity
	Buff            uint8
	Result          CombatResult
	IsActivation    Activation
	IsBuffRemove    BuffRemove
	IsNinety        uint8
	IsFifty         uint8
	IsMoving        uint8
	IsStateChange   StateChange
	IsFlanking      uint8
	IsShields       uint8
	IsOffcycle      uint8
	Pad61           uint8
	Pad62           uint8
	Pad63           uint8
	Pad64           uint8
}

// RawAgent mirrors the ag struct.
type RawAgent struct {
	// Null-terminated name, only valid for the duration of the call.
	Name  unsafe.Pointer
	ID    uintptr
	Prof  uint32
	Elite uint32
	Self  uint32
	Team  uint16
}

// Agent is the safe view of a RawAgent. Name aliases host memory and is
// only valid for the duration of the callback, use Owned to retain it.
type Agent struct {
	Name  ptr.OptionalString `json:"name"`
	ID    uintptr            `json:"id"`
	Prof  uint32             `json:"prof"`
	Elite uint32             `json:"elite"`
	Self  uint32             `json:"self"`
	Team  uint16             `json:"team"`
}

// ConvertAgent converts a raw agent. A nil raw agent yields nil.
func ConvertAgent(raw *RawAgent) *Agent {
	if raw == nil {
		return nil
	}
	return &Agent{
		Name:  ptr.CStringView(raw.Name),
		ID:    raw.ID,
		Prof:  raw.Prof,
		Elite: raw.Elite,
		Self:  raw.Self,
		Team:  raw.Team,
	}
}

// Owned returns a copy of the agent that does not alias host memory.
func (a Agent) Owned() Agent {
	a.Name = a.Name.Clone()
	return a
}

// CombatArgs groups the converted arguments of a combat callback.
type CombatArgs struct {
	Ev        *CombatEvent
	Src       *Agent
	Dst       *Agent
	SkillName ptr.OptionalString
}

// ConvertCombatArgs converts the raw pointers received by the combat
// adapters. Skill names stay valid for the whole lifetime of the plugin,
// agent names only for the duration of the call.
func ConvertCombatArgs(ev, src, dst, skillName unsafe.Pointer) CombatArgs {
	return CombatArgs{
		Ev:        (*CombatEvent)(ev),
		Src:       ConvertAgent((*RawAgent)(src)),
		Dst:       ConvertAgent((*RawAgent)(dst)),
		SkillName: ptr.CStringView(skillName),
	}
}

// Affinity is the value of the iff field.
type Affinity uint8

const (
	AffinityFriend Affinity = iota
	AffinityFoe
	AffinityUnknown
)

// Activation is the value of the is_activation field.
type Activation uint8

const (
	ActivationNone Activation = iota
	ActivationStart
	ActivationQuicknessUnused
	ActivationCancelFire
	ActivationCancelCancel
	ActivationReset
)

// BuffRemove is the value of the is_buffremove field.
type BuffRemove uint8

const (
	BuffRemoveNone BuffRemove = iota
	BuffRemoveAll
	BuffRemoveSingle
	BuffRemoveManual
)

// CombatResult is the value of the result field for physical hits.
type CombatResult uint8

const (
	ResultNormal CombatResult = iota
	ResultCrit
	ResultGlance
	ResultBlock
	ResultEvade
	ResultInterrupt
	ResultAbsorb
	ResultBlind
	ResultKillingBlow
	ResultDowned
	ResultBreakbarDamage
	ResultActivation
)

// StateChange is the value of the is_statechange field.
type StateChange uint8

const (
	StateChangeNone StateChange = iota
	StateChangeEnterCombat
	StateChangeExitCombat
	StateChangeChangeUp
	StateChangeChangeDead
	StateChangeChangeDown
	StateChangeSpawn
	StateChangeDespawn
	StateChangeHealthUpdate
	StateChangeLogStart
	StateChangeLogEnd
	StateChangeWeapSwap
	StateChangeMaxHealthUpdate
	StateChangePointOfView
	StateChangeLanguage
	StateChangeGWBuild
	StateChangeShardID
	StateChangeReward
	StateChangeBuffInitial
	StateChangePosition
	StateChangeVelocity
	StateChangeFacing
	StateChangeTeamChange
	StateChangeAttackTarget
	StateChangeTargetable
	StateChangeMapID
	StateChangeReplInfo
	StateChangeStackActive
	StateChangeStackReset
	StateChangeGuild
	StateChangeBuffInfo
	StateChangeBuffFormula
	StateChangeSkillInfo
	StateChangeSkillTiming
	StateChangeBreakbarState
	StateChangeBreakbarPercent
	StateChangeError
	StateChangeTag
	StateChangeBarrierUpdate
	StateChangeStatReset
	StateChangeExtension
	StateChangeAPIDelayed
	StateChangeInstanceStart
	StateChangeTickRate
	StateChangeLast90BeforeDown
	StateChangeEffect
	StateChangeIDToGUID
	StateChangeLogNPCUpdate
	StateChangeIdleEvent
	StateChangeExtensionCombat
	StateChangeFractalScale
	StateChangeEffect2
)

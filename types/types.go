// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types raffle合约相关的定义
package types

import (
	"reflect"

	"github.com/33cn/chain33/types"
)

// action类型id和name
const (
	RaffleActionCreate = 1 + iota
	RaffleActionEnter
	RaffleActionPerformUpkeep
	RaffleActionFulfill
	RaffleActionClose

	NameCreateAction        = "Create"
	NameEnterAction         = "Enter"
	NamePerformUpkeepAction = "PerformUpkeep"
	NameFulfillAction       = "Fulfill"
	NameCloseAction         = "Close"
)

// log类型id值
const (
	TyLogRaffleCreate    = 901
	TyLogRaffleEnter     = 902
	TyLogRaffleRequested = 903
	TyLogRafflePicked    = 904
	TyLogRaffleClose     = 905
)

// raffle状态，OPEN接受参与，CALCULATING等待唯一一次随机数回传
const (
	RaffleStatusOpen = 1 + iota
	RaffleStatusCalculating
	RaffleStatusClosed
)

// query func name
const (
	FuncNameGetRaffleInfo    = "GetRaffleInfo"
	FuncNameGetPlayer        = "GetPlayer"
	FuncNameCheckUpkeep      = "CheckUpkeep"
	FuncNameEnterHistory     = "ListEnterRecords"
	FuncNameDrawHistory      = "ListDrawRecords"
)

var (
	// RaffleX 执行器名称
	RaffleX = "raffle"

	actionName = map[string]int32{
		NameCreateAction:        RaffleActionCreate,
		NameEnterAction:         RaffleActionEnter,
		NamePerformUpkeepAction: RaffleActionPerformUpkeep,
		NameFulfillAction:       RaffleActionFulfill,
		NameCloseAction:         RaffleActionClose,
	}

	logmap = map[int64]*types.LogInfo{
		TyLogRaffleCreate:    {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "LogRaffleCreate"},
		TyLogRaffleEnter:     {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "LogRaffleEnter"},
		TyLogRaffleRequested: {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "LogRaffleRequested"},
		TyLogRafflePicked:    {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "LogRafflePicked"},
		TyLogRaffleClose:     {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "LogRaffleClose"},
	}
)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, []byte(RaffleX))
	types.RegFork(RaffleX, InitFork)
	types.RegExec(RaffleX, InitExecutor)
}

// InitFork init fork
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(RaffleX, "Enable", 0)
}

// InitExecutor init executor
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(RaffleX, NewType(cfg))
}

// RaffleType defines raffle executor type
type RaffleType struct {
	types.ExecTypeBase
}

// NewType new a RaffleType object
func NewType(cfg *types.Chain33Config) *RaffleType {
	c := &RaffleType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// GetPayload return RaffleAction
func (r *RaffleType) GetPayload() types.Message {
	return &RaffleAction{}
}

// GetLogMap get receipt log map
func (r *RaffleType) GetLogMap() map[int64]*types.LogInfo {
	return logmap
}

// GetTypeMap return typename of actionname
func (r *RaffleType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetName reset name
func (r *RaffleType) GetName() string {
	return RaffleX
}

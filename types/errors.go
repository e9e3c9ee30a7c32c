// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrRaffleNotFound 指定的raffleId不存在
	ErrRaffleNotFound = errors.New("ErrRaffleNotFound")
	// ErrRaffleRepeatId 同一id重复创建
	ErrRaffleRepeatId = errors.New("ErrRaffleRepeatId")
	// ErrRaffleFeeNotEnough 参与金额低于入场费
	ErrRaffleFeeNotEnough = errors.New("ErrRaffleFeeNotEnough")
	// ErrRaffleNotOpen 非OPEN状态下尝试参与
	ErrRaffleNotOpen = errors.New("ErrRaffleNotOpen")
	// ErrRaffleUpkeepNotNeeded 开奖条件不满足
	ErrRaffleUpkeepNotNeeded = errors.New("ErrRaffleUpkeepNotNeeded")
	// ErrRafflePayoutFailed 奖池转账失败，整个开奖回滚
	ErrRafflePayoutFailed = errors.New("ErrRafflePayoutFailed")
	// ErrRaffleUnknownRequest 回传的请求id与在途请求不符
	ErrRaffleUnknownRequest = errors.New("ErrRaffleUnknownRequest")
	// ErrRaffleIndexOutOfRange 查询的参与者序号越界
	ErrRaffleIndexOutOfRange = errors.New("ErrRaffleIndexOutOfRange")
	// ErrRaffleNotOracle 非预言机地址提交随机数
	ErrRaffleNotOracle = errors.New("ErrRaffleNotOracle")
	// ErrRaffleRandWords 随机数数量不足numWords
	ErrRaffleRandWords = errors.New("ErrRaffleRandWords")
	// ErrRaffleStatus 当前状态不允许该操作
	ErrRaffleStatus = errors.New("ErrRaffleStatus")
	// ErrRaffleErrCloser 非创建者尝试关闭
	ErrRaffleErrCloser = errors.New("ErrRaffleErrCloser")
	// ErrRaffleDrawIntervalLimit 开奖间隔超出配置范围
	ErrRaffleDrawIntervalLimit = errors.New("ErrRaffleDrawIntervalLimit")
	// ErrRafflePlayerLimit 本轮参与人数达到上限
	ErrRafflePlayerLimit = errors.New("ErrRafflePlayerLimit")
)

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	"github.com/pkg/errors"

	rty "github.com/Owenchan007/chain33-raffle/types"
)

// Action 封装一次交易执行所需的上下文
type Action struct {
	api          client.QueueProtocolAPI
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
}

// NewAction new raffle action
func NewAction(r *Raffle, tx *types.Transaction) *Action {
	return &Action{r.GetAPI(), r.GetCoinsAccount(), r.GetStateDB(), tx.Hash(), tx.From(),
		r.GetBlockTime(), r.GetHeight(), dapp.ExecAddress(string(tx.Execer))}
}

// checkUpkeep 开奖条件判定，无任何副作用，可被外部keeper任意频率轮询
func checkUpkeep(raffle *rty.Raffle, blocktime int64) bool {
	if raffle.Status != rty.RaffleStatusOpen {
		return false
	}
	if blocktime-raffle.LastDrawTime < raffle.DrawInterval {
		return false
	}
	if raffle.Pool <= 0 || len(raffle.Players) == 0 {
		return false
	}
	return true
}

func findRaffle(db dbm.KV, raffleID string) (*rty.Raffle, error) {
	data, err := db.Get(calcRaffleIDKey(raffleID))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, rty.ErrRaffleNotFound
		}
		return nil, err
	}
	var raffle rty.Raffle
	err = types.Decode(data, &raffle)
	if err != nil {
		return nil, err
	}
	return &raffle, nil
}

func (action *Action) saveStateKV(raffle *rty.Raffle) []*types.KeyValue {
	value := types.Encode(raffle)
	_ = action.db.Set(calcRaffleIDKey(raffle.RaffleId), value)
	return []*types.KeyValue{{Key: calcRaffleIDKey(raffle.RaffleId), Value: value}}
}

func raffleReceiptLog(ty int32, receipt *rty.ReceiptRaffle) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(receipt)}
}

// RaffleCreate 创建一个新的raffle实例，配置项创建后不可修改
func (action *Action) RaffleCreate(create *rty.RaffleCreate) (*types.Receipt, error) {
	if create.GetEntranceFee() <= 0 {
		return nil, types.ErrInvalidParam
	}
	if create.GetDrawInterval() < minDrawInterval() {
		llog.Error("RaffleCreate", "drawInterval", create.GetDrawInterval(), "min", minDrawInterval())
		return nil, rty.ErrRaffleDrawIntervalLimit
	}
	if err := address.CheckAddress(create.GetOracleAddr(), action.height); err != nil {
		return nil, err
	}

	raffleID := common.ToHex(action.txhash)
	_, err := findRaffle(action.db, raffleID)
	if err != rty.ErrRaffleNotFound {
		llog.Error("RaffleCreate", "raffleId repeated", raffleID)
		return nil, rty.ErrRaffleRepeatId
	}

	numWords := create.GetNumWords()
	if numWords == 0 {
		numWords = 1
	}

	raffle := &rty.Raffle{
		RaffleId:             raffleID,
		Status:               rty.RaffleStatusOpen,
		EntranceFee:          create.GetEntranceFee(),
		DrawInterval:         create.GetDrawInterval(),
		GasLaneKey:           create.GetGasLaneKey(),
		SubscriptionId:       create.GetSubscriptionId(),
		CallbackGasLimit:     create.GetCallbackGasLimit(),
		RequestConfirmations: create.GetRequestConfirmations(),
		NumWords:             numWords,
		OracleAddr:           create.GetOracleAddr(),
		LastDrawTime:         action.blocktime,
		Round:                1,
		CreateAddr:           action.fromaddr,
		CreateTime:           action.blocktime,
		CreateHeight:         action.height,
	}

	kv := action.saveStateKV(raffle)
	receiptLog := raffleReceiptLog(rty.TyLogRaffleCreate, &rty.ReceiptRaffle{
		RaffleId: raffleID,
		Addr:     action.fromaddr,
		Status:   raffle.Status,
		Round:    raffle.Round,
	})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{receiptLog}}, nil
}

// RaffleEnter 支付入场费加入本轮，同一地址可多次参与，每次占一个席位
func (action *Action) RaffleEnter(enter *rty.RaffleEnter) (*types.Receipt, error) {
	raffle, err := findRaffle(action.db, enter.GetRaffleId())
	if err != nil {
		llog.Error("RaffleEnter", "raffleId", enter.GetRaffleId(), "err", err)
		return nil, err
	}
	if raffle.Status != rty.RaffleStatusOpen {
		llog.Error("RaffleEnter", "status", raffle.Status)
		return nil, rty.ErrRaffleNotOpen
	}
	if enter.GetAmount() < raffle.EntranceFee {
		llog.Error("RaffleEnter", "amount", enter.GetAmount(), "entranceFee", raffle.EntranceFee)
		return nil, rty.ErrRaffleFeeNotEnough
	}
	if max := maxPlayers(); max > 0 && len(raffle.Players) >= max {
		llog.Error("RaffleEnter", "players", len(raffle.Players), "max", max)
		return nil, rty.ErrRafflePlayerLimit
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, enter.GetAmount())
	if err != nil {
		llog.Error("RaffleEnter.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", enter.GetAmount(), "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	raffle.Players = append(raffle.Players, &rty.RafflePlayer{Addr: action.fromaddr, Amount: enter.GetAmount()})
	raffle.Pool += enter.GetAmount()
	kv = append(kv, action.saveStateKV(raffle)...)

	logs = append(logs, raffleReceiptLog(rty.TyLogRaffleEnter, &rty.ReceiptRaffle{
		RaffleId:    raffle.RaffleId,
		Addr:        action.fromaddr,
		Status:      raffle.Status,
		PrevStatus:  raffle.Status,
		Round:       raffle.Round,
		Amount:      enter.GetAmount(),
		Pool:        raffle.Pool,
		PlayerCount: int64(len(raffle.Players)),
	}))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// RafflePerformUpkeep OPEN->CALCULATING，冻结本轮并发出随机数请求
// 请求id取本交易hash，预言机根据回执日志中的路由参数异步回传
func (action *Action) RafflePerformUpkeep(perform *rty.RafflePerformUpkeep) (*types.Receipt, error) {
	raffle, err := findRaffle(action.db, perform.GetRaffleId())
	if err != nil {
		llog.Error("RafflePerformUpkeep", "raffleId", perform.GetRaffleId(), "err", err)
		return nil, err
	}
	// 触发决策可能基于过期快照，提交时重新判定一次
	if !checkUpkeep(raffle, action.blocktime) {
		return nil, errors.Wrapf(rty.ErrRaffleUpkeepNotNeeded, "pool=%d playerCount=%d status=%d",
			raffle.Pool, len(raffle.Players), raffle.Status)
	}

	prevStatus := raffle.Status
	raffle.Status = rty.RaffleStatusCalculating
	raffle.PendingRequestId = common.ToHex(action.txhash)
	kv := action.saveStateKV(raffle)

	receiptLog := raffleReceiptLog(rty.TyLogRaffleRequested, &rty.ReceiptRaffle{
		RaffleId:             raffle.RaffleId,
		Addr:                 action.fromaddr,
		Status:               raffle.Status,
		PrevStatus:           prevStatus,
		Round:                raffle.Round,
		RequestId:            raffle.PendingRequestId,
		Pool:                 raffle.Pool,
		PlayerCount:          int64(len(raffle.Players)),
		GasLaneKey:           raffle.GasLaneKey,
		SubscriptionId:       raffle.SubscriptionId,
		CallbackGasLimit:     raffle.CallbackGasLimit,
		RequestConfirmations: raffle.RequestConfirmations,
		NumWords:             raffle.NumWords,
	})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{receiptLog}}, nil
}

// RaffleFulfill CALCULATING->OPEN，消费预言机回传的随机数：
// 选出赢家、整池付奖、清空本轮。付奖先于状态落盘，任何一笔转账失败
// 都会使整个交易失败回滚，状态保持CALCULATING等待重试
func (action *Action) RaffleFulfill(fulfill *rty.RaffleFulfill) (*types.Receipt, error) {
	raffle, err := findRaffle(action.db, fulfill.GetRaffleId())
	if err != nil {
		llog.Error("RaffleFulfill", "raffleId", fulfill.GetRaffleId(), "err", err)
		return nil, err
	}
	if action.fromaddr != raffle.OracleAddr {
		llog.Error("RaffleFulfill", "fromaddr", action.fromaddr, "oracleAddr", raffle.OracleAddr)
		return nil, rty.ErrRaffleNotOracle
	}
	if raffle.Status != rty.RaffleStatusCalculating || raffle.PendingRequestId == "" ||
		fulfill.GetRequestId() != raffle.PendingRequestId {
		llog.Error("RaffleFulfill", "requestId", fulfill.GetRequestId(), "pending", raffle.PendingRequestId,
			"status", raffle.Status)
		return nil, rty.ErrRaffleUnknownRequest
	}
	if len(fulfill.GetRandomWords()) < int(raffle.NumWords) {
		llog.Error("RaffleFulfill", "randomWords", len(fulfill.GetRandomWords()), "numWords", raffle.NumWords)
		return nil, rty.ErrRaffleRandWords
	}
	playerCount := len(raffle.Players)
	if playerCount == 0 {
		return nil, rty.ErrRaffleStatus
	}

	winnerIndex := fulfill.RandomWords[0] % uint64(playerCount)
	winner := raffle.Players[winnerIndex].Addr

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	for _, player := range raffle.Players {
		var receipt *types.Receipt
		if player.Addr == winner {
			receipt, err = action.coinsAccount.ExecActive(player.Addr, action.execaddr, player.Amount)
		} else {
			receipt, err = action.coinsAccount.ExecTransferFrozen(player.Addr, winner, action.execaddr, player.Amount)
		}
		if err != nil {
			llog.Error("RaffleFulfill payout", "addr", player.Addr, "winner", winner,
				"amount", player.Amount, "err", err)
			return nil, rty.ErrRafflePayoutFailed
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	pool := raffle.Pool
	round := raffle.Round
	requestID := raffle.PendingRequestId
	prevStatus := raffle.Status

	raffle.RecentWinner = winner
	raffle.Players = nil
	raffle.Pool = 0
	raffle.PendingRequestId = ""
	raffle.Status = rty.RaffleStatusOpen
	raffle.LastDrawTime = action.blocktime
	raffle.Round++
	kv = append(kv, action.saveStateKV(raffle)...)

	logs = append(logs, raffleReceiptLog(rty.TyLogRafflePicked, &rty.ReceiptRaffle{
		RaffleId:    raffle.RaffleId,
		Addr:        action.fromaddr,
		Status:      raffle.Status,
		PrevStatus:  prevStatus,
		Round:       round,
		RequestId:   requestID,
		Winner:      winner,
		WinnerIndex: winnerIndex,
		Pool:        pool,
		PlayerCount: int64(playerCount),
	}))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// RaffleClose 创建者关闭raffle，全额退还本轮所有参与金额，CLOSED为终态
func (action *Action) RaffleClose(close *rty.RaffleClose) (*types.Receipt, error) {
	raffle, err := findRaffle(action.db, close.GetRaffleId())
	if err != nil {
		llog.Error("RaffleClose", "raffleId", close.GetRaffleId(), "err", err)
		return nil, err
	}
	if action.fromaddr != raffle.CreateAddr {
		llog.Error("RaffleClose", "fromaddr", action.fromaddr, "createAddr", raffle.CreateAddr)
		return nil, rty.ErrRaffleErrCloser
	}
	if raffle.Status != rty.RaffleStatusOpen {
		llog.Error("RaffleClose", "status", raffle.Status)
		return nil, rty.ErrRaffleStatus
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	for _, player := range raffle.Players {
		receipt, err := action.coinsAccount.ExecActive(player.Addr, action.execaddr, player.Amount)
		if err != nil {
			llog.Error("RaffleClose refund", "addr", player.Addr, "amount", player.Amount, "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	prevStatus := raffle.Status
	playerCount := int64(len(raffle.Players))
	pool := raffle.Pool
	raffle.Players = nil
	raffle.Pool = 0
	raffle.Status = rty.RaffleStatusClosed
	kv = append(kv, action.saveStateKV(raffle)...)

	logs = append(logs, raffleReceiptLog(rty.TyLogRaffleClose, &rty.ReceiptRaffle{
		RaffleId:    raffle.RaffleId,
		Addr:        action.fromaddr,
		Status:      raffle.Status,
		PrevStatus:  prevStatus,
		Round:       raffle.Round,
		Pool:        pool,
		PlayerCount: playerCount,
	}))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"

	rty "github.com/Owenchan007/chain33-raffle/types"
)

// Query_GetRaffleInfo 查询raffle配置及本轮快照
func (r *Raffle) Query_GetRaffleInfo(param *rty.ReqRaffleInfo) (types.Message, error) {
	raffle, err := findRaffle(r.GetStateDB(), param.GetRaffleId())
	if err != nil {
		return nil, err
	}
	return &rty.ReplyRaffleInfo{
		RaffleId:         raffle.RaffleId,
		Status:           raffle.Status,
		EntranceFee:      raffle.EntranceFee,
		DrawInterval:     raffle.DrawInterval,
		Pool:             raffle.Pool,
		PlayerCount:      int64(len(raffle.Players)),
		LastDrawTime:     raffle.LastDrawTime,
		RecentWinner:     raffle.RecentWinner,
		PendingRequestId: raffle.PendingRequestId,
		Round:            raffle.Round,
		OracleAddr:       raffle.OracleAddr,
		CreateAddr:       raffle.CreateAddr,
	}, nil
}

// Query_GetPlayer 按序号查询本轮参与者
func (r *Raffle) Query_GetPlayer(param *rty.ReqRafflePlayer) (types.Message, error) {
	raffle, err := findRaffle(r.GetStateDB(), param.GetRaffleId())
	if err != nil {
		return nil, err
	}
	index := param.GetIndex()
	if index < 0 || index >= int64(len(raffle.Players)) {
		return nil, rty.ErrRaffleIndexOutOfRange
	}
	player := raffle.Players[index]
	return &rty.ReplyRafflePlayer{Addr: player.Addr, Amount: player.Amount}, nil
}

// Query_CheckUpkeep 开奖条件只读判定，供外部keeper轮询
func (r *Raffle) Query_CheckUpkeep(param *rty.ReqRaffleInfo) (types.Message, error) {
	raffle, err := findRaffle(r.GetStateDB(), param.GetRaffleId())
	if err != nil {
		return nil, err
	}
	blocktime := r.GetBlockTime()
	return &rty.ReplyCheckUpkeep{
		Needed:       checkUpkeep(raffle, blocktime),
		Pool:         raffle.Pool,
		PlayerCount:  int64(len(raffle.Players)),
		Status:       raffle.Status,
		LastDrawTime: raffle.LastDrawTime,
		BlockTime:    blocktime,
	}, nil
}

// Query_ListEnterRecords 查询某地址的参与历史，round为0时返回全部轮次
func (r *Raffle) Query_ListEnterRecords(param *rty.ReqRaffleEnterHistory) (types.Message, error) {
	var prefix []byte
	if param.GetRound() > 0 {
		prefix = calcRaffleEnterRoundPrefix(param.GetRaffleId(), param.GetAddr(), param.GetRound())
	} else {
		prefix = calcRaffleEnterPrefix(param.GetRaffleId(), param.GetAddr())
	}
	return r.findEnterRecords(prefix)
}

// Query_ListDrawRecords 查询历史开奖记录
func (r *Raffle) Query_ListDrawRecords(param *rty.ReqRaffleDrawHistory) (types.Message, error) {
	count := param.GetCount()
	if count <= 0 {
		count = int32(r.GetLocalDB().PrefixCount(calcRaffleDrawPrefix(param.GetRaffleId())))
	}
	return r.findDrawRecords(calcRaffleDrawPrefix(param.GetRaffleId()), count, param.GetDirection())
}

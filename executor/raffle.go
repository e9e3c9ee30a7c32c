// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor raffle执行器
package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	rty "github.com/Owenchan007/chain33-raffle/types"
)

var (
	llog       = log.New("module", "execs.raffle")
	driverName = rty.RaffleX
)

// 合约粒度的运行参数，来自节点配置中的exec.sub.raffle段
type subConfig struct {
	MinDrawInterval int64 `json:"minDrawInterval"`
	MaxPlayers      int32 `json:"maxPlayers"`
}

var subCfg subConfig

// Init register raffle driver
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	if sub != nil {
		types.MustDecode(sub, &subCfg)
	}
	drivers.Register(cfg, driverName, newRaffle, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType the initialization process is relatively heavyweight, lots of reflect, so it's global
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Raffle{}))
}

// GetName return name at execution time
func GetName() string {
	return newRaffle().GetName()
}

func minDrawInterval() int64 {
	if subCfg.MinDrawInterval <= 0 {
		return 1
	}
	return subCfg.MinDrawInterval
}

func maxPlayers() int {
	return int(subCfg.MaxPlayers)
}

// Raffle driver
type Raffle struct {
	drivers.DriverBase
}

func newRaffle() drivers.Driver {
	r := &Raffle{}
	r.SetChild(r)
	r.SetExecutorType(types.LoadExecutorType(driverName))
	return r
}

// GetDriverName return driver name
func (r *Raffle) GetDriverName() string {
	return driverName
}

func (r *Raffle) findEnterRecords(prefix []byte) (*rty.RaffleEnterRecords, error) {
	var records rty.RaffleEnterRecords
	count := r.GetLocalDB().PrefixCount(prefix)
	values, err := r.GetLocalDB().List(prefix, nil, int32(count), 0)
	if err != nil {
		// 无任何记录按空结果返回
		if err == types.ErrNotFound {
			return &records, nil
		}
		return nil, err
	}
	for _, value := range values {
		var record rty.RaffleEnterRecord
		err = types.Decode(value, &record)
		if err != nil {
			continue
		}
		records.Records = append(records.Records, &record)
	}
	return &records, nil
}

func (r *Raffle) findDrawRecords(prefix []byte, count, direction int32) (*rty.RaffleDrawRecords, error) {
	var records rty.RaffleDrawRecords
	values, err := r.GetLocalDB().List(prefix, nil, count, direction)
	if err != nil {
		if err == types.ErrNotFound {
			return &records, nil
		}
		return nil, err
	}
	for _, value := range values {
		var record rty.RaffleDrawRecord
		err = types.Decode(value, &record)
		if err != nil {
			continue
		}
		records.Records = append(records.Records, &record)
	}
	return &records, nil
}

// prevStatus==status的回执不改变状态，索引不动，回退时同样不动
func (r *Raffle) saveRaffleStatus(rlog *rty.ReceiptRaffle) (kvs []*types.KeyValue) {
	if rlog.PrevStatus == rlog.Status {
		return nil
	}
	if rlog.PrevStatus > 0 {
		kvs = append(kvs, &types.KeyValue{Key: calcRaffleStatusKey(rlog.RaffleId, rlog.PrevStatus), Value: nil})
	}
	kvs = append(kvs, &types.KeyValue{Key: calcRaffleStatusKey(rlog.RaffleId, rlog.Status), Value: []byte(rlog.RaffleId)})
	return kvs
}

func (r *Raffle) deleteRaffleStatus(rlog *rty.ReceiptRaffle) (kvs []*types.KeyValue) {
	if rlog.PrevStatus == rlog.Status {
		return nil
	}
	if rlog.PrevStatus > 0 {
		kvs = append(kvs, &types.KeyValue{Key: calcRaffleStatusKey(rlog.RaffleId, rlog.PrevStatus), Value: []byte(rlog.RaffleId)})
	}
	kvs = append(kvs, &types.KeyValue{Key: calcRaffleStatusKey(rlog.RaffleId, rlog.Status), Value: nil})
	return kvs
}

func (r *Raffle) saveRaffleEnter(rlog *rty.ReceiptRaffle, txID string) (kvs []*types.KeyValue) {
	key := calcRaffleEnterKey(rlog.RaffleId, rlog.Addr, rlog.Round, txID)
	record := &rty.RaffleEnterRecord{Addr: rlog.Addr, Amount: rlog.Amount, Round: rlog.Round, TxHash: txID}
	kvs = append(kvs, &types.KeyValue{Key: key, Value: types.Encode(record)})
	return kvs
}

func (r *Raffle) deleteRaffleEnter(rlog *rty.ReceiptRaffle, txID string) (kvs []*types.KeyValue) {
	key := calcRaffleEnterKey(rlog.RaffleId, rlog.Addr, rlog.Round, txID)
	kvs = append(kvs, &types.KeyValue{Key: key, Value: nil})
	return kvs
}

func (r *Raffle) saveRaffleDraw(rlog *rty.ReceiptRaffle, blocktime int64) (kvs []*types.KeyValue) {
	key := calcRaffleDrawKey(rlog.RaffleId, rlog.Round)
	record := &rty.RaffleDrawRecord{
		Round:       rlog.Round,
		RequestId:   rlog.RequestId,
		Winner:      rlog.Winner,
		WinnerIndex: rlog.WinnerIndex,
		Pool:        rlog.Pool,
		PlayerCount: rlog.PlayerCount,
		DrawTime:    blocktime,
	}
	kvs = append(kvs, &types.KeyValue{Key: key, Value: types.Encode(record)})
	return kvs
}

func (r *Raffle) deleteRaffleDraw(rlog *rty.ReceiptRaffle) (kvs []*types.KeyValue) {
	key := calcRaffleDrawKey(rlog.RaffleId, rlog.Round)
	kvs = append(kvs, &types.KeyValue{Key: key, Value: nil})
	return kvs
}

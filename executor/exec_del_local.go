// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"

	rty "github.com/Owenchan007/chain33-raffle/types"
)

// 区块回退时撤销execLocal写入的localdb索引
func (r *Raffle) execDelLocal(tx *types.Transaction, receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case rty.TyLogRaffleCreate, rty.TyLogRaffleEnter, rty.TyLogRaffleRequested,
			rty.TyLogRafflePicked, rty.TyLogRaffleClose:
			var rlog rty.ReceiptRaffle
			err := types.Decode(item.Log, &rlog)
			if err != nil {
				return nil, err
			}
			set.KV = append(set.KV, r.deleteRaffleStatus(&rlog)...)

			if item.Ty == rty.TyLogRaffleEnter {
				set.KV = append(set.KV, r.deleteRaffleEnter(&rlog, common.ToHex(tx.Hash()))...)
			} else if item.Ty == rty.TyLogRafflePicked {
				set.KV = append(set.KV, r.deleteRaffleDraw(&rlog)...)
			}
		}
	}
	return set, nil
}

// ExecDelLocal_Create rollback for create
func (r *Raffle) ExecDelLocal_Create(payload *rty.RaffleCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

// ExecDelLocal_Enter rollback for enter
func (r *Raffle) ExecDelLocal_Enter(payload *rty.RaffleEnter, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

// ExecDelLocal_PerformUpkeep rollback for performUpkeep
func (r *Raffle) ExecDelLocal_PerformUpkeep(payload *rty.RafflePerformUpkeep, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

// ExecDelLocal_Fulfill rollback for fulfill
func (r *Raffle) ExecDelLocal_Fulfill(payload *rty.RaffleFulfill, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

// ExecDelLocal_Close rollback for close
func (r *Raffle) ExecDelLocal_Close(payload *rty.RaffleClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

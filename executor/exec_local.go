// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"

	rty "github.com/Owenchan007/chain33-raffle/types"
)

func (r *Raffle) execLocal(tx *types.Transaction, receipt *types.ReceiptData) (*types.LocalDBSet, error) {
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
			set.KV = append(set.KV, r.saveRaffleStatus(&rlog)...)

			if item.Ty == rty.TyLogRaffleEnter {
				set.KV = append(set.KV, r.saveRaffleEnter(&rlog, common.ToHex(tx.Hash()))...)
			} else if item.Ty == rty.TyLogRafflePicked {
				set.KV = append(set.KV, r.saveRaffleDraw(&rlog, r.GetBlockTime())...)
			}
		}
	}
	return set, nil
}

// ExecLocal_Create localdb index maintenance for create
func (r *Raffle) ExecLocal_Create(payload *rty.RaffleCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(tx, receiptData)
}

// ExecLocal_Enter localdb index maintenance for enter
func (r *Raffle) ExecLocal_Enter(payload *rty.RaffleEnter, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(tx, receiptData)
}

// ExecLocal_PerformUpkeep localdb index maintenance for performUpkeep
func (r *Raffle) ExecLocal_PerformUpkeep(payload *rty.RafflePerformUpkeep, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(tx, receiptData)
}

// ExecLocal_Fulfill localdb index maintenance for fulfill
func (r *Raffle) ExecLocal_Fulfill(payload *rty.RaffleFulfill, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(tx, receiptData)
}

// ExecLocal_Close localdb index maintenance for close
func (r *Raffle) ExecLocal_Close(payload *rty.RaffleClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(tx, receiptData)
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	rty "github.com/Owenchan007/chain33-raffle/types"
)

// CheckTx 实现自定义检验交易接口，供框架调用
func (r *Raffle) CheckTx(tx *types.Transaction, index int) error {
	// raffle交易的to地址必须为执行器地址
	if dapp.ExecAddress(string(tx.Execer)) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}

	action := &rty.RaffleAction{}
	err := types.Decode(tx.Payload, action)
	if err != nil {
		return types.ErrActionNotSupport
	}

	switch action.Ty {
	case rty.RaffleActionCreate:
		create := action.GetCreate()
		if create == nil || create.EntranceFee <= 0 || create.DrawInterval <= 0 {
			err = types.ErrInvalidParam
		}
	case rty.RaffleActionEnter:
		enter := action.GetEnter()
		if enter == nil || enter.RaffleId == "" || enter.Amount <= 0 {
			err = types.ErrInvalidParam
		}
	case rty.RaffleActionPerformUpkeep:
		if action.GetPerformUpkeep().GetRaffleId() == "" {
			err = types.ErrInvalidParam
		}
	case rty.RaffleActionFulfill:
		fulfill := action.GetFulfill()
		if fulfill == nil || fulfill.RaffleId == "" || fulfill.RequestId == "" || len(fulfill.RandomWords) == 0 {
			err = types.ErrInvalidParam
		}
	case rty.RaffleActionClose:
		if action.GetClose().GetRaffleId() == "" {
			err = types.ErrInvalidParam
		}
	default:
		err = types.ErrActionNotSupport
	}

	if err != nil {
		llog.Error("raffle CheckTx", "txHash", common.ToHex(tx.Hash()), "actionTy", action.Ty, "err", err)
	}
	return err
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"

	rty "github.com/Owenchan007/chain33-raffle/types"
)

// Exec_Create create a raffle instance
func (r *Raffle) Exec_Create(payload *rty.RaffleCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx)
	return action.RaffleCreate(payload)
}

// Exec_Enter pay the entrance fee and take a slot in the current round
func (r *Raffle) Exec_Enter(payload *rty.RaffleEnter, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx)
	return action.RaffleEnter(payload)
}

// Exec_PerformUpkeep start a draw and issue the randomness request
func (r *Raffle) Exec_PerformUpkeep(payload *rty.RafflePerformUpkeep, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx)
	return action.RafflePerformUpkeep(payload)
}

// Exec_Fulfill consume the oracle randomness, pick the winner and pay out
func (r *Raffle) Exec_Fulfill(payload *rty.RaffleFulfill, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx)
	return action.RaffleFulfill(payload)
}

// Exec_Close close the raffle and refund pending entries
func (r *Raffle) Exec_Close(payload *rty.RaffleClose, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx)
	return action.RaffleClose(payload)
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "fmt"

func calcRaffleIDKey(raffleID string) []byte {
	return []byte(fmt.Sprintf("mavl-raffle-%s", raffleID))
}

func calcRaffleStatusKey(raffleID string, status int32) []byte {
	return []byte(fmt.Sprintf("LODB-raffle-stat:%d:%s", status, raffleID))
}

func calcRaffleEnterKey(raffleID string, addr string, round int64, txID string) []byte {
	return []byte(fmt.Sprintf("LODB-raffle-enter:%s:%s:%010d:%s", raffleID, addr, round, txID))
}

func calcRaffleEnterPrefix(raffleID string, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-raffle-enter:%s:%s", raffleID, addr))
}

func calcRaffleEnterRoundPrefix(raffleID string, addr string, round int64) []byte {
	return []byte(fmt.Sprintf("LODB-raffle-enter:%s:%s:%010d", raffleID, addr, round))
}

func calcRaffleDrawKey(raffleID string, round int64) []byte {
	return []byte(fmt.Sprintf("LODB-raffle-draw:%s:%010d", raffleID, round))
}

func calcRaffleDrawPrefix(raffleID string) []byte {
	return []byte(fmt.Sprintf("LODB-raffle-draw:%s", raffleID))
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands raffle合约命令行
package commands

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	"github.com/spf13/cobra"

	rty "github.com/Owenchan007/chain33-raffle/types"
)

// RaffleCmd raffle command
func RaffleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raffle",
		Short: "Raffle management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		RaffleCreateRawTxCmd(),
		RaffleEnterRawTxCmd(),
		RafflePerformUpkeepRawTxCmd(),
		RaffleFulfillRawTxCmd(),
		RaffleCloseRawTxCmd(),
		RaffleInfoCmd(),
		RafflePlayerCmd(),
		RaffleCheckUpkeepCmd(),
		RaffleEnterHistoryCmd(),
		RaffleDrawHistoryCmd(),
	)

	return cmd
}

// RaffleCreateRawTxCmd create a new raffle
func RaffleCreateRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new raffle",
		Run:   raffleCreate,
	}
	addRaffleCreateFlags(cmd)
	return cmd
}

func addRaffleCreateFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("fee", "f", 0, "entrance fee (coins)")
	cmd.MarkFlagRequired("fee")
	cmd.Flags().Int64P("interval", "i", 0, "draw interval (seconds)")
	cmd.MarkFlagRequired("interval")
	cmd.Flags().StringP("oracle", "o", "", "oracle address allowed to fulfill")
	cmd.MarkFlagRequired("oracle")
	cmd.Flags().StringP("gaslane", "g", "", "oracle gas lane key")
	cmd.Flags().Uint64P("subscription", "s", 0, "oracle subscription id")
	cmd.Flags().Uint32P("gaslimit", "l", 0, "oracle callback gas limit")
	cmd.Flags().Uint32P("confirmations", "c", 0, "oracle request confirmations")
	cmd.Flags().Uint32P("words", "w", 1, "random words per request")
}

func raffleCreate(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	fee, _ := cmd.Flags().GetFloat64("fee")
	interval, _ := cmd.Flags().GetInt64("interval")
	oracle, _ := cmd.Flags().GetString("oracle")
	gasLane, _ := cmd.Flags().GetString("gaslane")
	subscription, _ := cmd.Flags().GetUint64("subscription")
	gasLimit, _ := cmd.Flags().GetUint32("gaslimit")
	confirmations, _ := cmd.Flags().GetUint32("confirmations")
	words, _ := cmd.Flags().GetUint32("words")

	payload := &rty.RaffleCreate{
		EntranceFee:          toCoinAmount(fee),
		DrawInterval:         interval,
		GasLaneKey:           gasLane,
		SubscriptionId:       subscription,
		CallbackGasLimit:     gasLimit,
		RequestConfirmations: confirmations,
		NumWords:             words,
		OracleAddr:           oracle,
	}
	params := &rpctypes.CreateTxIn{
		Execer:     util.GetParaExecName(paraName, rty.RaffleX),
		ActionName: rty.NameCreateAction,
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

// RaffleEnterRawTxCmd enter a raffle
func RaffleEnterRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enter",
		Short: "Enter a raffle",
		Run:   raffleEnter,
	}
	addRaffleEnterFlags(cmd)
	return cmd
}

func addRaffleEnterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("raffleId", "r", "", "raffle id")
	cmd.MarkFlagRequired("raffleId")
	cmd.Flags().Float64P("amount", "a", 0, "payment amount (coins), at least the entrance fee")
	cmd.MarkFlagRequired("amount")
}

func raffleEnter(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	raffleID, _ := cmd.Flags().GetString("raffleId")
	amount, _ := cmd.Flags().GetFloat64("amount")

	payload := &rty.RaffleEnter{
		RaffleId: raffleID,
		Amount:   toCoinAmount(amount),
	}
	params := &rpctypes.CreateTxIn{
		Execer:     util.GetParaExecName(paraName, rty.RaffleX),
		ActionName: rty.NameEnterAction,
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

// RafflePerformUpkeepRawTxCmd trigger the draw request
func RafflePerformUpkeepRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perform_upkeep",
		Short: "Request a draw for a due raffle",
		Run:   rafflePerformUpkeep,
	}
	cmd.Flags().StringP("raffleId", "r", "", "raffle id")
	cmd.MarkFlagRequired("raffleId")
	return cmd
}

func rafflePerformUpkeep(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	raffleID, _ := cmd.Flags().GetString("raffleId")

	payload := &rty.RafflePerformUpkeep{RaffleId: raffleID}
	params := &rpctypes.CreateTxIn{
		Execer:     util.GetParaExecName(paraName, rty.RaffleX),
		ActionName: rty.NamePerformUpkeepAction,
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

// RaffleFulfillRawTxCmd submit random words for a pending request
func RaffleFulfillRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fulfill",
		Short: "Fulfill a pending randomness request",
		Run:   raffleFulfill,
	}
	addRaffleFulfillFlags(cmd)
	return cmd
}

func addRaffleFulfillFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("raffleId", "r", "", "raffle id")
	cmd.MarkFlagRequired("raffleId")
	cmd.Flags().StringP("requestId", "q", "", "pending request id")
	cmd.MarkFlagRequired("requestId")
	cmd.Flags().StringP("words", "w", "", "random words, comma separated")
	cmd.MarkFlagRequired("words")
}

func raffleFulfill(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	raffleID, _ := cmd.Flags().GetString("raffleId")
	requestID, _ := cmd.Flags().GetString("requestId")
	words, _ := cmd.Flags().GetString("words")

	var randomWords []uint64
	for _, w := range strings.Split(words, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(w), 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		randomWords = append(randomWords, v)
	}

	payload := &rty.RaffleFulfill{
		RaffleId:    raffleID,
		RequestId:   requestID,
		RandomWords: randomWords,
	}
	params := &rpctypes.CreateTxIn{
		Execer:     util.GetParaExecName(paraName, rty.RaffleX),
		ActionName: rty.NameFulfillAction,
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

// RaffleCloseRawTxCmd close a raffle and refund players
func RaffleCloseRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close a raffle and refund current entries",
		Run:   raffleClose,
	}
	cmd.Flags().StringP("raffleId", "r", "", "raffle id")
	cmd.MarkFlagRequired("raffleId")
	return cmd
}

func raffleClose(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	raffleID, _ := cmd.Flags().GetString("raffleId")

	payload := &rty.RaffleClose{RaffleId: raffleID}
	params := &rpctypes.CreateTxIn{
		Execer:     util.GetParaExecName(paraName, rty.RaffleX),
		ActionName: rty.NameCloseAction,
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

// RaffleInfoCmd query raffle state
func RaffleInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Query raffle state",
		Run:   raffleInfo,
	}
	cmd.Flags().StringP("raffleId", "r", "", "raffle id")
	cmd.MarkFlagRequired("raffleId")
	return cmd
}

func raffleInfo(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	raffleID, _ := cmd.Flags().GetString("raffleId")

	req := &rty.ReqRaffleInfo{RaffleId: raffleID}
	var params rpctypes.Query4Jrpc
	params.Execer = util.GetParaExecName(paraName, rty.RaffleX)
	params.FuncName = rty.FuncNameGetRaffleInfo
	params.Payload = types.MustPBToJSON(req)

	var res rty.ReplyRaffleInfo
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

// RafflePlayerCmd query one player by index
func RafflePlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Query a player of the current round by index",
		Run:   rafflePlayer,
	}
	cmd.Flags().StringP("raffleId", "r", "", "raffle id")
	cmd.MarkFlagRequired("raffleId")
	cmd.Flags().Int64P("index", "i", 0, "player index")
	return cmd
}

func rafflePlayer(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	raffleID, _ := cmd.Flags().GetString("raffleId")
	index, _ := cmd.Flags().GetInt64("index")

	req := &rty.ReqRafflePlayer{RaffleId: raffleID, Index: index}
	var params rpctypes.Query4Jrpc
	params.Execer = util.GetParaExecName(paraName, rty.RaffleX)
	params.FuncName = rty.FuncNameGetPlayer
	params.Payload = types.MustPBToJSON(req)

	var res rty.ReplyRafflePlayer
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

// RaffleCheckUpkeepCmd query whether a draw is due
func RaffleCheckUpkeepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check_upkeep",
		Short: "Check whether a raffle is due for a draw",
		Run:   raffleCheckUpkeep,
	}
	cmd.Flags().StringP("raffleId", "r", "", "raffle id")
	cmd.MarkFlagRequired("raffleId")
	return cmd
}

func raffleCheckUpkeep(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	raffleID, _ := cmd.Flags().GetString("raffleId")

	req := &rty.ReqRaffleInfo{RaffleId: raffleID}
	var params rpctypes.Query4Jrpc
	params.Execer = util.GetParaExecName(paraName, rty.RaffleX)
	params.FuncName = rty.FuncNameCheckUpkeep
	params.Payload = types.MustPBToJSON(req)

	var res rty.ReplyCheckUpkeep
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

// RaffleEnterHistoryCmd query entry records
func RaffleEnterHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enter_history",
		Short: "Query entry records of an address",
		Run:   raffleEnterHistory,
	}
	addRaffleEnterHistoryFlags(cmd)
	return cmd
}

func addRaffleEnterHistoryFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("raffleId", "r", "", "raffle id")
	cmd.MarkFlagRequired("raffleId")
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int64P("round", "n", 0, "round to query, 0 for all rounds")
}

func raffleEnterHistory(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	raffleID, _ := cmd.Flags().GetString("raffleId")
	addr, _ := cmd.Flags().GetString("addr")
	round, _ := cmd.Flags().GetInt64("round")

	req := &rty.ReqRaffleEnterHistory{RaffleId: raffleID, Addr: addr, Round: round}
	var params rpctypes.Query4Jrpc
	params.Execer = util.GetParaExecName(paraName, rty.RaffleX)
	params.FuncName = rty.FuncNameEnterHistory
	params.Payload = types.MustPBToJSON(req)

	var res rty.RaffleEnterRecords
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

// RaffleDrawHistoryCmd query draw records
func RaffleDrawHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw_history",
		Short: "Query past draw results",
		Run:   raffleDrawHistory,
	}
	cmd.Flags().StringP("raffleId", "r", "", "raffle id")
	cmd.MarkFlagRequired("raffleId")
	cmd.Flags().Int32P("count", "c", 0, "max records, 0 for all")
	cmd.Flags().Int32P("direction", "d", 0, "0: newest first, 1: oldest first")
	return cmd
}

func raffleDrawHistory(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	raffleID, _ := cmd.Flags().GetString("raffleId")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")

	req := &rty.ReqRaffleDrawHistory{RaffleId: raffleID, Count: count, Direction: direction}
	var params rpctypes.Query4Jrpc
	params.Execer = util.GetParaExecName(paraName, rty.RaffleX)
	params.FuncName = rty.FuncNameDrawHistory
	params.Payload = types.MustPBToJSON(req)

	var res rty.RaffleDrawRecords
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func toCoinAmount(v float64) int64 {
	return int64(math.Trunc((v+0.0000001)*1e4)) * 1e4
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/queue"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	rty "github.com/Owenchan007/chain33-raffle/types"
)

var (
	testCfg = types.NewChain33Config(types.GetDefaultCfgstring())

	testBlockTime int64 = 1693000000
	testInterval  int64 = 100
	testFee       int64 = 1 * types.DefaultCoinPrecision
)

func init() {
	Init(driverName, testCfg, []byte(`{"minDrawInterval":10}`))
}

func initTestRaffle(t *testing.T) (string, *Raffle) {
	q := queue.New("testraffle")
	q.SetConfig(testCfg)
	api, err := client.New(q.Client(), nil)
	require.Nil(t, err)
	dir, stateDB, kvdb := util.CreateTestDB()
	r := newRaffle().(*Raffle)
	r.SetAPI(api)
	r.SetStateDB(stateDB)
	r.SetLocalDB(kvdb)
	r.SetEnv(1, testBlockTime, 10)
	return dir, r
}

func createTestTx(t *testing.T, actionName string, payload types.Message, priv crypto.PrivKey) *types.Transaction {
	ety := types.LoadExecutorType(driverName)
	tx, err := ety.CreateTransaction(actionName, payload)
	require.Nil(t, err)
	tx, err = types.FormatTx(testCfg, driverName, tx)
	require.Nil(t, err)
	tx.Sign(int32(types.SECP256K1), priv)
	return tx
}

// 直接写入合约子账户余额，供后续冻结
func seedExecBalance(r *Raffle, addr string, amount int64) {
	acc := r.GetCoinsAccount()
	acc.SaveExecAccount(address.ExecAddress(driverName), &types.Account{Addr: addr, Balance: amount})
}

func createTestRaffle(t *testing.T, r *Raffle, priv crypto.PrivKey, oracleAddr string) string {
	create := &rty.RaffleCreate{
		EntranceFee:  testFee,
		DrawInterval: testInterval,
		OracleAddr:   oracleAddr,
	}
	tx := createTestTx(t, rty.NameCreateAction, create, priv)
	recp, err := r.Exec(tx, 0)
	require.Nil(t, err)
	require.Equal(t, int32(types.ExecOk), recp.Ty)
	require.Len(t, recp.Logs, 1)
	require.Equal(t, int32(rty.TyLogRaffleCreate), recp.Logs[0].Ty)
	return common.ToHex(tx.Hash())
}

func enterTestRaffle(t *testing.T, r *Raffle, raffleID string, priv crypto.PrivKey, amount int64) *types.Transaction {
	tx := createTestTx(t, rty.NameEnterAction, &rty.RaffleEnter{RaffleId: raffleID, Amount: amount}, priv)
	recp, err := r.Exec(tx, 0)
	require.Nil(t, err)
	require.Equal(t, int32(types.ExecOk), recp.Ty)
	return tx
}

func TestRaffle_CheckTx(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	addr, priv := util.Genaddress()

	tx := createTestTx(t, rty.NameCreateAction, &rty.RaffleCreate{EntranceFee: testFee, DrawInterval: testInterval, OracleAddr: addr}, priv)
	require.Nil(t, r.CheckTx(tx, 0))

	tx.To = addr
	require.Equal(t, types.ErrToAddrNotSameToExecAddr, r.CheckTx(tx, 0))

	tx = createTestTx(t, rty.NameCreateAction, &rty.RaffleCreate{EntranceFee: 0, DrawInterval: testInterval}, priv)
	require.Equal(t, types.ErrInvalidParam, r.CheckTx(tx, 0))

	tx = createTestTx(t, rty.NameEnterAction, &rty.RaffleEnter{RaffleId: "", Amount: testFee}, priv)
	require.Equal(t, types.ErrInvalidParam, r.CheckTx(tx, 0))

	tx = createTestTx(t, rty.NameFulfillAction, &rty.RaffleFulfill{RaffleId: "id", RequestId: "req"}, priv)
	require.Equal(t, types.ErrInvalidParam, r.CheckTx(tx, 0))

	tx = createTestTx(t, rty.NameFulfillAction, &rty.RaffleFulfill{RaffleId: "id", RequestId: "req", RandomWords: []uint64{17}}, priv)
	require.Nil(t, r.CheckTx(tx, 0))
}

func TestRaffle_Create(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	createAddr, priv := util.Genaddress()
	oracleAddr, _ := util.Genaddress()

	raffleID := createTestRaffle(t, r, priv, oracleAddr)

	msg, err := r.Query(rty.FuncNameGetRaffleInfo, types.Encode(&rty.ReqRaffleInfo{RaffleId: raffleID}))
	require.Nil(t, err)
	info := msg.(*rty.ReplyRaffleInfo)
	require.Equal(t, int32(rty.RaffleStatusOpen), info.Status)
	require.Equal(t, testFee, info.EntranceFee)
	require.Equal(t, int64(1), info.Round)
	require.Equal(t, int64(0), info.Pool)
	require.Equal(t, oracleAddr, info.OracleAddr)
	require.Equal(t, createAddr, info.CreateAddr)
	require.Equal(t, testBlockTime, info.LastDrawTime)
	require.Empty(t, info.PendingRequestId)

	// 开奖间隔低于配置下限
	tx := createTestTx(t, rty.NameCreateAction, &rty.RaffleCreate{EntranceFee: testFee, DrawInterval: 1, OracleAddr: oracleAddr}, priv)
	_, err = r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleDrawIntervalLimit, err)
}

func TestRaffle_Enter(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	_, createPriv := util.Genaddress()
	oracleAddr, _ := util.Genaddress()
	addr, priv := util.Genaddress()
	raffleID := createTestRaffle(t, r, createPriv, oracleAddr)
	seedExecBalance(r, addr, 10*types.DefaultCoinPrecision)

	// 入场费不足，状态不变
	tx := createTestTx(t, rty.NameEnterAction, &rty.RaffleEnter{RaffleId: raffleID, Amount: testFee - 1}, priv)
	_, err := r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleFeeNotEnough, err)
	raffle, err := findRaffle(r.GetStateDB(), raffleID)
	require.Nil(t, err)
	require.Empty(t, raffle.Players)
	require.Equal(t, int64(0), raffle.Pool)

	enterTestRaffle(t, r, raffleID, priv, testFee)
	// 同一地址重复参与，各占一个席位
	enterTestRaffle(t, r, raffleID, priv, 2*testFee)

	raffle, err = findRaffle(r.GetStateDB(), raffleID)
	require.Nil(t, err)
	require.Len(t, raffle.Players, 2)
	require.Equal(t, addr, raffle.Players[0].Addr)
	require.Equal(t, 3*testFee, raffle.Pool)

	execAcc := r.GetCoinsAccount().LoadExecAccount(addr, address.ExecAddress(driverName))
	require.Equal(t, 3*testFee, execAcc.Frozen)
}

func TestRaffle_CheckUpkeep(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	_, createPriv := util.Genaddress()
	oracleAddr, _ := util.Genaddress()
	addr, priv := util.Genaddress()
	raffleID := createTestRaffle(t, r, createPriv, oracleAddr)

	// 无人参与时到点也不开奖
	r.SetEnv(2, testBlockTime+10*testInterval, 10)
	msg, err := r.Query(rty.FuncNameCheckUpkeep, types.Encode(&rty.ReqRaffleInfo{RaffleId: raffleID}))
	require.Nil(t, err)
	reply := msg.(*rty.ReplyCheckUpkeep)
	require.False(t, reply.Needed)
	require.Equal(t, int64(0), reply.PlayerCount)

	seedExecBalance(r, addr, 10*types.DefaultCoinPrecision)
	enterTestRaffle(t, r, raffleID, priv, testFee)

	// 有参与但未到开奖时间
	r.SetEnv(3, testBlockTime+1, 10)
	msg, err = r.Query(rty.FuncNameCheckUpkeep, types.Encode(&rty.ReqRaffleInfo{RaffleId: raffleID}))
	require.Nil(t, err)
	require.False(t, msg.(*rty.ReplyCheckUpkeep).Needed)

	r.SetEnv(4, testBlockTime+testInterval, 10)
	msg, err = r.Query(rty.FuncNameCheckUpkeep, types.Encode(&rty.ReqRaffleInfo{RaffleId: raffleID}))
	require.Nil(t, err)
	reply = msg.(*rty.ReplyCheckUpkeep)
	require.True(t, reply.Needed)
	require.Equal(t, testFee, reply.Pool)
	require.Equal(t, int64(1), reply.PlayerCount)
}

func TestRaffle_PerformUpkeep(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	_, createPriv := util.Genaddress()
	oracleAddr, _ := util.Genaddress()
	addr, priv := util.Genaddress()
	raffleID := createTestRaffle(t, r, createPriv, oracleAddr)
	seedExecBalance(r, addr, 10*types.DefaultCoinPrecision)
	enterTestRaffle(t, r, raffleID, priv, testFee)

	// 未到开奖时间，携带诊断信息拒绝
	tx := createTestTx(t, rty.NamePerformUpkeepAction, &rty.RafflePerformUpkeep{RaffleId: raffleID}, priv)
	_, err := r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleUpkeepNotNeeded, errors.Cause(err))
	require.Contains(t, err.Error(), "playerCount=1")

	r.SetEnv(2, testBlockTime+testInterval, 10)
	tx = createTestTx(t, rty.NamePerformUpkeepAction, &rty.RafflePerformUpkeep{RaffleId: raffleID}, priv)
	recp, err := r.Exec(tx, 0)
	require.Nil(t, err)
	require.Equal(t, int32(types.ExecOk), recp.Ty)
	require.Len(t, recp.Logs, 1)
	require.Equal(t, int32(rty.TyLogRaffleRequested), recp.Logs[0].Ty)

	var rlog rty.ReceiptRaffle
	require.Nil(t, types.Decode(recp.Logs[0].Log, &rlog))
	require.Equal(t, common.ToHex(tx.Hash()), rlog.RequestId)
	require.Equal(t, int32(rty.RaffleStatusCalculating), rlog.Status)
	require.Equal(t, uint32(1), rlog.NumWords)

	raffle, err := findRaffle(r.GetStateDB(), raffleID)
	require.Nil(t, err)
	require.Equal(t, int32(rty.RaffleStatusCalculating), raffle.Status)
	require.Equal(t, rlog.RequestId, raffle.PendingRequestId)

	// 计算状态下禁止再次参与
	tx = createTestTx(t, rty.NameEnterAction, &rty.RaffleEnter{RaffleId: raffleID, Amount: testFee}, priv)
	_, err = r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleNotOpen, err)

	// 计算状态下禁止重复触发
	tx = createTestTx(t, rty.NamePerformUpkeepAction, &rty.RafflePerformUpkeep{RaffleId: raffleID}, priv)
	_, err = r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleUpkeepNotNeeded, errors.Cause(err))
}

func TestRaffle_Fulfill(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	_, createPriv := util.Genaddress()
	oracleAddr, oraclePriv := util.Genaddress()
	raffleID := createTestRaffle(t, r, createPriv, oracleAddr)

	players := make([]string, 5)
	for i := 0; i < 5; i++ {
		addr, priv := util.Genaddress()
		players[i] = addr
		seedExecBalance(r, addr, 10*types.DefaultCoinPrecision)
		enterTestRaffle(t, r, raffleID, priv, testFee)
	}

	r.SetEnv(2, testBlockTime+testInterval, 10)
	upkeepTx := createTestTx(t, rty.NamePerformUpkeepAction, &rty.RafflePerformUpkeep{RaffleId: raffleID}, createPriv)
	_, err := r.Exec(upkeepTx, 0)
	require.Nil(t, err)
	requestID := common.ToHex(upkeepTx.Hash())

	// 非预言机地址回传
	_, badPriv := util.Genaddress()
	tx := createTestTx(t, rty.NameFulfillAction, &rty.RaffleFulfill{RaffleId: raffleID, RequestId: requestID, RandomWords: []uint64{17}}, badPriv)
	_, err = r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleNotOracle, err)

	// 回传请求id不匹配
	tx = createTestTx(t, rty.NameFulfillAction, &rty.RaffleFulfill{RaffleId: raffleID, RequestId: "0xdeadbeef", RandomWords: []uint64{17}}, oraclePriv)
	_, err = r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleUnknownRequest, err)

	// 17 % 5 == 2
	tx = createTestTx(t, rty.NameFulfillAction, &rty.RaffleFulfill{RaffleId: raffleID, RequestId: requestID, RandomWords: []uint64{17}}, oraclePriv)
	recp, err := r.Exec(tx, 0)
	require.Nil(t, err)
	require.Equal(t, int32(types.ExecOk), recp.Ty)

	var rlog rty.ReceiptRaffle
	last := recp.Logs[len(recp.Logs)-1]
	require.Equal(t, int32(rty.TyLogRafflePicked), last.Ty)
	require.Nil(t, types.Decode(last.Log, &rlog))
	require.Equal(t, players[2], rlog.Winner)
	require.Equal(t, uint64(2), rlog.WinnerIndex)
	require.Equal(t, 5*testFee, rlog.Pool)
	require.Equal(t, int64(1), rlog.Round)

	raffle, err := findRaffle(r.GetStateDB(), raffleID)
	require.Nil(t, err)
	require.Equal(t, int32(rty.RaffleStatusOpen), raffle.Status)
	require.Empty(t, raffle.Players)
	require.Equal(t, int64(0), raffle.Pool)
	require.Empty(t, raffle.PendingRequestId)
	require.Equal(t, players[2], raffle.RecentWinner)
	require.Equal(t, int64(2), raffle.Round)
	require.Equal(t, testBlockTime+testInterval, raffle.LastDrawTime)

	// 整池归入赢家的合约子账户可用余额：原有9份加整池5份
	winnerAcc := r.GetCoinsAccount().LoadExecAccount(players[2], address.ExecAddress(driverName))
	require.Equal(t, 10*types.DefaultCoinPrecision-testFee+5*testFee, winnerAcc.Balance)
	require.Equal(t, int64(0), winnerAcc.Frozen)
	loserAcc := r.GetCoinsAccount().LoadExecAccount(players[0], address.ExecAddress(driverName))
	require.Equal(t, int64(0), loserAcc.Frozen)

	// 同一请求不可重复回传
	tx = createTestTx(t, rty.NameFulfillAction, &rty.RaffleFulfill{RaffleId: raffleID, RequestId: requestID, RandomWords: []uint64{17}}, oraclePriv)
	_, err = r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleUnknownRequest, err)
}

func TestRaffle_FulfillPayoutFailed(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	_, createPriv := util.Genaddress()
	oracleAddr, oraclePriv := util.Genaddress()
	raffleID := createTestRaffle(t, r, createPriv, oracleAddr)

	winnerAddr, winnerPriv := util.Genaddress()
	loserAddr, loserPriv := util.Genaddress()
	seedExecBalance(r, winnerAddr, 10*types.DefaultCoinPrecision)
	seedExecBalance(r, loserAddr, 10*types.DefaultCoinPrecision)
	enterTestRaffle(t, r, raffleID, winnerPriv, testFee)
	enterTestRaffle(t, r, raffleID, loserPriv, testFee)

	r.SetEnv(2, testBlockTime+testInterval, 10)
	upkeepTx := createTestTx(t, rty.NamePerformUpkeepAction, &rty.RafflePerformUpkeep{RaffleId: raffleID}, createPriv)
	_, err := r.Exec(upkeepTx, 0)
	require.Nil(t, err)

	// 破坏落败者的冻结余额，使派奖转账失败
	r.GetCoinsAccount().SaveExecAccount(address.ExecAddress(driverName),
		&types.Account{Addr: loserAddr, Balance: 0, Frozen: 0})

	// 0 % 2 == 0，winnerAddr胜出
	tx := createTestTx(t, rty.NameFulfillAction,
		&rty.RaffleFulfill{RaffleId: raffleID, RequestId: common.ToHex(upkeepTx.Hash()), RandomWords: []uint64{0}}, oraclePriv)
	_, err = r.Exec(tx, 0)
	require.Equal(t, rty.ErrRafflePayoutFailed, err)

	// 状态保持计算中，等待重试
	raffle, err := findRaffle(r.GetStateDB(), raffleID)
	require.Nil(t, err)
	require.Equal(t, int32(rty.RaffleStatusCalculating), raffle.Status)
	require.Len(t, raffle.Players, 2)
	require.Equal(t, 2*testFee, raffle.Pool)
	require.Empty(t, raffle.RecentWinner)
	require.Equal(t, common.ToHex(upkeepTx.Hash()), raffle.PendingRequestId)
}

func TestRaffle_Close(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	_, createPriv := util.Genaddress()
	oracleAddr, _ := util.Genaddress()
	addr, priv := util.Genaddress()
	raffleID := createTestRaffle(t, r, createPriv, oracleAddr)
	seedExecBalance(r, addr, 10*types.DefaultCoinPrecision)
	enterTestRaffle(t, r, raffleID, priv, testFee)

	// 仅创建者可关闭
	tx := createTestTx(t, rty.NameCloseAction, &rty.RaffleClose{RaffleId: raffleID}, priv)
	_, err := r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleErrCloser, err)

	tx = createTestTx(t, rty.NameCloseAction, &rty.RaffleClose{RaffleId: raffleID}, createPriv)
	recp, err := r.Exec(tx, 0)
	require.Nil(t, err)
	require.Equal(t, int32(types.ExecOk), recp.Ty)

	raffle, err := findRaffle(r.GetStateDB(), raffleID)
	require.Nil(t, err)
	require.Equal(t, int32(rty.RaffleStatusClosed), raffle.Status)
	require.Empty(t, raffle.Players)
	require.Equal(t, int64(0), raffle.Pool)

	// 退款解冻
	acc := r.GetCoinsAccount().LoadExecAccount(addr, address.ExecAddress(driverName))
	require.Equal(t, int64(0), acc.Frozen)
	require.Equal(t, 10*types.DefaultCoinPrecision, acc.Balance)

	// 关闭后禁止参与，终态不可再关闭
	tx = createTestTx(t, rty.NameEnterAction, &rty.RaffleEnter{RaffleId: raffleID, Amount: testFee}, priv)
	_, err = r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleNotOpen, err)
	tx = createTestTx(t, rty.NameCloseAction, &rty.RaffleClose{RaffleId: raffleID}, createPriv)
	_, err = r.Exec(tx, 0)
	require.Equal(t, rty.ErrRaffleStatus, err)
}

func TestRaffle_QueryGetPlayer(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	_, createPriv := util.Genaddress()
	oracleAddr, _ := util.Genaddress()
	addr, priv := util.Genaddress()
	raffleID := createTestRaffle(t, r, createPriv, oracleAddr)
	seedExecBalance(r, addr, 10*types.DefaultCoinPrecision)
	enterTestRaffle(t, r, raffleID, priv, testFee)

	msg, err := r.Query(rty.FuncNameGetPlayer, types.Encode(&rty.ReqRafflePlayer{RaffleId: raffleID, Index: 0}))
	require.Nil(t, err)
	player := msg.(*rty.ReplyRafflePlayer)
	require.Equal(t, addr, player.Addr)
	require.Equal(t, testFee, player.Amount)

	_, err = r.Query(rty.FuncNameGetPlayer, types.Encode(&rty.ReqRafflePlayer{RaffleId: raffleID, Index: 1}))
	require.Equal(t, rty.ErrRaffleIndexOutOfRange, err)
	_, err = r.Query(rty.FuncNameGetPlayer, types.Encode(&rty.ReqRafflePlayer{RaffleId: raffleID, Index: -1}))
	require.Equal(t, rty.ErrRaffleIndexOutOfRange, err)
}

// 按框架语义应用localdb变更，value为nil表示删除
func applyLocalKV(t *testing.T, r *Raffle, set *types.LocalDBSet) {
	ldb := r.GetStateDB().(db.DB)
	for _, kv := range set.KV {
		if kv.Value == nil {
			require.Nil(t, ldb.Delete(kv.Key))
		} else {
			require.Nil(t, ldb.Set(kv.Key, kv.Value))
		}
	}
}

func TestRaffle_ExecLocal(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	_, createPriv := util.Genaddress()
	oracleAddr, oraclePriv := util.Genaddress()
	addr, priv := util.Genaddress()
	raffleID := createTestRaffle(t, r, createPriv, oracleAddr)
	seedExecBalance(r, addr, 10*types.DefaultCoinPrecision)

	enterTx := createTestTx(t, rty.NameEnterAction, &rty.RaffleEnter{RaffleId: raffleID, Amount: testFee}, priv)
	enterRecp, err := r.Exec(enterTx, 0)
	require.Nil(t, err)

	rData := &types.ReceiptData{Ty: enterRecp.Ty, Logs: enterRecp.Logs}
	set, err := r.ExecLocal(enterTx, rData, 0)
	require.Nil(t, err)
	require.NotEmpty(t, set.KV)
	applyLocalKV(t, r, set)

	msg, err := r.Query(rty.FuncNameEnterHistory, types.Encode(&rty.ReqRaffleEnterHistory{RaffleId: raffleID, Addr: addr}))
	require.Nil(t, err)
	records := msg.(*rty.RaffleEnterRecords)
	require.Len(t, records.Records, 1)
	require.Equal(t, testFee, records.Records[0].Amount)
	require.Equal(t, int64(1), records.Records[0].Round)
	require.Equal(t, common.ToHex(enterTx.Hash()), records.Records[0].TxHash)

	// 按轮次过滤
	msg, err = r.Query(rty.FuncNameEnterHistory, types.Encode(&rty.ReqRaffleEnterHistory{RaffleId: raffleID, Addr: addr, Round: 2}))
	require.Nil(t, err)
	require.Empty(t, msg.(*rty.RaffleEnterRecords).Records)

	// 未参与过的地址返回空结果
	other, _ := util.Genaddress()
	msg, err = r.Query(rty.FuncNameEnterHistory, types.Encode(&rty.ReqRaffleEnterHistory{RaffleId: raffleID, Addr: other}))
	require.Nil(t, err)
	require.Empty(t, msg.(*rty.RaffleEnterRecords).Records)

	// 尚无开奖记录时返回空结果
	msg, err = r.Query(rty.FuncNameDrawHistory, types.Encode(&rty.ReqRaffleDrawHistory{RaffleId: raffleID}))
	require.Nil(t, err)
	require.Empty(t, msg.(*rty.RaffleDrawRecords).Records)

	r.SetEnv(2, testBlockTime+testInterval, 10)
	upkeepTx := createTestTx(t, rty.NamePerformUpkeepAction, &rty.RafflePerformUpkeep{RaffleId: raffleID}, createPriv)
	upkeepRecp, err := r.Exec(upkeepTx, 0)
	require.Nil(t, err)
	set, err = r.ExecLocal(upkeepTx, &types.ReceiptData{Ty: upkeepRecp.Ty, Logs: upkeepRecp.Logs}, 0)
	require.Nil(t, err)
	applyLocalKV(t, r, set)

	fulfillTx := createTestTx(t, rty.NameFulfillAction,
		&rty.RaffleFulfill{RaffleId: raffleID, RequestId: common.ToHex(upkeepTx.Hash()), RandomWords: []uint64{17}}, oraclePriv)
	fulfillRecp, err := r.Exec(fulfillTx, 0)
	require.Nil(t, err)
	fulfillData := &types.ReceiptData{Ty: fulfillRecp.Ty, Logs: fulfillRecp.Logs}
	set, err = r.ExecLocal(fulfillTx, fulfillData, 0)
	require.Nil(t, err)
	applyLocalKV(t, r, set)

	msg, err = r.Query(rty.FuncNameDrawHistory, types.Encode(&rty.ReqRaffleDrawHistory{RaffleId: raffleID}))
	require.Nil(t, err)
	draws := msg.(*rty.RaffleDrawRecords)
	require.Len(t, draws.Records, 1)
	require.Equal(t, int64(1), draws.Records[0].Round)
	require.Equal(t, addr, draws.Records[0].Winner)
	require.Equal(t, testFee, draws.Records[0].Pool)
	require.Equal(t, common.ToHex(upkeepTx.Hash()), draws.Records[0].RequestId)

	// 回退开奖区块后索引同步撤销
	set, err = r.ExecDelLocal(fulfillTx, fulfillData, 0)
	require.Nil(t, err)
	applyLocalKV(t, r, set)
	msg, err = r.Query(rty.FuncNameDrawHistory, types.Encode(&rty.ReqRaffleDrawHistory{RaffleId: raffleID}))
	require.Nil(t, err)
	require.Empty(t, msg.(*rty.RaffleDrawRecords).Records)

	set, err = r.ExecDelLocal(enterTx, rData, 0)
	require.Nil(t, err)
	applyLocalKV(t, r, set)
	msg, err = r.Query(rty.FuncNameEnterHistory, types.Encode(&rty.ReqRaffleEnterHistory{RaffleId: raffleID, Addr: addr}))
	require.Nil(t, err)
	require.Empty(t, msg.(*rty.RaffleEnterRecords).Records)
}

func TestRaffle_EnterRollbackKeepsStatusIndex(t *testing.T) {
	dir, r := initTestRaffle(t)
	defer util.CloseTestDB(dir, r.GetStateDB().(db.DB))
	_, createPriv := util.Genaddress()
	oracleAddr, _ := util.Genaddress()
	addr, priv := util.Genaddress()

	createTx := createTestTx(t, rty.NameCreateAction,
		&rty.RaffleCreate{EntranceFee: testFee, DrawInterval: testInterval, OracleAddr: oracleAddr}, createPriv)
	createRecp, err := r.Exec(createTx, 0)
	require.Nil(t, err)
	raffleID := common.ToHex(createTx.Hash())
	set, err := r.ExecLocal(createTx, &types.ReceiptData{Ty: createRecp.Ty, Logs: createRecp.Logs}, 0)
	require.Nil(t, err)
	applyLocalKV(t, r, set)

	seedExecBalance(r, addr, 10*types.DefaultCoinPrecision)
	tx1 := createTestTx(t, rty.NameEnterAction, &rty.RaffleEnter{RaffleId: raffleID, Amount: testFee}, priv)
	recp1, err := r.Exec(tx1, 0)
	require.Nil(t, err)
	set, err = r.ExecLocal(tx1, &types.ReceiptData{Ty: recp1.Ty, Logs: recp1.Logs}, 0)
	require.Nil(t, err)
	applyLocalKV(t, r, set)

	tx2 := createTestTx(t, rty.NameEnterAction, &rty.RaffleEnter{RaffleId: raffleID, Amount: testFee}, priv)
	recp2, err := r.Exec(tx2, 0)
	require.Nil(t, err)
	data2 := &types.ReceiptData{Ty: recp2.Ty, Logs: recp2.Logs}
	set, err = r.ExecLocal(tx2, data2, 0)
	require.Nil(t, err)
	applyLocalKV(t, r, set)

	// 回退一笔未改变状态的参与交易
	set, err = r.ExecDelLocal(tx2, data2, 0)
	require.Nil(t, err)
	applyLocalKV(t, r, set)

	// OPEN状态索引仍然在位
	value, err := r.GetLocalDB().Get(calcRaffleStatusKey(raffleID, rty.RaffleStatusOpen))
	require.Nil(t, err)
	require.Equal(t, []byte(raffleID), value)

	// 更早的参与记录不受影响
	msg, err := r.Query(rty.FuncNameEnterHistory, types.Encode(&rty.ReqRaffleEnterHistory{RaffleId: raffleID, Addr: addr}))
	require.Nil(t, err)
	records := msg.(*rty.RaffleEnterRecords)
	require.Len(t, records.Records, 1)
	require.Equal(t, common.ToHex(tx1.Hash()), records.Records[0].TxHash)
}

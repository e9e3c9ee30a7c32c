// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raffle 自动开奖彩票合约插件
package raffle

import (
	"github.com/33cn/chain33/pluginmgr"

	"github.com/Owenchan007/chain33-raffle/commands"
	"github.com/Owenchan007/chain33-raffle/executor"
	rty "github.com/Owenchan007/chain33-raffle/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rty.RaffleX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RaffleCmd,
		RPC:      nil,
	})
}

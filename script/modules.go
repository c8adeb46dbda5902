package script

import (
	"github.com/curio-house/curio/script/escrow"
	"github.com/curio-house/curio/script/market"
	"github.com/curio-house/curio/script/minter"
)

const (
	MINTER_MODULE_NAME = string("minter")
	MINTER_MODULE_ID   = uint32(1001)

	MARKET_MODULE_NAME = string("market")
	MARKET_MODULE_ID   = uint32(1002)
)

func ModuleMinterInit(se *ScriptEngine) *minter.Minter {
	m := minter.NewMinter(se.assetRegistry)
	if m == nil {
		panic("init minter module failed")
	}

	mod := &Module{
		modName:    MINTER_MODULE_NAME,
		modID:      MINTER_MODULE_ID,
		modHandler: m.Handle,
	}
	if err := se.modReg.Register(MINTER_MODULE_ID, mod); err != nil {
		panic("register minter module failed")
	}

	m.Start()
	se.logger.Info("ScriptEngine", "started module", mod.modName)
	return m
}

func ModuleMarketInit(se *ScriptEngine) *market.Market {
	mk := market.NewMarket(se.assetRegistry, escrow.New())
	if mk == nil {
		panic("init market module failed")
	}

	mod := &Module{
		modName:    MARKET_MODULE_NAME,
		modID:      MARKET_MODULE_ID,
		modHandler: mk.Handle,
	}
	if err := se.modReg.Register(MARKET_MODULE_ID, mod); err != nil {
		panic("register market module failed")
	}

	mk.Start()
	se.logger.Info("ScriptEngine", "started module", mod.modName)
	return mk
}

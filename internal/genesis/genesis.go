package genesis

import (
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/axiomesh/axiom-token/internal/executor/system/common"
	"github.com/axiomesh/axiom-token/internal/executor/system/token"
	"github.com/axiomesh/axiom-token/internal/ledger"
	"github.com/axiomesh/axiom-token/pkg/repo"
)

var genesisConfigKey = "genesis_cfg"

// Initialize constructs the token ledger exactly once: it records the
// genesis config, writes the token metadata and credits the initial supply,
// then commits everything as one unit.
func Initialize(genesis *repo.GenesisConfig, lg ledger.StateLedger) error {
	config, err := token.GenerateTokenConfig(genesis)
	if err != nil {
		return err
	}

	if err := initializeGenesisConfig(genesis, lg); err != nil {
		return err
	}
	if err := token.InitTokenManager(lg, config); err != nil {
		return err
	}

	lg.Finalise()
	return lg.Commit()
}

// IsInitialized reports whether the genesis config was already committed
func IsInitialized(lg ledger.StateLedger) bool {
	account := lg.GetAccount(ethcommon.HexToAddress(common.TokenContractAddr))
	if account == nil {
		return false
	}
	return common.NewVMSlot[repo.GenesisConfig](account, genesisConfigKey).Has()
}

func initializeGenesisConfig(genesis *repo.GenesisConfig, lg ledger.StateLedger) error {
	account := lg.GetOrCreateAccount(ethcommon.HexToAddress(common.TokenContractAddr))

	slot := common.NewVMSlot[repo.GenesisConfig](account, genesisConfigKey)
	if slot.Has() {
		return token.ErrAlreadyInitialized
	}

	return slot.Put(*genesis)
}

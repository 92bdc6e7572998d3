package genesis

import (
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiomesh/axiom-token/internal/executor/system/common"
	"github.com/axiomesh/axiom-token/internal/executor/system/token"
	"github.com/axiomesh/axiom-token/internal/ledger"
	"github.com/axiomesh/axiom-token/internal/storagemgr/kv"
	"github.com/axiomesh/axiom-token/pkg/repo"
)

func TestInitialize(t *testing.T) {
	backend := kv.NewMemory()
	lg := ledger.NewStateLedger(backend)
	genesis := repo.DefaultGenesisConfig()

	assert.False(t, IsInitialized(lg))
	require.Nil(t, Initialize(genesis, lg))
	assert.True(t, IsInitialized(lg))

	// committed state survives a reload
	reloaded := ledger.NewStateLedger(backend)
	assert.True(t, IsInitialized(reloaded))

	account := reloaded.GetAccount(ethcommon.HexToAddress(common.TokenContractAddr))
	require.NotNil(t, account)
	stored, err := common.NewVMSlot[repo.GenesisConfig](account, genesisConfigKey).MustGet()
	require.Nil(t, err)
	assert.Equal(t, genesis.Token.Symbol, stored.Token.Symbol)

	err = Initialize(genesis, reloaded)
	assert.Equal(t, token.ErrAlreadyInitialized, err)
}

func TestInitializeInvalidGenesis(t *testing.T) {
	lg := ledger.NewStateLedger(kv.NewMemory())
	genesis := repo.DefaultGenesisConfig()
	genesis.Token.TotalSupply = "bogus"

	err := Initialize(genesis, lg)
	require.NotNil(t, err)
	assert.False(t, IsInitialized(lg))

	// nothing was written by the failed attempt
	exist, _ := lg.GetState(ethcommon.HexToAddress(common.TokenContractAddr), []byte(token.TotalSupplyKey))
	assert.False(t, exist)
}

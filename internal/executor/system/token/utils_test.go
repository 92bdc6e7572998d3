package token

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/axiomesh/axiom-token/internal/executor/system/common"
	"github.com/axiomesh/axiom-token/internal/ledger"
	"github.com/axiomesh/axiom-token/internal/storagemgr/kv"
	"github.com/axiomesh/axiom-token/pkg/loggers"
	"github.com/axiomesh/axiom-token/pkg/repo"
)

const (
	admin1 = "0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013"
	user1  = "0x79a1215469FaB6f9c63c1816b45183AD3624bE34"
	user2  = "0x97c8B516D19edBf575D72a172Af7F418BE498C37"
)

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

type testToken struct {
	manager     *Manager
	stateLedger ledger.StateLedger
	logs        []common.Log
	config      Config
}

// setCaller rebinds the manager context to a new caller identity,
// the way the vm does before each invocation
func (tt *testToken) setCaller(caller string) {
	from := ethcommon.HexToAddress(caller)
	tt.manager.SetContext(&common.VMContext{
		StateLedger:   tt.stateLedger,
		CurrentHeight: 1,
		CurrentLogs:   &tt.logs,
		CurrentUser:   &from,
	})
}

func newTestToken(t *testing.T, burnPolicy string) *testToken {
	genesis := repo.DefaultGenesisConfig()
	genesis.Token.BurnPolicy = burnPolicy

	config, err := GenerateTokenConfig(genesis)
	require.Nil(t, err)

	lg := ledger.NewStateLedger(kv.NewMemory())
	require.Nil(t, InitTokenManager(lg, config))

	tt := &testToken{
		manager:     New(&common.SystemContractConfig{Logger: loggers.Logger(loggers.SystemContract)}),
		stateLedger: lg,
		logs:        make([]common.Log, 0),
		config:      config,
	}
	tt.setCaller(admin1)
	return tt
}

// checkSupplyInvariant verifies that the sum of the given accounts' balances
// equals the total supply
func (tt *testToken) checkSupplyInvariant(t *testing.T, accounts ...string) {
	sum := big.NewInt(0)
	for _, account := range accounts {
		sum.Add(sum, tt.manager.BalanceOf(ethcommon.HexToAddress(account)))
	}
	require.Equal(t, tt.manager.TotalSupply(), sum)
}

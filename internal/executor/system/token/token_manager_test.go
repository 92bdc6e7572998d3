package token

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/axiomesh/axiom-token/internal/executor/system/common"
	"github.com/axiomesh/axiom-token/internal/ledger"
	"github.com/axiomesh/axiom-token/internal/ledger/mock_ledger"
	"github.com/axiomesh/axiom-token/internal/storagemgr/kv"
	"github.com/axiomesh/axiom-token/pkg/loggers"
	"github.com/axiomesh/axiom-token/pkg/repo"
)

func TestInitTokenManager(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)

	assert.Equal(t, "Axiom Token", tt.manager.Name())
	assert.Equal(t, "axt", tt.manager.Symbol())
	assert.Equal(t, uint8(18), tt.manager.Decimals())
	assert.Equal(t, tt.config.TotalSupply, tt.manager.TotalSupply())
	assert.Equal(t, tt.config.TotalSupply, tt.manager.BalanceOf(ethcommon.HexToAddress(admin1)))
	assert.Equal(t, "0", tt.manager.BalanceOf(ethcommon.HexToAddress(user1)).String())

	// the ledger is constructed exactly once
	err := InitTokenManager(tt.stateLedger, tt.config)
	assert.Equal(t, ErrAlreadyInitialized, err)
}

func TestInitTokenManagerInvalidConfig(t *testing.T) {
	lg := ledger.NewStateLedger(kv.NewMemory())

	config := Config{Name: "t", Symbol: "t", TotalSupply: big.NewInt(-1), InitialHolder: admin1, BurnPolicy: repo.BurnPolicySelf}
	assert.Equal(t, ErrValue, InitTokenManager(lg, config))

	config = Config{Name: "t", Symbol: "t", TotalSupply: big.NewInt(1), InitialHolder: "0x0000000000000000000000000000000000000000", BurnPolicy: repo.BurnPolicySelf}
	assert.Equal(t, ErrEmptyAccount, InitTokenManager(lg, config))

	config = Config{Name: "t", Symbol: "t", TotalSupply: big.NewInt(1), InitialHolder: admin1, BurnPolicy: "everyone"}
	assert.Equal(t, ErrValue, InitTokenManager(lg, config))
}

func TestTransfer(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)
	supplyBefore := tt.manager.TotalSupply()

	err := tt.manager.Transfer(ethcommon.HexToAddress(user1), big.NewInt(100))
	require.Nil(t, err)

	assert.Equal(t, big.NewInt(100), tt.manager.BalanceOf(ethcommon.HexToAddress(user1)))
	assert.Equal(t, new(big.Int).Sub(tt.config.TotalSupply, big.NewInt(100)), tt.manager.BalanceOf(ethcommon.HexToAddress(admin1)))
	assert.Equal(t, supplyBefore, tt.manager.TotalSupply())
	tt.checkSupplyInvariant(t, admin1, user1)

	require.Len(t, tt.logs, 1)
	transferLog := tt.logs[0]
	assert.Equal(t, ethcommon.BytesToHash(ethcommon.HexToAddress(admin1).Bytes()), transferLog.Topics[1])
	assert.Equal(t, ethcommon.BytesToHash(ethcommon.HexToAddress(user1).Bytes()), transferLog.Topics[2])
}

func TestTransferInsufficientBalance(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)
	tt.setCaller(user1)

	err := tt.manager.Transfer(ethcommon.HexToAddress(user2), big.NewInt(1))
	assert.Equal(t, ErrInsufficientBalance, err)
	assert.Equal(t, "0", tt.manager.BalanceOf(ethcommon.HexToAddress(user2)).String())
	assert.Len(t, tt.logs, 0)
}

func TestSelfTransfer(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)
	balanceBefore := tt.manager.BalanceOf(ethcommon.HexToAddress(admin1))

	err := tt.manager.Transfer(ethcommon.HexToAddress(admin1), big.NewInt(100))
	require.Nil(t, err)
	assert.Equal(t, balanceBefore, tt.manager.BalanceOf(ethcommon.HexToAddress(admin1)))

	// self-transfer above the balance still fails
	err = tt.manager.Transfer(ethcommon.HexToAddress(admin1), new(big.Int).Add(balanceBefore, big.NewInt(1)))
	assert.Equal(t, ErrInsufficientBalance, err)
}

func TestTransferZeroAmount(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)
	tt.setCaller(user1)

	// zero-amount transfer is legal even with no balance
	err := tt.manager.Transfer(ethcommon.HexToAddress(user2), big.NewInt(0))
	require.Nil(t, err)
	assert.Len(t, tt.logs, 1)
}

func TestTransferBadValue(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)

	assert.Equal(t, ErrValue, tt.manager.Transfer(ethcommon.HexToAddress(user1), big.NewInt(-1)))
	assert.Equal(t, ErrValue, tt.manager.Transfer(ethcommon.HexToAddress(user1), nil))
	assert.Equal(t, ErrEmptyAccount, tt.manager.Transfer(ethcommon.Address{}, big.NewInt(1)))
}

func TestZeroReads(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)

	// a missing balance or allowance reads as numeric zero; the exact
	// big.Int representation is not part of the contract
	balance := tt.manager.BalanceOf(ethcommon.HexToAddress(user1))
	assert.Zero(t, balance.Cmp(big.NewInt(0)))
	assert.Equal(t, "0", balance.String())

	allowance := tt.manager.Allowance(ethcommon.HexToAddress(user1), ethcommon.HexToAddress(user2))
	assert.Zero(t, allowance.Cmp(big.NewInt(0)))
	assert.Equal(t, "0", allowance.String())
}

func TestApproveAndAllowance(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)

	assert.Equal(t, "0", tt.manager.Allowance(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user1)).String())

	err := tt.manager.Approve(ethcommon.HexToAddress(user1), big.NewInt(100))
	require.Nil(t, err)
	assert.Equal(t, big.NewInt(100), tt.manager.Allowance(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user1)))
	assert.Len(t, tt.logs, 1)

	// approve is an overwrite, not additive
	err = tt.manager.Approve(ethcommon.HexToAddress(user1), big.NewInt(30))
	require.Nil(t, err)
	assert.Equal(t, big.NewInt(30), tt.manager.Allowance(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user1)))

	assert.Equal(t, ErrEmptyAccount, tt.manager.Approve(ethcommon.Address{}, big.NewInt(1)))
}

func TestTransferFrom(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)

	err := tt.manager.Approve(ethcommon.HexToAddress(user1), big.NewInt(100))
	require.Nil(t, err)

	tt.setCaller(user1)
	err = tt.manager.TransferFrom(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user2), big.NewInt(40))
	require.Nil(t, err)

	assert.Equal(t, big.NewInt(60), tt.manager.Allowance(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user1)))
	assert.Equal(t, big.NewInt(40), tt.manager.BalanceOf(ethcommon.HexToAddress(user2)))
	tt.checkSupplyInvariant(t, admin1, user1, user2)

	// consuming the allowance emits no Approval event
	require.Len(t, tt.logs, 2)

	err = tt.manager.TransferFrom(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user2), big.NewInt(61))
	assert.Equal(t, ErrInsufficientAllowance, err)
	assert.Equal(t, big.NewInt(60), tt.manager.Allowance(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user1)))
	assert.Equal(t, big.NewInt(40), tt.manager.BalanceOf(ethcommon.HexToAddress(user2)))
}

func TestTransferFromInsufficientBalance(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)

	// user1 owns nothing but approves user2 anyway, allowance may exceed balance
	tt.setCaller(user1)
	err := tt.manager.Approve(ethcommon.HexToAddress(user2), big.NewInt(100))
	require.Nil(t, err)

	tt.setCaller(user2)
	err = tt.manager.TransferFrom(ethcommon.HexToAddress(user1), ethcommon.HexToAddress(user2), big.NewInt(50))
	assert.Equal(t, ErrInsufficientBalance, err)
	// the allowance is untouched when the transfer fails
	assert.Equal(t, big.NewInt(100), tt.manager.Allowance(ethcommon.HexToAddress(user1), ethcommon.HexToAddress(user2)))
}

func TestIncreaseDecreaseAllowance(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)

	require.Nil(t, tt.manager.IncreaseAllowance(ethcommon.HexToAddress(user1), big.NewInt(100)))
	require.Nil(t, tt.manager.IncreaseAllowance(ethcommon.HexToAddress(user1), big.NewInt(50)))
	assert.Equal(t, big.NewInt(150), tt.manager.Allowance(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user1)))

	require.Nil(t, tt.manager.DecreaseAllowance(ethcommon.HexToAddress(user1), big.NewInt(70)))
	assert.Equal(t, big.NewInt(80), tt.manager.Allowance(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user1)))

	err := tt.manager.DecreaseAllowance(ethcommon.HexToAddress(user1), big.NewInt(81))
	assert.Equal(t, ErrInsufficientAllowance, err)

	require.Nil(t, tt.manager.Approve(ethcommon.HexToAddress(user1), maxUint256))
	err = tt.manager.IncreaseAllowance(ethcommon.HexToAddress(user1), big.NewInt(1))
	assert.Equal(t, ErrOverflow, err)
	assert.Equal(t, maxUint256, tt.manager.Allowance(ethcommon.HexToAddress(admin1), ethcommon.HexToAddress(user1)))
}

func TestMint(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)
	supplyBefore := tt.manager.TotalSupply()

	err := tt.manager.Mint(ethcommon.HexToAddress(user1), big.NewInt(500))
	require.Nil(t, err)
	assert.Equal(t, big.NewInt(500), tt.manager.BalanceOf(ethcommon.HexToAddress(user1)))
	assert.Equal(t, new(big.Int).Add(supplyBefore, big.NewInt(500)), tt.manager.TotalSupply())
	tt.checkSupplyInvariant(t, admin1, user1)

	// mint emits a Transfer from the zero address
	require.Len(t, tt.logs, 1)
	assert.Equal(t, ethcommon.Hash{}, tt.logs[0].Topics[1])
	assert.Equal(t, ethcommon.BytesToHash(ethcommon.HexToAddress(user1).Bytes()), tt.logs[0].Topics[2])

	assert.Equal(t, ErrEmptyAccount, tt.manager.Mint(ethcommon.Address{}, big.NewInt(1)))
}

func TestMintUnauthorized(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)
	supplyBefore := tt.manager.TotalSupply()

	tt.setCaller(user1)
	err := tt.manager.Mint(ethcommon.HexToAddress(user1), big.NewInt(500))
	assert.Equal(t, ErrUnauthorized, err)
	assert.Equal(t, "0", tt.manager.BalanceOf(ethcommon.HexToAddress(user1)).String())
	assert.Equal(t, supplyBefore, tt.manager.TotalSupply())
}

func TestMintOverflow(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)
	supplyBefore := tt.manager.TotalSupply()

	// pushing the total supply past the numeric range is rejected
	room := new(big.Int).Sub(maxUint256, supplyBefore)
	err := tt.manager.Mint(ethcommon.HexToAddress(user1), new(big.Int).Add(room, big.NewInt(1)))
	assert.Equal(t, ErrOverflow, err)
	assert.Equal(t, supplyBefore, tt.manager.TotalSupply())
	assert.Equal(t, "0", tt.manager.BalanceOf(ethcommon.HexToAddress(user1)).String())

	// filling exactly to the maximum is legal
	err = tt.manager.Mint(ethcommon.HexToAddress(user1), room)
	require.Nil(t, err)
	assert.Equal(t, maxUint256, tt.manager.TotalSupply())
}

func TestBurnSelfPolicy(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)
	supplyBefore := tt.manager.TotalSupply()
	require.Nil(t, tt.manager.Transfer(ethcommon.HexToAddress(user1), big.NewInt(100)))

	tt.setCaller(user1)
	err := tt.manager.Burn(ethcommon.HexToAddress(user1), big.NewInt(40))
	require.Nil(t, err)
	assert.Equal(t, big.NewInt(60), tt.manager.BalanceOf(ethcommon.HexToAddress(user1)))
	assert.Equal(t, new(big.Int).Sub(supplyBefore, big.NewInt(40)), tt.manager.TotalSupply())
	tt.checkSupplyInvariant(t, admin1, user1)

	// burn emits a Transfer to the zero address
	burnLog := tt.logs[len(tt.logs)-1]
	assert.Equal(t, ethcommon.BytesToHash(ethcommon.HexToAddress(user1).Bytes()), burnLog.Topics[1])
	assert.Equal(t, ethcommon.Hash{}, burnLog.Topics[2])

	err = tt.manager.Burn(ethcommon.HexToAddress(user1), big.NewInt(61))
	assert.Equal(t, ErrInsufficientBalance, err)
	assert.Equal(t, big.NewInt(60), tt.manager.BalanceOf(ethcommon.HexToAddress(user1)))

	// under the self policy even a minter cannot burn another owner's funds
	tt.setCaller(admin1)
	err = tt.manager.Burn(ethcommon.HexToAddress(user1), big.NewInt(10))
	assert.Equal(t, ErrUnauthorized, err)
}

func TestBurnAuthorityPolicy(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicyAuthority)
	require.Nil(t, tt.manager.Transfer(ethcommon.HexToAddress(user1), big.NewInt(100)))

	// a minter may burn any owner's funds
	err := tt.manager.Burn(ethcommon.HexToAddress(user1), big.NewInt(30))
	require.Nil(t, err)
	assert.Equal(t, big.NewInt(70), tt.manager.BalanceOf(ethcommon.HexToAddress(user1)))

	// the owner may still burn its own funds
	tt.setCaller(user1)
	require.Nil(t, tt.manager.Burn(ethcommon.HexToAddress(user1), big.NewInt(10)))
	assert.Equal(t, big.NewInt(60), tt.manager.BalanceOf(ethcommon.HexToAddress(user1)))

	// a non-minter cannot burn someone else's funds
	tt.setCaller(user2)
	err = tt.manager.Burn(ethcommon.HexToAddress(user1), big.NewInt(10))
	assert.Equal(t, ErrUnauthorized, err)

	tt.checkSupplyInvariant(t, admin1, user1, user2)
}

func TestReadsUninitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLedger := mock_ledger.NewMockStateLedger(ctrl)
	account := mock_ledger.NewMockIAccount(ctrl)
	mockLedger.EXPECT().GetOrCreateAccount(ethcommon.HexToAddress(common.TokenContractAddr)).Return(account)
	account.EXPECT().GetState(gomock.Any()).Return(false, nil).AnyTimes()
	account.EXPECT().GetAddress().Return(ethcommon.HexToAddress(common.TokenContractAddr)).AnyTimes()

	m := New(&common.SystemContractConfig{Logger: loggers.Logger(loggers.SystemContract)})
	from := ethcommon.HexToAddress(admin1)
	logs := make([]common.Log, 0)
	m.SetContext(&common.VMContext{
		StateLedger:   mockLedger,
		CurrentHeight: 1,
		CurrentLogs:   &logs,
		CurrentUser:   &from,
	})

	assert.Equal(t, "", m.Name())
	assert.Equal(t, "", m.Symbol())
	assert.Equal(t, uint8(0), m.Decimals())
	assert.Equal(t, "0", m.TotalSupply().String())

	assert.Equal(t, ErrNotInitialized, m.Mint(ethcommon.HexToAddress(user1), big.NewInt(1)))
	err := m.Burn(ethcommon.HexToAddress(user1), big.NewInt(1))
	assert.Equal(t, ErrNotInitialized, err)
}

func TestBurnSupplyUnderflow(t *testing.T) {
	tt := newTestToken(t, repo.BurnPolicySelf)

	// damage the store so the recorded supply is below the caller's balance
	account := tt.stateLedger.GetOrCreateAccount(ethcommon.HexToAddress(common.TokenContractAddr))
	setUint256(account, TotalSupplyKey, uint256.NewInt(10))

	err := tt.manager.Burn(ethcommon.HexToAddress(admin1), big.NewInt(50))
	assert.Equal(t, ErrOverflow, err)
	assert.Equal(t, "10", tt.manager.TotalSupply().String())
	assert.Equal(t, tt.config.TotalSupply, tt.manager.BalanceOf(ethcommon.HexToAddress(admin1)))
}

func TestGenerateTokenConfig(t *testing.T) {
	genesis := repo.DefaultGenesisConfig()
	config, err := GenerateTokenConfig(genesis)
	require.Nil(t, err)
	assert.Equal(t, genesis.Token.Name, config.Name)
	assert.Equal(t, genesis.Token.InitialHolder, config.InitialHolder)
	assert.Equal(t, genesis.Token.Admins, config.Minters)

	genesis.Token.TotalSupply = "not-a-number"
	_, err = GenerateTokenConfig(genesis)
	assert.NotNil(t, err)

	genesis.Token.TotalSupply = "-5"
	_, err = GenerateTokenConfig(genesis)
	assert.NotNil(t, err)
}

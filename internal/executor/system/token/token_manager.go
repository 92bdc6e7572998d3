package token

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/sha3"

	"github.com/axiomesh/axiom-token/internal/executor/system/common"
	"github.com/axiomesh/axiom-token/internal/ledger"
	"github.com/axiomesh/axiom-token/pkg/repo"
)

var _ IToken = (*Manager)(nil)

type Manager struct {
	logger      logrus.FieldLogger
	account     ledger.IAccount
	msgFrom     ethcommon.Address
	stateLedger ledger.StateLedger
	currentLogs *[]common.Log

	name       *common.VMSlot[string]
	symbol     *common.VMSlot[string]
	decimals   *common.VMSlot[uint8]
	minters    *common.VMSlot[[]string]
	burnPolicy *common.VMSlot[string]
}

func New(cfg *common.SystemContractConfig) *Manager {
	return &Manager{
		logger: cfg.Logger,
	}
}

func (m *Manager) SetContext(context *common.VMContext) {
	m.account = context.StateLedger.GetOrCreateAccount(ethcommon.HexToAddress(common.TokenContractAddr))
	m.stateLedger = context.StateLedger
	m.msgFrom = *context.CurrentUser
	m.currentLogs = context.CurrentLogs

	m.initSlots(m.account)
}

func (m *Manager) initSlots(account ledger.IAccount) {
	m.name = common.NewVMSlot[string](account, NameKey)
	m.symbol = common.NewVMSlot[string](account, SymbolKey)
	m.decimals = common.NewVMSlot[uint8](account, DecimalsKey)
	m.minters = common.NewVMSlot[[]string](account, MintersKey)
	m.burnPolicy = common.NewVMSlot[string](account, BurnPolicyKey)
}

// InitTokenManager writes the immutable token metadata and credits the
// initial supply to the designated holder. It runs exactly once, at genesis.
func InitTokenManager(lg ledger.StateLedger, config Config) error {
	contractAccount := lg.GetOrCreateAccount(ethcommon.HexToAddress(common.TokenContractAddr))

	m := &Manager{account: contractAccount, stateLedger: lg}
	m.initSlots(contractAccount)

	if m.name.Has() {
		return ErrAlreadyInitialized
	}

	totalSupply, err := toUint256(config.TotalSupply)
	if err != nil {
		return err
	}
	holder := ethcommon.HexToAddress(config.InitialHolder)
	if holder == (ethcommon.Address{}) {
		return ErrEmptyAccount
	}
	if !common.IsInSlice(config.BurnPolicy, []string{repo.BurnPolicySelf, repo.BurnPolicyAuthority}) {
		return ErrValue
	}

	if err := m.name.Put(config.Name); err != nil {
		return err
	}
	if err := m.symbol.Put(config.Symbol); err != nil {
		return err
	}
	if err := m.decimals.Put(config.Decimals); err != nil {
		return err
	}
	// normalize to checksummed form so caller checks compare equal
	minters := lo.Uniq(lo.Map(config.Minters, func(addr string, _ int) string {
		return ethcommon.HexToAddress(addr).String()
	}))
	if err := m.minters.Put(minters); err != nil {
		return err
	}
	if err := m.burnPolicy.Put(config.BurnPolicy); err != nil {
		return err
	}

	setUint256(contractAccount, TotalSupplyKey, totalSupply)
	setUint256(contractAccount, getBalancesKey(holder), totalSupply)

	return nil
}

func (m *Manager) Name() string {
	name, err := m.name.MustGet()
	if err != nil {
		return ""
	}
	return name
}

func (m *Manager) Symbol() string {
	symbol, err := m.symbol.MustGet()
	if err != nil {
		return ""
	}
	return symbol
}

func (m *Manager) Decimals() uint8 {
	decimals, err := m.decimals.MustGet()
	if err != nil {
		return 0
	}
	return decimals
}

func (m *Manager) TotalSupply() *big.Int {
	return getUint256(m.account, TotalSupplyKey).ToBig()
}

func (m *Manager) BalanceOf(account ethcommon.Address) *big.Int {
	return getUint256(m.account, getBalancesKey(account)).ToBig()
}

func (m *Manager) Allowance(owner, spender ethcommon.Address) *big.Int {
	return m.getAllowance(owner, spender).ToBig()
}

func (m *Manager) getAllowance(owner, spender ethcommon.Address) *uint256.Int {
	return getUint256(m.account, getAllowancesKey(owner, spender))
}

func (m *Manager) Transfer(recipient ethcommon.Address, value *big.Int) error {
	return m.transfer(m.msgFrom, recipient, value)
}

func (m *Manager) TransferFrom(sender, recipient ethcommon.Address, value *big.Int) error {
	amount, err := toUint256(value)
	if err != nil {
		return err
	}

	// allowance for <sender, msgFrom>
	allowance := m.getAllowance(sender, m.msgFrom)
	if allowance.Lt(amount) {
		return ErrInsufficientAllowance
	}

	if err := m.transfer(sender, recipient, value); err != nil {
		return err
	}

	// consume the allowance without an Approval event
	setUint256(m.account, getAllowancesKey(sender, m.msgFrom), new(uint256.Int).Sub(allowance, amount))
	return nil
}

// transfer computes both new balances from one consistent read before
// writing, so sender == recipient nets out instead of losing an update
func (m *Manager) transfer(sender, recipient ethcommon.Address, value *big.Int) error {
	amount, err := toUint256(value)
	if err != nil {
		return err
	}
	if sender == (ethcommon.Address{}) || recipient == (ethcommon.Address{}) {
		return ErrEmptyAccount
	}

	senderBalance := getUint256(m.account, getBalancesKey(sender))
	if senderBalance.Lt(amount) {
		return ErrInsufficientBalance
	}

	if sender != recipient {
		recipientBalance := getUint256(m.account, getBalancesKey(recipient))
		newRecipientBalance, overflow := new(uint256.Int).AddOverflow(recipientBalance, amount)
		if overflow {
			return ErrOverflow
		}

		setUint256(m.account, getBalancesKey(sender), new(uint256.Int).Sub(senderBalance, amount))
		setUint256(m.account, getBalancesKey(recipient), newRecipientBalance)
	}

	m.recordLog(transferEvent, []ethcommon.Address{sender, recipient}, amount)
	return nil
}

func (m *Manager) Approve(spender ethcommon.Address, value *big.Int) error {
	amount, err := toUint256(value)
	if err != nil {
		return err
	}
	return m.approve(m.msgFrom, spender, amount)
}

func (m *Manager) approve(owner, spender ethcommon.Address, amount *uint256.Int) error {
	if owner == (ethcommon.Address{}) || spender == (ethcommon.Address{}) {
		return ErrEmptyAccount
	}

	setUint256(m.account, getAllowancesKey(owner, spender), amount)
	m.recordLog(approvalEvent, []ethcommon.Address{owner, spender}, amount)
	return nil
}

func (m *Manager) IncreaseAllowance(spender ethcommon.Address, value *big.Int) error {
	amount, err := toUint256(value)
	if err != nil {
		return err
	}

	newAllowance, overflow := new(uint256.Int).AddOverflow(m.getAllowance(m.msgFrom, spender), amount)
	if overflow {
		return ErrOverflow
	}
	return m.approve(m.msgFrom, spender, newAllowance)
}

func (m *Manager) DecreaseAllowance(spender ethcommon.Address, value *big.Int) error {
	amount, err := toUint256(value)
	if err != nil {
		return err
	}

	allowance := m.getAllowance(m.msgFrom, spender)
	if allowance.Lt(amount) {
		return ErrInsufficientAllowance
	}
	return m.approve(m.msgFrom, spender, new(uint256.Int).Sub(allowance, amount))
}

func (m *Manager) Mint(recipient ethcommon.Address, value *big.Int) error {
	if err := m.checkMinter(m.msgFrom); err != nil {
		return err
	}
	amount, err := toUint256(value)
	if err != nil {
		return err
	}
	if recipient == (ethcommon.Address{}) {
		return ErrEmptyAccount
	}

	totalSupply := getUint256(m.account, TotalSupplyKey)
	newTotalSupply, overflow := new(uint256.Int).AddOverflow(totalSupply, amount)
	if overflow {
		return ErrOverflow
	}

	balance := getUint256(m.account, getBalancesKey(recipient))
	newBalance, overflow := new(uint256.Int).AddOverflow(balance, amount)
	if overflow {
		return ErrOverflow
	}

	setUint256(m.account, TotalSupplyKey, newTotalSupply)
	setUint256(m.account, getBalancesKey(recipient), newBalance)

	m.recordLog(transferEvent, []ethcommon.Address{{}, recipient}, amount)
	return nil
}

func (m *Manager) Burn(owner ethcommon.Address, value *big.Int) error {
	if err := m.checkBurner(m.msgFrom, owner); err != nil {
		return err
	}
	amount, err := toUint256(value)
	if err != nil {
		return err
	}
	if owner == (ethcommon.Address{}) {
		return ErrEmptyAccount
	}

	balance := getUint256(m.account, getBalancesKey(owner))
	if balance.Lt(amount) {
		return ErrInsufficientBalance
	}

	// unreachable while sum(balances) == totalSupply holds, but a damaged
	// store must not underflow the supply
	totalSupply := getUint256(m.account, TotalSupplyKey)
	if totalSupply.Lt(amount) {
		return ErrOverflow
	}

	setUint256(m.account, getBalancesKey(owner), new(uint256.Int).Sub(balance, amount))
	setUint256(m.account, TotalSupplyKey, new(uint256.Int).Sub(totalSupply, amount))

	m.recordLog(transferEvent, []ethcommon.Address{owner, {}}, amount)
	return nil
}

func (m *Manager) checkMinter(caller ethcommon.Address) error {
	minters, err := m.minters.MustGet()
	if err != nil {
		return ErrNotInitialized
	}
	if !common.IsInSlice(caller.String(), minters) {
		return ErrUnauthorized
	}
	return nil
}

// checkBurner applies the construction-time burn policy: under "self" only
// the owner may burn its funds, under "authority" minters may also burn any
// owner's funds
func (m *Manager) checkBurner(caller, owner ethcommon.Address) error {
	if caller == owner {
		return nil
	}

	policy, err := m.burnPolicy.MustGet()
	if err != nil {
		return ErrNotInitialized
	}
	if policy != repo.BurnPolicyAuthority {
		return ErrUnauthorized
	}
	return m.checkMinter(caller)
}

// recordLog emits an execution log into the current call's log set,
// best-effort, never fails the operation
func (m *Manager) recordLog(event string, accounts []ethcommon.Address, amount *uint256.Int) {
	if m.currentLogs == nil {
		return
	}

	sigHash := sha3.NewLegacyKeccak256()
	sigHash.Write([]byte(event2Sig[event]))

	currentLog := common.Log{
		Address: ethcommon.HexToAddress(common.TokenContractAddr),
	}
	currentLog.Topics = append(currentLog.Topics, ethcommon.BytesToHash(sigHash.Sum(nil)))
	for _, account := range accounts {
		currentLog.Topics = append(currentLog.Topics, ethcommon.BytesToHash(account.Bytes()))
	}
	currentLog.Data = amount.PaddedBytes(32)

	*m.currentLogs = append(*m.currentLogs, currentLog)
}

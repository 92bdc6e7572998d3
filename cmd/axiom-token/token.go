package main

import (
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/axiomesh/axiom-token/internal/executor/system"
	"github.com/axiomesh/axiom-token/internal/executor/system/common"
	"github.com/axiomesh/axiom-token/internal/executor/system/token"
	"github.com/axiomesh/axiom-token/internal/genesis"
	"github.com/axiomesh/axiom-token/internal/ledger"
	"github.com/axiomesh/axiom-token/internal/storagemgr"
	"github.com/axiomesh/axiom-token/pkg/loggers"
	"github.com/axiomesh/axiom-token/pkg/repo"
)

var tokenArgs = struct {
	From    string
	To      string
	Owner   string
	Spender string
	Account string
	Value   string
}{}

func fromFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "from",
		Usage:       "caller address of the invocation",
		Destination: &tokenArgs.From,
		Required:    true,
	}
}

func valueFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "value",
		Usage:       "token amount, a decimal unsigned integer",
		Destination: &tokenArgs.Value,
		Required:    true,
	}
}

var tokenCMD = &cli.Command{
	Name:  "token",
	Usage: "The token ledger commands",
	Subcommands: []*cli.Command{
		{
			Name:   "init",
			Usage:  "Initialize the token ledger from the genesis config",
			Action: initToken,
		},
		{
			Name:   "info",
			Usage:  "Show token metadata and total supply",
			Action: tokenInfo,
		},
		{
			Name:   "total-supply",
			Usage:  "Show the value of tokens in existence",
			Action: totalSupply,
		},
		{
			Name:  "balance-of",
			Usage: "Show the balance of an account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "account",
					Usage:       "account address",
					Destination: &tokenArgs.Account,
					Required:    true,
				},
			},
			Action: balanceOf,
		},
		{
			Name:  "allowance",
			Usage: "Show the value a spender is still allowed to withdraw from an owner",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "owner",
					Usage:       "owner address",
					Destination: &tokenArgs.Owner,
					Required:    true,
				},
				&cli.StringFlag{
					Name:        "spender",
					Usage:       "spender address",
					Destination: &tokenArgs.Spender,
					Required:    true,
				},
			},
			Action: allowance,
		},
		{
			Name:  "transfer",
			Usage: "Transfer tokens from the caller to a recipient",
			Flags: []cli.Flag{
				fromFlag(),
				&cli.StringFlag{
					Name:        "to",
					Usage:       "recipient address",
					Destination: &tokenArgs.To,
					Required:    true,
				},
				valueFlag(),
			},
			Action: transfer,
		},
		{
			Name:  "approve",
			Usage: "Set the allowance of a spender over the caller's tokens",
			Flags: []cli.Flag{
				fromFlag(),
				&cli.StringFlag{
					Name:        "spender",
					Usage:       "spender address",
					Destination: &tokenArgs.Spender,
					Required:    true,
				},
				valueFlag(),
			},
			Action: approve,
		},
		{
			Name:  "transfer-from",
			Usage: "Move tokens from an owner to a recipient using the caller's allowance",
			Flags: []cli.Flag{
				fromFlag(),
				&cli.StringFlag{
					Name:        "owner",
					Usage:       "owner address the tokens are moved from",
					Destination: &tokenArgs.Owner,
					Required:    true,
				},
				&cli.StringFlag{
					Name:        "to",
					Usage:       "recipient address",
					Destination: &tokenArgs.To,
					Required:    true,
				},
				valueFlag(),
			},
			Action: transferFrom,
		},
		{
			Name:  "mint",
			Usage: "Create tokens for a recipient, callable by minters only",
			Flags: []cli.Flag{
				fromFlag(),
				&cli.StringFlag{
					Name:        "to",
					Usage:       "recipient address",
					Destination: &tokenArgs.To,
					Required:    true,
				},
				valueFlag(),
			},
			Action: mint,
		},
		{
			Name:  "burn",
			Usage: "Destroy tokens held by an owner, gated by the burn policy",
			Flags: []cli.Flag{
				fromFlag(),
				&cli.StringFlag{
					Name:        "owner",
					Usage:       "owner address the tokens are burned from",
					Destination: &tokenArgs.Owner,
					Required:    true,
				},
				valueFlag(),
			},
			Action: burn,
		},
	},
}

func initToken(ctx *cli.Context) error {
	r, lg, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer lg.Close()

	if genesis.IsInitialized(lg) {
		return errors.New("token ledger already initialized")
	}
	if err := genesis.Initialize(r.GenesisConfig, lg); err != nil {
		return err
	}
	fmt.Printf("token %s (%s) initialized, %s credited to %s\n",
		r.GenesisConfig.Token.Name, r.GenesisConfig.Token.Symbol, r.GenesisConfig.Token.TotalSupply, r.GenesisConfig.Token.InitialHolder)
	return nil
}

func tokenInfo(ctx *cli.Context) error {
	return runRead(ctx, func(nvm *system.NativeVM) error {
		name, err := callRead[string](nvm, "name")
		if err != nil {
			return err
		}
		symbol, err := callRead[string](nvm, "symbol")
		if err != nil {
			return err
		}
		decimals, err := callRead[uint8](nvm, "decimals")
		if err != nil {
			return err
		}
		supply, err := callRead[*big.Int](nvm, "totalSupply")
		if err != nil {
			return err
		}
		fmt.Printf("name: %s\nsymbol: %s\ndecimals: %d\ntotal supply: %s\n", name, symbol, decimals, supply)
		return nil
	})
}

func totalSupply(ctx *cli.Context) error {
	return runRead(ctx, func(nvm *system.NativeVM) error {
		supply, err := callRead[*big.Int](nvm, "totalSupply")
		if err != nil {
			return err
		}
		fmt.Println(supply)
		return nil
	})
}

func balanceOf(ctx *cli.Context) error {
	account, err := parseAddress(tokenArgs.Account)
	if err != nil {
		return err
	}
	return runRead(ctx, func(nvm *system.NativeVM) error {
		balance, err := callRead[*big.Int](nvm, "balanceOf", account)
		if err != nil {
			return err
		}
		fmt.Println(balance)
		return nil
	})
}

func allowance(ctx *cli.Context) error {
	owner, err := parseAddress(tokenArgs.Owner)
	if err != nil {
		return err
	}
	spender, err := parseAddress(tokenArgs.Spender)
	if err != nil {
		return err
	}
	return runRead(ctx, func(nvm *system.NativeVM) error {
		value, err := callRead[*big.Int](nvm, "allowance", owner, spender)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	})
}

func transfer(ctx *cli.Context) error {
	to, err := parseAddress(tokenArgs.To)
	if err != nil {
		return err
	}
	return runMutation(ctx, "transfer", to)
}

func approve(ctx *cli.Context) error {
	spender, err := parseAddress(tokenArgs.Spender)
	if err != nil {
		return err
	}
	return runMutation(ctx, "approve", spender)
}

func transferFrom(ctx *cli.Context) error {
	owner, err := parseAddress(tokenArgs.Owner)
	if err != nil {
		return err
	}
	to, err := parseAddress(tokenArgs.To)
	if err != nil {
		return err
	}
	return runMutation(ctx, "transferFrom", owner, to)
}

func mint(ctx *cli.Context) error {
	to, err := parseAddress(tokenArgs.To)
	if err != nil {
		return err
	}
	return runMutation(ctx, "mint", to)
}

func burn(ctx *cli.Context) error {
	owner, err := parseAddress(tokenArgs.Owner)
	if err != nil {
		return err
	}
	return runMutation(ctx, "burn", owner)
}

func parseAddress(s string) (ethcommon.Address, error) {
	if !ethcommon.IsHexAddress(s) {
		return ethcommon.Address{}, errors.Errorf("invalid address: %s", s)
	}
	return ethcommon.HexToAddress(s), nil
}

// runMutation executes one mutating invocation, committing the ledger only
// when the call succeeds
func runMutation(ctx *cli.Context, method string, addrArgs ...ethcommon.Address) error {
	from, err := parseAddress(tokenArgs.From)
	if err != nil {
		return err
	}
	value, ok := new(big.Int).SetString(tokenArgs.Value, 10)
	if !ok || value.Sign() < 0 {
		return errors.Errorf("invalid value: %s", tokenArgs.Value)
	}

	_, lg, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer lg.Close()

	packArgs := make([]any, 0, len(addrArgs)+1)
	for _, addr := range addrArgs {
		packArgs = append(packArgs, addr)
	}
	packArgs = append(packArgs, value)
	data, err := token.ABI().Pack(method, packArgs...)
	if err != nil {
		return err
	}

	nvm := system.New()
	nvm.Reset(1, lg)

	to := ethcommon.HexToAddress(common.TokenContractAddr)
	result, err := nvm.Run(&core.Message{From: from, To: &to, Data: data})
	if err != nil {
		return err
	}
	if result.Err != nil {
		return errors.Errorf("%s reverted: %s", method, string(result.ReturnData))
	}
	if err := lg.Commit(); err != nil {
		return err
	}
	fmt.Printf("%s succeeded, used gas %d\n", method, result.UsedGas)
	return nil
}

func runRead(ctx *cli.Context, fn func(nvm *system.NativeVM) error) error {
	_, lg, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer lg.Close()

	nvm := system.New()
	nvm.Reset(1, lg)
	return fn(nvm)
}

func callRead[T any](nvm *system.NativeVM, method string, args ...any) (T, error) {
	var zero T
	data, err := token.ABI().Pack(method, args...)
	if err != nil {
		return zero, err
	}

	from := ethcommon.HexToAddress(common.ZeroAddress)
	to := ethcommon.HexToAddress(common.TokenContractAddr)
	result, err := nvm.Run(&core.Message{From: from, To: &to, Data: data})
	if err != nil {
		return zero, err
	}
	if result.Err != nil {
		return zero, errors.Errorf("%s reverted: %s", method, string(result.ReturnData))
	}

	unpacked, err := token.ABI().Unpack(method, result.ReturnData)
	if err != nil {
		return zero, err
	}
	v, ok := unpacked[0].(T)
	if !ok {
		return zero, errors.Errorf("unexpected return type for %s", method)
	}
	return v, nil
}

func openLedger(ctx *cli.Context) (*repo.Repo, ledger.StateLedger, error) {
	r, err := loadRepo(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := loggers.Initialize(r.Config.Log.Level); err != nil {
		return nil, nil, err
	}
	if err := storagemgr.Initialize(r.Config.Storage.KvType, r.Config.Storage.KvCacheSize); err != nil {
		return nil, nil, err
	}
	storage, err := storagemgr.Open(r.StoragePath(storagemgr.Ledger))
	if err != nil {
		return nil, nil, err
	}
	return r, ledger.NewStateLedger(storage), nil
}

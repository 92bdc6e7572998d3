package repo

import (
	"os"
	"path"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type GenesisConfig struct {
	Token Token `mapstructure:"token" toml:"token"`
}

// Token is the deployment-time description of the ledger: immutable metadata,
// the initial supply and its holder, and the privileged-operation policy.
type Token struct {
	Name          string   `mapstructure:"name" toml:"name"`
	Symbol        string   `mapstructure:"symbol" toml:"symbol"`
	Decimals      uint8    `mapstructure:"decimals" toml:"decimals"`
	TotalSupply   string   `mapstructure:"total_supply" toml:"total_supply"`
	InitialHolder string   `mapstructure:"initial_holder" toml:"initial_holder"`
	Admins        []string `mapstructure:"admins" toml:"admins"`
	BurnPolicy    string   `mapstructure:"burn_policy" toml:"burn_policy"`
}

const (
	// BurnPolicySelf allows only the owner of the funds to burn them.
	BurnPolicySelf = "self"

	// BurnPolicyAuthority additionally allows the admin set to burn any
	// owner's funds.
	BurnPolicyAuthority = "authority"
)

func DefaultGenesisConfig() *GenesisConfig {
	return &GenesisConfig{
		Token: Token{
			Name:          "Axiom Token",
			Symbol:        "axt",
			Decimals:      18,
			TotalSupply:   "1000000000000000000000000000",
			InitialHolder: "0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013",
			Admins: []string{
				"0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013",
			},
			BurnPolicy: BurnPolicySelf,
		},
	}
}

func (g *GenesisConfig) Validate() error {
	if g.Token.BurnPolicy != BurnPolicySelf && g.Token.BurnPolicy != BurnPolicyAuthority {
		return errors.Errorf("unsupported burn policy: %s", g.Token.BurnPolicy)
	}
	if !ethcommon.IsHexAddress(g.Token.InitialHolder) {
		return errors.Errorf("invalid initial holder address: %s", g.Token.InitialHolder)
	}
	if invalid, found := lo.Find(g.Token.Admins, func(addr string) bool {
		return !ethcommon.IsHexAddress(addr)
	}); found {
		return errors.Errorf("invalid admin address: %s", invalid)
	}
	return nil
}

func LoadGenesisConfig(repoRoot string) (*GenesisConfig, error) {
	genesis, err := func() (*GenesisConfig, error) {
		genesis := DefaultGenesisConfig()
		cfgPath := path.Join(repoRoot, genesisCfgFileName)
		if !fileExist(cfgPath) {
			err := os.MkdirAll(repoRoot, 0755)
			if err != nil {
				return nil, errors.Wrap(err, "failed to build default genesis config")
			}

			if err := writeConfigWithEnv(cfgPath, genesis); err != nil {
				return nil, errors.Wrap(err, "failed to build default genesis config")
			}
		} else {
			if err := readConfigFromFile(cfgPath, genesis); err != nil {
				return nil, err
			}
		}

		if err := genesis.Validate(); err != nil {
			return nil, err
		}
		return genesis, nil
	}()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load genesis config")
	}
	return genesis, nil
}

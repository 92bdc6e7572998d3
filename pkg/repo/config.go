package repo

import (
	"os"
	"path"

	"github.com/pkg/errors"
)

type Config struct {
	Storage Storage `mapstructure:"storage" toml:"storage"`
	Log     Log     `mapstructure:"log" toml:"log"`
}

type Storage struct {
	KvType      string `mapstructure:"kv_type" toml:"kv_type"`
	KvCacheSize int    `mapstructure:"kv_cache_size" toml:"kv_cache_size"`
}

type Log struct {
	Level string `mapstructure:"level" toml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage: Storage{
			KvType:      KVStorageTypeLeveldb,
			KvCacheSize: 16,
		},
		Log: Log{
			Level: "info",
		},
	}
}

func LoadConfig(repoRoot string) (*Config, error) {
	cfg, err := func() (*Config, error) {
		cfg := DefaultConfig()
		cfgPath := path.Join(repoRoot, CfgFileName)
		if !fileExist(cfgPath) {
			err := os.MkdirAll(repoRoot, 0755)
			if err != nil {
				return nil, errors.Wrap(err, "failed to build default config")
			}

			if err := writeConfigWithEnv(cfgPath, cfg); err != nil {
				return nil, errors.Wrap(err, "failed to build default config")
			}
		} else {
			if err := readConfigFromFile(cfgPath, cfg); err != nil {
				return nil, err
			}
		}

		return cfg, nil
	}()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}

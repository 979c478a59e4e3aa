package config

import (
	"fmt"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/jessevdk/go-flags"

	"github.com/babylonlabs-io/vault-pegin/pegin"
	"github.com/babylonlabs-io/vault-pegin/util"
)

const (
	defaultLogLevel       = "debug"
	defaultLogFilename    = "vaultd.log"
	defaultConfigFileName = "vaultd.conf"
	defaultBitcoinNetwork = "signet"
	defaultLogDirname     = "logs"
)

var (
	// DefaultVaultDir specifies the default home directory for vaultd:
	//   C:\Users\<username>\AppData\Local\Vaultd on Windows
	//   ~/.vaultd on Linux
	//   ~/Library/Application Support/Vaultd on MacOS
	DefaultVaultDir = btcutil.AppDataDir("vaultd", false)

	defaultBTCNetParams = chaincfg.SigNetParams
)

type Config struct {
	LogLevel       string `long:"loglevel" description:"Logging level for all subsystems" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal"`
	BitcoinNetwork string `long:"bitcoinnetwork" description:"Bitcoin network to build transactions for" choice:"mainnet" choice:"testnet" choice:"regtest" choice:"signet"`

	BTCNetParams chaincfg.Params

	API *APIConfig `group:"api" namespace:"api"`

	Metrics *MetricsConfig `group:"metrics" namespace:"metrics"`
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func LoadConfig(homePath string) (*Config, error) {
	// The home directory is required to have a configuration file with a specific name
	// under it.
	cfgFile := ConfigFile(homePath)
	if !util.FileExists(cfgFile) {
		return nil, fmt.Errorf("specified config file does "+
			"not exist in %s", cfgFile)
	}

	// If there are issues parsing the config file, return an error
	var cfg Config
	fileParser := flags.NewParser(&cfg, flags.Default)
	err := flags.NewIniParser(fileParser).ParseFile(cfgFile)
	if err != nil {
		return nil, err
	}

	// Make sure everything we just loaded makes sense.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the given configuration to be sane. This makes sure no
// illegal values or combination of values are set.
func (cfg *Config) Validate() error {
	if cfg.API == nil {
		return fmt.Errorf("empty api config")
	}

	if err := cfg.API.Validate(); err != nil {
		return fmt.Errorf("invalid api config: %w", err)
	}

	if cfg.Metrics == nil {
		return fmt.Errorf("empty metrics config")
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	netParams, err := pegin.ParseNetwork(cfg.BitcoinNetwork)
	if err != nil {
		return fmt.Errorf("unsupported Bitcoin network: %s", cfg.BitcoinNetwork)
	}
	cfg.BTCNetParams = *netParams

	return nil
}

func ConfigFile(homePath string) string {
	return filepath.Join(homePath, defaultConfigFileName)
}

func LogFile(homePath string) string {
	return filepath.Join(LogDir(homePath), defaultLogFilename)
}

func LogDir(homePath string) string {
	return filepath.Join(homePath, defaultLogDirname)
}

func DefaultConfigWithHomePath(homePath string) Config {
	apiCfg := DefaultAPIConfig()
	metricsCfg := DefaultMetricsConfig()
	cfg := Config{
		LogLevel:       defaultLogLevel,
		BitcoinNetwork: defaultBitcoinNetwork,
		BTCNetParams:   defaultBTCNetParams,
		API:            &apiCfg,
		Metrics:        &metricsCfg,
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

func DefaultConfig() Config {
	return DefaultConfigWithHomePath(DefaultVaultDir)
}

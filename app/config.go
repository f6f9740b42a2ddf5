package app

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/store"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readKeysFromGSM()
	applyDefaults()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debug("[CONFIG] Reading config file ", configFile)
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}
	log.Debug("[CONFIG] Config loaded from file")
	return true
}

func applyDefaults() {
	if Config.MongoDB.TimeoutMillis == 0 {
		Config.MongoDB.TimeoutMillis = 2000
	}
	if Config.Ledger.Network == "" {
		Config.Ledger.Network = common.NetworkTestnet
	}
	if Config.Ledger.RPCTimeoutMillis == 0 {
		Config.Ledger.RPCTimeoutMillis = 5000
	}
	if Config.ContentStore.Backend == "" {
		Config.ContentStore.Backend = store.BackendMemory
	}
	if Config.Pipeline.AnchorTimeoutMillis == 0 {
		Config.Pipeline.AnchorTimeoutMillis = 10000
	}
	if Config.Pipeline.SignTimeoutMillis == 0 {
		Config.Pipeline.SignTimeoutMillis = 30000
	}
	if Config.Pipeline.SubmitTimeoutMillis == 0 {
		Config.Pipeline.SubmitTimeoutMillis = 15000
	}
	if Config.Pipeline.RetryBaseMillis == 0 {
		Config.Pipeline.RetryBaseMillis = 500
	}
	if Config.API.ListenAddress == "" {
		Config.API.ListenAddress = ":8080"
	}
	if Config.API.RateLimitRPS == 0 {
		Config.API.RateLimitRPS = 5
	}
	if Config.API.RateLimitBurst == 0 {
		Config.API.RateLimitBurst = 10
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		Config.HealthCheck.IntervalMillis = 60000
	}
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	// mongodb
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required")
	}

	// ledger
	if Config.Ledger.RPCURL == "" {
		log.Fatal("[CONFIG] Ledger.RPCURL is required")
	}
	if Config.Ledger.Network != common.NetworkTestnet && Config.Ledger.Network != common.NetworkMainnet {
		log.Fatalf("[CONFIG] Ledger.Network must be %s or %s", common.NetworkTestnet, common.NetworkMainnet)
	}
	if Config.Ledger.CoinDenom == "" {
		log.Fatal("[CONFIG] Ledger.CoinDenom is required")
	}

	// wallet
	if Config.Wallet.Mnemonic == "" && Config.Wallet.GcpKmsKeyName == "" {
		log.Fatal("[CONFIG] Wallet.Mnemonic or Wallet.GcpKmsKeyName is required")
	}

	// content store
	switch strings.ToLower(Config.ContentStore.Backend) {
	case store.BackendIPFS:
		if Config.ContentStore.IPFSAPIURL == "" {
			log.Fatal("[CONFIG] ContentStore.IPFSAPIURL is required")
		}
	case store.BackendS3, store.BackendGCS:
		if Config.ContentStore.Bucket == "" {
			log.Fatal("[CONFIG] ContentStore.Bucket is required")
		}
	case store.BackendMemory:
	default:
		log.Fatal("[CONFIG] ContentStore.Backend is invalid: ", Config.ContentStore.Backend)
	}

	// campaigns
	if len(Config.Campaigns) == 0 {
		log.Fatal("[CONFIG] At least one campaign is required")
	}
	prefixes := common.AddressPrefixes(Config.Ledger.Network)
	seen := make(map[string]bool)
	for i, c := range Config.Campaigns {
		if c.ID == "" {
			log.Fatalf("[CONFIG] Campaigns[%d].ID is required", i)
		}
		if seen[c.ID] {
			log.Fatalf("[CONFIG] Campaigns[%d].ID %q is duplicated", i, c.ID)
		}
		seen[c.ID] = true
		if !common.IsValidAddress(c.Address, prefixes) {
			log.Fatalf("[CONFIG] Campaigns[%d].Address is invalid", i)
		}
	}

	// services
	if Config.ConfirmationReconciler.Enabled && Config.ConfirmationReconciler.IntervalMillis == 0 {
		log.Fatal("[CONFIG] ConfirmationReconciler.IntervalMillis is required")
	}
	if Config.AnchorReconciler.Enabled && Config.AnchorReconciler.IntervalMillis == 0 {
		log.Fatal("[CONFIG] AnchorReconciler.IntervalMillis is required")
	}

	log.Debug("[CONFIG] Config validated")
}

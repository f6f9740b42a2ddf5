package app

import (
	"fmt"
	"io"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/openfund/donation-pipeline/models"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestReadConfigFromConfigFile(t *testing.T) {
	t.Run("Config File Provided", func(t *testing.T) {
		Config = models.Config{}
		configFile := "../config.sample.yml"

		read := readConfigFromConfigFile(configFile)

		assert.Equal(t, read, true)
		assert.Equal(t, Config.MongoDB.Database, "mongodb-database")
		assert.Equal(t, Config.MongoDB.TimeoutMillis, int64(2000))
		assert.Equal(t, Config.Ledger.Network, "testnet")
		assert.Equal(t, Config.Pipeline.SubmitRetries, 3)
		assert.Len(t, Config.Campaigns, 1)
		assert.Equal(t, Config.Campaigns[0].ID, "clean-water")
	})

	t.Run("No Config File Provided", func(t *testing.T) {
		configFile := ""

		read := readConfigFromConfigFile(configFile)
		assert.Equal(t, read, false)
	})

	t.Run("Invalid Config File Path", func(t *testing.T) {
		configFile := "../config.sample.invalid.yml"

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readConfigFromConfigFile(configFile) }, "readConfigFromConfigFile should panic")
	})

	t.Run("Invalid Config File Contents", func(t *testing.T) {
		configFile := "../go.mod"

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readConfigFromConfigFile(configFile) }, "readConfigFromConfigFile should panic")
	})
}

func TestReadConfigFromENV(t *testing.T) {
	t.Run("Overrides From Env", func(t *testing.T) {
		Config = models.Config{}
		t.Setenv("MONGODB_DATABASE", "from-env")
		t.Setenv("PIPELINE_SUBMIT_RETRIES", "7")
		t.Setenv("LEDGER_TX_FEE", "1234")
		t.Setenv("ANCHOR_RECONCILER_ENABLED", "true")
		t.Setenv("API_RATE_LIMIT_RPS", "2.5")

		readConfigFromENV("")

		assert.Equal(t, "from-env", Config.MongoDB.Database)
		assert.Equal(t, 7, Config.Pipeline.SubmitRetries)
		assert.Equal(t, uint64(1234), Config.Ledger.TxFee)
		assert.True(t, Config.AnchorReconciler.Enabled)
		assert.Equal(t, 2.5, Config.API.RateLimitRPS)
	})

	t.Run("Invalid Values Are Ignored", func(t *testing.T) {
		Config = models.Config{}
		Config.MongoDB.TimeoutMillis = 99
		t.Setenv("MONGODB_TIMEOUT_MS", "abc")
		t.Setenv("ANCHOR_RECONCILER_ENABLED", "maybe")

		readConfigFromENV("")

		assert.Equal(t, int64(99), Config.MongoDB.TimeoutMillis)
		assert.False(t, Config.AnchorReconciler.Enabled)
	})

	t.Run("Env File", func(t *testing.T) {
		Config = models.Config{}
		os.Unsetenv("LEDGER_COIN_DENOM")
		defer os.Unsetenv("LEDGER_COIN_DENOM")

		readConfigFromENV("../sample.env")

		assert.Equal(t, "lovelace", Config.Ledger.CoinDenom)
	})
}

func TestInitConfig(t *testing.T) {
	t.Run("Config Initialization Success", func(t *testing.T) {
		Config = models.Config{}
		configFile := "../config.sample.yml"
		envFile := "../sample.env"

		InitConfig(configFile, envFile)

		assert.Equal(t, int64(10000), Config.Pipeline.AnchorTimeoutMillis)
	})

	t.Run("Config Initialization No Config File", func(t *testing.T) {
		Config = models.Config{}
		configFile := ""
		envFile := "../sample.env"

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		// no campaigns without a config file
		assert.Panics(t, func() { InitConfig(configFile, envFile) })
	})
}

func TestValidateConfig(t *testing.T) {
	t.Run("Valid Configuration", func(t *testing.T) {
		Config = models.Config{}
		readConfigFromConfigFile("../config.sample.yml")
		applyDefaults()

		validateConfig()
	})

	t.Run("Invalid Configuration", func(t *testing.T) {
		Config = models.Config{}

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { validateConfig() }, "validateConfig should panic")
	})

	t.Run("Invalid Campaign Address", func(t *testing.T) {
		Config = models.Config{}
		readConfigFromConfigFile("../config.sample.yml")
		applyDefaults()
		Config.Campaigns[0].Address = "addr_test1invalid"

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { validateConfig() })
	})

	t.Run("Duplicate Campaign", func(t *testing.T) {
		Config = models.Config{}
		readConfigFromConfigFile("../config.sample.yml")
		applyDefaults()
		Config.Campaigns = append(Config.Campaigns, Config.Campaigns[0])

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { validateConfig() })
	})

	t.Run("Unknown Store Backend", func(t *testing.T) {
		Config = models.Config{}
		readConfigFromConfigFile("../config.sample.yml")
		applyDefaults()
		Config.ContentStore.Backend = "ftp"

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { validateConfig() })
	})
}

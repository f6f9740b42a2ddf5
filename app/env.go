package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	envString("MONGODB_URI", &Config.MongoDB.URI)
	envString("MONGODB_DATABASE", &Config.MongoDB.Database)
	envInt64("MONGODB_TIMEOUT_MS", &Config.MongoDB.TimeoutMillis)

	// ledger
	envString("LEDGER_RPC_URL", &Config.Ledger.RPCURL)
	envInt64("LEDGER_RPC_TIMEOUT_MS", &Config.Ledger.RPCTimeoutMillis)
	envString("LEDGER_NETWORK", &Config.Ledger.Network)
	envUint64("LEDGER_TX_FEE", &Config.Ledger.TxFee)
	envString("LEDGER_COIN_DENOM", &Config.Ledger.CoinDenom)
	envString("LEDGER_COIN_SYMBOL", &Config.Ledger.CoinSymbol)
	envString("LEDGER_EXPLORER_URL", &Config.Ledger.ExplorerURL)

	// wallet
	envString("WALLET_MNEMONIC", &Config.Wallet.Mnemonic)
	envString("WALLET_GCP_KMS_KEY_NAME", &Config.Wallet.GcpKmsKeyName)

	// content store
	envString("CONTENT_STORE_BACKEND", &Config.ContentStore.Backend)
	envInt64("CONTENT_STORE_TIMEOUT_MS", &Config.ContentStore.TimeoutMillis)
	envInt("CONTENT_STORE_MAX_RETRIES", &Config.ContentStore.MaxRetries)
	envString("IPFS_API_URL", &Config.ContentStore.IPFSAPIURL)
	envString("IPFS_GATEWAY_URL", &Config.ContentStore.IPFSGatewayURL)
	envString("IPFS_AUTH", &Config.ContentStore.IPFSAuth)
	envString("CONTENT_STORE_BUCKET", &Config.ContentStore.Bucket)
	envString("CONTENT_STORE_REGION", &Config.ContentStore.Region)
	envString("CONTENT_STORE_ENDPOINT", &Config.ContentStore.Endpoint)
	envString("CONTENT_STORE_PREFIX", &Config.ContentStore.Prefix)

	// pipeline
	envInt64("PIPELINE_ANCHOR_TIMEOUT_MS", &Config.Pipeline.AnchorTimeoutMillis)
	envInt64("PIPELINE_SIGN_TIMEOUT_MS", &Config.Pipeline.SignTimeoutMillis)
	envInt64("PIPELINE_SUBMIT_TIMEOUT_MS", &Config.Pipeline.SubmitTimeoutMillis)
	envInt("PIPELINE_SUBMIT_RETRIES", &Config.Pipeline.SubmitRetries)
	envInt64("PIPELINE_RETRY_BASE_MS", &Config.Pipeline.RetryBaseMillis)
	envInt64("PIPELINE_CONFIRM_TIMEOUT_MS", &Config.Pipeline.ConfirmTimeoutMillis)
	envInt64("PIPELINE_CONFIRM_INTERVAL_MS", &Config.Pipeline.ConfirmIntervalMillis)

	// policy
	envUint64("POLICY_LIFETIME_SLOTS", &Config.Policy.LifetimeSlots)
	envString("POLICY_DEFAULT_IMAGE", &Config.Policy.DefaultImage)
	envString("POLICY_DEFAULT_MEDIA_TYPE", &Config.Policy.DefaultMediaType)

	// api
	envString("API_LISTEN_ADDRESS", &Config.API.ListenAddress)
	if os.Getenv("API_RATE_LIMIT_RPS") != "" {
		rps, err := strconv.ParseFloat(os.Getenv("API_RATE_LIMIT_RPS"), 64)
		if err != nil {
			log.Warn("[ENV] Error parsing API_RATE_LIMIT_RPS: ", err.Error())
		} else {
			Config.API.RateLimitRPS = rps
		}
	}
	envInt("API_RATE_LIMIT_BURST", &Config.API.RateLimitBurst)

	// reconcilers
	envBool("CONFIRMATION_RECONCILER_ENABLED", &Config.ConfirmationReconciler.Enabled)
	envInt64("CONFIRMATION_RECONCILER_INTERVAL_MS", &Config.ConfirmationReconciler.IntervalMillis)
	envBool("ANCHOR_RECONCILER_ENABLED", &Config.AnchorReconciler.Enabled)
	envInt64("ANCHOR_RECONCILER_INTERVAL_MS", &Config.AnchorReconciler.IntervalMillis)

	// health check
	envInt64("HEALTH_CHECK_INTERVAL_MS", &Config.HealthCheck.IntervalMillis)

	// logging
	envString("LOG_LEVEL", &Config.Logger.Level)

	// google secret manager
	envBool("GOOGLE_SECRET_MANAGER_ENABLED", &Config.GoogleSecretManager.Enabled)
	envString("GOOGLE_MONGO_SECRET_NAME", &Config.GoogleSecretManager.MongoSecretName)
	envString("GOOGLE_MNEMONIC_SECRET_NAME", &Config.GoogleSecretManager.MnemonicSecretName)
	envString("GOOGLE_IPFS_AUTH_SECRET_NAME", &Config.GoogleSecretManager.IPFSAuthSecretName)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt64(key string, dst *int64) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", key, err.Error())
		return
	}
	*dst = n
}

func envInt(key string, dst *int) {
	n := int64(*dst)
	envInt64(key, &n)
	*dst = int(n)
}

func envUint64(key string, dst *uint64) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", key, err.Error())
		return
	}
	*dst = n
}

func envBool(key string, dst *bool) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", key, err.Error())
		return
	}
	*dst = b
}

package models

type Config struct {
	GoogleSecretManager    GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck            HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger                 LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB                MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Ledger                 LedgerConfig              `yaml:"ledger" json:"ledger"`
	Wallet                 WalletConfig              `yaml:"wallet" json:"wallet"`
	ContentStore           ContentStoreConfig        `yaml:"content_store" json:"content_store"`
	Pipeline               PipelineConfig            `yaml:"pipeline" json:"pipeline"`
	Policy                 PolicyConfig              `yaml:"policy" json:"policy"`
	API                    APIConfig                 `yaml:"api" json:"api"`
	Campaigns              []CampaignConfig          `yaml:"campaigns" json:"campaigns"`
	ConfirmationReconciler ServiceConfig             `yaml:"confirmation_reconciler" json:"confirmation_reconciler"`
	AnchorReconciler       ServiceConfig             `yaml:"anchor_reconciler" json:"anchor_reconciler"`
}

type GoogleSecretManagerConfig struct {
	Enabled            bool   `yaml:"enabled" json:"enabled"`
	MongoSecretName    string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	MnemonicSecretName string `yaml:"mnemonic_secret_name" json:"mnemonic_secret_name"`
	IPFSAuthSecretName string `yaml:"ipfs_auth_secret_name" json:"ipfs_auth_secret_name"`
}

type HealthCheckConfig struct {
	NodeID         string `yaml:"node_id" json:"node_id"`
	IntervalMillis int64  `yaml:"interval_ms" json:"interval_ms"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type LedgerConfig struct {
	RPCURL           string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	Network          string `yaml:"network" json:"network"`
	TxFee            uint64 `yaml:"tx_fee" json:"tx_fee"`
	CoinDenom        string `yaml:"coin_denom" json:"coin_denom"`
	CoinSymbol       string `yaml:"coin_symbol" json:"coin_symbol"`
	ExplorerURL      string `yaml:"explorer_url" json:"explorer_url"`
}

type WalletConfig struct {
	Mnemonic      string `yaml:"mnemonic" json:"mnemonic"`
	GcpKmsKeyName string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
}

type ContentStoreConfig struct {
	Backend        string `yaml:"backend" json:"backend"`
	TimeoutMillis  int64  `yaml:"timeout_ms" json:"timeout_ms"`
	MaxRetries     int    `yaml:"max_retries" json:"max_retries"`
	IPFSAPIURL     string `yaml:"ipfs_api_url" json:"ipfs_api_url"`
	IPFSGatewayURL string `yaml:"ipfs_gateway_url" json:"ipfs_gateway_url"`
	IPFSAuth       string `yaml:"ipfs_auth" json:"ipfs_auth"`
	Bucket         string `yaml:"bucket" json:"bucket"`
	Region         string `yaml:"region" json:"region"`
	Endpoint       string `yaml:"endpoint" json:"endpoint"`
	Prefix         string `yaml:"prefix" json:"prefix"`
}

type PipelineConfig struct {
	AnchorTimeoutMillis   int64 `yaml:"anchor_timeout_ms" json:"anchor_timeout_ms"`
	SignTimeoutMillis     int64 `yaml:"sign_timeout_ms" json:"sign_timeout_ms"`
	SubmitTimeoutMillis   int64 `yaml:"submit_timeout_ms" json:"submit_timeout_ms"`
	SubmitRetries         int   `yaml:"submit_retries" json:"submit_retries"`
	RetryBaseMillis       int64 `yaml:"retry_base_ms" json:"retry_base_ms"`
	ConfirmTimeoutMillis  int64 `yaml:"confirm_timeout_ms" json:"confirm_timeout_ms"`
	ConfirmIntervalMillis int64 `yaml:"confirm_interval_ms" json:"confirm_interval_ms"`
}

type PolicyConfig struct {
	LifetimeSlots    uint64 `yaml:"lifetime_slots" json:"lifetime_slots"`
	DefaultImage     string `yaml:"default_image" json:"default_image"`
	DefaultMediaType string `yaml:"default_media_type" json:"default_media_type"`
}

type APIConfig struct {
	ListenAddress  string  `yaml:"listen_address" json:"listen_address"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps" json:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst" json:"rate_limit_burst"`
}

type CampaignConfig struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Address string `yaml:"address" json:"address"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

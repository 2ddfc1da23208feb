// backend/internal/infra/config/config.go
package config

import "os"

// Default descriptor icon shown by discovery clients.
const defaultActionIconURL = "https://i.imgur.com/6ZzNFRi.png"

// Config holds the process-wide environment configuration. Read once at
// boot; read-only afterwards.
type Config struct {
	Port          string
	SolanaRPCURL  string // empty = resolve inside the provider (env, then mainnet)
	PumpIPFSURL   string // empty = public pump.fun pinning endpoint
	ActionIconURL string
}

// Load reads the environment and returns the configuration.
func Load() *Config {
	return &Config{
		Port:          getenvDefault("PORT", "8080"),
		SolanaRPCURL:  os.Getenv("SOLANA_RPC_URL"),
		PumpIPFSURL:   os.Getenv("PUMP_IPFS_URL"),
		ActionIconURL: getenvDefault("ACTION_ICON_URL", defaultActionIconURL),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package shared

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const EnvPrefix = "SANCTUM_"

// Config is the process-level configuration shared by the CLI and examples.
type Config struct {
	AppCode       string `env:"APP_CODE" envDefault:"lunar_sanctum"`
	TargetAddress string `env:"TARGET_ADDRESS"`

	Network       string `env:"NETWORK" envDefault:"testnet"`
	MirrorBaseURL string `env:"MIRROR_BASE_URL"`
	MirrorAPIKey  string `env:"MIRROR_API_KEY"`

	ChainID       uint64 `env:"CHAIN_ID" envDefault:"8453"`
	RPCURL        string `env:"RPC_URL"`
	EVMPrivateKey string `env:"EVM_PRIVATE_KEY"`

	GenAIAPIKey  string        `env:"GENAI_API_KEY"`
	GenAIModel   string        `env:"GENAI_MODEL" envDefault:"gemini-2.5-flash"`
	GenAITimeout time.Duration `env:"GENAI_TIMEOUT" envDefault:"20s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads Config from SANCTUM_-prefixed environment variables,
// after loading a .env file if one is found.
func LoadConfig() (Config, error) {
	loadDotEnvIfPresent()

	config, err := env.ParseAsWithOptions[Config](env.Options{Prefix: EnvPrefix})
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if config.GenAIAPIKey == "" {
		config.GenAIAPIKey = firstNonEmptyEnv("GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY")
	}

	config.Network, err = NormalizeNetwork(config.Network)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

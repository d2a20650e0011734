package appconfig

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	ListenAddr string `env:"LISTEN_ADDR" env-default:":8080"`
	// 0 means seed from wall clock
	RandomSeed    int64 `env:"RANDOM_SEED" env-default:"0"`
	DefaultTrials int   `env:"DEFAULT_TRIALS" env-default:"1000"`
	MaxTrials     int   `env:"MAX_TRIALS" env-default:"1000000"`
	MaxOptions    int   `env:"MAX_OPTIONS" env-default:"64"`

	HistoryWheels    int     `env:"HISTORY_WHEELS" env-default:"10000"`
	HistoryClearRate float32 `env:"HISTORY_CLEAR_RATE" env-default:"0.1"`
}

// Load environment variables to AppConfig instance
func LoadAppConfig() (*AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &AppConfig{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

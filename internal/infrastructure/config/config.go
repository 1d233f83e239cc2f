package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Policy PolicyConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=idekita"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// PolicyConfig is the product policy surface: handle syntax bounds, the
// probe quiet period, feed page size, and probe throttling.
type PolicyConfig struct {
	HandleMinLen     int           `env:"HANDLE_MIN_LEN,      default=3"`
	HandleMaxLen     int           `env:"HANDLE_MAX_LEN,      default=15"`
	ProbeQuietPeriod time.Duration `env:"PROBE_QUIET_PERIOD,  default=1s"`
	FeedPageSize     int           `env:"FEED_PAGE_SIZE,      default=10"`
	TakenCacheTTL    time.Duration `env:"TAKEN_CACHE_TTL,     default=10m"`
	ProbeRatePerSec  float64       `env:"PROBE_RATE_PER_SEC,  default=5"`
	ProbeBurst       int           `env:"PROBE_BURST,         default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

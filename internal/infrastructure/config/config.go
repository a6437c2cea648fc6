package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	JWTSecret  string `env:"JWT_SECRET"`
	TokenTTL   int    `env:"TOKEN_TTL_SECONDS, default=3600"`
	BcryptCost int    `env:"BCRYPT_COST, default=12"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Generator GeneratorConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=siteforge"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type GeneratorConfig struct {
	BaseURL        string `env:"GENAI_BASE_URL, default=https://generativelanguage.googleapis.com"`
	Model          string `env:"GENAI_MODEL,    default=gemini-1.5-flash"`
	APIKey         string `env:"GEMINI_API_KEY"`
	TimeoutSeconds int    `env:"GENAI_TIMEOUT_SECONDS, default=30"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

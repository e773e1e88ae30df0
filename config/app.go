package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Price store backends selectable through PRICE_STORE.
const (
	StoreSQLite = "sqlite"
	StoreMySQL  = "mysql"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	AppName         string        `env:"APP_NAME" envDefault:"product"`
	Port            string        `env:"PORT" envDefault:"8080"`
	Env             string        `env:"APP_ENV" envDefault:"development"`
	Debug           bool          `env:"DEBUG"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Banner          bool          `env:"BANNER" envDefault:"true"`

	PriceStore string `env:"PRICE_STORE" envDefault:"sqlite"`

	DB    DBConfig
	Redis RedisConfig
	Mongo MongoConfig
	Seed  SeedConfig
}

type DBConfig struct {
	SQLitePath string `env:"PRICE_SQLITE_PATH" envDefault:"file::memory:?cache=shared"`
	MySQLDSN   string `env:"MYSQL_DSN"`
	MySQLUser  string `env:"MYSQL_USER"`
	MySQLPass  string `env:"MYSQL_PASS"`
	MySQLHost  string `env:"MYSQL_HOST" envDefault:"127.0.0.1"`
	MySQLPort  string `env:"MYSQL_PORT" envDefault:"3306"`
	MySQLDB    string `env:"MYSQL_DB" envDefault:"product"`
	GormLog    string `env:"GORM_LOG" envDefault:"off"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	Pass string `env:"REDIS_PASS"`
	DB   int    `env:"REDIS_DB" envDefault:"0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI" envDefault:"mongodb://127.0.0.1:27017"`
	Database string `env:"MONGO_DB" envDefault:"product"`
}

// SeedConfig is the price fixture written on startup.
type SeedConfig struct {
	ProductID    string `env:"SEED_PRODUCT_ID" envDefault:"72456"`
	Value        string `env:"SEED_PRICE_VALUE" envDefault:"54.99"`
	CurrencyCode string `env:"SEED_CURRENCY_CODE" envDefault:"USD"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.PriceStore {
	case StoreSQLite, StoreMySQL, StoreRedis, StoreMongo:
	default:
		return nil, fmt.Errorf("unknown PRICE_STORE %q", cfg.PriceStore)
	}
	return cfg, nil
}

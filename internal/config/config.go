package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

type (
	Config struct {
		AppEnv      AppEnv `env:"APP_ENV" envDefault:"local"`
		LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
		HTTP        HTTP   `envPrefix:"HTTP_"`
		Database    Database
		Kafka       Kafka `envPrefix:"KAFKA_"`
		WorkerCount int   `env:"WORKER_COUNT" envDefault:"4"`
	}

	HTTP struct {
		Port int `env:"PORT" envDefault:"8080"`
	}

	Database struct {
		Postgres Postgres `envPrefix:"POSTGRES_"`
		Redis    Redis    `envPrefix:"REDIS_"`
	}

	Postgres struct {
		Host     string `env:"HOST" envDefault:"localhost"`
		Port     int    `env:"PORT" envDefault:"5432"`
		Username string `env:"USER" envDefault:"kairos"`
		Password string `env:"PASSWORD"`
		Database string `env:"DB" envDefault:"kairos"`
	}

	Redis struct {
		Host     string `env:"HOST" envDefault:"localhost"`
		Port     int    `env:"PORT" envDefault:"6379"`
		Password string `env:"PASSWORD"`
		Database int    `env:"DB" envDefault:"0"`
	}

	Kafka struct {
		Host string `env:"HOST" envDefault:"localhost"`
		Port int    `env:"PORT" envDefault:"9092"`
	}
)

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "config : failed to parse environment")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, errors.Wrapf(err, "config : invalid log level %q", cfg.LogLevel)
	}

	return cfg, nil
}

// Level is safe to call after Load validated LogLevel.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

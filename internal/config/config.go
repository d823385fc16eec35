package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis = "redis"
	StorageMongo = "mongo"
)

var ErrUnknownStorage = errors.New("unknown storage")

type Config struct {
	LogLevel        string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort        string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage         string        `yaml:"storage" env:"STORAGE" env-default:"redis"`
	GameTTL         time.Duration `yaml:"game-ttl" env:"GAME_TTL" env-default:"24h"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	Redis           Redis         `yaml:"redis" env-prefix:"REDIS_"`
	Mongo           Mongo         `yaml:"mongo" env-prefix:"MONGO_"`
}

type Redis struct {
	Host     string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"PORT" env-default:"6379"`
	Password string `yaml:"password" env:"PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"DB" env-default:"0"`
}

type Mongo struct {
	URI        string `yaml:"uri" env:"URI" env-default:"mongodb://localhost:27017"`
	Database   string `yaml:"database" env:"DATABASE" env-default:"tictactoe"`
	Collection string `yaml:"collection" env:"COLLECTION" env-default:"games"`
}

// MustLoad - load all configurations in config.yml file, environment variables override it.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	switch config.Storage {
	case StorageRedis, StorageMongo:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, config.Storage)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP  HTTP
	Seed  Seed
	OData OData
}

type HTTP struct {
	Port             string `env:"PORT" envDefault:"3000"`
	ReadTimeoutSec   int    `env:"HTTP_READ_TIMEOUT_SEC" envDefault:"5"`
	WriteTimeoutSec  int    `env:"HTTP_WRITE_TIMEOUT_SEC" envDefault:"10"`
	IdleTimeoutSec   int    `env:"HTTP_IDLE_TIMEOUT_SEC" envDefault:"60"`
	ShutdownGraceSec int    `env:"HTTP_SHUTDOWN_GRACE_SEC" envDefault:"10"`
}

type Seed struct {
	// Count is the number of employees fabricated at startup when the
	// store holds fewer than this many records.
	Count int `env:"SAP_GEN_COUNT" envDefault:"50"`
}

type OData struct {
	// MetadataDomain prefixes the __metadata.id URIs in responses.
	MetadataDomain string `env:"ODATA_METADATA_DOMAIN" envDefault:"http://localhost:3000"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

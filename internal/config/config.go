package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string   `env:"PORT" envDefault:"8000"`
		ReadTimeout     int      `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int      `env:"WRITE_TIMEOUT" envDefault:"30"`
		IdleTimeout     int      `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int      `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
		MaxUploadSize   int64    `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10 MiB
		AllowedOrigins  []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173,http://localhost:3000" envSeparator:","`
	} `envPrefix:"SERVER_"`
	Redis struct {
		Host              string `env:"HOST" envDefault:"localhost"`
		Port              int    `env:"PORT" envDefault:"6379"`
		Password          string `env:"PASSWORD"`
		DB                int    `env:"DB" envDefault:"0"`
		ConnectTimeout    int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		OperationTimeout  int    `env:"OPERATION_TIMEOUT" envDefault:"5"`
		KeyPrefix         string `env:"KEY_PREFIX" envDefault:"planning"`
		SessionExpiration int    `env:"SESSION_EXPIRATION" envDefault:"86400"` // seconds, 0 disables expiry
	} `envPrefix:"REDIS_"`
	Storage struct {
		UploadDir   string `env:"UPLOAD_DIR" envDefault:"data/uploads"`
		ExportDir   string `env:"EXPORT_DIR" envDefault:"data/exports"`
		TemplateDir string `env:"TEMPLATE_DIR" envDefault:"data/templates"`
	} `envPrefix:"STORAGE_"`
	Planning struct {
		RestaurantName string `env:"RESTAURANT_NAME" envDefault:"WOK10"`
	} `envPrefix:"PLANNING_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// only the first error, to keep the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}

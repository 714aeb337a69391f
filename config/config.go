package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Debug            bool   `envconfig:"debug"`
	Port             int    `envconfig:"port"`
	Env              string `envconfig:"env"`
	DatabaseURL      string `envconfig:"database_url"`
	PostgresHost     string `envconfig:"db_host"`
	PostgresPort     int    `envconfig:"db_port"`
	PostgresUser     string `envconfig:"db_user"`
	PostgresPassword string `envconfig:"db_password"`
	PostgresDB       string `envconfig:"db_name"`
	PostgresSSLMode  string `envconfig:"db_sslmode"`
	LogLevel         string `envconfig:"log_level"`
	LogFile          string `envconfig:"log_file"`
}

func Load() (*Config, error) {
	env := os.Getenv("GIN_MODE")
	if env != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			logrus.Warnf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	err := envconfig.Process("snipmark", c)
	if err != nil {
		return nil, err
	}

	if c.Port == 0 {
		c.Port = 3000
	}
	if c.PostgresPort == 0 {
		c.PostgresPort = 5432
	}
	if c.PostgresSSLMode == "" {
		c.PostgresSSLMode = "disable"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c, nil
}

// HasDBCredentials reports whether enough configuration exists to reach
// postgres, either a full URL or the individual credentials.
func (c *Config) HasDBCredentials() bool {
	if c.DatabaseURL != "" {
		return true
	}
	return c.PostgresUser != "" && c.PostgresHost != "" && c.PostgresDB != "" && c.PostgresPassword != ""
}

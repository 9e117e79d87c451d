package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ncobase/relay/logging/logger"
)

// Config represents the example application configuration.
type Config struct {
	Environment string
	Host        string
	Port        int
	Logger      *logger.Config
	Data        *Data
}

// Data holds the data layer configuration.
type Data struct {
	Database *Database
}

// Database holds the database connection configuration.
type Database struct {
	Driver string
	Source string
}

// IsProd reports whether the application runs in a production environment.
func (c *Config) IsProd() bool {
	return strings.EqualFold(c.Environment, "production")
}

// LoadConfig loads the configuration from the given file path.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("relay")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("environment", "development")
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", 8080)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &Config{
		Environment: v.GetString("environment"),
		Host:        v.GetString("host"),
		Port:        v.GetInt("port"),
		Logger: &logger.Config{
			Level:      v.GetInt("logger.level"),
			Format:     v.GetString("logger.format"),
			Output:     v.GetString("logger.output"),
			OutputFile: v.GetString("logger.output_file"),
		},
		Data: &Data{
			Database: &Database{
				Driver: v.GetString("data.database.driver"),
				Source: v.GetString("data.database.source"),
			},
		},
	}, nil
}

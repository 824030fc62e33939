// Package configs loads the application configuration with viper.
//
// A `.env` file in the working directory is loaded first (if present) so its
// values are visible as COMPRESS_* environment variables. Then a config file
// (yaml, json, toml or dotenv) is read from the given path, and finally env
// vars override it:
//
//	if err := configs.InitConfig("./"); err != nil {
//		return err
//	}
//	endpoint := configs.GetConfig().Client.Endpoint
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by the application.
const EnvPrefix = "COMPRESS"

type (
	// AppConfig is the whole application configuration.
	AppConfig struct {
		Server  ServerConfig  `mapstructure:"server"`
		Client  ClientConfig  `mapstructure:"client"`
		History HistoryConfig `mapstructure:"history"`
		Log     LogConfig     `mapstructure:"log"`
	}
)

var (
	globalConfig AppConfig
	appViper     *viper.Viper
)

// InitConfig loads the configuration from path, which may be a file or a
// directory. A missing config file is not an error: defaults and env apply.
func InitConfig(path string) error {
	// secrets may live in .env next to the config; a missing one is fine
	if err := godotenv.Load(filepath.Join(dirOf(path), ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setAllDefaults(v)

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(path)
		v.AddConfigPath(filepath.Join(path, "configs"))

		for _, ext := range []string{"yaml", "yml", "json", "toml"} {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				v.SetConfigFile(cfg)
				break
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = cfg
	appViper = v

	return nil
}

func setAllDefaults(v *viper.Viper) {
	var (
		serverConfig  ServerConfig
		clientConfig  ClientConfig
		historyConfig HistoryConfig
		logConfig     LogConfig
	)

	serverConfig.setDefaults(v)
	clientConfig.setDefaults(v)
	historyConfig.setDefaults(v)
	logConfig.setDefaults(v)
}

func dirOf(path string) string {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}

// GetConfig returns the loaded configuration.
func GetConfig() *AppConfig {
	return &globalConfig
}

func GetViper() *viper.Viper {
	return appViper
}

// Package config resolves runtime settings for the CLI: where the completion
// API lives, which environment variable carries the credential, and how the
// process logs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	settingAPIEndpoint    = "api.endpoint"
	settingAPIKeyEnv      = "api.key_env"
	settingTimeoutSeconds = "api.timeout_seconds"
	settingLogLevel       = "logging.level"
	settingLogFormat      = "logging.format"

	defaultAPIEndpoint    = "https://api.openai.com/v1"
	defaultAPIKeyEnvName  = "OPENAI_API_KEY"
	defaultTimeoutSeconds = 45
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"

	environmentPrefix            = "READNEXT"
	configurationFileName        = "config"
	configurationFileType        = "yaml"
	homeConfigurationDirectory   = ".readnext"
	homeEnvironmentVariableName  = "HOME"
	explicitReadErrorFormat      = "read configuration %s: %w"
	configurationReadErrorFormat = "read configuration: %w"
)

// Settings are the resolved runtime options.
type Settings struct {
	APIEndpoint    string
	APIKeyEnv      string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// Load resolves settings from an explicit file, a config.yaml in the working
// directory or ~/.readnext/, and READNEXT_-prefixed environment variables,
// falling back to defaults for anything unset. A missing file is not an
// error; a named file that cannot be read is.
func Load(explicitPath string) (Settings, error) {
	loader := viper.New()
	loader.SetDefault(settingAPIEndpoint, defaultAPIEndpoint)
	loader.SetDefault(settingAPIKeyEnv, defaultAPIKeyEnvName)
	loader.SetDefault(settingTimeoutSeconds, defaultTimeoutSeconds)
	loader.SetDefault(settingLogLevel, defaultLogLevel)
	loader.SetDefault(settingLogFormat, defaultLogFormat)

	loader.SetEnvPrefix(environmentPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	if explicitPath != "" {
		loader.SetConfigFile(explicitPath)
		if readErr := loader.ReadInConfig(); readErr != nil {
			return Settings{}, fmt.Errorf(explicitReadErrorFormat, explicitPath, readErr)
		}
	} else {
		loader.SetConfigName(configurationFileName)
		loader.SetConfigType(configurationFileType)
		loader.AddConfigPath(".")
		if homeDirectory := os.Getenv(homeEnvironmentVariableName); homeDirectory != "" {
			loader.AddConfigPath(filepath.Join(homeDirectory, homeConfigurationDirectory))
		}
		if readErr := loader.ReadInConfig(); readErr != nil {
			var notFoundErr viper.ConfigFileNotFoundError
			if !errors.As(readErr, &notFoundErr) {
				return Settings{}, fmt.Errorf(configurationReadErrorFormat, readErr)
			}
		}
	}

	timeoutSeconds := loader.GetInt(settingTimeoutSeconds)
	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultTimeoutSeconds
	}

	return Settings{
		APIEndpoint:    strings.TrimSpace(loader.GetString(settingAPIEndpoint)),
		APIKeyEnv:      strings.TrimSpace(loader.GetString(settingAPIKeyEnv)),
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
		LogLevel:       loader.GetString(settingLogLevel),
		LogFormat:      loader.GetString(settingLogFormat),
	}, nil
}

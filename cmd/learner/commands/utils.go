/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Learner commands. Provides common
configuration loading and logging setup used across all command
implementations.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("AKAYLEE")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logging system from the loaded configuration
func SetupLogging() (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Timestamp: true,
		Colors:    !viper.GetBool("no_color"),
	}
	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

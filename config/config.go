// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	setupOnly      = pflag.Bool("setup-only", false, "Creates the database indexes and exits")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
)

// Setup prepares everything config-related so that the app can start
// working. Returns an error if something is critically wrong and the
// application can't run because of that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("mongo.uri", "mongo_uri")
	v.BindEnv("mongo.database", "mongo_database")

	v.BindEnv("recipes.list_limit", "recipes_list_limit")

	v.BindEnv("auth.rate_limit.requests_per_second", "auth_rate_limit_requests_per_second")
	v.BindEnv("auth.rate_limit.burst", "auth_rate_limit_burst")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "recipeshare")

	v.SetDefault("recipes.list_limit", 50)

	v.SetDefault("auth.rate_limit.requests_per_second", 5)
	v.SetDefault("auth.rate_limit.burst", 10)

	if err := v.ReadInConfig(); err != nil {
		// The defaults are enough to run against a local mongod, so a
		// missing config.toml is fine
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("mongo.uri") == "" {
		return errors.New("mongo.uri can't be empty")
	}

	if v.GetString("mongo.database") == "" {
		return errors.New("mongo.database can't be empty")
	}

	if v.GetInt("recipes.list_limit") <= 0 {
		return errors.New("recipes.list_limit must be bigger than 0")
	}

	if v.GetInt("auth.rate_limit.requests_per_second") <= 0 {
		return errors.New("auth.rate_limit.requests_per_second must be bigger than 0")
	}

	if v.GetInt("auth.rate_limit.burst") <= 0 {
		return errors.New("auth.rate_limit.burst must be bigger than 0")
	}

	return nil
}

// SetupOnly reports whether the process should stop after creating the
// database indexes.
func SetupOnly() bool {
	return *setupOnly
}

// Package config loads itkit settings from files and the environment.
//
// It uses Viper to read a YAML (or JSON/TOML) file and godotenv to pull a
// .env file into the process environment, then binds environment variables
// onto nested keys before unmarshalling into the caller's struct.
//
// # Usage
//
//	var s peekable.Settings
//	err := config.LoadConfig("peekable", &s, config.WithEnvPrefix("PEEKABLE"))
//
// With the PEEKABLE prefix, PEEKABLE_LOGGING_LEVEL=debug sets logging.level.
package config

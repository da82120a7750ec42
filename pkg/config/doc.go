// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Load parses the environment into any struct using `env` field tags,
//     after reading the default `.env` file once if it exists.
//   - LoadEnv reads additional `.env` files into the process environment.
//   - WithPrefix and WithEnvironment adjust a single Load call.
//
// Every Load call parses again, so tests can change the environment with
// t.Setenv between calls.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatalf("parsing env: %v", err)
//	}
//
//	var reg mongovalidator.Config
//	config.MustLoad(&reg)
//
// # Error Handling
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile: a file passed to LoadEnv could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
package config

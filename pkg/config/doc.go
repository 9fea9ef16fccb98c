// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - Load reads the default `.env` file once (a missing file is fine), parses
//     the environment into the struct by its `env`/`envDefault` tags and
//     caches the result per type, so later calls return the same values.
//   - LoadEnvFiles loads additional `.env` files without overriding variables
//     that are already set.
//   - Parse reads from an explicit variable map and bypasses the cache, which
//     keeps tests independent of the process environment.
//   - Reset clears the cache.
//
// Example:
//
//	type Settings struct {
//		LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
//		AppEnv    string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
package config

// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for dotenv files and
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type Config struct {
//		Path  string `env:"MESSAGES_PATH"`
//		Debug bool   `env:"DEBUG" envDefault:"false"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithEnvFiles("testdata/app.env"))
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile so callers can use
// errors.Is.
package config

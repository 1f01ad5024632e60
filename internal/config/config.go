// Package config holds all sparks configuration. The database path is
// an explicit value handed to the store at open time, so tests can run
// against throwaway stores.
package config

type Config struct {
	Database  DatabaseConfig
	Reminders RemindersConfig
}

type DatabaseConfig struct {
	Path string // resolved at runtime via store.DefaultDBPath() when empty
}

type RemindersConfig struct {
	StaleDays int // active contacts untouched this many days show up in reminders
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Path: "",
		},
		Reminders: RemindersConfig{
			StaleDays: 3,
		},
	}
}

package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	// Teacher is the single identity allowed to run admin operations.
	Teacher string `mapstructure:"teacher" yaml:"teacher"`
	// DefaultRoom is the always-present room everyone lands in.
	DefaultRoom string `mapstructure:"default_room" yaml:"default_room"`
	// ArchivePath enables the SQLite message transcript when non-empty.
	ArchivePath string `mapstructure:"archive_path" yaml:"archive_path"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		Teacher:           "mingli",
		DefaultRoom:       "general",
		ArchivePath:       "",
	}
}

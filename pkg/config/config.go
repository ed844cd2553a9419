package config

import (
	"time"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Model     ModelConfig     `mapstructure:"model"`
	API       APIConfig       `mapstructure:"api"`
	Events    EventsConfig    `mapstructure:"events"`
	WebSocket WebSocketConfig `mapstructure:"websocket"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name"`
	Mode            string        `mapstructure:"mode"`
	LogLevel        string        `mapstructure:"log_level"`
	Version         string        `mapstructure:"version"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ModelConfig locates the training artifact files. The three files live
// together in Dir under fixed names (see internal/model).
type ModelConfig struct {
	Dir string `mapstructure:"dir"`
}

type APIConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	RateLimit    int           `mapstructure:"rate_limit"`
	MaxBatchSize int           `mapstructure:"max_batch_size"`
}

type EventsConfig struct {
	BufferSize int `mapstructure:"buffer_size"`
}

type WebSocketConfig struct {
	BroadcastBuffer int `mapstructure:"broadcast_buffer"`
}

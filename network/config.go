package network

import (
	"time"
)

// Config holds preview server configuration
type Config struct {
	// Address to bind
	Address string

	// Skip the websocket origin check (local debugging only)
	InsecureSkipVerify bool

	// Connection limits
	MaxClients int
	ReadLimit  int64 // Largest accepted client message in bytes

	// Timing
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":7777",
		MaxClients:      16,
		ReadLimit:       4 * 1024,
		WriteTimeout:    3 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// DebugConfig returns config with the origin check disabled for local testing
func DebugConfig(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	cfg.InsecureSkipVerify = true
	return cfg
}

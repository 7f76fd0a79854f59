package redis

import (
	"fmt"
	"time"
)

// Config holds the Redis connection settings.
type Config struct {
	Host         string
	Port         int
	Password     string
	Database     int
	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

// NewRedisConfig creates a configuration with default values.
func NewRedisConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         6379,
		Database:     0,
		MinIdleConns: 2,
		MaxIdleConns: 10,
		MaxActive:    50,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	}
}

// WithHost sets the Redis host.
func (c *Config) WithHost(host string) *Config {
	if host != "" {
		c.Host = host
	}
	return c
}

// WithPort sets the Redis port.
func (c *Config) WithPort(port int) *Config {
	if port > 0 {
		c.Port = port
	}
	return c
}

// WithPassword sets the Redis password.
func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

// WithDatabase selects the Redis logical database.
func (c *Config) WithDatabase(database int) *Config {
	if database >= 0 {
		c.Database = database
	}
	return c
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return NewRedisConfig()
}

// Validate checks the configuration for obviously invalid values.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("redis host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid redis port: %d", c.Port)
	}
	if c.Database < 0 {
		return fmt.Errorf("invalid redis database: %d", c.Database)
	}
	return nil
}

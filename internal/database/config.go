package database

import (
	"fmt"
	"strings"
)

// sqliteParams enables foreign keys and makes transactions take the write lock on BEGIN
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URL is a full connection URL. When set it takes precedence over the
	// discrete PostgreSQL fields below.
	URL string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	url := ""
	if c.URL != "" {
		url = "[REDACTED]"
	}
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, url, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DialectName returns the normalized driver name, or "" if unsupported
func (c *DatabaseConfig) DialectName() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		return "postgres"
	case "sqlite", "sqlite3", "":
		return "sqlite"
	default:
		return ""
	}
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.DialectName() {
	case "postgres":
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite":
		path := c.Path
		if path == "" {
			path = strings.TrimPrefix(c.URL, "sqlite://")
		}
		if strings.Contains(path, "?") {
			return path + "&" + sqliteParams
		}
		return path + "?" + sqliteParams
	default:
		return ""
	}
}

// inMemory reports whether the SQLite database lives only in memory. Every
// pooled connection would get its own empty database, so the pool is capped at one.
func (c *DatabaseConfig) inMemory() bool {
	return c.DialectName() == "sqlite" && strings.Contains(c.DSN(), ":memory:")
}

// Package config handles configuration for the companion layer, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - ClassifierAddr: base address of the external classification service.
//   - RequestTimeout: timeout for one classification request.
//   - StorageDriver: "sqlite", "postgres", or "disabled".
//   - DatabaseDSN: SQLite path or Postgres DSN, depending on the driver.
//   - SessionSecret: HMAC secret signing the persisted session slot.
//     Do not use the default in production.
//   - PreviewDriver: "local" or "s3".
//   - PreviewDir: directory of the local preview store.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	ClassifierAddr string
	RequestTimeout time.Duration
	StorageDriver  string
	DatabaseDSN    string
	SessionSecret  string
	PreviewDriver  string
	PreviewDir     string
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.ClassifierAddr = "http://localhost:5000"
	c.RequestTimeout = 30 * time.Second
	c.StorageDriver = "sqlite"
	c.DatabaseDSN = "herbalif.db"
	c.SessionSecret = "secretKey"
	c.PreviewDriver = "local"
	c.PreviewDir = "previews"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "previews"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

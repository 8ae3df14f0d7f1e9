package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/herbalif/herbalif/internal/flagx"
	"github.com/herbalif/herbalif/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for interval fields, which parses both string
// values such as "30s" and integer nanoseconds. After unmarshalling, its
// fields are copied into the runtime Config.
type JsonConfig struct {
	ClassifierAddr string         `json:"classifier_addr"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StorageDriver  string         `json:"storage_driver"`
	DatabaseDSN    string         `json:"database_dsn"`
	SessionSecret  string         `json:"session_secret"`
	PreviewDriver  string         `json:"preview_driver"`
	PreviewDir     string         `json:"preview_dir"`
	S3RootUser     string         `json:"s3_root_user"`
	S3RootPassword string         `json:"s3_root_password"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration from the file named by the -c/-config flag,
// if any. A missing flag loads nothing; an unreadable or invalid file
// panics. The caller merges these values with defaults and flags.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ClassifierAddr = c.ClassifierAddr
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	config.StorageDriver = c.StorageDriver
	config.DatabaseDSN = c.DatabaseDSN
	config.SessionSecret = c.SessionSecret
	config.PreviewDriver = c.PreviewDriver
	config.PreviewDir = c.PreviewDir
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}

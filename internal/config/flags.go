package config

import (
	"flag"
	"os"
	"time"

	"github.com/herbalif/herbalif/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   classifier base address (e.g., "http://localhost:5000")
//	-t int      classification request timeout, seconds
//	-r string   storage driver: sqlite | postgres | disabled
//	-d string   database DSN (SQLite path or Postgres DSN)
//	-s string   session signing secret
//	-v string   preview driver: local | s3
//	-w string   local preview directory
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-r", "-d", "-s", "-v", "-w", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ClassifierAddr, "a", config.ClassifierAddr, "classifier base address")
	fs.StringVar(&config.StorageDriver, "r", config.StorageDriver, "storage driver (sqlite|postgres|disabled)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session signing secret")
	fs.StringVar(&config.PreviewDriver, "v", config.PreviewDriver, "preview driver (local|s3)")
	fs.StringVar(&config.PreviewDir, "w", config.PreviewDir, "local preview directory")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseJson_LoadsFile(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"classifier_addr": "http://classifier:9000",
		"request_timeout": "15s",
		"storage_driver": "postgres",
		"database_dsn": "postgres://u:p@db:5432/herbalif",
		"session_secret": "json-secret",
		"preview_driver": "s3",
		"preview_dir": "p",
		"s3_root_user": "root",
		"s3_root_password": "pw",
		"s3_bucket": "b",
		"s3_region": "eu-west-1",
		"s3_base_endpoint": "http://minio:9000/"
	}`), 0o600))

	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://classifier:9000", cfg.ClassifierAddr)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "postgres", cfg.StorageDriver)
	require.Equal(t, "json-secret", cfg.SessionSecret)
	require.Equal(t, "eu-west-1", cfg.S3Region)
}

func TestParseJson_NoFlagLoadsNothing(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:5000", cfg.ClassifierAddr)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}

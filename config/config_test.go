package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("school", "", 5000)
	if err != nil {
		t.Fatalf("Load should succeed with defaults: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "school.db" {
		t.Errorf("expected default db path school.db, got %s", cfg.Database.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOOKAPI_SERVER_PORT", "8081")
	t.Setenv("BOOKAPI_DB_PATH", "/tmp/books-test.db")

	cfg, err := Load("bookapi", "", 5001)
	if err != nil {
		t.Fatalf("Load should succeed: %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("env should win over the default, got port %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/books-test.db" {
		t.Errorf("env should win over the default, got path %s", cfg.Database.Path)
	}
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 0},
		Database: DatabaseConfig{Path: "x.db"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("port 0 should fail validation")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{Path: "school.db", BusyTimeout: 3000}
	dsn := cfg.DSN()
	if !strings.Contains(dsn, "_pragma=foreign_keys(1)") {
		t.Errorf("DSN must enforce foreign keys, got %s", dsn)
	}
	if !strings.Contains(dsn, "busy_timeout(3000)") {
		t.Errorf("DSN should carry the busy timeout, got %s", dsn)
	}
}

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "NAGARAM_WORDLIST_DIR", "DB_PATH", "CLIENT_ORIGIN", "DAILY_SALT", "CACHE_SIZE"} {
		t.Setenv(k, "")
	}
	want := Config{
		Port:         "5175",
		LogLevel:     zerolog.InfoLevel,
		DBPath:       "./data/nagaram.db",
		ClientOrigin: "http://localhost:5173",
		DailySalt:    "local_dev_salt",
		CacheSize:    256,
	}
	if diff := cmp.Diff(want, FromEnv()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NAGARAM_WORDLIST_DIR", "/usr/share/nagaram")
	t.Setenv("DB_PATH", "/tmp/h.db")
	t.Setenv("CLIENT_ORIGIN", "https://example.org")
	t.Setenv("DAILY_SALT", "pepper")
	t.Setenv("CACHE_SIZE", "10")

	want := Config{
		Port:         "8080",
		LogLevel:     zerolog.DebugLevel,
		WordlistDir:  "/usr/share/nagaram",
		DBPath:       "/tmp/h.db",
		ClientOrigin: "https://example.org",
		DailySalt:    "pepper",
		CacheSize:    10,
	}
	if diff := cmp.Diff(want, FromEnv()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFromEnvMalformed(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("CACHE_SIZE", "many")
	cfg := FromEnv()
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.CacheSize != 256 {
		t.Errorf("CacheSize = %d, want 256", cfg.CacheSize)
	}
}

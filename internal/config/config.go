// internal/config/config.go
//
// Runtime configuration from the environment.
// A .env file in the working directory is loaded first when present.
//
// Environment variables:
//   PORT                  HTTP port (default 5175)
//   LOG_LEVEL             zerolog level name (default info)
//   NAGARAM_WORDLIST_DIR  directory holding twl.txt and sowpods.txt;
//                         empty means the embedded sample lists
//   DB_PATH               SQLite file for search history (default ./data/nagaram.db)
//   CLIENT_ORIGIN         CORS origin (default http://localhost:5173)
//   DAILY_SALT            salt for the rack of the day (default local_dev_salt)
//   CACHE_SIZE            cached result sets kept in memory (default 256)

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is the merged runtime configuration.
type Config struct {
	Port         string
	LogLevel     zerolog.Level
	WordlistDir  string
	DBPath       string
	ClientOrigin string
	DailySalt    string
	CacheSize    int
}

// Load reads .env (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     lvl,
		WordlistDir:  os.Getenv("NAGARAM_WORDLIST_DIR"),
		DBPath:       getEnv("DB_PATH", "./data/nagaram.db"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		CacheSize:    envInt("CACHE_SIZE", 256),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, falling back to def when unset or malformed.
func envInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return def
}

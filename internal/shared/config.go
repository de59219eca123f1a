package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	StorageFile  = "file"
	StorageMySQL = "mysql"

	defaultJWTSecret = "your-secret-key"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string // empty: pick the first free fallback port
	MetricsAddr    string
	StorageDriver  string
	DataDir        string
	MySQLDSN       string
	RedisAddr      string // empty disables the history cache
	RedisDB        int
	RedisPass      string
	RedisPrefix    string
	CacheTTL       time.Duration
	JWTSecret      string
	AdminEmail     string
	PriceTableFile string
	LoginRPS       float64
	LoginBurst     int
	RequestTimeout time.Duration
}

// Production reports whether cookies should be marked Secure.
func (c Config) Production() bool { return c.AppEnv == "prod" || c.AppEnv == "production" }

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set win over the file.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg(".env loaded")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}

	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ""),
		MetricsAddr:    env("METRICS_ADDR", ""),
		StorageDriver:  env("STORAGE_DRIVER", StorageFile),
		DataDir:        env("DATA_DIR", "data"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/realestate?parseTime=true&charset=utf8mb4&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPrefix:    env("REDIS_PREFIX", "realestate:"),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		JWTSecret:      env("JWT_SECRET", defaultJWTSecret),
		AdminEmail:     env("ADMIN_EMAIL", ""),
		PriceTableFile: env("PRICE_TABLE_FILE", ""),
		LoginRPS:       atof("LOGIN_RPS", 1),
		LoginBurst:     atoi("LOGIN_BURST", 5),
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	if c.HTTPAddr == "" {
		if p := os.Getenv("PORT"); p != "" {
			c.HTTPAddr = ":" + p
		}
	}
	if c.JWTSecret == defaultJWTSecret {
		log.Warn().Msg("JWT_SECRET is not set, using the development default")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

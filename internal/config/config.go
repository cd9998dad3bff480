package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	DriverSqlite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	AppPort string

	DBDriver  string
	SqliteDSN string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
	SimLatencyMs int
	SeedDemoData bool
	LogFile      string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),

		DBDriver: getenv("DB_DRIVER", DriverSqlite),
		// cache=shared keeps one logical database across gorm's pooled
		// connections; data lives for the process lifetime only.
		SqliteDSN: getenv("SQLITE_DSN", "file::memory:?cache=shared"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "perfectbank"),
		MySQLUser: getenv("MYSQL_USER", "perfectbank"),
		MySQLPass: getenv("MYSQL_PASS", "perfectbank"),

		// Empty addr means idempotency middleware stays off.
		RedisAddr: getenv("REDIS_ADDR", ""),

		IdempTTLSecs: 300,
		SeedDemoData: true,
		LogFile:      getenv("LOG_FILE", ""),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("SIM_LATENCY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SimLatencyMs = n
		}
	}
	if v := os.Getenv("SEED_DEMO_DATA"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.SeedDemoData = b
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverSqlite:
		if c.SqliteDSN == "" {
			return errors.New("missing SQLITE_DSN")
		}
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if c.SimLatencyMs < 0 {
		return errors.New("SIM_LATENCY_MS must be >= 0")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

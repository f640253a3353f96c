package config

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded once at startup.
type Config struct {
	DB        *sql.DB
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Reminders RemindersConfig `yaml:"reminders"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig selects the store. Driver "postgres" talks to a PostgreSQL
// server; driver "sqlite3" keeps the whole ledger in a single local file,
// the way small schools run it.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"` // sqlite3 only
}

type RemindersConfig struct {
	LookaheadDays int `yaml:"lookahead_days"`
}

// AppConfig is the process-wide configuration, set by Load.
var AppConfig *Config

// Load reads .env (if present), then the YAML config file, applies
// defaults, and opens the database connection.
func Load(path string) (*Config, error) {
	// Missing .env is fine; env vars may come from the environment itself.
	_ = godotenv.Load()

	cfg := &Config{
		Server:    ServerConfig{Addr: ":8080"},
		Database:  DatabaseConfig{Driver: "sqlite3", Path: "school_finance.db", SSLMode: "disable"},
		Reminders: RemindersConfig{LookaheadDays: 3},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			Logger.Warnf("Config file %s not found, using defaults", path)
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	db, err := openDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	cfg.DB = db

	AppConfig = cfg
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
}

func openDB(dc DatabaseConfig) (*sql.DB, error) {
	var dsn string
	switch dc.Driver {
	case "postgres":
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dc.Host, dc.Port, dc.User, dc.Password, dc.Name, dc.SSLMode)
	case "sqlite3":
		dsn = dc.Path
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dc.Driver)
	}

	db, err := sql.Open(dc.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dc.Driver == "sqlite3" {
		// SQLite allows one writer; funnel everything through one conn.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot reach database: %w", err)
	}

	Logger.WithField("driver", dc.Driver).Info("Database connected")
	return db, nil
}

// GetDB returns the shared database handle.
func GetDB() *sql.DB {
	return AppConfig.DB
}

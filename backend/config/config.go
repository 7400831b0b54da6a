package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // "mysql" or "sqlite"
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file, ":memory:" allowed
}

type JWT struct {
	Secret   string
	Issuer   string
	ExpHours int
}

type Auth struct {
	// Substituted when sign-up carries no password. Kept for compatibility
	// with the reference deployment, not a recommended practice.
	DefaultPassword string
}

type Config struct {
	HTTP HTTP
	DB   DB
	JWT  JWT
	Auth Auth
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8080)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "quora")
	v.SetDefault("db.path", "quora.db")
	v.SetDefault("jwt.issuer", "quora-backend")
	v.SetDefault("jwt.exp_hours", 8)
	v.SetDefault("auth.default_password", "quora@123")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		JWT: JWT{
			Secret:   v.GetString("jwt.secret"),
			Issuer:   v.GetString("jwt.issuer"),
			ExpHours: v.GetInt("jwt.exp_hours"),
		},
		Auth: Auth{DefaultPassword: v.GetString("auth.default_password")},
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	if cfg.JWT.ExpHours <= 0 {
		cfg.JWT.ExpHours = 8
	}
	return cfg, nil
}

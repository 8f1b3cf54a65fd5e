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
	Host string
	Port int
	User string
	Pass string
	Name string
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

// Admin holds the static administrator credentials. They are compared
// literally at login, no hashing and no stored account.
type Admin struct {
	Email    string
	Password string
}

type Config struct {
	HTTP       HTTP
	DB         DB
	JWT        JWT
	Admin      Admin
	CORSOrigin string
}

// Load reads the YAML config once at process start. The result is treated
// as immutable for the life of the process.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors_origin", "http://localhost:3000")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "taskmanagement")
	v.SetDefault("jwt.issuer", "taskboard")
	v.SetDefault("jwt.exp_min", 60)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP:       HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB:         DB{Host: v.GetString("db.host"), Port: v.GetInt("db.port"), User: v.GetString("db.user"), Pass: v.GetString("db.pass"), Name: v.GetString("db.name")},
		JWT:        JWT{Secret: v.GetString("jwt.secret"), Issuer: v.GetString("jwt.issuer"), ExpMin: v.GetInt("jwt.exp_min")},
		Admin:      Admin{Email: v.GetString("admin.email"), Password: v.GetString("admin.password")},
		CORSOrigin: v.GetString("server.cors_origin"),
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret must be set")
	}
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil, fmt.Errorf("admin.email and admin.password must be set")
	}
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}

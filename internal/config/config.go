package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URI  string `yaml:"uri"`
		Name string `yaml:"name"`
	} `yaml:"database"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Admin struct {
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Notifications struct {
		SweepInitialDelay time.Duration `yaml:"sweep_initial_delay"`
		SweepInterval     time.Duration `yaml:"sweep_interval"`
	} `yaml:"notifications"`
	Frontend struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"frontend"`
}

func LoadConfig() *Config {
	// .env is optional and only overrides secrets.
	_ = godotenv.Load()

	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	overrideFromEnv(&cfg)

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5001
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "studysimplifier"
	}
	if cfg.Notifications.SweepInitialDelay == 0 {
		cfg.Notifications.SweepInitialDelay = time.Minute
	}
	if cfg.Notifications.SweepInterval == 0 {
		cfg.Notifications.SweepInterval = 24 * time.Hour
	}
	if cfg.Frontend.BaseURL == "" {
		cfg.Frontend.BaseURL = "http://localhost:3000"
	}
	return &cfg
}

func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("MONGODB_URI"); v != "" {
		cfg.Database.URI = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.Email.SMTPUser = v
	}
	if v := os.Getenv("EMAIL_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = p
		}
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("BACKEND_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
}

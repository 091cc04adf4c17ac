package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Port           int    `mapstructure:"port"`
	ReadSeconds    int    `mapstructure:"read_timeout_seconds"`
	WriteSeconds   int    `mapstructure:"write_timeout_seconds"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

type MongoConf struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type FirebaseConf struct {
	CredentialsPath string `mapstructure:"credentials_path"`
	ProjectID       string `mapstructure:"project_id"`
}

type AuthConf struct {
	Secret     string `mapstructure:"secret"`
	Algorithm  string `mapstructure:"algorithm"`
	TTLMinutes int    `mapstructure:"token_ttl_minutes"`
}

type AWSConf struct {
	Region   string `mapstructure:"region"`
	Bucket   string `mapstructure:"bucket"`
	Endpoint string `mapstructure:"endpoint"`
}

type CloudinaryConf struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

type StorageConf struct {
	Driver         string         `mapstructure:"driver"`
	MaxUploadBytes int64          `mapstructure:"max_upload_bytes"`
	AllowedTypes   []string       `mapstructure:"allowed_types"`
	UploadDir      string         `mapstructure:"upload_dir"`
	AWS            AWSConf        `mapstructure:"aws"`
	Cloudinary     CloudinaryConf `mapstructure:"cloudinary"`
}

type Config struct {
	App      AppConf      `mapstructure:"app"`
	Mongo    MongoConf    `mapstructure:"mongodb"`
	Firebase FirebaseConf `mapstructure:"firebase"`
	Auth     AuthConf     `mapstructure:"auth"`
	Storage  StorageConf  `mapstructure:"storage"`
	Log      struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	// derived
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	TokenTTL        time.Duration
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.App.Port == 0 {
		cfg.App.Port = 8000
	}
	if cfg.App.ReadSeconds == 0 {
		cfg.App.ReadSeconds = 30
	}
	if cfg.App.WriteSeconds == 0 {
		cfg.App.WriteSeconds = 30
	}
	if cfg.App.ShutdownSecond == 0 {
		cfg.App.ShutdownSecond = 15
	}
	if cfg.Auth.Algorithm == "" {
		cfg.Auth.Algorithm = "HS256"
	}
	if cfg.Auth.TTLMinutes == 0 {
		cfg.Auth.TTLMinutes = 30
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "cloudinary"
	}
	if cfg.Storage.MaxUploadBytes == 0 {
		cfg.Storage.MaxUploadBytes = 100 << 20
	}
	if cfg.Storage.UploadDir == "" {
		cfg.Storage.UploadDir = "uploads"
	}

	cfg.ReadTimeout = time.Duration(cfg.App.ReadSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.App.WriteSeconds) * time.Second
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	cfg.TokenTTL = time.Duration(cfg.Auth.TTLMinutes) * time.Minute

	if cfg.Mongo.URI == "" {
		return nil, errors.New("mongodb.uri is required")
	}
	if cfg.Auth.Secret == "" {
		return nil, errors.New("auth.secret is required")
	}
	return &cfg, nil
}

// Origins splits the comma separated allowed_origins value.
func (c *Config) Origins() []string {
	if c.App.AllowedOrigins == "" {
		return nil
	}
	parts := strings.Split(c.App.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

var (
	// appConfig holds a *Config snapshot for lock-free reads.
	appConfig atomic.Value
	configMu  sync.Mutex // write-side mutex
	configDir = "config"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Media    MediaConfig    `mapstructure:"media"`
	Rate     RateConfig     `mapstructure:"rate"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

type MediaConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	PublicURL string `mapstructure:"public_url"` // base URL for stored object links
}

type RateConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	AuthRPS   float64 `mapstructure:"auth_rps"`
	AuthBurst int     `mapstructure:"auth_burst"`
}

// Get returns the current configuration snapshot.
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
	log.Println("configuration loaded")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/bayaaz.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "bayaaz")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	// Tokens default to 7 days, matching the client sync window.
	v.SetDefault("jwt.expiration_hours", 168)
	v.SetDefault("media.endpoint", "127.0.0.1:9000")
	v.SetDefault("media.access_key", "minioadmin")
	v.SetDefault("media.secret_key", "minioadmin")
	v.SetDefault("media.bucket", "bayaaz")
	v.SetDefault("media.use_ssl", false)
	v.SetDefault("media.public_url", "")
	v.SetDefault("rate.enabled", true)
	v.SetDefault("rate.auth_rps", 1.0)
	v.SetDefault("rate.auth_burst", 5)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("no config file found, using environment variables and defaults")
		} else {
			log.Fatalf("failed to read config file: %v", err)
		}
	}

	// Environment override: every variable is prefixed with BAYAAZ_,
	// e.g. server.port maps to BAYAAZ_SERVER_PORT.
	v.SetEnvPrefix("BAYAAZ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore parses the config and atomically replaces the snapshot.
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("failed to parse config: %v", err)
		return
	}

	if tempConfig.Server.Mode == "release" {
		if tempConfig.JWT.Secret == "" || tempConfig.JWT.Secret == "bayaaz_secret" {
			log.Println("[security] release mode requires a non-default JWT secret")
		}
	} else {
		if tempConfig.JWT.Secret == "" {
			log.Println("[dev mode] JWT secret not set, falling back to an insecure default")
			tempConfig.JWT.Secret = "bayaaz_secret"
		}
	}

	appConfig.Store(&tempConfig)
}

func enforceJWTSecretSafety() {
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.JWT.Secret == "" || curr.JWT.Secret == "bayaaz_secret" {
			log.Fatal("[security] release mode requires a non-default JWT secret; set BAYAAZ_JWT_SECRET or jwt.secret in the config file")
		}
	}
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/spf13/viper"
)

const (
	DefaultRegion         = "ap-guangzhou"
	DefaultEndpoint       = "billing.tencentcloudapi.com"
	DefaultAddr           = ":8080"
	DefaultDetailPageSize = 100
	DefaultLanguage       = "zh"
)

// Config holds everything read at startup. It is never mutated afterwards.
type Config struct {
	Credentials model.Credentials

	// Billing configuration
	Endpoint       string
	DetailPageSize uint64

	// Server configuration
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Logging and messages
	LogLevel        string
	LogFormat       string
	DefaultLanguage string
}

// HasCredentials returns true if both the secret id and key are configured
func (c *Config) HasCredentials() bool {
	return c.Credentials.IsComplete()
}

// envBindings maps config keys to the environment variables that set them
var envBindings = map[string]string{
	"tencent.secret_id":        "TENCENT_SECRET_ID",
	"tencent.secret_key":       "TENCENT_SECRET_KEY",
	"tencent.region":           "TENCENT_REGION",
	"tencent.endpoint":         "TENCENT_BILLING_ENDPOINT",
	"billing.detail_page_size": "FINANCE_DETAIL_PAGE_SIZE",
	"server.addr":              "FINANCE_ADDR",
	"server.read_timeout":      "FINANCE_READ_TIMEOUT",
	"server.write_timeout":     "FINANCE_WRITE_TIMEOUT",
	"server.shutdown_timeout":  "FINANCE_SHUTDOWN_TIMEOUT",
	"log.level":                "FINANCE_LOG_LEVEL",
	"log.format":               "FINANCE_LOG_FORMAT",
	"lang.default":             "FINANCE_DEFAULT_LANG",
}

// New returns a viper instance with defaults and environment bindings applied
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("tencent.region", DefaultRegion)
	v.SetDefault("tencent.endpoint", DefaultEndpoint)
	v.SetDefault("billing.detail_page_size", DefaultDetailPageSize)
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("lang.default", DefaultLanguage)

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	return v
}

// Load reads the optional config file and resolves the final configuration.
// Environment variables take priority over values from the file.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	region := strings.TrimSpace(v.GetString("tencent.region"))
	if region == "" {
		region = DefaultRegion
	}

	pageSize := v.GetUint64("billing.detail_page_size")
	if pageSize == 0 {
		pageSize = DefaultDetailPageSize
	}

	return &Config{
		Credentials: model.Credentials{
			SecretID:  strings.TrimSpace(v.GetString("tencent.secret_id")),
			SecretKey: strings.TrimSpace(v.GetString("tencent.secret_key")),
			Region:    region,
		},
		Endpoint:        getStringOrDefault(v, "tencent.endpoint", DefaultEndpoint),
		DetailPageSize:  pageSize,
		Addr:            getStringOrDefault(v, "server.addr", DefaultAddr),
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		LogLevel:        v.GetString("log.level"),
		LogFormat:       v.GetString("log.format"),
		DefaultLanguage: getStringOrDefault(v, "lang.default", DefaultLanguage),
	}, nil
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	if value := strings.TrimSpace(v.GetString(key)); value != "" {
		return value
	}
	return defaultValue
}

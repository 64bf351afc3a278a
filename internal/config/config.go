// Package config loads service configuration from defaults, an optional
// config.yaml and the environment (a local .env is loaded first).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"http"`
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`
	Store struct {
		Driver  string        `mapstructure:"driver"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"store"`
	DynamoDB struct {
		Region          string `mapstructure:"region"`
		Endpoint        string `mapstructure:"endpoint"`
		Table           string `mapstructure:"table"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"dynamodb"`
	Notification struct {
		Driver          string        `mapstructure:"driver"`
		ProjectID       string        `mapstructure:"project_id"`
		Topic           string        `mapstructure:"topic"`
		CredentialsJSON string        `mapstructure:"credentials_json"`
		Recipients      []string      `mapstructure:"recipients"`
		Timeout         time.Duration `mapstructure:"timeout"`
	} `mapstructure:"notification"`
	Storage struct {
		Driver          string `mapstructure:"driver"`
		Bucket          string `mapstructure:"bucket"`
		PublicBaseURL   string `mapstructure:"public_base_url"`
		CredentialsJSON string `mapstructure:"credentials_json"`
	} `mapstructure:"storage"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Lock struct {
		Enabled bool          `mapstructure:"enabled"`
		TTL     time.Duration `mapstructure:"ttl"`
	} `mapstructure:"lock"`
	Audit struct {
		NotifyOnReopen         bool `mapstructure:"notify_on_reopen"`
		LedgerOnPriorityChange bool `mapstructure:"ledger_on_priority_change"`
	} `mapstructure:"audit"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("store.driver", "dynamodb")
	v.SetDefault("store.timeout", "10s")
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.table", "work_orders")
	v.SetDefault("notification.driver", "log")
	v.SetDefault("notification.timeout", "15s")
	v.SetDefault("notification.recipients", []string{})
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("lock.enabled", false)
	v.SetDefault("lock.ttl", "30s")
	v.SetDefault("audit.notify_on_reopen", false)
	v.SetDefault("audit.ledger_on_priority_change", false)
}

var envBindings = map[string]string{
	"http.port":                       "PORT",
	"logging.level":                   "LOG_LEVEL",
	"logging.format":                  "LOG_FORMAT",
	"store.driver":                    "STORE_DRIVER",
	"store.timeout":                   "STORE_TIMEOUT",
	"dynamodb.region":                 "AWS_REGION",
	"dynamodb.endpoint":               "DYNAMODB_ENDPOINT",
	"dynamodb.table":                  "WORK_ORDERS_TABLE",
	"dynamodb.access_key_id":          "AWS_ACCESS_KEY_ID",
	"dynamodb.secret_access_key":      "AWS_SECRET_ACCESS_KEY",
	"notification.driver":             "NOTIFICATION_DRIVER",
	"notification.project_id":         "PUBSUB_PROJECT_ID",
	"notification.topic":              "PUBSUB_TOPIC",
	"notification.credentials_json":   "PUBSUB_CREDENTIALS_JSON",
	"notification.recipients":         "NOTIFICATION_RECIPIENTS",
	"notification.timeout":            "NOTIFICATION_TIMEOUT",
	"storage.driver":                  "STORAGE_DRIVER",
	"storage.bucket":                  "GCS_BUCKET",
	"storage.public_base_url":         "STORAGE_PUBLIC_BASE_URL",
	"storage.credentials_json":        "GCS_CREDENTIALS_JSON",
	"redis.addr":                      "REDIS_ADDR",
	"redis.password":                  "REDIS_PASSWORD",
	"redis.db":                        "REDIS_DB",
	"lock.enabled":                    "LOCK_ENABLED",
	"lock.ttl":                        "LOCK_TTL",
	"audit.notify_on_reopen":          "AUDIT_NOTIFY_ON_REOPEN",
	"audit.ledger_on_priority_change": "AUDIT_LEDGER_ON_PRIORITY_CHANGE",
}

// Load reads the configuration. A missing config.yaml or .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	c.Notification.Recipients = splitList(c.Notification.Recipients)
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	c.Notification.Driver = strings.ToLower(strings.TrimSpace(c.Notification.Driver))
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// splitList accepts both YAML lists and a comma separated env value.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case "dynamodb", "memory":
	default:
		return fmt.Errorf("config error: store.driver %q must be dynamodb or memory", c.Store.Driver)
	}
	switch c.Notification.Driver {
	case "log":
	case "pubsub":
		if c.Notification.Topic == "" {
			return fmt.Errorf("config error: notification.topic/PUBSUB_TOPIC required for pubsub driver")
		}
	default:
		return fmt.Errorf("config error: notification.driver %q must be pubsub or log", c.Notification.Driver)
	}
	switch c.Storage.Driver {
	case "memory":
	case "gcs":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("config error: storage.bucket/GCS_BUCKET required for gcs driver")
		}
	default:
		return fmt.Errorf("config error: storage.driver %q must be gcs or memory", c.Storage.Driver)
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("config error: http.port must be positive")
	}
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort string `yaml:"http_port"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`

	RedisAddr                string `yaml:"redis_addr"`
	RedisPassword            string `yaml:"redis_password"`
	RedisDB                  int    `yaml:"redis_db"`
	NotificationStream       string `yaml:"notification_stream"`
	NotificationStreamMaxLen int64  `yaml:"notification_stream_max_len"`

	// NATSURL empty disables event forwarding.
	NATSURL           string `yaml:"nats_url"`
	NATSSubjectPrefix string `yaml:"nats_subject_prefix"`

	JWTSecret string `yaml:"jwt_secret"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	EventQueueSize int `yaml:"event_queue_size"`

	EnforceSinglePrimaryOperator bool `yaml:"enforce_single_primary_operator"`

	PricingRuleExpirySchedule string `yaml:"pricing_rule_expiry_schedule"`
	LeaseActivationSchedule   string `yaml:"lease_activation_schedule"`
}

// LoadConfig reads the optional YAML file at path, then applies environment
// overrides. A .env file in the working directory is loaded first when present.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		HTTPPort:  "8080",
		DBPort:    "5432",
		DBSslMode: "disable",
		RedisAddr: "localhost:6379",
		LogLevel:  "info",
		LogFormat: "text",
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() error {
	strs := map[string]*string{
		"HTTP_PORT":                    &c.HTTPPort,
		"DB_HOST":                      &c.DBHost,
		"DB_PORT":                      &c.DBPort,
		"DB_USER":                      &c.DBUser,
		"DB_PASSWORD":                  &c.DBPassword,
		"DB_NAME":                      &c.DBName,
		"DB_SSLMODE":                   &c.DBSslMode,
		"REDIS_ADDR":                   &c.RedisAddr,
		"REDIS_PASSWORD":               &c.RedisPassword,
		"NOTIFICATION_STREAM":          &c.NotificationStream,
		"NATS_URL":                     &c.NATSURL,
		"NATS_SUBJECT_PREFIX":          &c.NATSSubjectPrefix,
		"JWT_SECRET":                   &c.JWTSecret,
		"LOG_LEVEL":                    &c.LogLevel,
		"LOG_FORMAT":                   &c.LogFormat,
		"PRICING_RULE_EXPIRY_SCHEDULE": &c.PricingRuleExpirySchedule,
		"LEASE_ACTIVATION_SCHEDULE":    &c.LeaseActivationSchedule,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	var errs []error
	if v, ok := os.LookupEnv("REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, envError("REDIS_DB", err))
		c.RedisDB = n
	}
	if v, ok := os.LookupEnv("NOTIFICATION_STREAM_MAX_LEN"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		errs = append(errs, envError("NOTIFICATION_STREAM_MAX_LEN", err))
		c.NotificationStreamMaxLen = n
	}
	if v, ok := os.LookupEnv("EVENT_QUEUE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, envError("EVENT_QUEUE_SIZE", err))
		c.EventQueueSize = n
	}
	if v, ok := os.LookupEnv("LEASE_ENFORCE_SINGLE_PRIMARY_OPERATOR"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, envError("LEASE_ENFORCE_SINGLE_PRIMARY_OPERATOR", err))
		c.EnforceSinglePrimaryOperator = b
	}
	return errors.Join(errs...)
}

func envError(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("env %s: %w", key, err)
}

func (c Config) Validate() error {
	var errs []error
	if c.DBHost == "" {
		errs = append(errs, errors.New("db host is required"))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("db name is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is required"))
	}
	return errors.Join(errs...)
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

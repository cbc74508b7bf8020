package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/outingclub/trip-lottery/internal/api/http"
	"github.com/outingclub/trip-lottery/internal/auth/jwt"
	"github.com/outingclub/trip-lottery/internal/engine"
	"github.com/outingclub/trip-lottery/internal/lotterysched"
	"github.com/outingclub/trip-lottery/internal/ratelimit"
	"github.com/outingclub/trip-lottery/internal/store"
	"github.com/outingclub/trip-lottery/internal/triplock"
	"github.com/outingclub/trip-lottery/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config         `mapstructure:"mysql"`
	Logger    log.Config           `mapstructure:"logger"`
	HTTP      httpapi.Config       `mapstructure:"http"`
	Auth      jwt.Config           `mapstructure:"auth"`
	Lottery   engine.Config        `mapstructure:"lottery"`
	Scheduler lotterysched.Config  `mapstructure:"scheduler"`
	Lock      triplock.RedisConfig `mapstructure:"lock"`
	RateLimit ratelimit.Config     `mapstructure:"rate_limit"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Env vars use underscores and uppercase, e.g., MYSQL_DSN, AUTH_JWT_SECRET
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	// e.g., mysql.dsn -> MYSQL__DSN, lottery.seed_secret -> LOTTERY__SEED_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/trip-lottery")
		v.AddConfigPath("/etc/trip-lottery")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

// dsnFromEnv builds a DSN from MYSQL_* env vars. TLS uses the CA registered
// from mysql.tls_ca_path.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")

	if host == "" || user == "" || password == "" || database == "" {
		return ""
	}
	if port == "" {
		port = "3306"
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		user, password, host, port, database)
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

func setDefaults(v *viper.Viper) {
	sched := lotterysched.DefaultConfig()
	v.SetDefault("scheduler.enabled", sched.Enabled)
	v.SetDefault("scheduler.worker_interval", sched.WorkerInterval)

	rl := ratelimit.DefaultConfig()
	v.SetDefault("rate_limit.window", rl.Window)
	v.SetDefault("rate_limit.signups_per_ip", rl.SignupsPerIP)
	v.SetDefault("rate_limit.signups_per_participant", rl.SignupsPerParticipant)
	v.SetDefault("rate_limit.reorders_per_participant", rl.ReordersPerParticipant)

	v.SetDefault("http.port", "8081")
	v.SetDefault("auth.jwt_ttl", "24h")
	v.SetDefault("lock.key_prefix", "trip-lottery:trip:")
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Lottery
	v.BindEnv("lottery.seed_secret", "LOTTERY_SEED_SECRET")

	// Scheduler (runs due lottery cycles)
	v.BindEnv("scheduler.enabled", "SCHEDULER_ENABLED")
	v.BindEnv("scheduler.worker_interval", "SCHEDULER_WORKER_INTERVAL")

	// Trip locks; without a redis url locks are held in process
	v.BindEnv("lock.redis_url", "LOCK_REDIS_URL")
	v.BindEnv("lock.key_prefix", "LOCK_KEY_PREFIX")
	v.BindEnv("lock.ttl", "LOCK_TTL")
	v.BindEnv("lock.retry_every", "LOCK_RETRY_EVERY")

	// Rate limit
	v.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	v.BindEnv("rate_limit.signups_per_ip", "RATE_LIMIT_SIGNUPS_PER_IP")
	v.BindEnv("rate_limit.signups_per_participant", "RATE_LIMIT_SIGNUPS_PER_PARTICIPANT")
	v.BindEnv("rate_limit.reorders_per_participant", "RATE_LIMIT_REORDERS_PER_PARTICIPANT")
}

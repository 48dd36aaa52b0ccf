package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	AppBaseURL        string `mapstructure:"APP_BASE_URL"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisLockoutDB       int    `mapstructure:"REDIS_LOCKOUT_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Booking behaviour.
	SessionTTLMinutes   int `mapstructure:"SESSION_TTL_MINUTES"`
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`

	// PIN lockout.
	PinMaxAttempts       int `mapstructure:"PIN_MAX_ATTEMPTS"`
	PinLockoutMinutes    int `mapstructure:"PIN_LOCKOUT_MINUTES"`

	// Free plan limits.
	FreePlanMaxCustomers int `mapstructure:"FREE_PLAN_MAX_CUSTOMERS"`
	FreePlanMaxBookings  int `mapstructure:"FREE_PLAN_MAX_BOOKINGS"`

	// ExchangeRate-API key for live currency conversion.
	ExchangeRateAPIKey string `mapstructure:"EXCHANGE_RATE_API_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_LOCKOUT_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "barbershop")
	viper.SetDefault("SESSION_TTL_MINUTES", 10)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("PIN_MAX_ATTEMPTS", 5)
	viper.SetDefault("PIN_LOCKOUT_MINUTES", 15)
	viper.SetDefault("FREE_PLAN_MAX_CUSTOMERS", 100)
	viper.SetDefault("FREE_PLAN_MAX_BOOKINGS", 500)
	viper.SetDefault("EXCHANGE_RATE_API_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

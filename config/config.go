package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	DatabaseName      string        `mapstructure:"DATABASE_NAME"`
	Env               string        `mapstructure:"ENV"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisLockDB    int           `mapstructure:"REDIS_LOCK_DB"`
	RedisQueueDB   int           `mapstructure:"REDIS_QUEUE_DB"`
	BookingLockTTL time.Duration `mapstructure:"BOOKING_LOCK_TTL"`

	// Business hours, all wall-clock values are read in BusinessTimezone.
	BusinessTimezone   string `mapstructure:"BUSINESS_TIMEZONE"`
	SlotGranularityMin int    `mapstructure:"SLOT_GRANULARITY_MIN"`
	HoursMonday        string `mapstructure:"HOURS_MONDAY"`
	HoursTuesday       string `mapstructure:"HOURS_TUESDAY"`
	HoursWednesday     string `mapstructure:"HOURS_WEDNESDAY"`
	HoursThursday      string `mapstructure:"HOURS_THURSDAY"`
	HoursFriday        string `mapstructure:"HOURS_FRIDAY"`
	HoursSaturday      string `mapstructure:"HOURS_SATURDAY"`
	HoursSunday        string `mapstructure:"HOURS_SUNDAY"`

	// Outbound email.
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      string `mapstructure:"SMTP_PORT"`
	SMTPFrom      string `mapstructure:"SMTP_FROM"`
	BusinessEmail string `mapstructure:"BUSINESS_EMAIL"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "chairbook")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "600h")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_LOCK_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("BOOKING_LOCK_TTL", "40s")

	v.SetDefault("BUSINESS_TIMEZONE", "America/Chicago")
	v.SetDefault("SLOT_GRANULARITY_MIN", 15)
	v.SetDefault("HOURS_MONDAY", "15:00-20:00")
	v.SetDefault("HOURS_TUESDAY", "15:00-20:00")
	v.SetDefault("HOURS_WEDNESDAY", "15:00-20:00")
	v.SetDefault("HOURS_THURSDAY", "15:00-20:00")
	v.SetDefault("HOURS_FRIDAY", "08:00-20:00")
	v.SetDefault("HOURS_SATURDAY", "08:00-20:00")
	v.SetDefault("HOURS_SUNDAY", "08:00-20:00")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", "25")
	v.SetDefault("SMTP_FROM", "no-reply@chairbook.local")
	v.SetDefault("BUSINESS_EMAIL", "")
}

// WeeklyHoursSpec returns the configured hours indexed by time.Weekday.
func (c Config) WeeklyHoursSpec() [7]string {
	return [7]string{
		time.Sunday:    c.HoursSunday,
		time.Monday:    c.HoursMonday,
		time.Tuesday:   c.HoursTuesday,
		time.Wednesday: c.HoursWednesday,
		time.Thursday:  c.HoursThursday,
		time.Friday:    c.HoursFriday,
		time.Saturday:  c.HoursSaturday,
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

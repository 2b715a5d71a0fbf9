package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	ServerPort        string
	JWTSecret         string
	JWTExpiryHours    int
	MigrationsAuto    bool
	LogLevel          string
	LogFormat         string
	AccessCodeRetries int

	// DotEnvLoaded reports whether a .env file was found.
	DotEnvLoaded bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "pm_user")
	v.SetDefault("DB_PASSWORD", "pm_pass")
	v.SetDefault("DB_NAME", "pm_db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("JWT_SECRET", "supersecretkey")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("MIGRATIONS_AUTO", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("ACCESS_CODE_RETRIES", 3)
}

// Load reads an optional .env file into the process environment and then
// resolves every key from the environment, falling back to defaults.
func Load() *Config {
	dotEnv := godotenv.Load() == nil

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := fromViper(v)
	cfg.DotEnvLoaded = dotEnv
	return cfg
}

func fromViper(v *viper.Viper) *Config {
	retries := v.GetInt("ACCESS_CODE_RETRIES")
	if retries < 1 {
		retries = 1
	}

	return &Config{
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBUser:            v.GetString("DB_USER"),
		DBPassword:        v.GetString("DB_PASSWORD"),
		DBName:            v.GetString("DB_NAME"),
		DBSSLMode:         v.GetString("DB_SSLMODE"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		ServerPort:        v.GetString("SERVER_PORT"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTExpiryHours:    v.GetInt("JWT_EXPIRY_HOURS"),
		MigrationsAuto:    v.GetBool("MIGRATIONS_AUTO"),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:         strings.ToLower(v.GetString("LOG_FORMAT")),
		AccessCodeRetries: retries,
	}
}

// PostgresDSN is the key/value form used by the gorm postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// MigrateURL is the URL form golang-migrate expects.
func (c *Config) MigrateURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (cart + wishlist store).
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int           `mapstructure:"REDIS_STORE_DB"`
	CartTTL       time.Duration `mapstructure:"CART_TTL"`

	// Catalog source: "static" or "mongo".
	CatalogSource     string `mapstructure:"CATALOG_SOURCE"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	CatalogCollection string `mapstructure:"CATALOG_COLLECTION"`

	// Text generation.
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	FallbackAPIKey    string        `mapstructure:"API_KEY"`
	GeminiModel       string        `mapstructure:"GEMINI_MODEL"`
	GeminiEndpoint    string        `mapstructure:"GEMINI_ENDPOINT"`
	GeminiTransport   string        `mapstructure:"GEMINI_TRANSPORT"`
	GeminiTimeout     time.Duration `mapstructure:"GEMINI_TIMEOUT"`
	GeminiMaxTokens   int32         `mapstructure:"GEMINI_MAX_TOKENS"`
	GeminiTemperature float32       `mapstructure:"GEMINI_TEMPERATURE"`

	// Assistant sessions.
	SessionTTL  time.Duration `mapstructure:"SESSION_TTL"`
	PacingScale float64       `mapstructure:"PACING_SCALE"`

	// Cloudinary media delivery.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_STORE_DB", 0)
	v.SetDefault("CART_TTL", "720h")
	v.SetDefault("CATALOG_SOURCE", "static")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "mahatta")
	v.SetDefault("CATALOG_COLLECTION", "wallpapers")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("GEMINI_TRANSPORT", "rest")
	v.SetDefault("GEMINI_TIMEOUT", "8s")
	v.SetDefault("GEMINI_MAX_TOKENS", 80)
	v.SetDefault("GEMINI_TEMPERATURE", 0.7)
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("PACING_SCALE", 1.0)
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
}

// Load reads configuration from v into a Config.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// APIKey returns the text-generation credential, preferring GEMINI_API_KEY over API_KEY.
func (c Config) APIKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return c.FallbackAPIKey
}

// Pacing scales a dialogue delay by PACING_SCALE.
func (c Config) Pacing(d time.Duration) time.Duration {
	if c.PacingScale < 0 {
		return 0
	}
	return time.Duration(float64(d) * c.PacingScale)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Redis holds the connection settings shared by both binaries
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// API holds configuration for the REST backend
type API struct {
	Server struct {
		Host         string
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		IdleTimeout  time.Duration
	}
	Redis Redis
	JWT   struct {
		Secret     string
		AccessTTL  time.Duration
		RefreshTTL time.Duration
	}
	Facebook struct {
		AppID     string
		AppSecret string
		GraphURL  string
	}
	Google struct {
		ClientID string
	}
	CORSAllowedOrigins []string
	RateLimit          struct {
		RPS   int
		Burst int
	}
	PageSize int
	LogLevel string
}

// Bot holds configuration for the Discord front end
type Bot struct {
	DiscordToken  string
	ApplicationID string
	GuildID       string
	APIURL        string
	DefaultCity   string
	Redis         Redis
	LogLevel      string

	// PageSize must match the backend's PAGE_SIZE for "Load more" to appear
	PageSize int
}

// LoadAPI reads the backend configuration from the environment and an optional .env file
func LoadAPI() *API {
	loadDotEnv()

	cfg := &API{}

	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Server.Port = getEnv("SERVER_PORT", "8000")
	cfg.Server.ReadTimeout = getEnvAsDuration("SERVER_READ_TIMEOUT", "10s")
	cfg.Server.WriteTimeout = getEnvAsDuration("SERVER_WRITE_TIMEOUT", "10s")
	cfg.Server.IdleTimeout = getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s")

	cfg.Redis = loadRedis()

	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	cfg.JWT.AccessTTL = getEnvAsDuration("JWT_ACCESS_TTL", "24h")
	cfg.JWT.RefreshTTL = getEnvAsDuration("JWT_REFRESH_TTL", "168h")

	cfg.Facebook.AppID = getEnv("FACEBOOK_APP_ID", "")
	cfg.Facebook.AppSecret = getEnv("FACEBOOK_APP_SECRET", "")
	cfg.Facebook.GraphURL = getEnv("FACEBOOK_GRAPH_URL", "https://graph.facebook.com")

	cfg.Google.ClientID = getEnv("GOOGLE_CLIENT_ID", "")

	cfg.CORSAllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", "*")
	cfg.RateLimit.RPS = getEnvAsInt("RATE_LIMIT_RPS", 10)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 20)
	cfg.PageSize = getEnvAsInt("PAGE_SIZE", 20)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	return cfg
}

// LoadBot reads the front-end configuration from the environment and an optional .env file
func LoadBot() *Bot {
	loadDotEnv()

	return &Bot{
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		APIURL:        getEnv("BUDDYUP_API_URL", "http://localhost:8000"),
		DefaultCity:   getEnv("DEFAULT_CITY", "Waterloo"),
		Redis:         loadRedis(),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PageSize:      getEnvAsInt("PAGE_SIZE", 20),
	}
}

func loadRedis() Redis {
	return Redis{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("REDIS_DB", 0),
	}
}

// loadDotEnv populates the environment from .env; a missing file is fine
func loadDotEnv() {
	_ = godotenv.Load()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	val := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(val)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

func getEnvAsInt(key string, defaultValue int) int {
	val := getEnv(key, strconv.Itoa(defaultValue))
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

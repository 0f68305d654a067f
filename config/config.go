package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// Logging
	LogLevel string
	// Form Configuration
	FormLocale          string
	FormStateStore      string // "memory" or "redis"
	FormStateTTLMinutes int
	// Redis Configuration (only used when FormStateStore is "redis")
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSubmitThreshold int
	RateLimitGlobalThreshold int
	// Proxies whose X-Forwarded-For is honoured for client IPs; empty trusts none
	TrustedProxies []string
	// Cookie Configuration
	CookieSecure bool
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "debug")),
		// Form Configuration
		FormLocale:          strings.ToLower(getEnv("FORM_LOCALE", "ja")),
		FormStateStore:      strings.ToLower(getEnv("FORM_STATE_STORE", "memory")),
		FormStateTTLMinutes: getEnvInt("FORM_STATE_TTL_MINUTES", 30),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 30), // 30 submits per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		TrustedProxies:           getEnvList("TRUSTED_PROXIES"),
		// Cookie Configuration
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
	}

	if cfg.FormStateStore != "memory" && cfg.FormStateStore != "redis" {
		log.Printf("WARNING: unknown FORM_STATE_STORE %q, using memory", cfg.FormStateStore)
		cfg.FormStateStore = "memory"
	}

	if cfg.FormStateStore == "redis" && cfg.RedisURL == "" {
		log.Println("WARNING: FORM_STATE_STORE=redis but REDIS_URL is missing. Form state will use in-memory store.")
	}

	if cfg.FormStateTTLMinutes <= 0 {
		cfg.FormStateTTLMinutes = 30
	}

	// Non-positive rate limit values fall back to the defaults
	if cfg.RateLimitWindowSeconds <= 0 {
		log.Printf("WARNING: RATE_LIMIT_WINDOW_SECONDS=%d is not positive, using 60", cfg.RateLimitWindowSeconds)
		cfg.RateLimitWindowSeconds = 60
	}
	if cfg.RateLimitSubmitThreshold <= 0 {
		log.Printf("WARNING: RATE_LIMIT_SUBMIT_THRESHOLD=%d is not positive, using 30", cfg.RateLimitSubmitThreshold)
		cfg.RateLimitSubmitThreshold = 30
	}
	if cfg.RateLimitGlobalThreshold <= 0 {
		log.Printf("WARNING: RATE_LIMIT_GLOBAL_THRESHOLD=%d is not positive, using 300", cfg.RateLimitGlobalThreshold)
		cfg.RateLimitGlobalThreshold = 300
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated environment variable, dropping empty items
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

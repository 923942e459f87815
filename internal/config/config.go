package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type Config struct {
	Server   ServerConfig
	YouTube  YouTubeConfig
	Download DownloadConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port              string
	Host              string
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
}

// YouTubeConfig controls how the extraction client talks to the source platform.
type YouTubeConfig struct {
	// UserAgent only fills requests that carry none. The extractor sets its
	// own, so in practice it applies to the upstream health check.
	UserAgent      string
	AcceptLanguage string

	// Cookie is a raw Cookie header value and wins over CookiesFile. The
	// configured cookies are merged into those the extractor sends.
	Cookie          string
	CookiesFile     string
	ProxyURL        string
	MetadataTimeout time.Duration
}

type DownloadConfig struct {
	// DownloadTimeout bounds a whole relay; zero disables the limit.
	DownloadTimeout   time.Duration
	FilenameMaxLength int
}

type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
	Profile          string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	readHeaderTimeout, err := time.ParseDuration(getEnv("SERVER_READ_HEADER_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_HEADER_TIMEOUT: %w", err)
	}
	cfg.Server.ReadHeaderTimeout = readHeaderTimeout
	idleTimeout, err := time.ParseDuration(getEnv("SERVER_IDLE_TIMEOUT", "120s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_IDLE_TIMEOUT: %w", err)
	}
	cfg.Server.IdleTimeout = idleTimeout

	// YouTube configuration
	cfg.YouTube.UserAgent = getEnv("YOUTUBE_USER_AGENT", defaultUserAgent)
	cfg.YouTube.AcceptLanguage = getEnv("YOUTUBE_ACCEPT_LANGUAGE", "en-US,en;q=0.9")
	cfg.YouTube.Cookie = getEnv("YOUTUBE_COOKIE", "")
	cfg.YouTube.CookiesFile = getEnv("YOUTUBE_COOKIES_FILE", "")
	cfg.YouTube.ProxyURL = getEnv("YOUTUBE_PROXY_URL", "")
	metadataTimeout, err := time.ParseDuration(getEnv("EXTRACTOR_METADATA_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXTRACTOR_METADATA_TIMEOUT: %w", err)
	}
	cfg.YouTube.MetadataTimeout = metadataTimeout

	// Download configuration
	downloadTimeout, err := time.ParseDuration(getEnv("DOWNLOAD_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DOWNLOAD_TIMEOUT: %w", err)
	}
	cfg.Download.DownloadTimeout = downloadTimeout
	cfg.Download.FilenameMaxLength = getEnvInt("DOWNLOAD_FILENAME_MAX_LENGTH", 100)
	if cfg.Download.FilenameMaxLength <= 0 {
		return nil, fmt.Errorf("invalid DOWNLOAD_FILENAME_MAX_LENGTH: must be positive")
	}

	// CORS configuration
	cfg.CORS = loadCORSConfig()

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(strings.TrimSpace(value), ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

// loadCORSConfig loads CORS configuration based on profile or custom settings
func loadCORSConfig() CORSConfig {
	profile := getEnv("CORS_PROFILE", "custom")

	switch profile {
	case "development":
		return getDevelopmentCORSConfig()
	case "production":
		return getProductionCORSConfig()
	default:
		return getCustomCORSConfig()
	}
}

// getDevelopmentCORSConfig returns permissive CORS settings for development
func getDevelopmentCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled: getEnvBool("CORS_ENABLED", true),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:8080",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:8080",
		}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "HEAD", "OPTIONS"}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept", "X-Correlation-ID",
		}),
		ExposedHeaders: getEnvStringSlice("CORS_EXPOSED_HEADERS", []string{
			"Content-Disposition", "Content-Length", "X-Correlation-ID", "X-Request-ID",
		}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 86400),
		Profile:          "development",
	}
}

// getProductionCORSConfig returns CORS settings for a same-origin deployment
func getProductionCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled:          getEnvBool("CORS_ENABLED", false),
		AllowedOrigins:   getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{}),
		AllowedMethods:   getEnvStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "OPTIONS"}),
		AllowedHeaders:   getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Accept"}),
		ExposedHeaders:   getEnvStringSlice("CORS_EXPOSED_HEADERS", []string{"Content-Disposition"}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
		Profile:          "production",
	}
}

// getCustomCORSConfig returns CORS settings from individual environment variables
func getCustomCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled:          getEnvBool("CORS_ENABLED", false),
		AllowedOrigins:   getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AllowedMethods:   getEnvStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "OPTIONS"}),
		AllowedHeaders:   getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
		ExposedHeaders:   getEnvStringSlice("CORS_EXPOSED_HEADERS", []string{"Content-Disposition"}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
		Profile:          "custom",
	}
}

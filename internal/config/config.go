package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Config holds everything the application needs from the environment.
// It is constructed once at startup and passed explicitly into the wiring.
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	Port           string
	Env            string
	AllowedOrigins []string
}

func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	ttlHours := 24
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS: %q", v)
		}
		ttlHours = parsed
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return &Config{
		DatabaseURL:    dsn,
		JWTSecret:      secret,
		TokenTTL:       time.Duration(ttlHours) * time.Hour,
		Port:           port,
		Env:            os.Getenv("ENV"),
		AllowedOrigins: allowedOrigins(),
	}, nil
}

func allowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

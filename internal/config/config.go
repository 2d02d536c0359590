package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"woodo-statistic/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	W3CBaseURL        string
	ServerPort        string
	LogLevel          string
	Gateway           int
	CurrentSeason     int
	PreviousSeason    int
	RecentMatchTarget int
	CORSOrigins       []string
	PolicyFile        string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		W3CBaseURL:        strings.TrimRight(getEnv("W3C_BASE_URL", constants.DefaultW3CBaseURL), "/"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Gateway:           getEnvInt("W3C_GATEWAY", constants.DefaultGateway),
		CurrentSeason:     getEnvInt("CURRENT_SEASON", constants.DefaultCurrentSeason),
		PreviousSeason:    getEnvInt("PREVIOUS_SEASON", constants.DefaultPreviousSeason),
		RecentMatchTarget: getEnvInt("RECENT_MATCH_TARGET", constants.RecentMatchTarget),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
		PolicyFile:        getEnv("POLICY_FILE", ""),
	}

	if cfg.PreviousSeason >= cfg.CurrentSeason {
		return nil, fmt.Errorf("PREVIOUS_SEASON (%d) must be lower than CURRENT_SEASON (%d)", cfg.PreviousSeason, cfg.CurrentSeason)
	}
	if cfg.RecentMatchTarget <= 0 {
		return nil, fmt.Errorf("RECENT_MATCH_TARGET must be positive, got %d", cfg.RecentMatchTarget)
	}

	logger.Info().
		Str("w3c_base_url", cfg.W3CBaseURL).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("gateway", cfg.Gateway).
		Int("current_season", cfg.CurrentSeason).
		Int("previous_season", cfg.PreviousSeason).
		Str("policy_file", cfg.PolicyFile).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

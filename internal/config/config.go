package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration shared by the binaries
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// LocalStorePath is the JSON file holding the player identity and competition window
	LocalStorePath string

	// AdminWallets is the allow-list for the admin surface
	AdminWallets []string

	// QualifyingRanks is the size of the ranked view that earns wallet submission
	QualifyingRanks int

	HTTPAddr string

	DiscordToken         string
	DiscordApplicationID string
	DiscordGuildID       string
	DiscordChannelID     string

	LogLevel string
	LogFile  string

	// SubmitRatePerMin limits score submissions per client on the feed server
	SubmitRatePerMin int

	ExportDir string

	// CompetitionPollInterval and AdminPollInterval drive the periodic re-checks
	CompetitionPollInterval time.Duration
	AdminPollInterval       time.Duration
}

// Load reads an optional .env file and then the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisDB:                 getEnvInt("REDIS_DB", 0),
		LocalStorePath:          getEnv("LOCAL_STORE_PATH", "bonedash.json"),
		AdminWallets:            getEnvList("ADMIN_WALLETS", []string{"0x66606C24b4A24b5Fd06BbCA9B85DFcEdaF6A65C2"}),
		QualifyingRanks:         getEnvInt("QUALIFYING_RANKS", 28),
		HTTPAddr:                getEnv("HTTP_ADDR", ":8080"),
		DiscordToken:            getEnv("DISCORD_TOKEN", ""),
		DiscordApplicationID:    getEnv("APPLICATION_ID", ""),
		DiscordGuildID:          getEnv("GUILD_ID", ""),
		DiscordChannelID:        getEnv("DISCORD_CHANNEL_ID", ""),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFile:                 getEnv("LOG_FILE", "bonedash.log"),
		SubmitRatePerMin:        getEnvInt("SUBMIT_RATE_PER_MIN", 30),
		ExportDir:               getEnv("EXPORT_DIR", "."),
		CompetitionPollInterval: getEnvDuration("COMPETITION_POLL_INTERVAL", time.Minute),
		AdminPollInterval:       getEnvDuration("ADMIN_POLL_INTERVAL", 5*time.Second),
	}, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

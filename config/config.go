package config

import (
	"os"
	"strconv"
)

// Config is the env-driven service configuration
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string

	// BaseURL prefixes generated share links
	BaseURL string

	// Stage toggles and engine knobs, see internal/quiz.Config
	GenderStage    bool
	AnalyzingStage bool
	AnalyzeDelayMS int
	ReviewDepth    int

	SessionTTLMin int
}

// Load reads the configuration from the environment with defaults
func Load() *Config {
	return &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "theinsight"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:       getEnv("PORT", "8080"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		GenderStage:    getEnvBool("GENDER_STAGE", true),
		AnalyzingStage: getEnvBool("ANALYZING_STAGE", true),
		AnalyzeDelayMS: getEnvInt("ANALYZE_DELAY_MS", 2200),
		ReviewDepth:    getEnvInt("REVIEW_DEPTH", 0),
		SessionTTLMin:  getEnvInt("SESSION_TTL_MIN", 30),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	DBHost             string // Hostname or IP address for MongoDB
	DBPort             int    // Port number for MongoDB
	DBUser             string // Username for MongoDB
	DBPassword         string // Password for MongoDB
	DBName             string // Database holding maze snapshots
	SnapshotCollection string // Collection holding maze snapshots
	RedisHost          string // Hostname or IP address for Redis
	RedisPort          int    // Port number for Redis
	RedisPassword      string // Password for Redis (empty disables auth)
	CacheTTLMinutes    int    // Lifetime of cached maze snapshots
	MazeRows           int    // Default maze rows per race table
	MazeCols           int    // Default maze columns per race table
	MazeDifficulty     string // Default difficulty tier per race table
}

// Envs returns the application's configuration, loaded from environment
// variables on first call. Loading is deferred so packages that import
// config only for its constants never require the environment to be set.
var Envs = sync.OnceValue(initConfig)

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	// Populate the Config struct with required environment variables
	return Config{
		DBHost:             mustGetEnv("DB_HOST"),
		DBPort:             mustGetEnvAsInt("DB_PORT"),
		DBUser:             mustGetEnv("DB_USER"),
		DBPassword:         mustGetEnv("DB_PASS"),
		DBName:             getEnvWithDefault("DB_NAME", "mazerace"),
		SnapshotCollection: getEnvWithDefault("SNAPSHOT_COLLECTION", "maze_snapshots"),
		RedisHost:          mustGetEnv("REDIS_HOST"),
		RedisPort:          mustGetEnvAsInt("REDIS_PORT"),
		RedisPassword:      getEnvWithDefault("REDIS_PASS", ""),
		CacheTTLMinutes:    getEnvWithDefaultAsInt("CACHE_TTL_MINUTES", 30),
		MazeRows:           getEnvWithDefaultAsInt("MAZE_ROWS", 21),
		MazeCols:           getEnvWithDefaultAsInt("MAZE_COLS", 21),
		MazeDifficulty:     getEnvWithDefault("MAZE_DIFFICULTY", "medium"),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvWithDefaultAsInt retrieves the value of an environment variable as an integer or returns a default value if not set or not parseable.
func getEnvWithDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [INFO] Environment variable %s is not an integer, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

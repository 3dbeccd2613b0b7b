package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP         string  // Host IP for the render API
	RESTPort       int     // Port for the render API; 0 disables it
	GinMode        string  // Mode for the Gin framework (e.g., release, debug, test)
	LayoutPath     string  // YAML layout file; empty selects the reference world
	MaxCapacity    int     // Inventory capacity
	MaxEpisodes    int     // Episodes per experiment
	RandomSeed     int64   // Seed for furniture placement
	RegrantRewards bool    // Whether repeated paint/open keep paying
	EmptyMoveCost  float64 // Score change of a move with an empty inventory
	CarryMoveCost  float64 // Score change of a move while carrying
	StepDelayMS    int     // Pause between actions of the runner
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return loadConfig()
}

// loadConfig reads every key from the process environment.
func loadConfig() Config {
	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:       getEnvAsInt("REST_PORT", 0),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		LayoutPath:     getEnvWithDefault("LAYOUT_PATH", ""),
		MaxCapacity:    getEnvAsInt("MAX_CAPACITY", 3),
		MaxEpisodes:    getEnvAsInt("MAX_EPISODES", 10),
		RandomSeed:     int64(getEnvAsInt("RANDOM_SEED", 1)),
		RegrantRewards: getEnvAsBool("REGRANT_REWARDS", true),
		EmptyMoveCost:  getEnvAsFloat("EMPTY_MOVE_COST", -0.01),
		CarryMoveCost:  getEnvAsFloat("CARRY_MOVE_COST", -0.02),
		StepDelayMS:    getEnvAsInt("STEP_DELAY_MS", 0),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloat retrieves a float environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}

// getEnvAsBool retrieves a boolean environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}

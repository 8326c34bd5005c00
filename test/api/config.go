/*
Copyright 2025-2026 the Aimall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type TestConfig struct {
	BaseURL        string
	AdminToken     string
	RequestTimeout time.Duration
	TestTimeout    time.Duration
	DebugLogging   bool
	LogRequests    bool
	LogResponses   bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// An empty API_BASE_URL means the suite boots its own in-process deployment,
// so nothing is strictly required; a live deployment additionally needs an
// admin token for coupon administration.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	requestTimeout := getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second)
	testTimeout := getDurationWithDefault("TEST_TIMEOUT", 20*time.Minute)
	config := &TestConfig{
		BaseURL:        os.Getenv("API_BASE_URL"),
		AdminToken:     os.Getenv("API_ADMIN_TOKEN"),
		RequestTimeout: requestTimeout,
		TestTimeout:    testTimeout,
		DebugLogging:   getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:    getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:   getBoolWithDefault("LOG_RESPONSES", false),
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Embedded reports whether the suite should run against an in-process
// deployment rather than a configured live one.
func (c *TestConfig) Embedded() bool {
	return c.BaseURL == ""
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {

	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
	}

	var envPath string
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load .env file
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	if config.Embedded() {
		return nil
	}

	var missing []string

	required := map[string]string{
		"API_ADMIN_TOKEN": config.AdminToken,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to a .env file, or the gh secrets", strings.Join(missing, ", "))
	}

	return nil
}

package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func GetConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "habits"), nil
}

func GetConfigFile(name string) (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func GetConfigJSONFile() (string, error) {
	return GetConfigFile("config.json")
}

// LoadEnv loads a .env file from the working directory when present.
// A missing file is not an error.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// IsProduction reports whether APP_ENV marks this as a production
// build. Debug-only behavior, like stack traces on error envelopes,
// must stay off when this is true.
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

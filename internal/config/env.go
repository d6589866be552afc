package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when LoadEnv is called without arguments
const DefaultEnvFile = ".env"

// LoadEnv loads environment overrides from dotenv files. Variables already set
// in the process environment are kept. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
		log.Printf("config: loaded environment from %s", file)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads environment files, .env by default. A missing default
// file is not an error; a missing file named with --env-file is. Variables
// already set in the process win.
func loadDotEnv(files []string) error {
	if len(files) == 0 {
		err := godotenv.Load()
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files %v: %w", files, err)
	}
	return nil
}

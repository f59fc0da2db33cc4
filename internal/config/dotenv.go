package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv exports the variables of the dotenv file at path into the
// process environment. Variables already present in the environment are not
// overwritten. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading dotenv file %q: %w", path, err)
	}

	return nil
}

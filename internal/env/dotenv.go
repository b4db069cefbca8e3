package env

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DotEnvFileName is the name of the file with environment variables, looked up in the working directory.
const DotEnvFileName = ".env"

// LoadDotEnv loads environment variables from the given files (DotEnvFileName by default). Missing files and
// directories are skipped. Variables that are already present in the environment are never overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DotEnvFileName}
	}

	for _, path := range paths {
		if stat, err := os.Stat(path); err != nil || stat.IsDir() {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return errors.Wrapf(err, "failed to load the %s file", path)
		}
	}

	return nil
}

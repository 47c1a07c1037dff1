package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
}

var UserLiteendSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	UserLiteendSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "liteend"),
	}
}

// ConfigPath returns the path of the user's scaffold configuration file.
func ConfigPath() string {
	return filepath.Join(UserLiteendSettings.UserConfigsPath, "config.toml")
}

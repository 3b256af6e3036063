package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/srajal5/vacationplanner/internal/theme"
)

// cfg is the loaded CLI configuration, available to all subcommands after
// PersistentPreRunE.
var cfg *viper.Viper

// loadConfig reads the config file (default ~/.tripctl.yaml) and wires the
// TRIPCTL_* environment overlay. A missing config file is fine: defaults and
// environment cover everything.
func loadConfig(path string) error {
	v := viper.New()
	v.SetDefault("server", "http://localhost:8080")
	v.SetDefault("theme", string(theme.System))

	v.SetEnvPrefix("TRIPCTL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		v.SetConfigFile(filepath.Join(home, ".tripctl.yaml"))
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg = v
	return nil
}

// configPersister stores the theme preference in the CLI config file.
type configPersister struct{}

func (configPersister) Load() (theme.Preference, error) {
	return theme.Preference(cfg.GetString("theme")), nil
}

func (configPersister) Save(p theme.Preference) error {
	cfg.Set("theme", string(p))
	if err := cfg.WriteConfig(); err != nil {
		// First run: the config file does not exist yet.
		return cfg.SafeWriteConfig()
	}
	return nil
}

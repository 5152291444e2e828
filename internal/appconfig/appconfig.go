// Package appconfig is the CLI-level configuration layer: environment
// variables and an optional user config file, distinct from the
// per-repository settings in internal/core.Config (SPEC_FULL §2.2).
package appconfig

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var v *viper.Viper

// Initialize sets up the viper singleton. Call once at CLI startup.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("yaml")

	if configDir, err := os.UserConfigDir(); err == nil {
		configPath := filepath.Join(configDir, "mvcs", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
		}
	}

	v.SetEnvPrefix("MVCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("author", "")
	v.SetDefault("editor", "")
	v.SetDefault("no-color", false)
	v.SetDefault("json", false)

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// GetString retrieves a string configuration value.
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool retrieves a boolean configuration value.
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// Author resolves the commit author identity.
//
// Priority: --author flag (flagValue, if non-empty) > MVCS_AUTHOR env
// var / config.yaml `author` > git config user.name > OS username.
func Author(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if author := GetString("author"); author != "" {
		return author
	}
	if out, err := exec.Command("git", "config", "user.name").Output(); err == nil {
		if name := strings.TrimSpace(string(out)); name != "" {
			return name
		}
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "unknown"
}

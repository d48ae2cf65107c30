// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelfx configuration.

package config

import (
	"os"
	"path/filepath"
)

var configExtensions = []string{".json", ".yaml", ".yml"}

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelfx"), nil
}

// systemConfigPath returns the override, else the first existing
// texelfx.{json,yaml,yml} in the config root, else texelfx.json.
func systemConfigPath() (string, error) {
	if override != "" {
		return override, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	for _, ext := range configExtensions {
		candidate := filepath.Join(root, systemConfigName+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return filepath.Join(root, systemConfigName+configExtensions[0]), nil
}

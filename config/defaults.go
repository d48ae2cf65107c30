// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Fills missing sections and keys from the embedded defaults.

package config

import "log"

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	def, err := embeddedSystemDefaults()
	if err != nil {
		log.Printf("Config: Embedded defaults unavailable: %v", err)
		return
	}
	for name := range def {
		if section := def.Section(name); section != nil {
			cfg.RegisterDefaults(name, section)
		}
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelfx/paths.go
// Summary: Standard paths for texelfx runtime files.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Paths holds standard file paths for texelfx
type Paths struct {
	StateDir string // ~/.texelfx
	LogPath  string // ~/.texelfx/texelfx.log
}

// GetPaths returns the standard paths for texelfx files
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}
	stateDir := filepath.Join(home, ".texelfx")
	return &Paths{
		StateDir: stateDir,
		LogPath:  filepath.Join(stateDir, "texelfx.log"),
	}, nil
}

// openLog points the standard logger at path. "-" discards log output.
func openLog(path string) (func(), error) {
	if path == "-" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

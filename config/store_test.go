// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	loadErr = nil
	override = ""
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.GetInt("terminal", "frame_rate", 0) != 100 {
		t.Fatalf("expected terminal.frame_rate default of 100")
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	if filepath.Base(path) != "texelfx.json" {
		t.Fatalf("unexpected default path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	for _, name := range []string{"terminal", "burn", "wipe", "sparkler", "shootingstar", "rowslide", "unstable"} {
		if disk.Section(name) == nil {
			t.Fatalf("expected %s section to be present", name)
		}
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetSystem(Config{
		"terminal": map[string]interface{}{"frame_rate": 30},
	})
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	if got := disk.GetInt("terminal", "frame_rate", 0); got != 30 {
		t.Fatalf("expected frame_rate 30, got %d", got)
	}
}

func TestExistingConfigKeepsValuesAndGainsDefaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	path := filepath.Join(root, "texelfx", "texelfx.json")
	if err := writeConfig(path, Config{
		"wipe": map[string]interface{}{"delay": 3},
	}); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := System()
	if err := Err(); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if got := cfg.GetInt("wipe", "delay", 0); got != 3 {
		t.Fatalf("expected wipe.delay 3, got %d", got)
	}
	if got := cfg.GetString("wipe", "direction", ""); got != "column_left_to_right" {
		t.Fatalf("expected default direction, got %q", got)
	}
	if cfg.Section("burn") == nil {
		t.Fatalf("expected missing sections to be filled")
	}
}

func TestYAMLConfigViaUsePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	path := filepath.Join(t.TempDir(), "fx.yaml")
	doc := "terminal:\n  frame_rate: 60\n  no_color: true\nsparkler:\n  colors: [ff0000, 00ff00]\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	if err := UsePath(path); err != nil {
		t.Fatalf("UsePath: %v", err)
	}
	cfg := System()
	if got := cfg.GetInt("terminal", "frame_rate", 0); got != 60 {
		t.Fatalf("expected frame_rate 60, got %d", got)
	}
	if !cfg.GetBool("terminal", "no_color", false) {
		t.Fatalf("expected no_color true")
	}
	colors := cfg.GetStrings("sparkler", "colors", nil)
	if len(colors) != 2 || colors[0] != "ff0000" {
		t.Fatalf("unexpected colors %v", colors)
	}
	if got, _ := Path(); got != path {
		t.Fatalf("Path() = %s, want %s", got, path)
	}
}

func TestUnparsableConfigReportsError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := UsePath(path); err == nil {
		t.Fatalf("expected parse error")
	}
	if System().Section("terminal") == nil {
		t.Fatalf("expected defaults even when the file is broken")
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := Config{
		"s": Section{
			"str":   "x",
			"float": "1.5",
			"int":   2.0,
			"bool":  "true",
			"list":  "a, b,,c",
		},
	}
	if cfg.GetString("s", "str", "") != "x" {
		t.Fatalf("GetString")
	}
	if cfg.GetFloat("s", "float", 0) != 1.5 {
		t.Fatalf("GetFloat")
	}
	if cfg.GetInt("s", "int", 0) != 2 {
		t.Fatalf("GetInt")
	}
	if !cfg.GetBool("s", "bool", false) {
		t.Fatalf("GetBool")
	}
	if got := cfg.GetStrings("s", "list", nil); len(got) != 3 || got[2] != "c" {
		t.Fatalf("GetStrings = %v", got)
	}
	if cfg.GetInt("missing", "int", 7) != 7 {
		t.Fatalf("missing section should return default")
	}
}

func TestCloneCopiesNestedLists(t *testing.T) {
	src := Config{
		"wipe": map[string]interface{}{"gradient": []interface{}{"ff0000", "00ff00"}},
	}
	dup := Clone(src)
	dup.Section("wipe")["gradient"].([]interface{})[0] = "000000"
	if got := src.Section("wipe")["gradient"].([]interface{})[0]; got != "ff0000" {
		t.Fatalf("clone shares list storage, source now %v", got)
	}
}

func TestSectionReadsYAMLDecodedMappings(t *testing.T) {
	var cfg Config
	doc := "terminal:\n  frame_rate: 60\nwipe:\n  gradient: [ff0000, 0000ff]\n"
	if err := yaml.Unmarshal([]byte(doc), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Section("terminal") == nil {
		t.Fatalf("expected terminal section, raw value is %T", cfg["terminal"])
	}
	if got := cfg.GetInt("terminal", "frame_rate", 0); got != 60 {
		t.Fatalf("expected frame_rate 60, got %d", got)
	}

	cfg.RegisterDefaults("terminal", Section{"frame_rate": 100, "tab_width": 4})
	if got := cfg.GetInt("terminal", "frame_rate", 0); got != 60 {
		t.Fatalf("defaults overwrote the file value: %d", got)
	}
	if got := cfg.GetInt("terminal", "tab_width", 0); got != 4 {
		t.Fatalf("expected tab_width default, got %d", got)
	}

	dup := Clone(cfg)
	dup.Section("wipe")["gradient"].([]interface{})[0] = "000000"
	if got := cfg.GetStrings("wipe", "gradient", nil); got[0] != "ff0000" {
		t.Fatalf("clone shares YAML list storage, source now %v", got)
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelfx/settings.go
// Summary: Resolves run settings from the config store and command-line flags.

package main

import (
	"github.com/framegrace/texelfx/config"
	"github.com/framegrace/texelfx/graphics"
	"github.com/framegrace/texelfx/internal/effects"
)

const terminalSection = "terminal"

// settings are the terminal-level knobs of one run.
type settings struct {
	FrameRate       int
	TabWidth        int
	XtermColors     bool
	NoColor         bool
	SyntaxColors    bool
	SyntaxStyle     string
	Language        string
	UseTerminalSize bool
	Width           int
	Height          int
}

func settingsFromConfig(cfg config.Config) settings {
	return settings{
		FrameRate:       cfg.GetInt(terminalSection, "frame_rate", effects.DefaultFrameRate),
		TabWidth:        cfg.GetInt(terminalSection, "tab_width", 4),
		XtermColors:     cfg.GetBool(terminalSection, "xterm_colors", false),
		NoColor:         cfg.GetBool(terminalSection, "no_color", false),
		SyntaxColors:    cfg.GetBool(terminalSection, "syntax_colors", false),
		SyntaxStyle:     cfg.GetString(terminalSection, "syntax_style", ""),
		Language:        cfg.GetString(terminalSection, "language", ""),
		UseTerminalSize: cfg.GetBool(terminalSection, "use_terminal_size", false),
		Width:           cfg.GetInt(terminalSection, "width", 0),
		Height:          cfg.GetInt(terminalSection, "height", 0),
	}
}

func (s settings) colorMode() graphics.ColorMode {
	switch {
	case s.NoColor:
		return graphics.NoColor
	case s.XtermColors:
		return graphics.XtermColors
	}
	return graphics.TrueColor
}

// effectConfig returns the config section of effect id with the -set
// overrides applied on top.
func effectConfig(cfg config.Config, id string, overrides []string) (effects.EffectConfig, error) {
	out := effects.EffectConfig(cfg.Section(id)).Clone()
	for _, raw := range overrides {
		key, value, err := effects.ParseOverride(raw)
		if err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/syntax.go
// Summary: Assigns syntax highlighting colours to input characters.
// Notes: Tokens whose colour equals the style's base text colour are left
// uncoloured so effects fall back to their own final colours.

package texel

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelfx/motion"
)

const defaultSyntaxStyle = "monokai"

// DetectLanguage picks a lexer name for input. An explicit language wins,
// then go-enry detection from the filename and content.
func DetectLanguage(language, filename, input string) string {
	if language != "" {
		return language
	}
	return enry.GetLanguage(filename, []byte(input))
}

func lexerFor(language, filename, input string) chroma.Lexer {
	if name := DetectLanguage(language, filename, input); name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(input); l != nil {
		return l
	}
	return lexers.Fallback
}

func applySyntaxColors(t *Terminal, input string, cfg Config) error {
	name := cfg.SyntaxStyle
	if name == "" {
		name = defaultSyntaxStyle
	}
	style := styles.Get(name)
	lexer := chroma.Coalesce(lexerFor(cfg.Language, cfg.Filename, input))

	tokens, err := chroma.Tokenise(lexer, nil, input)
	if err != nil {
		return fmt.Errorf("tokenise: %w", err)
	}
	base := style.Get(chroma.Text).Colour

	line, col := 0, 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		entry := style.Get(tok.Type)
		color := tcell.ColorDefault
		if entry.Colour.IsSet() && entry.Colour != base {
			color = tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue()))
		}
		for _, r := range tok.Value {
			if r == '\n' {
				line++
				col = 0
				continue
			}
			if color != tcell.ColorDefault {
				if ch, ok := t.CharacterAt(motion.Coord{Column: col, Row: t.area.Top - line}); ok {
					ch.InputColor = color
				}
			}
			col += runewidth.RuneWidth(r)
		}
	}
	return nil
}

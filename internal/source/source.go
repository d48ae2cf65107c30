// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/source/source.go
// Summary: Acquires the text an effect animates.
// Usage: The CLI reads stdin, a file, or the output of a command run inside a
// pseudo terminal, then hands the normalised text to texel.NewTerminal.

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// DefaultTabWidth is used when a non-positive tab width is requested.
const DefaultTabWidth = 4

// ErrNoCommand is returned by RunCommand for an empty argv.
var ErrNoCommand = errors.New("source: no command given")

// Read consumes r and returns its normalised contents.
func Read(r io.Reader, tabWidth int) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return Normalize(string(data), tabWidth), nil
}

// ReadFile reads and normalises a file.
func ReadFile(path string, tabWidth int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Read(f, tabWidth)
}

// CommandSize is the pseudo terminal size commands run with.
type CommandSize struct {
	Cols uint16
	Rows uint16
}

// RunCommand runs argv inside a pseudo terminal so it produces the output it
// would show interactively, and returns that output normalised.
func RunCommand(ctx context.Context, argv []string, size CommandSize, tabWidth int) (string, error) {
	if len(argv) == 0 {
		return "", ErrNoCommand
	}
	if size.Cols == 0 {
		size.Cols = 80
	}
	if size.Rows == 0 {
		size.Rows = 24
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("COLUMNS=%d", size.Cols),
		fmt.Sprintf("LINES=%d", size.Rows),
		"TERM=xterm-256color",
	)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", argv[0], err)
	}
	defer ptmx.Close()

	var out strings.Builder
	_, copyErr := io.Copy(&out, ptmx)
	// Linux reports EIO on the master once the child side closes.
	if copyErr != nil && !errors.Is(copyErr, syscall.EIO) {
		_ = cmd.Wait()
		return "", fmt.Errorf("read %s output: %w", argv[0], copyErr)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("wait %s: %w", argv[0], err)
		}
	}
	return Normalize(out.String(), tabWidth), nil
}

// IsPiped reports whether f is not attached to a terminal.
func IsPiped(f *os.File) bool {
	return !term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the size of the terminal attached to f.
func TerminalSize(f *os.File) (int, int, error) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return w, h, nil
}

var escapeSequence = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)|\x1b[@-Z\\-_]`)

// Normalize converts line endings to \n, strips escape sequences and other
// control characters, expands tabs and trims trailing newlines.
func Normalize(s string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = escapeSequence.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = expandTabs(line, tabWidth)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func expandTabs(line string, tabWidth int) string {
	var sb strings.Builder
	col := 0
	for _, r := range line {
		switch {
		case r == '\t':
			pad := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
		case r < 0x20 || r == 0x7f:
			// dropped
		default:
			sb.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

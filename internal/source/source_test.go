package source

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		tab  int
		want string
	}{
		{"crlf", "a\r\nb\r\n", 4, "a\nb"},
		{"tabs", "a\tb\n\tc", 4, "a   b\n    c"},
		{"tab width 2", "ab\tc", 2, "ab  c"},
		{"default tab width", "\tx", 0, "    x"},
		{"sgr", "\x1b[31mred\x1b[0m plain", 4, "red plain"},
		{"osc", "\x1b]0;title\x07text", 4, "text"},
		{"controls", "a\x07b\x00c", 4, "abc"},
		{"trailing blanks", "abc   \n\n\n", 4, "abc"},
		{"wide before tab", "日\tx", 4, "日  x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in, tc.tab); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestReadAndReadFile(t *testing.T) {
	got, err := Read(strings.NewReader("hello\tworld\n"), 8)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "hello   world" {
		t.Fatalf("Read = %q", got)
	}

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("line one\r\nline two\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = ReadFile(path, 4)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "line one\nline two" {
		t.Fatalf("ReadFile = %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing"), 4); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestRunCommandCapturesPtyOutput(t *testing.T) {
	if _, err := exec.LookPath("printf"); err != nil {
		t.Skip("printf not available")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	got, err := RunCommand(ctx, []string{"printf", "one\\ttwo\\n"}, CommandSize{}, 4)
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if got != "one two" {
		t.Fatalf("RunCommand = %q", got)
	}
}

func TestRunCommandRequiresArgv(t *testing.T) {
	if _, err := RunCommand(context.Background(), nil, CommandSize{}, 4); !errors.Is(err, ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand, got %v", err)
	}
}

func TestIsPipedForRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "piped")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if !IsPiped(f) {
		t.Fatalf("a regular file is never a terminal")
	}
}

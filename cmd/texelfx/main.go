// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelfx/main.go
// Summary: Command line entry point that animates text with a chosen effect.
// Usage: `ls -l | texelfx burn`, `texelfx -input main.go -syntax wipe`,
// `texelfx -exec "git log --oneline" -set speed=0.4 rowslide`.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/framegrace/texelfx/config"
	"github.com/framegrace/texelfx/graphics"
	"github.com/framegrace/texelfx/internal/effects"
	"github.com/framegrace/texelfx/internal/source"
	"github.com/framegrace/texelfx/texel"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("texelfx", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: texelfx [flags] <effect>\n\nEffects: %s\n\nFlags:\n", strings.Join(effects.RegisteredIDs(), ", "))
		fs.PrintDefaults()
	}

	// Input flags
	inputPath := fs.String("input", "", "Read input from a file instead of stdin")
	execCmd := fs.String("exec", "", "Run a command in a pseudo terminal and animate its output")

	// Terminal flags
	configPath := fs.String("config", "", "Config file (.json, .yaml or .yml)")
	frameRate := fs.Int("frame-rate", effects.DefaultFrameRate, "Frames per second, negative disables pacing")
	xtermColors := fs.Bool("xterm-colors", false, "Map colours to the nearest xterm-256 colour")
	noColor := fs.Bool("no-color", false, "Draw without colours")
	syntax := fs.Bool("syntax", false, "Colour the input with a syntax highlighter")
	lang := fs.String("lang", "", "Language for -syntax, detected when empty")
	terminalSize := fs.Bool("terminal-size", false, "Use the whole terminal as the output area")

	// Effect flags
	var overrides stringList
	fs.Var(&overrides, "set", "Effect setting as key=value (repeatable)")
	list := fs.Bool("list", false, "List effects and exit")
	logFile := fs.String("log-file", "", "Log file (default ~/.texelfx/texelfx.log, - discards)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if *list {
		for _, id := range effects.RegisteredIDs() {
			fmt.Println(id)
		}
		return nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one effect name, got %d", fs.NArg())
	}
	effectID := fs.Arg(0)
	if _, ok := effects.Lookup(effectID); !ok {
		return fmt.Errorf("%w: %q (see -list)", effects.ErrUnknownEffect, effectID)
	}

	paths, err := GetPaths()
	if err != nil {
		return fmt.Errorf("resolve paths: %w", err)
	}
	if *logFile == "" {
		*logFile = paths.LogPath
	}
	closeLog, err := openLog(*logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if *configPath != "" {
		if err := config.UsePath(*configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else if err := config.Err(); err != nil {
		log.Printf("Config: %v", err)
	}
	cfg := config.System()

	s := settingsFromConfig(cfg)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frame-rate":
			s.FrameRate = *frameRate
		case "xterm-colors":
			s.XtermColors = *xtermColors
		case "no-color":
			s.NoColor = *noColor
		case "syntax":
			s.SyntaxColors = *syntax
		case "lang":
			s.Language = *lang
		case "terminal-size":
			s.UseTerminalSize = *terminalSize
		}
	})

	effectCfg, err := effectConfig(cfg, effectID, overrides)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input, err := readInput(ctx, s, *inputPath, *execCmd)
	if err != nil {
		return err
	}
	if input == "" {
		fmt.Println("NO INPUT.")
		return nil
	}

	termCfg := texel.Config{
		Width:        s.Width,
		Height:       s.Height,
		SyntaxColors: s.SyntaxColors,
		Language:     s.Language,
		Filename:     *inputPath,
		SyntaxStyle:  s.SyntaxStyle,
	}
	if s.UseTerminalSize {
		if w, h, err := source.TerminalSize(os.Stdout); err == nil {
			termCfg.Width, termCfg.Height = w, h
		} else {
			log.Printf("Terminal: %v", err)
		}
	}
	terminal := texel.NewTerminal(input, termCfg)

	eff, err := effects.Create(effectID, terminal, effectCfg)
	if err != nil {
		return err
	}
	return animate(ctx, eff, s)
}

// readInput picks the input source: -exec, then -input, then piped stdin.
func readInput(ctx context.Context, s settings, inputPath, execCmd string) (string, error) {
	switch {
	case execCmd != "":
		var size source.CommandSize
		if w, h, err := source.TerminalSize(os.Stdout); err == nil {
			size = source.CommandSize{Cols: uint16(w), Rows: uint16(h)}
		}
		return source.RunCommand(ctx, strings.Fields(execCmd), size, s.TabWidth)
	case inputPath != "":
		return source.ReadFile(inputPath, s.TabWidth)
	case source.IsPiped(os.Stdin):
		return source.Read(os.Stdin, s.TabWidth)
	}
	return "", errors.New("no input: pipe text into texelfx or use -input or -exec")
}

// animate runs eff on a full-screen tcell screen until it finishes or the
// user quits, then prints the final frame to stdout.
func animate(ctx context.Context, eff effects.Effect, s settings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	driver := texel.NewTcellScreenDriver(screen)
	if err := driver.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	driver.HideCursor()
	driver.Clear()

	renderer := texel.NewRenderer(driver, graphics.NewColorCache(s.colorMode()))
	runner := effects.NewRunner(eff, renderer, s.FrameRate)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer func() { _ = screen.PostEvent(tcell.NewEventInterrupt(nil)) }()
		err := runner.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		pollEvents(driver, cancel)
		return nil
	})
	err = g.Wait()
	driver.Fini()
	if err != nil {
		return err
	}
	if out := runner.LastFrame().String(); out != "" {
		fmt.Println(out)
	}
	return nil
}

// pollEvents cancels the run on q, Esc or Ctrl-C and returns on interrupt.
func pollEvents(driver texel.ScreenDriver, cancel context.CancelFunc) {
	for {
		switch ev := driver.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventInterrupt:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				log.Printf("Effects: cancelled by user")
				cancel()
				return
			}
		}
	}
}

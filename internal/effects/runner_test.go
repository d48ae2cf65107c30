package effects

import (
	"context"
	"errors"
	"testing"

	"github.com/framegrace/texelfx/texel"
)

type recordingSink struct {
	frames []string
	err    error
}

func (s *recordingSink) Draw(f texel.Frame) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, f.String())
	return nil
}

// countdownEffect yields n frames and then stops.
type countdownEffect struct {
	n       int
	prepErr error
}

func (e *countdownEffect) ID() string     { return "countdown" }
func (e *countdownEffect) Prepare() error { return e.prepErr }
func (e *countdownEffect) Next() (texel.Frame, bool) {
	if e.n == 0 {
		return texel.Frame{}, false
	}
	e.n--
	return texel.NewFrame(1, 1), true
}

func TestRunnerDrawsEveryFrame(t *testing.T) {
	sink := &recordingSink{}
	r := NewRunner(&countdownEffect{n: 5}, sink, -1)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Frames() != 5 || len(sink.frames) != 5 {
		t.Fatalf("expected 5 frames, runner %d sink %d", r.Frames(), len(sink.frames))
	}
}

func TestRunnerWithRealEffect(t *testing.T) {
	term := texel.NewTerminal("hi\nyo", texel.Config{})
	eff, err := Create("wipe", term, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	sink := &recordingSink{}
	r := NewRunner(eff, sink, -1)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := r.LastFrame().String(); got != "hi\nyo" {
		t.Fatalf("last frame %q", got)
	}
	if sink.frames[len(sink.frames)-1] != "hi\nyo" {
		t.Fatalf("sink saw %q last", sink.frames[len(sink.frames)-1])
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(&countdownEffect{n: 1000}, nil, -1)
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if r.Frames() != 1 {
		t.Fatalf("expected to stop after the first frame, drew %d", r.Frames())
	}
}

func TestRunnerPacedCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(&countdownEffect{n: 1000}, nil, 10)
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunnerPropagatesErrors(t *testing.T) {
	prep := errors.New("prep failed")
	r := NewRunner(&countdownEffect{prepErr: prep}, nil, -1)
	if err := r.Run(context.Background()); !errors.Is(err, prep) {
		t.Fatalf("expected prepare error, got %v", err)
	}
	drawErr := errors.New("screen gone")
	r = NewRunner(&countdownEffect{n: 3}, &recordingSink{err: drawErr}, -1)
	if err := r.Run(context.Background()); !errors.Is(err, drawErr) {
		t.Fatalf("expected draw error, got %v", err)
	}
}

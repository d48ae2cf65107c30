// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: graphics/animation.go
// Summary: Per-character scene registry and playback.
// Usage: Owned by a texel.Character, which steps it once per tick right
// after moving its motion.
// Notes: The tracker and sink are borrowed from the owning character; the
// animation never outlives it.

package graphics

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/framegrace/texelfx/motion"
)

var (
	// ErrDuplicateScene is returned when a scene name is already registered.
	ErrDuplicateScene = errors.New("graphics: duplicate scene")
	// ErrSceneNotFound is returned by QueryScene for unknown names.
	ErrSceneNotFound = errors.New("graphics: scene not found")
	// ErrEmptyScene is returned when activating a scene without frames.
	ErrEmptyScene = errors.New("graphics: scene has no frames")
)

// MotionTracker exposes the motion progress that synced scenes follow.
type MotionTracker interface {
	ActiveWaypoint() *motion.Waypoint
	SegmentProgress() (current, max int)
}

// Animation plays at most one scene at a time.
type Animation struct {
	scenes map[string]*Scene
	nextID int
	active *Scene
	visual Visual

	tracker MotionTracker
	sink    EventSink
}

// NewAnimation creates an animation displaying initial until a scene runs.
// tracker and sink may be nil.
func NewAnimation(tracker MotionTracker, sink EventSink, initial Visual) *Animation {
	return &Animation{
		scenes:  make(map[string]*Scene),
		visual:  initial,
		tracker: tracker,
		sink:    sink,
	}
}

// NewScene registers an empty scene. An empty name is replaced by the
// scene id.
func (a *Animation) NewScene(name string) (*Scene, error) {
	id := a.nextID
	if name == "" {
		name = strconv.Itoa(id)
	}
	if _, exists := a.scenes[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateScene, name)
	}
	a.nextID++
	s := &Scene{ID: id, Name: name}
	a.scenes[name] = s
	return s, nil
}

// QueryScene looks up a registered scene.
func (a *Animation) QueryScene(name string) (*Scene, error) {
	s, ok := a.scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSceneNotFound, name)
	}
	return s, nil
}

// ActivateScene starts s and immediately shows its first frame.
func (a *Animation) ActivateScene(s *Scene) error {
	if s == nil || s.Len() == 0 {
		name := ""
		if s != nil {
			name = s.Name
		}
		return fmt.Errorf("%w: %q", ErrEmptyScene, name)
	}
	a.active = s
	a.visual = s.first()
	a.emit(Event{Kind: SceneActivated, Scene: s})
	return nil
}

// DeactivateScene stops s if it is the active scene.
func (a *Animation) DeactivateScene(s *Scene) {
	if a.active == s {
		a.active = nil
	}
}

// ActiveScene returns the playing scene or nil.
func (a *Animation) ActiveScene() *Scene {
	return a.active
}

// Visual returns what the character currently shows.
func (a *Animation) Visual() Visual {
	return a.visual
}

// SetVisual overrides the displayed visual without touching any scene.
func (a *Animation) SetVisual(v Visual) {
	a.visual = v
}

// ActiveSceneComplete reports whether dependent logic may proceed. Looping
// scenes always count as complete. A synced scene counts as complete while
// its waypoint is still the motion's active target.
func (a *Animation) ActiveSceneComplete() bool {
	s := a.active
	if s == nil {
		return true
	}
	if len(s.pending) == 0 || s.Looping {
		return true
	}
	if s.SyncWaypoint != nil && a.tracker != nil && a.tracker.ActiveWaypoint() == s.SyncWaypoint {
		return true
	}
	return false
}

// Step advances the active scene by one tick.
func (a *Animation) Step() {
	s := a.active
	if s == nil || len(s.pending) == 0 {
		return
	}
	if s.SyncWaypoint != nil {
		if a.tracker != nil && a.tracker.ActiveWaypoint() == s.SyncWaypoint {
			current, total := a.tracker.SegmentProgress()
			a.visual = s.pending[syncIndex(len(s.pending), current, total)].Visual
		} else {
			a.visual = s.consumeAll()
		}
	} else {
		a.visual = s.nextVisual()
	}

	if a.ActiveSceneComplete() {
		if !s.Looping {
			s.Reset()
			a.active = nil
		}
		a.emit(Event{Kind: SceneComplete, Scene: s})
	}
}

// syncIndex maps segment progress onto a frame index.
func syncIndex(frames, current, total int) int {
	progress := float64(max(current, 1)) / float64(max(total, 1))
	idx := int(math.RoundToEven(float64(frames) * progress))
	if idx >= frames {
		idx = frames - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (a *Animation) emit(ev Event) {
	if a.sink != nil {
		a.sink.HandleEvent(ev)
	}
}

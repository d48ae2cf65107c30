// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package graphics

import "fmt"

// EventKind tags an animation event.
type EventKind int

const (
	SceneActivated EventKind = iota
	SceneComplete
)

func (k EventKind) String() string {
	switch k {
	case SceneActivated:
		return "scene-activated"
	case SceneComplete:
		return "scene-complete"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is emitted synchronously by an Animation.
type Event struct {
	Kind  EventKind
	Scene *Scene
}

// EventSink receives animation events.
type EventSink interface {
	HandleEvent(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// HandleEvent calls f(ev).
func (f EventSinkFunc) HandleEvent(ev Event) {
	f(ev)
}

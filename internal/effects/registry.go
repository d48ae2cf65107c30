// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/registry.go
// Summary: Registry of effect factories keyed by effect ID.
// Usage: Each effect registers itself from init; the CLI resolves the
// requested effect with Create.

package effects

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/framegrace/texelfx/texel"
)

// ErrUnknownEffect is returned by Create for unregistered IDs.
var ErrUnknownEffect = errors.New("effects: unknown effect")

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Factory constructs an effect for a terminal given its configuration map.
type Factory func(*texel.Terminal, EffectConfig) (Effect, error)

// Register associates an effect ID with a factory. It panics on duplicate IDs.
func Register(id string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[id]; exists {
		panic("effects: duplicate registration for " + id)
	}
	registry[id] = factory
}

// Lookup fetches a factory by ID.
func Lookup(id string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[id]
	return f, ok
}

// RegisteredIDs returns the registered effect identifiers in sorted order.
func RegisteredIDs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Create builds the effect registered under id.
func Create(id string, terminal *texel.Terminal, cfg EffectConfig) (Effect, error) {
	factory, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, id)
	}
	eff, err := factory(terminal, cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", id, err)
	}
	return eff, nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "sync"

// Channel is a sparse per-entity attribute store, mapping ids of one
// entity kind to values of one type. Each channel carries its own
// RWMutex so that callers sharing a mesh across goroutines can hold,
// for example, connectivity for write while keeping positions
// read-locked. The accessor methods do not lock: construction and
// editing are single-threaded operations, and callers sharing a mesh
// take the locks themselves.
type Channel[ID ~int, V any] struct {
	sync.RWMutex

	values map[ID]V
}

// NewChannel returns a new empty attribute channel.
func NewChannel[ID ~int, V any]() *Channel[ID, V] {
	return &Channel[ID, V]{values: make(map[ID]V)}
}

// Get returns the value for the given id, and whether one is present.
func (ch *Channel[ID, V]) Get(id ID) (V, bool) {
	v, ok := ch.values[id]
	return v, ok
}

// Value returns the value for the given id, or the zero value if absent.
func (ch *Channel[ID, V]) Value(id ID) V {
	return ch.values[id]
}

// Set sets the value for the given id.
func (ch *Channel[ID, V]) Set(id ID, v V) {
	ch.values[id] = v
}

// Delete removes the value for the given id, if present.
func (ch *Channel[ID, V]) Delete(id ID) {
	delete(ch.values, id)
}

// Len returns the number of ids with a value set.
func (ch *Channel[ID, V]) Len() int {
	return len(ch.values)
}

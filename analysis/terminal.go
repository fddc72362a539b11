package analysis

import (
	"time"

	"github.com/winnowlabs/winnow/errors"
)

// TerminalSequence is the dead-end result of a Reduce or Process on a
// Sequence. It carries a single arbitrary value and exposes only raw-data
// retrieval: none of the analysis operations are implemented, so further
// analysis is impossible.
type TerminalSequence struct {
	value any
	ts    time.Time
}

// Timestamp returns the creation time of the container.
func (t *TerminalSequence) Timestamp() time.Time { return t.ts }

// Raw returns the accumulated value unchanged.
func (t *TerminalSequence) Raw() any { return t.value }

// Get returns the accumulated value for an empty path; any non-empty path
// misses, since there is no grouping left to traverse.
func (t *TerminalSequence) Get(path ...any) (any, error) {
	if len(path) == 0 {
		return t.value, nil
	}
	return nil, errors.MissingKey(path[0])
}

// TerminalGrouped is the dead-end result of a Reduce or Process on a
// Grouped container. It keeps the producer's key set, with a terminal
// container under every key.
type TerminalGrouped struct {
	children map[any]Container
	ts       time.Time
}

// Timestamp returns the creation time of the container.
func (t *TerminalGrouped) Timestamp() time.Time { return t.ts }

// Len returns the number of groups held.
func (t *TerminalGrouped) Len() int { return len(t.children) }

// Keys returns the group keys in no particular order.
func (t *TerminalGrouped) Keys() []any {
	keys := make([]any, 0, len(t.children))
	for key := range t.children {
		keys = append(keys, key)
	}
	return keys
}

// Group returns the child container under key.
func (t *TerminalGrouped) Group(key any) (Container, error) {
	child, ok := t.children[key]
	if !ok {
		return nil, errors.MissingKey(key)
	}
	return child, nil
}

// Raw recursively unwraps the grouping into a plain mapping of key to the
// children's raw payloads.
func (t *TerminalGrouped) Raw() any {
	out := make(map[any]any, len(t.children))
	for key, child := range t.children {
		out[key] = child.Raw()
	}
	return out
}

// Get traverses nested groupings by key. An empty path returns the mapping
// of key to child container unchanged.
func (t *TerminalGrouped) Get(path ...any) (any, error) {
	if len(path) == 0 {
		children := make(map[any]Container, len(t.children))
		for key, child := range t.children {
			children[key] = child
		}
		return children, nil
	}
	child, ok := t.children[path[0]]
	if !ok {
		return nil, errors.MissingKey(path[0])
	}
	return child.Get(path[1:]...)
}

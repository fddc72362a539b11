package analysis

import (
	"time"

	"github.com/winnowlabs/winnow/errors"
)

// Grouped is a container holding a mapping from key to child container.
// Children may themselves be Sequences or further Grouped containers, so
// the tree's depth equals the number of successive IndexBy operations
// applied. Every operation recurses into the children and keeps the key set
// unchanged.
type Grouped struct {
	children map[any]Analyzable
	ts       time.Time
}

// NewGrouped creates a Grouped container from a pre-built mapping of key to
// child container. Children must still accept analysis: a terminal
// container can never be wrapped back into a Grouped, and a nil child is
// rejected the same way.
func NewGrouped(children map[any]Container, opts ...Option) (*Grouped, error) {
	o := buildOptions(opts)
	copied := make(map[any]Analyzable, len(children))
	for key, child := range children {
		a, ok := child.(Analyzable)
		if child == nil || !ok {
			return nil, errors.IncorrectInputDataType("a mapping of analyzable containers", child)
		}
		copied[key] = a
	}
	return &Grouped{children: copied, ts: o.timestamp}, nil
}

// Timestamp returns the creation time of the container.
func (g *Grouped) Timestamp() time.Time { return g.ts }

// Len returns the number of groups held.
func (g *Grouped) Len() int { return len(g.children) }

// Keys returns the group keys in no particular order.
func (g *Grouped) Keys() []any {
	keys := make([]any, 0, len(g.children))
	for key := range g.children {
		keys = append(keys, key)
	}
	return keys
}

// Group returns the child container under key.
func (g *Grouped) Group(key any) (Container, error) {
	child, ok := g.children[key]
	if !ok {
		return nil, errors.MissingKey(key)
	}
	return child, nil
}

// Raw recursively unwraps the grouping into a plain mapping of key to the
// children's raw payloads.
func (g *Grouped) Raw() any {
	out := make(map[any]any, len(g.children))
	for key, child := range g.children {
		out[key] = child.Raw()
	}
	return out
}

// Get traverses nested groupings by key. An empty path returns the mapping
// of key to child container unchanged.
func (g *Grouped) Get(path ...any) (any, error) {
	if len(path) == 0 {
		children := make(map[any]Container, len(g.children))
		for key, child := range g.children {
			children[key] = child
		}
		return children, nil
	}
	child, ok := g.children[path[0]]
	if !ok {
		return nil, errors.MissingKey(path[0])
	}
	return child.Get(path[1:]...)
}

// Analyze routes to the operation matching the analyzer's declared kind.
func (g *Grouped) Analyze(a Analyzer) (Container, error) {
	if a == nil {
		return nil, errors.NotAnAnalyzer(a)
	}
	switch a.Kind() {
	case KindIndexBy:
		return g.IndexBy(a)
	case KindMap:
		return g.Map(a)
	case KindFilter:
		return g.Filter(a)
	case KindReduce:
		return g.Reduce(a)
	case KindSort:
		return g.Sort(a)
	case KindTransform:
		return g.Transform(a)
	case KindProcess:
		return g.Process(a)
	default:
		return nil, errors.NotAnAnalyzer(a)
	}
}

// IndexBy applies IndexBy to every child, deepening each group by one level
// while keeping this container's key set unchanged.
func (g *Grouped) IndexBy(a Analyzer) (*Grouped, error) {
	return g.recurse(KindIndexBy, a)
}

// Map applies Map to every child, keeping the key set unchanged.
func (g *Grouped) Map(a Analyzer) (*Grouped, error) {
	return g.recurse(KindMap, a)
}

// Filter applies Filter to every child, keeping the key set unchanged.
func (g *Grouped) Filter(a Analyzer) (*Grouped, error) {
	return g.recurse(KindFilter, a)
}

// Sort applies Sort to every child, keeping the key set unchanged.
func (g *Grouped) Sort(a Analyzer) (*Grouped, error) {
	return g.recurse(KindSort, a)
}

// Transform applies Transform to every child, keeping the key set unchanged.
func (g *Grouped) Transform(a Analyzer) (*Grouped, error) {
	return g.recurse(KindTransform, a)
}

// Reduce applies Reduce to every child and collects the per-key terminal
// results into a TerminalGrouped with the same key set.
func (g *Grouped) Reduce(a Analyzer) (*TerminalGrouped, error) {
	return g.recurseTerminal(KindReduce, a)
}

// Process applies Process to every child and collects the per-key terminal
// results into a TerminalGrouped with the same key set.
func (g *Grouped) Process(a Analyzer) (*TerminalGrouped, error) {
	return g.recurseTerminal(KindProcess, a)
}

// recurse applies a non-terminal operation to every child and rebuilds a
// Grouped with the same key set. A failure on any key aborts the whole
// operation and propagates unwrapped, so the key-set invariant is never
// violated by a partially rebuilt grouping.
func (g *Grouped) recurse(op Kind, a Analyzer) (*Grouped, error) {
	if err := checkKind(op, a); err != nil {
		return nil, err
	}
	debugOp("grouped", op, a)

	children := make(map[any]Analyzable, len(g.children))
	for key, child := range g.children {
		out, err := child.Analyze(a)
		if err != nil {
			return nil, err
		}
		// Non-terminal kinds always produce analyzable containers.
		children[key] = out.(Analyzable)
	}
	return &Grouped{children: children, ts: g.ts}, nil
}

// recurseTerminal applies a terminal operation to every child and rebuilds
// a TerminalGrouped with the same key set.
func (g *Grouped) recurseTerminal(op Kind, a Analyzer) (*TerminalGrouped, error) {
	if err := checkKind(op, a); err != nil {
		return nil, err
	}
	debugOp("grouped", op, a)

	children := make(map[any]Container, len(g.children))
	for key, child := range g.children {
		out, err := child.Analyze(a)
		if err != nil {
			return nil, err
		}
		children[key] = out
	}
	return &TerminalGrouped{children: children, ts: g.ts}, nil
}

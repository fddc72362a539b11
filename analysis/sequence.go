package analysis

import (
	"sort"
	"time"

	"github.com/winnowlabs/winnow/errors"
)

// Sequence is a container holding a flat ordered collection of opaque
// items. It is the only container type fresh input may be wrapped in, and
// it implements every analysis operation directly.
type Sequence struct {
	items []any
	ts    time.Time
}

// NewSequence creates a Sequence from an ordered collection of opaque
// items. The input slice is copied; the container never aliases it.
func NewSequence(items []any, opts ...Option) *Sequence {
	o := buildOptions(opts)
	copied := make([]any, len(items))
	copy(copied, items)
	return &Sequence{items: copied, ts: o.timestamp}
}

// Timestamp returns the creation time of the container.
func (s *Sequence) Timestamp() time.Time { return s.ts }

// Len returns the number of items held.
func (s *Sequence) Len() int { return len(s.items) }

// Items returns a copy of the item sequence.
func (s *Sequence) Items() []any {
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

// Raw returns a copy of the item sequence.
func (s *Sequence) Raw() any { return s.Items() }

// Get returns the item sequence for an empty path. Key traversal is only
// meaningful on grouped containers, so any non-empty path misses.
func (s *Sequence) Get(path ...any) (any, error) {
	if len(path) == 0 {
		return s.Raw(), nil
	}
	return nil, errors.MissingKey(path[0])
}

// Analyze routes to the operation matching the analyzer's declared kind.
func (s *Sequence) Analyze(a Analyzer) (Container, error) {
	if a == nil {
		return nil, errors.NotAnAnalyzer(a)
	}
	switch a.Kind() {
	case KindIndexBy:
		return s.IndexBy(a)
	case KindMap:
		return s.Map(a)
	case KindFilter:
		return s.Filter(a)
	case KindReduce:
		return s.Reduce(a)
	case KindSort:
		return s.Sort(a)
	case KindTransform:
		return s.Transform(a)
	case KindProcess:
		return s.Process(a)
	default:
		return nil, errors.NotAnAnalyzer(a)
	}
}

// IndexBy groups the items into a Grouped container according to the keys
// computed by the analyzer. An item whose key function returns nil is
// dropped; a Keys return files the item under every listed key; items
// sharing a key keep their original relative order.
func (s *Sequence) IndexBy(a Analyzer) (*Grouped, error) {
	if err := checkKind(KindIndexBy, a); err != nil {
		return nil, err
	}
	debugOp("sequence", KindIndexBy, a)

	groups := make(map[any][]any)
	err := guard(KindIndexBy, a, func() error {
		ia, ok := a.(IndexByAnalyzer)
		if !ok {
			return errNotImplemented(KindIndexBy)
		}
		for _, item := range s.items {
			v, err := ia.IndexBy(item)
			if err != nil {
				return err
			}
			for _, key := range fanOut(v) {
				groups[key] = append(groups[key], item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	children := make(map[any]Analyzable, len(groups))
	for key, items := range groups {
		children[key] = &Sequence{items: items, ts: s.ts}
	}
	return &Grouped{children: children, ts: s.ts}, nil
}

// Map rewrites every item with the analyzer's mapping function, preserving
// order and count.
func (s *Sequence) Map(a Analyzer) (*Sequence, error) {
	if err := checkKind(KindMap, a); err != nil {
		return nil, err
	}
	debugOp("sequence", KindMap, a)

	out := make([]any, len(s.items))
	err := guard(KindMap, a, func() error {
		ma, ok := a.(MapAnalyzer)
		if !ok {
			return errNotImplemented(KindMap)
		}
		for i, item := range s.items {
			v, err := ma.Map(item)
			if err != nil {
				return err
			}
			out[i] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Sequence{items: out, ts: s.ts}, nil
}

// Filter keeps the items for which the analyzer's predicate is true,
// preserving their relative order.
func (s *Sequence) Filter(a Analyzer) (*Sequence, error) {
	if err := checkKind(KindFilter, a); err != nil {
		return nil, err
	}
	debugOp("sequence", KindFilter, a)

	out := make([]any, 0, len(s.items))
	err := guard(KindFilter, a, func() error {
		fa, ok := a.(FilterAnalyzer)
		if !ok {
			return errNotImplemented(KindFilter)
		}
		for _, item := range s.items {
			keep, err := fa.Filter(item)
			if err != nil {
				return err
			}
			if keep {
				out = append(out, item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Sequence{items: out, ts: s.ts}, nil
}

// Reduce folds the items left-to-right into a single value and wraps it in
// a terminal container. Without a seed the fold starts from the first item
// and an empty sequence fails.
func (s *Sequence) Reduce(a Analyzer) (*TerminalSequence, error) {
	if err := checkKind(KindReduce, a); err != nil {
		return nil, err
	}
	debugOp("sequence", KindReduce, a)

	var acc any
	err := guard(KindReduce, a, func() error {
		ra, ok := a.(ReduceAnalyzer)
		if !ok {
			return errNotImplemented(KindReduce)
		}
		items := s.items
		if seed, has := ra.Seed(); has {
			acc = seed
		} else {
			if len(items) == 0 {
				return errEmptyReduce
			}
			acc = items[0]
			items = items[1:]
		}
		for _, item := range items {
			v, err := ra.Reduce(acc, item)
			if err != nil {
				return err
			}
			acc = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &TerminalSequence{value: acc, ts: s.ts}, nil
}

// Sort reorders the items with the analyzer's comparator. The sort is
// stable: items that compare equal keep their relative order.
func (s *Sequence) Sort(a Analyzer) (*Sequence, error) {
	if err := checkKind(KindSort, a); err != nil {
		return nil, err
	}
	debugOp("sequence", KindSort, a)

	out := s.Items()
	err := guard(KindSort, a, func() error {
		sa, ok := a.(SortAnalyzer)
		if !ok {
			return errNotImplemented(KindSort)
		}
		var cmpErr error
		sort.SliceStable(out, func(i, j int) bool {
			if cmpErr != nil {
				return false
			}
			c, err := sa.Compare(out[i], out[j])
			if err != nil {
				cmpErr = err
				return false
			}
			return c < 0
		})
		return cmpErr
	})
	if err != nil {
		return nil, err
	}
	return &Sequence{items: out, ts: s.ts}, nil
}

// Transform hands the entire item sequence to the analyzer in one call and
// wraps the returned sequence, which may have arbitrary new length and
// content. The result remains analyzable.
func (s *Sequence) Transform(a Analyzer) (*Sequence, error) {
	if err := checkKind(KindTransform, a); err != nil {
		return nil, err
	}
	debugOp("sequence", KindTransform, a)

	var out []any
	err := guard(KindTransform, a, func() error {
		ta, ok := a.(TransformAnalyzer)
		if !ok {
			return errNotImplemented(KindTransform)
		}
		items, err := ta.Transform(s.Items())
		if err != nil {
			return err
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewSequence(out, WithTimestamp(s.ts)), nil
}

// Process hands the entire item sequence to the analyzer in one call and
// wraps whatever it returns in a terminal container.
func (s *Sequence) Process(a Analyzer) (*TerminalSequence, error) {
	if err := checkKind(KindProcess, a); err != nil {
		return nil, err
	}
	debugOp("sequence", KindProcess, a)

	var out any
	err := guard(KindProcess, a, func() error {
		pa, ok := a.(ProcessAnalyzer)
		if !ok {
			return errNotImplemented(KindProcess)
		}
		v, err := pa.Process(s.Items())
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &TerminalSequence{value: out, ts: s.ts}, nil
}

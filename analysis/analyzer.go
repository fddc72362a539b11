package analysis

// Kind identifies which analysis operation an analyzer implements.
type Kind string

const (
	// KindIndexBy partitions items into named groups.
	KindIndexBy Kind = "indexby"
	// KindMap rewrites every item, preserving order and count.
	KindMap Kind = "map"
	// KindFilter keeps items matching a predicate.
	KindFilter Kind = "filter"
	// KindReduce folds the items into a single terminal value.
	KindReduce Kind = "reduce"
	// KindSort reorders items with a comparator.
	KindSort Kind = "sort"
	// KindTransform rewrites the whole item sequence in one call.
	KindTransform Kind = "transform"
	// KindProcess consumes the whole item sequence into a terminal value.
	KindProcess Kind = "process"
)

// Valid reports whether k is one of the recognized analyzer kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindIndexBy, KindMap, KindFilter, KindReduce, KindSort, KindTransform, KindProcess:
		return true
	}
	return false
}

// Analyzer is a user-supplied analysis rule. The declared kind must match
// the operation the analyzer is passed to; each kind has a single-method
// contract below that the analyzer must also implement.
type Analyzer interface {
	Kind() Kind
}

// Keys marks a multi-key return from an IndexByAnalyzer: the item is placed
// under every listed key. Only this exact type fans out — any other value,
// including a plain slice, is treated as a single opaque key.
type Keys []any

// IndexByAnalyzer computes the grouping key(s) for one item.
// Returning nil drops the item from every group; returning Keys places the
// item under each listed key; any other value is a single key.
type IndexByAnalyzer interface {
	Analyzer
	IndexBy(item any) (any, error)
}

// MapAnalyzer rewrites one item.
type MapAnalyzer interface {
	Analyzer
	Map(item any) (any, error)
}

// FilterAnalyzer decides whether one item is kept.
type FilterAnalyzer interface {
	Analyzer
	Filter(item any) (bool, error)
}

// ReduceAnalyzer folds items left-to-right into an accumulator.
// Seed returns the initial accumulator and whether one was supplied; without
// a seed, folding starts from the first item and requires a non-empty
// sequence. The explicit seed keeps the accumulator and item types apart
// without runtime type inspection.
type ReduceAnalyzer interface {
	Analyzer
	Seed() (any, bool)
	Reduce(acc, item any) (any, error)
}

// SortAnalyzer orders two items: negative if a sorts before b, zero if
// equal, positive if after.
type SortAnalyzer interface {
	Analyzer
	Compare(a, b any) (int, error)
}

// TransformAnalyzer rewrites the entire item sequence in a single call.
// The result may have arbitrary new length and content.
type TransformAnalyzer interface {
	Analyzer
	Transform(items []any) ([]any, error)
}

// ProcessAnalyzer consumes the entire item sequence and produces an
// arbitrary terminal value.
type ProcessAnalyzer interface {
	Analyzer
	Process(items []any) (any, error)
}

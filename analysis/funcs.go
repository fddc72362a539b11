package analysis

// Function adapters wrap bare functions as analyzers, so callers can pass
// either an analyzer object or a plain function to any operation.

// IndexByFunc adapts a key function into an IndexByAnalyzer.
func IndexByFunc(fn func(item any) (any, error)) IndexByAnalyzer {
	return indexByFunc{fn}
}

type indexByFunc struct {
	fn func(any) (any, error)
}

func (indexByFunc) Kind() Kind { return KindIndexBy }
func (f indexByFunc) IndexBy(item any) (any, error) { return f.fn(item) }

// MapFunc adapts a unary mapping function into a MapAnalyzer.
func MapFunc(fn func(item any) (any, error)) MapAnalyzer {
	return mapFunc{fn}
}

type mapFunc struct {
	fn func(any) (any, error)
}

func (mapFunc) Kind() Kind { return KindMap }
func (f mapFunc) Map(item any) (any, error) { return f.fn(item) }

// FilterFunc adapts a predicate into a FilterAnalyzer.
func FilterFunc(fn func(item any) (bool, error)) FilterAnalyzer {
	return filterFunc{fn}
}

type filterFunc struct {
	fn func(any) (bool, error)
}

func (filterFunc) Kind() Kind { return KindFilter }
func (f filterFunc) Filter(item any) (bool, error) { return f.fn(item) }

// ReduceFunc adapts a binary combining function into a ReduceAnalyzer with
// no initial value: folding starts from the first item.
func ReduceFunc(fn func(acc, item any) (any, error)) ReduceAnalyzer {
	return reduceFunc{fn: fn}
}

// ReduceFuncSeed adapts a binary combining function into a ReduceAnalyzer
// that starts folding from seed.
func ReduceFuncSeed(seed any, fn func(acc, item any) (any, error)) ReduceAnalyzer {
	return reduceFunc{seed: seed, hasSeed: true, fn: fn}
}

type reduceFunc struct {
	seed    any
	hasSeed bool
	fn      func(acc, item any) (any, error)
}

func (reduceFunc) Kind() Kind { return KindReduce }
func (f reduceFunc) Seed() (any, bool) { return f.seed, f.hasSeed }
func (f reduceFunc) Reduce(acc, item any) (any, error) { return f.fn(acc, item) }

// SortFunc adapts a three-way comparator into a SortAnalyzer.
func SortFunc(fn func(a, b any) (int, error)) SortAnalyzer {
	return sortFunc{fn}
}

type sortFunc struct {
	fn func(a, b any) (int, error)
}

func (sortFunc) Kind() Kind { return KindSort }
func (f sortFunc) Compare(a, b any) (int, error) { return f.fn(a, b) }

// TransformFunc adapts a bulk-rewrite function into a TransformAnalyzer.
func TransformFunc(fn func(items []any) ([]any, error)) TransformAnalyzer {
	return transformFunc{fn}
}

type transformFunc struct {
	fn func([]any) ([]any, error)
}

func (transformFunc) Kind() Kind { return KindTransform }
func (f transformFunc) Transform(items []any) ([]any, error) { return f.fn(items) }

// ProcessFunc adapts a bulk-consume function into a ProcessAnalyzer.
func ProcessFunc(fn func(items []any) (any, error)) ProcessAnalyzer {
	return processFunc{fn}
}

type processFunc struct {
	fn func([]any) (any, error)
}

func (processFunc) Kind() Kind { return KindProcess }
func (f processFunc) Process(items []any) (any, error) { return f.fn(items) }

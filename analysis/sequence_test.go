package analysis

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/winnowlabs/winnow/errors"
)

// doubler is an analyzer object implementing the map contract.
type doubler struct{}

func (doubler) Kind() Kind { return KindMap }
func (doubler) Map(item any) (any, error) {
	return item.(int) * 2, nil
}

// parity groups ints into "even"/"odd".
type parity struct{}

func (parity) Kind() Kind { return KindIndexBy }
func (parity) IndexBy(item any) (any, error) {
	if item.(int)%2 == 0 {
		return "even", nil
	}
	return "odd", nil
}

// wrongKind declares one kind without implementing any contract.
type wrongKind struct {
	kind Kind
}

func (w wrongKind) Kind() Kind { return w.kind }

func intSeq(values ...int) *Sequence {
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	return NewSequence(items)
}

func TestMapPreservesLengthAndOrder(t *testing.T) {
	src := intSeq(1, 2, 3, 4)
	out, err := src.Map(doubler{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.Items()
	want := []any{2, 4, 6, 8}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestMapDoesNotMutateSource(t *testing.T) {
	src := intSeq(1, 2, 3)
	if _, err := src.Map(doubler{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range src.Items() {
		if v != i+1 {
			t.Errorf("source mutated at index %d: got %v", i, v)
		}
	}
}

func TestMapWithFuncAdapter(t *testing.T) {
	src := intSeq(1, 2, 3)
	out, err := src.Map(MapFunc(func(item any) (any, error) {
		return item.(int) + 10, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Items()[0] != 11 {
		t.Errorf("expected 11, got %v", out.Items()[0])
	}
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	src := intSeq(5, 1, 8, 3, 9, 2)
	out, err := src.Filter(FilterFunc(func(item any) (bool, error) {
		return item.(int) <= 5, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{5, 1, 3, 2}
	got := out.Items()
	if len(got) > src.Len() {
		t.Fatalf("filter increased length: %d > %d", len(got), src.Len())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestIndexByGroupsPreserveOrder(t *testing.T) {
	src := intSeq(1, 2, 3, 4, 5)
	out, err := src.IndexBy(parity{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", out.Len())
	}
	odd, err := out.Get("odd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{1, 3, 5}
	got := odd.([]any)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("odd[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestIndexByDropsNilKeys(t *testing.T) {
	src := intSeq(1, 2, 3, 4)
	out, err := src.IndexBy(IndexByFunc(func(item any) (any, error) {
		if item.(int) > 2 {
			return nil, nil
		}
		return "small", nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected 1 group, got %d", out.Len())
	}
	small, err := out.Get("small")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(small.([]any)) != 2 {
		t.Errorf("expected 2 items under 'small', got %d", len(small.([]any)))
	}
}

func TestIndexByFanOut(t *testing.T) {
	src := intSeq(6)
	out, err := src.IndexBy(IndexByFunc(func(item any) (any, error) {
		return Keys{"even", "multiple-of-three"}, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("expected the item under both groups, got %d groups", out.Len())
	}
	for _, key := range []string{"even", "multiple-of-three"} {
		items, err := out.Get(key)
		if err != nil {
			t.Fatalf("group %q: %v", key, err)
		}
		if len(items.([]any)) != 1 || items.([]any)[0] != 6 {
			t.Errorf("group %q: expected [6], got %v", key, items)
		}
	}
}

func TestIndexByNonKeysValueIsSingleKey(t *testing.T) {
	// A comparable composite that is not the Keys type must act as one
	// opaque key, not fan out.
	src := intSeq(1, 2)
	out, err := src.IndexBy(IndexByFunc(func(item any) (any, error) {
		return [2]string{"a", "b"}, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected a single group, got %d", out.Len())
	}
	items, err := out.Get([2]string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items.([]any)) != 2 {
		t.Errorf("expected 2 items in the composite-key group, got %d", len(items.([]any)))
	}
}

func TestReduceWithSeedOverEmptySequence(t *testing.T) {
	src := NewSequence(nil)
	out, err := src.Reduce(ReduceFuncSeed(0, func(acc, item any) (any, error) {
		return acc.(int) + item.(int), nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Raw() != 0 {
		t.Errorf("expected seed 0 back, got %v", out.Raw())
	}
}

func TestReduceNoSeedOverEmptySequenceFails(t *testing.T) {
	src := NewSequence(nil)
	_, err := src.Reduce(ReduceFunc(func(acc, item any) (any, error) {
		return acc.(int) + item.(int), nil
	}))
	if !errors.HasCode(err, errors.ErrCodeAnalyzerFailure) {
		t.Fatalf("expected ANALYZER_FAILURE, got %v", err)
	}
}

func TestReduceNoSeedFoldsFromFirstItem(t *testing.T) {
	src := intSeq(1, 2, 3, 4)
	out, err := src.Reduce(ReduceFunc(func(acc, item any) (any, error) {
		return acc.(int) + item.(int), nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Raw() != 10 {
		t.Errorf("expected 10, got %v", out.Raw())
	}
}

func TestSortStable(t *testing.T) {
	type pair struct {
		k int
		v string
	}
	src := NewSequence([]any{pair{2, "a"}, pair{1, "b"}, pair{2, "c"}, pair{1, "d"}})
	out, err := src.Sort(SortFunc(func(a, b any) (int, error) {
		return a.(pair).k - b.(pair).k, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{pair{1, "b"}, pair{1, "d"}, pair{2, "a"}, pair{2, "c"}}
	got := out.Items()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSortComparatorErrorWrapped(t *testing.T) {
	src := intSeq(3, 1, 2)
	_, err := src.Sort(SortFunc(func(a, b any) (int, error) {
		return 0, fmt.Errorf("cannot compare")
	}))
	if !errors.HasCode(err, errors.ErrCodeAnalyzerFailure) {
		t.Fatalf("expected ANALYZER_FAILURE, got %v", err)
	}
}

func TestTransformReplacesWholeSequence(t *testing.T) {
	src := intSeq(1, 2, 3)
	out, err := src.Transform(TransformFunc(func(items []any) ([]any, error) {
		return []any{len(items)}, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 1 || out.Items()[0] != 3 {
		t.Errorf("expected [3], got %v", out.Items())
	}
	// The result of transform stays analyzable.
	if _, err := out.Map(doubler{}); err != nil {
		t.Errorf("expected transformed sequence to accept further analysis: %v", err)
	}
}

func TestProcessWrapsArbitraryValue(t *testing.T) {
	src := intSeq(1, 2, 3)
	out, err := src.Process(ProcessFunc(func(items []any) (any, error) {
		return map[string]int{"count": len(items)}, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw := out.Raw().(map[string]int)
	if raw["count"] != 3 {
		t.Errorf("expected count=3, got %v", raw)
	}
}

func TestKindMismatchNamesBothKinds(t *testing.T) {
	src := intSeq(1)
	keep := FilterFunc(func(item any) (bool, error) { return true, nil })
	_, err := src.IndexBy(keep)
	if !errors.HasCode(err, errors.ErrCodeIncorrectAnalyzer) {
		t.Fatalf("expected INCORRECT_ANALYZER, got %v", err)
	}
	ae, _ := errors.AsAnalysisError(err)
	if ae.Details["declared"] != "filter" || ae.Details["expected"] != "indexby" {
		t.Errorf("expected declared=filter expected=indexby, got %v", ae.Details)
	}
}

func TestKindMismatchCheckedBeforeExecution(t *testing.T) {
	src := intSeq(1)
	invoked := false
	bad := MapFunc(func(item any) (any, error) {
		invoked = true
		return nil, fmt.Errorf("should never run")
	})
	if _, err := src.Filter(bad); !errors.HasCode(err, errors.ErrCodeIncorrectAnalyzer) {
		t.Fatalf("expected INCORRECT_ANALYZER, got %v", err)
	}
	if invoked {
		t.Error("analyzer must not run when the kind check fails")
	}
}

func TestAnalyzerErrorWrappedAsFailure(t *testing.T) {
	src := intSeq(1, 2)
	cause := fmt.Errorf("bad item")
	_, err := src.Map(MapFunc(func(item any) (any, error) {
		return nil, cause
	}))
	if !errors.HasCode(err, errors.ErrCodeAnalyzerFailure) {
		t.Fatalf("expected ANALYZER_FAILURE, got %v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected the original error as the cause")
	}
	ae, _ := errors.AsAnalysisError(err)
	if ae.Details["operation"] != "map" {
		t.Errorf("expected operation=map, got %v", ae.Details["operation"])
	}
}

func TestAnalyzerPanicWrappedAsFailure(t *testing.T) {
	src := intSeq(1)
	_, err := src.Map(MapFunc(func(item any) (any, error) {
		var m map[string]int
		m["boom"] = 1 // panics
		return item, nil
	}))
	if !errors.HasCode(err, errors.ErrCodeAnalyzerFailure) {
		t.Fatalf("expected ANALYZER_FAILURE from panic, got %v", err)
	}
}

func TestKindWithoutContractWrappedAsFailure(t *testing.T) {
	src := intSeq(1)
	_, err := src.Map(wrongKind{kind: KindMap})
	if !errors.HasCode(err, errors.ErrCodeAnalyzerFailure) {
		t.Fatalf("expected ANALYZER_FAILURE, got %v", err)
	}
}

func TestAnalyzeDispatch(t *testing.T) {
	src := intSeq(2, 4)
	out, err := src.Analyze(doubler{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.(*Sequence); !ok {
		t.Fatalf("expected *Sequence, got %T", out)
	}
}

func TestAnalyzeUnknownKind(t *testing.T) {
	src := intSeq(1)
	_, err := src.Analyze(wrongKind{kind: Kind("shuffle")})
	if !errors.HasCode(err, errors.ErrCodeNotAnAnalyzer) {
		t.Fatalf("expected NOT_AN_ANALYZER, got %v", err)
	}
}

func TestAnalyzeNilAnalyzer(t *testing.T) {
	src := intSeq(1)
	if _, err := src.Analyze(nil); !errors.HasCode(err, errors.ErrCodeNotAnAnalyzer) {
		t.Fatalf("expected NOT_AN_ANALYZER, got %v", err)
	}
}

func TestTimestampPropagation(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	src := NewSequence([]any{1, 2}, WithTimestamp(ts))
	out, err := src.Map(doubler{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Timestamp().Equal(ts) {
		t.Errorf("expected timestamp %v to propagate, got %v", ts, out.Timestamp())
	}
	grouped, err := out.IndexBy(parity{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !grouped.Timestamp().Equal(ts) {
		t.Errorf("expected timestamp %v on grouped result, got %v", ts, grouped.Timestamp())
	}
}

func TestSequenceGetWithPathMisses(t *testing.T) {
	src := intSeq(1)
	if _, err := src.Get("anything"); !errors.HasCode(err, errors.ErrCodeMissingKey) {
		t.Fatalf("expected MISSING_KEY, got %v", err)
	}
}

func TestTerminalSequenceExposesRawOnly(t *testing.T) {
	src := intSeq(1, 2, 3)
	out, err := src.Reduce(ReduceFuncSeed(0, func(acc, item any) (any, error) {
		return acc.(int) + item.(int), nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Raw() != 6 {
		t.Errorf("expected 6, got %v", out.Raw())
	}
	got, err := out.Get()
	if err != nil || got != 6 {
		t.Errorf("expected Get() to return 6, got %v (%v)", got, err)
	}
	if _, err := out.Get("key"); !errors.HasCode(err, errors.ErrCodeMissingKey) {
		t.Errorf("expected MISSING_KEY on terminal path lookup, got %v", err)
	}
}

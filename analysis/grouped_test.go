package analysis

import (
	"fmt"
	"sort"
	"testing"

	"github.com/winnowlabs/winnow/errors"
)

func groupedByParity(t *testing.T, values ...int) *Grouped {
	t.Helper()
	out, err := intSeq(values...).IndexBy(parity{})
	if err != nil {
		t.Fatalf("building grouped fixture: %v", err)
	}
	return out
}

func TestGroupedMapRecursesKeepingKeySet(t *testing.T) {
	g := groupedByParity(t, 1, 2, 3, 4)
	out, err := g.Map(doubler{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != g.Len() {
		t.Fatalf("key set changed: %d != %d", out.Len(), g.Len())
	}
	odd, err := out.Get("odd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{2, 6}
	got := odd.([]any)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("odd[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestGroupedFilterKeepsEmptiedGroups(t *testing.T) {
	g := groupedByParity(t, 1, 2, 3, 4)
	out, err := g.Filter(FilterFunc(func(item any) (bool, error) {
		return item.(int)%2 == 0, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Operations never add or remove groups, even when a group empties.
	if out.Len() != 2 {
		t.Fatalf("expected both groups to survive, got %d", out.Len())
	}
	odd, err := out.Get("odd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(odd.([]any)) != 0 {
		t.Errorf("expected 'odd' group to be empty, got %v", odd)
	}
}

func TestGroupedIndexByDeepensTree(t *testing.T) {
	g := groupedByParity(t, 1, 2, 3, 4, 5, 6)
	out, err := g.IndexBy(IndexByFunc(func(item any) (any, error) {
		if item.(int) > 3 {
			return "high", nil
		}
		return "low", nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err := out.Get("odd", "high")
	if err != nil {
		t.Fatalf("expected two-level traversal, got error: %v", err)
	}
	if len(items.([]any)) != 1 || items.([]any)[0] != 5 {
		t.Errorf("expected [5] under odd/high, got %v", items)
	}
}

func TestGroupedSortRecursesKeepingKeySet(t *testing.T) {
	g := groupedByParity(t, 5, 2, 3, 4, 1)
	out, err := g.Sort(SortFunc(func(a, b any) (int, error) {
		return a.(int) - b.(int), nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != g.Len() {
		t.Fatalf("key set changed: %d != %d", out.Len(), g.Len())
	}
	odd, err := out.Get("odd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{1, 3, 5}
	got := odd.([]any)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("odd[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestGroupedSortComparatorErrorAborts(t *testing.T) {
	g := groupedByParity(t, 3, 1, 2)
	_, err := g.Sort(SortFunc(func(a, b any) (int, error) {
		return 0, fmt.Errorf("cannot compare")
	}))
	if !errors.HasCode(err, errors.ErrCodeAnalyzerFailure) {
		t.Fatalf("expected ANALYZER_FAILURE, got %v", err)
	}
}

func TestGroupedTransformRecursesKeepingKeySet(t *testing.T) {
	g := groupedByParity(t, 1, 2, 3, 4)
	out, err := g.Transform(TransformFunc(func(items []any) ([]any, error) {
		return append(items, len(items)), nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != g.Len() {
		t.Fatalf("key set changed: %d != %d", out.Len(), g.Len())
	}
	odd, err := out.Get("odd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Each group's item list grew by its appended length marker.
	if got := odd.([]any); len(got) != 3 || got[2] != 2 {
		t.Errorf("expected [1 3 2] under 'odd', got %v", got)
	}
}

func TestGroupedReduceProducesTerminalGrouped(t *testing.T) {
	g := groupedByParity(t, 1, 2, 3, 4)
	out, err := g.Reduce(ReduceFuncSeed(0, func(acc, item any) (any, error) {
		return acc.(int) + item.(int), nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw := out.Raw().(map[any]any)
	if raw["odd"] != 4 || raw["even"] != 6 {
		t.Errorf("expected odd=4 even=6, got %v", raw)
	}
	keys := out.Keys()
	sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j]) })
	if len(keys) != 2 || keys[0] != "even" || keys[1] != "odd" {
		t.Errorf("expected key set {even, odd}, got %v", keys)
	}
}

func TestGroupedProcessProducesTerminalGrouped(t *testing.T) {
	g := groupedByParity(t, 1, 2, 3)
	out, err := g.Process(ProcessFunc(func(items []any) (any, error) {
		return len(items), nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw := out.Raw().(map[any]any)
	if raw["odd"] != 2 || raw["even"] != 1 {
		t.Errorf("expected odd=2 even=1, got %v", raw)
	}
}

func TestGroupedFailureOnOneKeyAbortsWholeOperation(t *testing.T) {
	g := groupedByParity(t, 1, 2, 3, 4)
	_, err := g.Map(MapFunc(func(item any) (any, error) {
		if item.(int) == 3 {
			return nil, fmt.Errorf("item 3 is cursed")
		}
		return item, nil
	}))
	if !errors.HasCode(err, errors.ErrCodeAnalyzerFailure) {
		t.Fatalf("expected ANALYZER_FAILURE, got %v", err)
	}
}

func TestGroupedKindMismatchFailsFast(t *testing.T) {
	g := groupedByParity(t, 1, 2)
	keep := FilterFunc(func(item any) (bool, error) { return true, nil })
	_, err := g.IndexBy(keep)
	if !errors.HasCode(err, errors.ErrCodeIncorrectAnalyzer) {
		t.Fatalf("expected INCORRECT_ANALYZER, got %v", err)
	}
}

func TestGroupedGetMissingKey(t *testing.T) {
	g := groupedByParity(t, 1, 2)
	_, err := g.Get("prime")
	if !errors.HasCode(err, errors.ErrCodeMissingKey) {
		t.Fatalf("expected MISSING_KEY, got %v", err)
	}
	ae, _ := errors.AsAnalysisError(err)
	if ae.Details["key"] != "prime" {
		t.Errorf("expected key=prime in details, got %v", ae.Details)
	}
}

func TestGroupedGetEmptyPathReturnsChildren(t *testing.T) {
	g := groupedByParity(t, 1, 2)
	payload, err := g.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	children := payload.(map[any]Container)
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if _, ok := children["odd"].(*Sequence); !ok {
		t.Errorf("expected child containers, got %T", children["odd"])
	}
}

func TestGroupedGroupLookup(t *testing.T) {
	g := groupedByParity(t, 1, 2, 3)
	child, err := g.Group("odd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(child.Raw().([]any)) != 2 {
		t.Errorf("expected 2 odd items, got %v", child.Raw())
	}
	if _, err := g.Group("prime"); !errors.HasCode(err, errors.ErrCodeMissingKey) {
		t.Errorf("expected MISSING_KEY, got %v", err)
	}
}

func TestNewGroupedRejectsTerminalChild(t *testing.T) {
	terminal, err := intSeq(1, 2).Reduce(ReduceFuncSeed(0, func(acc, item any) (any, error) {
		return acc.(int) + item.(int), nil
	}))
	if err != nil {
		t.Fatalf("building terminal fixture: %v", err)
	}
	_, err = NewGrouped(map[any]Container{"done": terminal})
	if !errors.HasCode(err, errors.ErrCodeIncorrectInputDataType) {
		t.Fatalf("expected INCORRECT_INPUT_DATA_TYPE, got %v", err)
	}
}

func TestNewGroupedAcceptsSequenceChildren(t *testing.T) {
	g, err := NewGrouped(map[any]Container{
		"a": intSeq(1),
		"b": intSeq(2, 3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 2 {
		t.Errorf("expected 2 groups, got %d", g.Len())
	}
}

func TestTerminalGroupedTraversal(t *testing.T) {
	g := groupedByParity(t, 1, 2, 3, 4)
	out, err := g.Reduce(ReduceFuncSeed(0, func(acc, item any) (any, error) {
		return acc.(int) + item.(int), nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := out.Get("even")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 6 {
		t.Errorf("expected 6 under 'even', got %v", v)
	}
	if _, err := out.Get("prime"); !errors.HasCode(err, errors.ErrCodeMissingKey) {
		t.Errorf("expected MISSING_KEY, got %v", err)
	}
	if _, err := out.Group("even"); err != nil {
		t.Errorf("expected Group lookup on terminal grouped, got %v", err)
	}
}

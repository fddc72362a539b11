package analysis

import (
	"fmt"
	"reflect"
	"time"

	"github.com/winnowlabs/winnow/errors"
	"github.com/winnowlabs/winnow/logger"
)

// Container is an immutable wrapper around opaque collection data plus a
// creation timestamp. Every analysis operation returns a brand-new
// container; the receiver is never modified.
type Container interface {
	// Raw recursively unwraps the container into plain nested structures:
	// mappings of mappings down to sequences (or terminal values) at the
	// leaves.
	Raw() any
	// Get traverses nested groupings by key. An empty path returns the
	// container's payload unchanged.
	Get(path ...any) (any, error)
	// Timestamp returns the creation time of the container.
	Timestamp() time.Time
}

// Analyzable is a container that still accepts analysis operations.
// Terminal containers implement only Container, so applying an operation to
// one is a compile-time mistake for static callers and a TERMINAL_CONTAINER
// error through generic dispatch.
type Analyzable interface {
	Container
	// Analyze routes to the operation matching the analyzer's declared kind.
	Analyze(a Analyzer) (Container, error)
}

// Option configures container construction.
type Option func(*options)

type options struct {
	timestamp time.Time
}

// WithTimestamp sets the container's creation timestamp instead of the
// current time.
func WithTimestamp(ts time.Time) Option {
	return func(o *options) { o.timestamp = ts }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.timestamp.IsZero() {
		o.timestamp = time.Now()
	}
	return o
}

// FromRaw wraps plain nested data into containers: any slice becomes a
// Sequence, any map becomes a Grouped whose values are wrapped recursively.
// It round-trips the output of Raw back into a fresh container. Anything
// else fails with INCORRECT_INPUT_DATA_TYPE.
func FromRaw(raw any, opts ...Option) (Container, error) {
	v := reflect.ValueOf(raw)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, v.Len())
		for i := range items {
			items[i] = v.Index(i).Interface()
		}
		return NewSequence(items, opts...), nil
	case reflect.Map:
		children := make(map[any]Container, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			child, err := FromRaw(iter.Value().Interface(), opts...)
			if err != nil {
				return nil, err
			}
			children[iter.Key().Interface()] = child
		}
		return NewGrouped(children, opts...)
	default:
		return nil, errors.IncorrectInputDataType("a sequence or a mapping", raw)
	}
}

// checkKind validates the analyzer's declared kind against the operation
// being invoked. It runs before the analyzer is ever executed, at every
// recursion level, so a mismatch is never confused with a failure inside
// the analyzer's own logic.
func checkKind(op Kind, a Analyzer) error {
	if a == nil {
		return errors.NotAnAnalyzer(a)
	}
	if declared := a.Kind(); declared != op {
		if !declared.Valid() {
			return errors.NotAnAnalyzer(a)
		}
		return errors.IncorrectAnalyzer(a, string(declared), string(op))
	}
	return nil
}

// guard executes a sequence-level operation body, normalizing errors
// returned by (or panics escaping from) user-supplied callback logic into
// ANALYZER_FAILURE. Validation errors never pass through here.
func guard(op Kind, a Analyzer, body func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.AnalyzerFailure(string(op), a, fmt.Errorf("panic: %v", r))
		}
	}()
	if berr := body(); berr != nil {
		return errors.AnalyzerFailure(string(op), a, berr)
	}
	return nil
}

// errEmptyReduce reports a seedless reduce over an empty sequence.
// Surfaces as ANALYZER_FAILURE via guard.
var errEmptyReduce = fmt.Errorf("reduce of an empty sequence with no initial value")

// errNotImplemented reports an analyzer whose kind tag promises a contract
// its method set does not fulfill. Surfaces as ANALYZER_FAILURE via guard.
func errNotImplemented(op Kind) error {
	return fmt.Errorf("analyzer does not implement the %s contract", op)
}

// fanOut expands an IndexByAnalyzer return value into the keys the item is
// filed under: nil drops the item, Keys fans it out, anything else is a
// single key.
func fanOut(v any) []any {
	switch keys := v.(type) {
	case nil:
		return nil
	case Keys:
		return keys
	default:
		return []any{v}
	}
}

func debugOp(container string, op Kind, a Analyzer) {
	logger.WithComponent("analysis").Debug("starting operation", logger.Fields(
		logger.FieldContainer, container,
		logger.FieldOperation, string(op),
		logger.FieldAnalyzer, fmt.Sprintf("%v", a),
	))
}

package analysis

import "fmt"

// Record is a generic string-keyed record, the shape the CLI collaborator
// feeds the engine after decoding JSON input.
type Record = map[string]any

// Premade analyzers over Record items, ready to use.

// GroupByField groups records by the value of one field. Records missing
// the field are dropped, mirroring the nil-key drop rule.
func GroupByField(field string) IndexByAnalyzer {
	return IndexByFunc(func(item any) (any, error) {
		rec, ok := item.(Record)
		if !ok {
			return nil, fmt.Errorf("item %v is not a record", item)
		}
		v, ok := rec[field]
		if !ok {
			return nil, nil
		}
		return v, nil
	})
}

// FieldAtMost keeps records whose numeric field value is at most max.
func FieldAtMost(field string, max float64) FilterAnalyzer {
	return FilterFunc(func(item any) (bool, error) {
		rec, ok := item.(Record)
		if !ok {
			return false, fmt.Errorf("item %v is not a record", item)
		}
		v, err := toFloat(rec[field])
		if err != nil {
			return false, fmt.Errorf("field %q: %w", field, err)
		}
		return v <= max, nil
	})
}

// SumField totals the numeric values of one field across all records,
// starting from zero.
func SumField(field string) ReduceAnalyzer {
	return ReduceFuncSeed(float64(0), func(acc, item any) (any, error) {
		rec, ok := item.(Record)
		if !ok {
			return nil, fmt.Errorf("item %v is not a record", item)
		}
		v, err := toFloat(rec[field])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		return acc.(float64) + v, nil
	})
}

// CountItems counts the records in each group, starting from zero.
func CountItems() ReduceAnalyzer {
	return ReduceFuncSeed(0, func(acc, item any) (any, error) {
		return acc.(int) + 1, nil
	})
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", v, v)
	}
}

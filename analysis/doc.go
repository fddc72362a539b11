// Package analysis implements the container and dispatch engine at the core
// of winnow: user-supplied analyzers applied to collections of opaque
// records, producing new immutable snapshots without mutating the source.
//
// # Containers
//
// A collection lives in one of four container states:
//
//   - Sequence: a flat ordered collection of opaque items
//   - Grouped: a recursive keyed mapping of child containers
//   - TerminalSequence, TerminalGrouped: dead-end results of Reduce/Process
//
// Operations move between states:
//
//	Sequence --IndexBy--> Grouped
//	Sequence --Map/Filter/Sort/Transform--> Sequence
//	Sequence --Reduce/Process--> TerminalSequence
//	Grouped  --IndexBy/Map/Filter/Sort/Transform--> Grouped (same key set)
//	Grouped  --Reduce/Process--> TerminalGrouped
//
// Terminal containers have no outgoing transitions: they do not implement
// Analyzable, so further analysis is a compile error for static callers and
// a TERMINAL_CONTAINER error through generic dispatch.
//
// Every operation returns a brand-new container; the receiver is never
// modified. That makes containers trivially safe to share read-only across
// goroutines, as long as item values inside the opaque payload are not
// mutated out-of-band.
//
// # Analyzers
//
// An analyzer declares one of seven kinds and implements the matching
// single-method contract. The kind tag is validated before the analyzer
// ever runs: a mismatch fails with INCORRECT_ANALYZER. Any error raised
// inside analyzer logic during execution is normalized into
// ANALYZER_FAILURE carrying the cause, the operation, and the analyzer.
//
// Function adapters (MapFunc, FilterFunc, ...) wrap bare functions so
// callers do not need to define analyzer types for one-liners:
//
//	data := analysis.NewSequence(items)
//	kept, err := data.Filter(analysis.FilterFunc(func(item any) (bool, error) {
//	    return item.(int) <= 5, nil
//	}))
//
// # Grouping semantics
//
// IndexBy files each item under the key(s) its key function returns: nil
// drops the item, a Keys value fans it out into every listed group, and any
// other value is a single opaque key. Grouping an already-grouped container
// deepens every group by one level; the key set of the receiver is never
// widened or narrowed by any operation.
package analysis

package rulekit

import "github.com/syssam/rulekit/dataset"

// RowMode selects which representation of a rule's tabular data context
// resolution runs against.
type RowMode uint8

const (
	// MultiRow resolves against the rule's full tabular dataset.
	MultiRow RowMode = iota

	// SingleRow resolves against the rule's flat per-field collection.
	SingleRow
)

// String returns the mode name.
func (m RowMode) String() string {
	switch m {
	case MultiRow:
		return "multi-row"
	case SingleRow:
		return "single-row"
	default:
		return "unknown"
	}
}

// Rule is the business-rule execution context resolution runs against.
// It is consumed by reference and never mutated by this package.
type Rule struct {
	// Name identifies the rule and is carried into every error raised
	// while resolving against it.
	Name string

	// Mode selects multi-row or single-row resolution.
	Mode RowMode

	// Data is the rule's tabular data context. It may be nil, in which
	// case every resolution is a failure.
	Data *dataset.Dataset
}

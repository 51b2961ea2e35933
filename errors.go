package rulekit

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common resolution failures.
var (
	// ErrEmptyData is returned as the cause of a rule-level error when
	// the rule has no data context to resolve against.
	ErrEmptyData = errors.New("rulekit: rule data is empty")

	// ErrUnknownField is returned as the cause of a rule-level error when
	// a single-row resolution names a field that is not part of the
	// rule's field collection.
	ErrUnknownField = errors.New("rulekit: field is not part of the rule data")
)

// RuleError represents a failure carrying the context of the business
// rule it occurred in. It is the root of the error chain: more specific
// failures (TableError, FieldError) wrap a RuleError and remain
// matchable as one via errors.As.
type RuleError struct {
	ruleName string
	msg      string
	cause    error
}

// NewRuleError returns a new RuleError for the given rule. Either msg or
// cause may be empty, not both; when msg is empty the cause's message is
// rendered in its place.
func NewRuleError(ruleName, msg string, cause error) *RuleError {
	return &RuleError{ruleName: ruleName, msg: msg, cause: cause}
}

// Error returns the error string, prefixed with the rule context.
func (e *RuleError) Error() string {
	return fmt.Sprintf("[Rule Name=%s] %s", e.ruleName, e.Message())
}

// Message returns the message without the rule context prefix, falling
// back to the cause's message when none was supplied.
func (e *RuleError) Message() string {
	if e.msg == "" && e.cause != nil {
		return e.cause.Error()
	}
	return e.msg
}

// RuleName returns the name of the rule the failure occurred in.
func (e *RuleError) RuleName() string {
	return e.ruleName
}

// Unwrap returns the underlying cause, if any.
func (e *RuleError) Unwrap() error {
	return e.cause
}

// IsRuleError returns true if the error carries rule context at any
// level of its chain.
func IsRuleError(err error) bool {
	if err == nil {
		return false
	}
	var e *RuleError
	return errors.As(err, &e)
}

// TableError represents a failure scoped to a named table inside a
// rule's data context. It is a RuleError: rendering nests the rule
// context inside the table context, and errors.As(err, **RuleError)
// matches through it.
type TableError struct {
	RuleError
	tableName string
}

// NewTableError returns a new TableError for the given rule and table.
func NewTableError(ruleName, tableName, msg string, cause error) *TableError {
	return &TableError{
		RuleError: RuleError{ruleName: ruleName, msg: msg, cause: cause},
		tableName: tableName,
	}
}

// Error returns the error string: the table tag prefixed onto the
// rule-level rendering.
func (e *TableError) Error() string {
	return fmt.Sprintf("[DataTable Name=%s] %s", e.tableName, e.RuleError.Error())
}

// TableName returns the name of the table the failure occurred in.
func (e *TableError) TableName() string {
	return e.tableName
}

// Unwrap returns the rule-level view of this error.
func (e *TableError) Unwrap() error {
	return &e.RuleError
}

// IsTableError returns true if the error carries table context at any
// level of its chain.
func IsTableError(err error) bool {
	if err == nil {
		return false
	}
	var e *TableError
	return errors.As(err, &e)
}

// FieldError represents a failure scoped to a single field of a table.
// It is a TableError (and therefore a RuleError): rendering nests the
// table context inside the field context.
type FieldError struct {
	TableError
	fieldName string
}

// NewFieldError returns a new FieldError for the given rule, table, and
// field.
func NewFieldError(ruleName, tableName, fieldName, msg string, cause error) *FieldError {
	return &FieldError{
		TableError: TableError{
			RuleError: RuleError{ruleName: ruleName, msg: msg, cause: cause},
			tableName: tableName,
		},
		fieldName: fieldName,
	}
}

// Error returns the error string: the field tag prefixed onto the
// table-level rendering.
func (e *FieldError) Error() string {
	return fmt.Sprintf("[Field Name=%s] %s", e.fieldName, e.TableError.Error())
}

// FieldName returns the name of the field the failure occurred on.
func (e *FieldError) FieldName() string {
	return e.fieldName
}

// Unwrap returns the table-level view of this error.
func (e *FieldError) Unwrap() error {
	return &e.TableError
}

// IsFieldError returns true if the error carries field context at any
// level of its chain.
func IsFieldError(err error) bool {
	if err == nil {
		return false
	}
	var e *FieldError
	return errors.As(err, &e)
}

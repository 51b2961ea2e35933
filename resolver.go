package rulekit

import (
	"fmt"
	"strconv"
)

// ResolveOption configures a single resolution call.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	strict   bool
	def      string
	row      int
	rowGiven bool
}

// Strict makes failures propagate to the caller instead of resolving to
// the default value. Failures are published to the notifier either way.
func Strict() ResolveOption {
	return func(c *resolveConfig) { c.strict = true }
}

// WithDefault sets the value returned when the field is absent, empty,
// or its resolution fails without Strict.
func WithDefault(v string) ResolveOption {
	return func(c *resolveConfig) { c.def = v }
}

// WithRow selects the row to resolve from. Without it, multi-row
// resolution reads row 0, single-row resolution uses the dataset's
// active row for the class, and XML resolution uses rowID 1.
func WithRow(n int) ResolveOption {
	return func(c *resolveConfig) { c.row = n; c.rowGiven = true }
}

func newResolveConfig(opts []ResolveOption) resolveConfig {
	var cfg resolveConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithNotifier routes the resolver's failure notifications to n instead
// of the DefaultNotifier.
func WithNotifier(n *Notifier) ResolverOption {
	return func(r *Resolver) { r.notifier = n }
}

// Resolver resolves field values out of a rule's tabular data context.
// The zero value is not usable; create one with NewResolver.
type Resolver struct {
	notifier *Notifier
}

// NewResolver creates a Resolver. Without options it publishes failures
// to the DefaultNotifier.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{notifier: DefaultNotifier}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveField resolves the value of columnName in the table (or
// single-row class) className from the rule's data context.
//
// Without Strict, failures resolve to the default value and the error
// return is nil; with Strict, failures are returned. Either way each
// failure is first published to the resolver's notifier, exactly once.
// One exception holds in single-row mode: a failure of the record lookup
// itself is returned even without Strict.
func (r *Resolver) ResolveField(rule *Rule, className, columnName string, opts ...ResolveOption) (string, error) {
	cfg := newResolveConfig(opts)
	if rule.Mode == SingleRow {
		return r.resolveSingleRow(rule, className, columnName, cfg)
	}
	return r.resolveMultiRow(rule, className, columnName, cfg)
}

func (r *Resolver) resolveMultiRow(rule *Rule, className, columnName string, cfg resolveConfig) (string, error) {
	if rule.Data == nil {
		return r.fail(rule, cfg, NewRuleError(rule.Name, "", ErrEmptyData))
	}

	tbl, ok := rule.Data.Table(className)
	if !ok {
		// Without strict mode the table lookup silently yields nothing:
		// the column check cannot run and resolution falls through to
		// the default.
		if cfg.strict {
			return r.fail(rule, cfg, NewTableError(rule.Name, className, "table is missing", nil))
		}
		return cfg.def, nil
	}

	if !tbl.HasColumn(columnName) {
		return r.fail(rule, cfg, NewFieldError(rule.Name, className, columnName,
			"table does not contain required column", nil))
	}

	v, err := tbl.Value(cfg.row, columnName)
	if err != nil {
		return r.fail(rule, cfg, NewFieldError(rule.Name, className, columnName,
			"cannot read field value", err))
	}
	s, err := renderValue(v)
	if err != nil {
		return r.fail(rule, cfg, NewFieldError(rule.Name, className, columnName,
			"cannot read field value", err))
	}
	if s == "" {
		return cfg.def, nil
	}
	return s, nil
}

func (r *Resolver) resolveSingleRow(rule *Rule, className, columnName string, cfg resolveConfig) (string, error) {
	// The existence check only runs in strict mode. Without it a missing
	// field is treated as present-but-empty and resolves to the default.
	if cfg.strict {
		if rule.Data == nil || !rule.Data.Fields().Contains(className, columnName) {
			return r.fail(rule, cfg, NewRuleError(rule.Name,
				fmt.Sprintf("unknown field %s.%s", className, columnName), ErrUnknownField))
		}
	}

	// A failure of the lookup itself propagates regardless of strict
	// mode; only other failure paths honor the flag.
	if rule.Data == nil {
		err := NewRuleError(rule.Name, "", ErrEmptyData)
		r.notifier.publish(rule, err)
		return "", err
	}

	rowID := rule.Data.ActiveRow(className)
	if cfg.rowGiven {
		rowID = strconv.Itoa(cfg.row)
	}

	rec, ok := rule.Data.Fields().Get(className, columnName, rowID)
	if !ok || rec.Value == "" {
		return cfg.def, nil
	}
	return rec.Value, nil
}

// fail publishes err and then either returns it (strict) or resolves to
// the default value.
func (r *Resolver) fail(rule *Rule, cfg resolveConfig, err error) (string, error) {
	r.notifier.publish(rule, err)
	if cfg.strict {
		return "", err
	}
	return cfg.def, nil
}

// renderValue converts a raw table value to its string form. Absent
// values render as "" so the caller's default applies. Value types
// beyond plain scalars are a read failure.
func renderValue(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("rulekit: cannot render %T as a field value", v)
	}
}

// Package rulekit resolves named field values out of a business rule's
// data context and reports failures through a layered, contextual error
// chain.
//
// A rule's data lives in one of two representations: a tabular dataset
// (named tables of rows, plus a flat single-row field collection) or an
// XML document tree. Each representation has its own resolver:
//
//   - ResolveField looks a field up in the rule's tabular data context,
//     honoring an explicit default value, a strict mode, and the rule's
//     row mode (multi-row or single-row).
//   - ResolveXMLField looks a field up in an XML document, preferring a
//     fieldAlias match over a fieldName match.
//
// # Error Chain
//
// Failures carry context at the most specific applicable level. A
// FieldError is a TableError is a RuleError; each level prefixes its own
// bracketed tag onto the rendering of the level below:
//
//	[Field Name=Status] [DataTable Name=Orders] [Rule Name=discount] ...
//
// The chain is navigable with the standard errors package:
//
//	var te *rulekit.TableError
//	if errors.As(err, &te) {
//	    log.Println(te.TableName())
//	}
//
// # Failure Policy
//
// The tabular resolver swallows failures by default, returning the
// caller's default value. Passing Strict() propagates them instead. In
// both cases every failure is published to the resolver's Notifier
// before the call returns, so callers can observe swallowed failures
// without changing control flow:
//
//	id := rulekit.Subscribe(func(rule *rulekit.Rule, err error) {
//	    log.Printf("rule %s: %v", rule.Name, err)
//	})
//	defer rulekit.Unsubscribe(id)
//
// The XML resolver has no strict mode; it always swallows failures and
// returns the default value.
//
// # Data
//
// The dataset subpackage provides the tabular data context and loaders
// that materialize it from YAML files, SQL queries, or msgpack
// snapshots.
package rulekit

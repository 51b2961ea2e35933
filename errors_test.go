package rulekit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/rulekit"
)

func TestRuleError(t *testing.T) {
	t.Parallel()

	t.Run("Error", func(t *testing.T) {
		err := rulekit.NewRuleError("discount", "no data", nil)
		assert.Equal(t, "[Rule Name=discount] no data", err.Error())
	})

	t.Run("CauseAsMessage", func(t *testing.T) {
		err := rulekit.NewRuleError("discount", "", rulekit.ErrEmptyData)
		assert.Equal(t, "[Rule Name=discount] rulekit: rule data is empty", err.Error())
	})

	t.Run("MessageWinsOverCause", func(t *testing.T) {
		err := rulekit.NewRuleError("discount", "boom", errors.New("cause"))
		assert.Equal(t, "[Rule Name=discount] boom", err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		err := rulekit.NewRuleError("discount", "", rulekit.ErrEmptyData)
		assert.True(t, errors.Is(err, rulekit.ErrEmptyData))
	})

	t.Run("IsRuleError", func(t *testing.T) {
		err := rulekit.NewRuleError("discount", "no data", nil)
		assert.True(t, rulekit.IsRuleError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, rulekit.IsRuleError(wrapped))

		assert.False(t, rulekit.IsRuleError(errors.New("other error")))
		assert.False(t, rulekit.IsRuleError(nil))
	})

	t.Run("Accessors", func(t *testing.T) {
		err := rulekit.NewRuleError("discount", "no data", nil)
		assert.Equal(t, "discount", err.RuleName())
		assert.Equal(t, "no data", err.Message())
	})
}

func TestTableError(t *testing.T) {
	t.Parallel()

	t.Run("Error", func(t *testing.T) {
		err := rulekit.NewTableError("discount", "Invoices", "table is missing", nil)
		assert.Equal(t, "[DataTable Name=Invoices] [Rule Name=discount] table is missing", err.Error())
	})

	t.Run("IsARuleError", func(t *testing.T) {
		err := rulekit.NewTableError("discount", "Invoices", "table is missing", nil)

		var re *rulekit.RuleError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "discount", re.RuleName())
		assert.True(t, rulekit.IsRuleError(err))
	})

	t.Run("IsTableError", func(t *testing.T) {
		err := rulekit.NewTableError("discount", "Invoices", "table is missing", nil)
		assert.True(t, rulekit.IsTableError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, rulekit.IsTableError(wrapped))

		// Plain rule errors carry no table context.
		assert.False(t, rulekit.IsTableError(rulekit.NewRuleError("discount", "no data", nil)))
		assert.False(t, rulekit.IsTableError(nil))
	})

	t.Run("CauseReachableThroughChain", func(t *testing.T) {
		cause := errors.New("underlying")
		err := rulekit.NewTableError("discount", "Invoices", "table is missing", cause)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Accessors", func(t *testing.T) {
		err := rulekit.NewTableError("discount", "Invoices", "table is missing", nil)
		assert.Equal(t, "Invoices", err.TableName())
		assert.Equal(t, "discount", err.RuleName())
	})
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	t.Run("Error", func(t *testing.T) {
		err := rulekit.NewFieldError("discount", "Orders", "Status",
			"table does not contain required column", nil)
		assert.Equal(t,
			"[Field Name=Status] [DataTable Name=Orders] [Rule Name=discount] table does not contain required column",
			err.Error())
	})

	t.Run("IsATableError", func(t *testing.T) {
		err := rulekit.NewFieldError("discount", "Orders", "Status", "bad", nil)

		var te *rulekit.TableError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "Orders", te.TableName())

		var re *rulekit.RuleError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "discount", re.RuleName())
	})

	t.Run("IsFieldError", func(t *testing.T) {
		err := rulekit.NewFieldError("discount", "Orders", "Status", "bad", nil)
		assert.True(t, rulekit.IsFieldError(err))
		assert.True(t, rulekit.IsTableError(err))
		assert.True(t, rulekit.IsRuleError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, rulekit.IsFieldError(wrapped))

		// Table errors carry no field context.
		assert.False(t, rulekit.IsFieldError(rulekit.NewTableError("discount", "Orders", "bad", nil)))
		assert.False(t, rulekit.IsFieldError(nil))
	})

	t.Run("CauseReachableThroughChain", func(t *testing.T) {
		err := rulekit.NewFieldError("discount", "Orders", "Status", "", rulekit.ErrUnknownField)
		assert.True(t, errors.Is(err, rulekit.ErrUnknownField))
	})

	t.Run("Accessors", func(t *testing.T) {
		err := rulekit.NewFieldError("discount", "Orders", "Status", "bad", nil)
		assert.Equal(t, "Status", err.FieldName())
		assert.Equal(t, "Orders", err.TableName())
		assert.Equal(t, "discount", err.RuleName())
	})
}

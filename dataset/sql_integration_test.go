package dataset_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/syssam/rulekit/dataset"
)

func TestLoadTableSQLite(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TABLE orders (status TEXT, total INTEGER)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO orders VALUES ('Open', 125), ('Closed', 90)`)
	require.NoError(t, err)

	tbl, err := dataset.LoadTable(ctx, db, "Orders",
		`SELECT status, total FROM orders ORDER BY total DESC`)
	require.NoError(t, err)

	assert.Equal(t, []string{"status", "total"}, tbl.Columns())
	require.Equal(t, 2, tbl.NumRows())

	v, err := tbl.Value(0, "status")
	require.NoError(t, err)
	assert.Equal(t, "Open", v)

	v, err = tbl.Value(1, "total")
	require.NoError(t, err)
	assert.EqualValues(t, 90, v)
}

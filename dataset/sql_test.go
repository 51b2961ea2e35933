package dataset_test

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/rulekit/dataset"
)

func TestLoadTable(t *testing.T) {
	t.Parallel()

	t.Run("MaterializesResultSet", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT status, total FROM orders").
			WillReturnRows(sqlmock.NewRows([]string{"status", "total"}).
				AddRow("Open", 125).
				AddRow("Closed", 90))

		tbl, err := dataset.LoadTable(context.Background(), db, "Orders",
			"SELECT status, total FROM orders")
		require.NoError(t, err)

		assert.Equal(t, "Orders", tbl.Name())
		assert.Equal(t, []string{"status", "total"}, tbl.Columns())
		assert.Equal(t, 2, tbl.NumRows())

		v, err := tbl.Value(0, "status")
		require.NoError(t, err)
		assert.Equal(t, "Open", v)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryArgs", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT status FROM orders WHERE id = ?").
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Open"))

		tbl, err := dataset.LoadTable(context.Background(), db, "Orders",
			"SELECT status FROM orders WHERE id = ?", 7)
		require.NoError(t, err)
		assert.Equal(t, 1, tbl.NumRows())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		boom := errors.New("boom")
		mock.ExpectQuery("SELECT").WillReturnError(boom)

		_, err = dataset.LoadTable(context.Background(), db, "Orders", "SELECT 1")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("RowError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		boom := errors.New("read failed")
		mock.ExpectQuery("SELECT").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).
				AddRow("Open").
				RowError(0, boom))

		_, err = dataset.LoadTable(context.Background(), db, "Orders", "SELECT 1")
		assert.ErrorIs(t, err, boom)
	})
}

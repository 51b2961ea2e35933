package dataset

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/cases"
)

// Standard sentinel errors for dataset operations.
var (
	// ErrRowRange is returned when a row index is outside a table's rows.
	ErrRowRange = errors.New("dataset: row index out of range")

	// ErrNoColumn is returned when a named column does not exist.
	ErrNoColumn = errors.New("dataset: no such column")

	// ErrRowArity is returned when a row has the wrong number of values.
	ErrRowArity = errors.New("dataset: wrong number of row values")

	// ErrDuplicateTable is returned when adding a table whose name is
	// already taken.
	ErrDuplicateTable = errors.New("dataset: duplicate table")
)

// Dataset is a rule's tabular data context: named tables, a single-row
// field collection, and the active row ID per class.
type Dataset struct {
	tables map[string]*Table
	fields *FieldCollection
	active map[string]string
}

// New creates an empty Dataset.
func New() *Dataset {
	return &Dataset{
		tables: make(map[string]*Table),
		fields: NewFieldCollection(),
		active: make(map[string]string),
	}
}

// Add adds a table to the dataset. Adding a second table under the same
// name fails with ErrDuplicateTable.
func (d *Dataset) Add(t *Table) error {
	if _, ok := d.tables[t.name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTable, t.name)
	}
	d.tables[t.name] = t
	return nil
}

// Table returns the named table and whether it exists.
func (d *Dataset) Table(name string) (*Table, bool) {
	t, ok := d.tables[name]
	return t, ok
}

// Tables returns the table names in sorted order.
func (d *Dataset) Tables() []string {
	names := make([]string, 0, len(d.tables))
	for name := range d.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tables.
func (d *Dataset) Len() int {
	return len(d.tables)
}

// Fields returns the dataset's single-row field collection.
func (d *Dataset) Fields() *FieldCollection {
	return d.fields
}

// SetActiveRow records rowID as the active row for className.
func (d *Dataset) SetActiveRow(className, rowID string) {
	d.active[fold(className)] = rowID
}

// ActiveRow returns the active row ID for className, or "" when none
// was set. Class names match case-insensitively.
func (d *Dataset) ActiveRow(className string) string {
	return d.active[fold(className)]
}

// Table is an ordered sequence of rows sharing a fixed column list.
// Rows are column-indexed, the shape of a materialized query result.
type Table struct {
	name     string
	columns  []string
	colIndex map[string]int
	rows     [][]any
}

// NewTable creates a table with the given name and columns.
func NewTable(name string, columns ...string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Table{name: name, columns: columns, colIndex: idx}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the column names in declaration order. The returned
// slice is shared; callers must not modify it.
func (t *Table) Columns() []string {
	return t.columns
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// AppendRow adds a row. The number of values must match the number of
// columns.
func (t *Table) AppendRow(values ...any) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("%w: table %s has %d columns, got %d values",
			ErrRowArity, t.name, len(t.columns), len(values))
	}
	t.rows = append(t.rows, values)
	return nil
}

// Value returns the value at (row, column).
func (t *Table) Value(row int, column string) (any, error) {
	i, ok := t.colIndex[column]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoColumn, t.name, column)
	}
	if row < 0 || row >= len(t.rows) {
		return nil, fmt.Errorf("%w: table %s row %d of %d", ErrRowRange, t.name, row, len(t.rows))
	}
	return t.rows[row][i], nil
}

// SetValue overwrites the value at (row, column).
func (t *Table) SetValue(row int, column string, v any) error {
	i, ok := t.colIndex[column]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrNoColumn, t.name, column)
	}
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: table %s row %d of %d", ErrRowRange, t.name, row, len(t.rows))
	}
	t.rows[row][i] = v
	return nil
}

// Record is a single-row field value.
type Record struct {
	ClassName string
	FieldName string
	RowID     string
	Value     string
}

type fieldKey struct {
	class, field, rowID string
}

// FieldCollection holds single-row field records keyed by class name,
// field name, and row ID. Keys match case-insensitively; records keep
// the caller's original casing.
type FieldCollection struct {
	records map[fieldKey]Record
}

// NewFieldCollection creates an empty FieldCollection.
func NewFieldCollection() *FieldCollection {
	return &FieldCollection{records: make(map[fieldKey]Record)}
}

// Set stores a field value, replacing any record under the same key.
func (c *FieldCollection) Set(className, fieldName, rowID, value string) {
	c.records[fieldKey{fold(className), fold(fieldName), rowID}] = Record{
		ClassName: className,
		FieldName: fieldName,
		RowID:     rowID,
		Value:     value,
	}
}

// Get returns the record for (className, fieldName, rowID) and whether
// it exists.
func (c *FieldCollection) Get(className, fieldName, rowID string) (Record, bool) {
	rec, ok := c.records[fieldKey{fold(className), fold(fieldName), rowID}]
	return rec, ok
}

// Contains reports whether any record exists for (className, fieldName),
// under any row ID.
func (c *FieldCollection) Contains(className, fieldName string) bool {
	class, field := fold(className), fold(fieldName)
	for k := range c.records {
		if k.class == class && k.field == field {
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (c *FieldCollection) Len() int {
	return len(c.records)
}

// All returns every record, in unspecified order.
func (c *FieldCollection) All() []Record {
	recs := make([]Record, 0, len(c.records))
	for _, rec := range c.records {
		recs = append(recs, rec)
	}
	return recs
}

// fold normalizes a key component with Unicode case folding. A fresh
// caser per call: cases.Caser is not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

package dataset

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

type snapshot struct {
	Tables map[string]tableSnapshot `msgpack:"tables"`
	Fields []Record                 `msgpack:"fields"`
	Active map[string]string        `msgpack:"active"`
}

type tableSnapshot struct {
	Columns []string `msgpack:"columns"`
	Rows    [][]any  `msgpack:"rows"`
}

// MarshalBinary encodes the dataset as a msgpack snapshot, so
// materialized datasets can be cached between runs. It implements
// encoding.BinaryMarshaler.
func (d *Dataset) MarshalBinary() ([]byte, error) {
	s := snapshot{
		Tables: make(map[string]tableSnapshot, len(d.tables)),
		Fields: d.fields.All(),
		Active: d.active,
	}
	for name, t := range d.tables {
		s.Tables[name] = tableSnapshot{Columns: t.columns, Rows: t.rows}
	}
	b, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("dataset: encoding snapshot: %w", err)
	}
	return b, nil
}

// UnmarshalBinary replaces the dataset's contents with a snapshot
// produced by MarshalBinary. It implements
// encoding.BinaryUnmarshaler.
//
// Note that msgpack narrows integers on decode: a row value stored as
// int may come back as int8. Values compare equal once rendered as
// strings.
func (d *Dataset) UnmarshalBinary(data []byte) error {
	var s snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dataset: decoding snapshot: %w", err)
	}

	d.tables = make(map[string]*Table, len(s.Tables))
	for name, ts := range s.Tables {
		t := NewTable(name, ts.Columns...)
		for _, row := range ts.Rows {
			if err := t.AppendRow(row...); err != nil {
				return err
			}
		}
		d.tables[name] = t
	}

	d.fields = NewFieldCollection()
	for _, rec := range s.Fields {
		d.fields.Set(rec.ClassName, rec.FieldName, rec.RowID, rec.Value)
	}

	d.active = make(map[string]string, len(s.Active))
	for class, rowID := range s.Active {
		d.active[class] = rowID
	}
	return nil
}

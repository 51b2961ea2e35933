package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// loadLimit caps the number of files LoadDir decodes concurrently.
const loadLimit = 8

type datasetDecl struct {
	Tables map[string]tableDecl `yaml:"tables"`
	Fields []fieldDecl          `yaml:"fields"`
	Active map[string]string    `yaml:"active"`
}

type tableDecl struct {
	Columns []string         `yaml:"columns"`
	Rows    []map[string]any `yaml:"rows"`
}

type fieldDecl struct {
	ClassName string `yaml:"className"`
	FieldName string `yaml:"fieldName"`
	RowID     string `yaml:"rowID"`
	Value     string `yaml:"value"`
}

// Load decodes a YAML dataset document. Unknown document keys and row
// keys outside the declared columns are errors.
func Load(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var decl datasetDecl
	if err := dec.Decode(&decl); err != nil {
		return nil, fmt.Errorf("dataset: decoding yaml: %w", err)
	}

	d := New()
	if err := mergeDecl(d, decl); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile decodes the YAML dataset file at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return d, nil
}

// LoadDir decodes every *.yaml and *.yml file under dir (non-recursive)
// and merges them into one dataset. Files are decoded concurrently and
// merged in path order, so the result is deterministic. A table name
// appearing in two files fails with ErrDuplicateTable.
func LoadDir(dir string) (*Dataset, error) {
	var paths []string
	for _, pat := range []string{"*.yaml", "*.yml"} {
		m, err := filepath.Glob(filepath.Join(dir, pat))
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		paths = append(paths, m...)
	}
	sort.Strings(paths)

	var (
		mu    sync.Mutex
		parts = make(map[string]*Dataset, len(paths))
	)
	g := new(errgroup.Group)
	g.SetLimit(loadLimit)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			d, err := LoadFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			parts[path] = d
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := New()
	for _, path := range paths {
		if err := Merge(merged, parts[path]); err != nil {
			return nil, fmt.Errorf("%w (file %s)", err, path)
		}
	}
	return merged, nil
}

// Merge adds src's tables, field records, and active rows into dst.
// Tables already present in dst fail with ErrDuplicateTable; field
// records and active rows overwrite.
func Merge(dst, src *Dataset) error {
	for _, name := range src.Tables() {
		t, _ := src.Table(name)
		if err := dst.Add(t); err != nil {
			return err
		}
	}
	for _, rec := range src.Fields().All() {
		dst.Fields().Set(rec.ClassName, rec.FieldName, rec.RowID, rec.Value)
	}
	for class, rowID := range src.active {
		dst.active[class] = rowID
	}
	return nil
}

func mergeDecl(d *Dataset, decl datasetDecl) error {
	// Sorted for deterministic error reporting.
	names := make([]string, 0, len(decl.Tables))
	for name := range decl.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		td := decl.Tables[name]
		t := NewTable(name, td.Columns...)
		for i, row := range td.Rows {
			values := make([]any, len(td.Columns))
			for key, v := range row {
				if !t.HasColumn(key) {
					return fmt.Errorf("%w: table %s row %d declares %q", ErrNoColumn, name, i, key)
				}
				values[t.colIndex[key]] = v
			}
			if err := t.AppendRow(values...); err != nil {
				return err
			}
		}
		if err := d.Add(t); err != nil {
			return err
		}
	}

	for i, f := range decl.Fields {
		if f.ClassName == "" || f.FieldName == "" {
			return fmt.Errorf("dataset: field %d is missing className or fieldName", i)
		}
		d.fields.Set(f.ClassName, f.FieldName, f.RowID, f.Value)
	}
	for class, rowID := range decl.Active {
		d.SetActiveRow(class, rowID)
	}
	return nil
}

// IsNotExist reports whether err is a missing-file error from LoadFile
// or LoadDir.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

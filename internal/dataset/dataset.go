package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/trknhr/housepricer/internal/logger"
)

// TargetColumn is the regression target. It is never offered as a feature.
const TargetColumn = "price"

// excluded lists columns that are never usable as features even when their
// values parse as numbers: identifiers, timestamps, and the target itself.
var excluded = map[string]bool{
	"id":         true,
	"date":       true,
	TargetColumn: true,
}

// Kind is the inferred type of a column.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
)

// Table is an immutable in-memory view of the loaded CSV.
type Table struct {
	Columns []string
	Rows    [][]string

	kinds []Kind
	index map[string]int
}

// Summary describes the table for the dataset info view.
type Summary struct {
	RowCount int
	ColCount int
	Columns  []string
	Head     [][]string
}

// Dataset lazily loads a CSV file exactly once per session and caches the
// result, including a failed load.
type Dataset struct {
	path string

	once    sync.Once
	tbl     *Table
	loadErr error
}

func New(path string) *Dataset {
	return &Dataset{path: path}
}

// Load reads the backing CSV on first call; later calls return the cached
// table (or the cached error).
func (d *Dataset) Load() (*Table, error) {
	d.once.Do(func() {
		d.tbl, d.loadErr = readTable(d.path)
		if d.loadErr == nil {
			logger.Debug("loaded dataset %s: %d rows, %d columns", d.path, len(d.tbl.Rows), len(d.tbl.Columns))
		}
	})
	return d.tbl, d.loadErr
}

// NumericColumns returns, in header order, every column whose non-empty
// values all parse as numbers, minus the fixed exclusion set.
func (d *Dataset) NumericColumns() ([]string, error) {
	tbl, err := d.Load()
	if err != nil {
		return nil, err
	}
	var cols []string
	for i, name := range tbl.Columns {
		if excluded[strings.ToLower(name)] {
			continue
		}
		if tbl.kinds[i] == KindNumeric {
			cols = append(cols, name)
		}
	}
	return cols, nil
}

// Column returns the named column as a float vector.
func (d *Dataset) Column(name string) ([]float64, error) {
	tbl, err := d.Load()
	if err != nil {
		return nil, err
	}
	idx, ok := tbl.index[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	if tbl.kinds[idx] != KindNumeric {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	out := make([]float64, len(tbl.Rows))
	for i, row := range tbl.Rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s row %d: %w", name, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// Info summarizes the table for display: counts, ordered column names, and
// the first five rows. Triggers the lazy load.
func (d *Dataset) Info() (*Summary, error) {
	tbl, err := d.Load()
	if err != nil {
		return nil, err
	}
	head := tbl.Rows
	if len(head) > 5 {
		head = head[:5]
	}
	return &Summary{
		RowCount: len(tbl.Rows),
		ColCount: len(tbl.Columns),
		Columns:  tbl.Columns,
		Head:     head,
	}, nil
}

func readTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	header := records[0]
	ncol := len(header)
	tbl := &Table{
		Columns: make([]string, ncol),
		index:   make(map[string]int, ncol),
		kinds:   make([]Kind, ncol),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		tbl.Columns[i] = name
		tbl.index[name] = i
	}

	numCnt := make([]int, ncol)
	nonEmpty := make([]int, ncol)
	for ri, rec := range records[1:] {
		if len(rec) > ncol {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", ri+1, len(rec), ncol)
		}
		// pad short rows so every row has ncol cells
		if len(rec) < ncol {
			tmp := make([]string, ncol)
			copy(tmp, rec)
			rec = tmp
		}
		row := make([]string, ncol)
		copy(row, rec)
		tbl.Rows = append(tbl.Rows, row)

		for j := 0; j < ncol; j++ {
			v := strings.TrimSpace(row[j])
			if v == "" {
				continue
			}
			nonEmpty[j]++
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				numCnt[j]++
			}
		}
	}

	for j := 0; j < ncol; j++ {
		if nonEmpty[j] > 0 && numCnt[j] == nonEmpty[j] {
			tbl.kinds[j] = KindNumeric
		} else {
			tbl.kinds[j] = KindText
		}
	}
	return tbl, nil
}

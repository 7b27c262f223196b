package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/trknhr/housepricer/internal/dataset"
)

const fixtureCSV = `id,date,price,bedrooms,bathrooms,sqft_living,neighborhood
1,20141013T000000,221900,3,1,1180,ballard
2,20141209T000000,538000,3,2.25,2570,fremont
3,20150225T000000,180000,2,1,770,ballard
4,20141209T000000,604000,4,3,1960,queen anne
5,20150218T000000,510000,3,2,1680,fremont
6,20140512T000000,1225000,4,4.5,5420,laurelhurst
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "houses.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestNumericColumnsExcludesFixedSet(t *testing.T) {
	ds := dataset.New(writeFixture(t))

	got, err := ds.NumericColumns()
	if err != nil {
		t.Fatalf("NumericColumns failed: %v", err)
	}
	// id and price are numeric but excluded; date and neighborhood are text
	want := []string{"bedrooms", "bathrooms", "sqft_living"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NumericColumns mismatch (-want +got):\n%s", diff)
	}
}

func TestInfo(t *testing.T) {
	ds := dataset.New(writeFixture(t))

	info, err := ds.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.RowCount != 6 {
		t.Errorf("expected 6 rows, got %d", info.RowCount)
	}
	if info.ColCount != 7 {
		t.Errorf("expected 7 columns, got %d", info.ColCount)
	}
	if len(info.Head) != 5 {
		t.Errorf("expected 5 head rows, got %d", len(info.Head))
	}
	if info.Columns[0] != "id" || info.Columns[6] != "neighborhood" {
		t.Errorf("unexpected column order: %v", info.Columns)
	}
	if info.Head[0][2] != "221900" {
		t.Errorf("unexpected first head row: %v", info.Head[0])
	}
}

func TestColumn(t *testing.T) {
	ds := dataset.New(writeFixture(t))

	col, err := ds.Column("bedrooms")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	want := []float64{3, 3, 2, 4, 3, 4}
	if diff := cmp.Diff(want, col); diff != "" {
		t.Errorf("bedrooms mismatch (-want +got):\n%s", diff)
	}

	// target column stays readable even though it is never a feature
	if _, err := ds.Column("price"); err != nil {
		t.Errorf("price column should be readable: %v", err)
	}

	if _, err := ds.Column("nope"); err == nil {
		t.Errorf("expected error for unknown column")
	}
	if _, err := ds.Column("neighborhood"); err == nil {
		t.Errorf("expected error for non-numeric column")
	}
}

func TestLoadIsCached(t *testing.T) {
	path := writeFixture(t)
	ds := dataset.New(path)

	first, err := ds.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// rewriting the backing file must not change the loaded table
	if err := os.WriteFile(path, []byte("id,price\n9,1\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite fixture: %v", err)
	}
	second, err := ds.Load()
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if first != second {
		t.Errorf("expected the cached table on the second load")
	}
	if len(second.Rows) != 6 {
		t.Errorf("cached table changed: %d rows", len(second.Rows))
	}
}

func TestLoadMissingFile(t *testing.T) {
	ds := dataset.New(filepath.Join(t.TempDir(), "missing.csv"))
	if _, err := ds.Load(); err == nil {
		t.Fatalf("expected an error for a missing dataset file")
	}
	// the failed load is cached too
	if _, err := ds.NumericColumns(); err == nil {
		t.Fatalf("expected the cached load error")
	}
}

func TestLoadRejectsWideRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	body := "id,price,bedrooms\n1,221900,3\n2,538000,3,extra\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := dataset.New(path).Load()
	if err == nil {
		t.Fatalf("expected an error for a row wider than the header")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("error should name the offending row, got: %v", err)
	}
}

func TestInfoHeaderOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "header-only.csv")
	if err := os.WriteFile(path, []byte("id,date,price,bedrooms\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	info, err := dataset.New(path).Info()
	if err != nil {
		t.Fatalf("Info must work on a header-only file: %v", err)
	}
	if info.RowCount != 0 {
		t.Errorf("expected 0 rows, got %d", info.RowCount)
	}
	if info.ColCount != 4 {
		t.Errorf("expected 4 columns, got %d", info.ColCount)
	}
	if len(info.Head) != 0 {
		t.Errorf("expected no head rows, got %d", len(info.Head))
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := dataset.New(path).Load(); err == nil {
		t.Fatalf("expected an error for an empty dataset file")
	}
}

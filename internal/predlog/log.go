package predlog

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Pair is one feature value as entered by the user, in prompt order.
type Pair struct {
	Name  string
	Value float64
}

// Record is a single prediction: when it happened, what the user entered,
// and what the model returned. Records are append-only and never mutated.
type Record struct {
	Timestamp time.Time
	Values    []Pair
	Predicted float64
}

type Store interface {
	Append(rec Record) error
	ReadAll() ([]string, error)
}

// FileStore appends one formatted line per record to a plain text file.
type FileStore struct {
	path string
}

func NewFileStore(path string) Store {
	return &FileStore{path: path}
}

// Append writes the record as a single line, creating the file if absent.
// Existing lines are never rewritten.
func (s *FileStore) Append(rec Record) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatLine(rec)); err != nil {
		return fmt.Errorf("append prediction: %w", err)
	}
	return nil
}

// ReadAll returns previously written lines in file order. A missing file is
// an empty history, not an error.
func (s *FileStore) ReadAll() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	return lines, nil
}

// FormatLine renders a record as
// "YYYY-MM-DD HH:MM:SS | k1=v1, k2=v2, ... | Predicted: $#,###.##\n".
func FormatLine(rec Record) string {
	parts := make([]string, len(rec.Values))
	for i, p := range rec.Values {
		parts[i] = fmt.Sprintf("%s=%g", p.Name, p.Value)
	}
	return fmt.Sprintf("%s | %s | Predicted: %s\n",
		rec.Timestamp.Format("2006-01-02 15:04:05"),
		strings.Join(parts, ", "),
		FormatPrice(rec.Predicted))
}

// FormatPrice renders a price as a currency string with thousands
// separators and two decimals.
func FormatPrice(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

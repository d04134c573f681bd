// Package bedloader reads tab-delimited BED-style interval tables into a
// genome.Index.
package bedloader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidx/ivtree/internal/genome"
)

// Minimum number of BED columns a row must carry: chrom, start, end.
const minRecordLength = 3

// ErrRecordLength is returned when a row has fewer than the mandatory
// chrom/start/end columns.
var ErrRecordLength = errors.New("bedloader: invalid record length")

// ErrInvalidRange is returned when a row's start or end column does not
// parse as an integer. Inverted or empty ranges are rejected by the tree's
// Add instead.
var ErrInvalidRange = errors.New("bedloader: invalid range")

// Loader reads BED rows from a reader and inserts them into a genome.Index
// shard, keyed by the row's chromosome column.
type Loader struct {
	// ChromColumn is the 0-based column index holding the chromosome key.
	ChromColumn int
}

// NewLoader returns a Loader reading the chromosome key from column
// chromColumn.
func NewLoader(chromColumn int) *Loader {
	return &Loader{ChromColumn: chromColumn}
}

// Load reads every row from r as tab-separated BED fields and inserts the
// resulting intervals into idx. It returns the number of rows accepted,
// the number rejected, and a joined error describing every rejected row.
// A malformed row never aborts the load; Loader logs nothing itself, it
// only reports counts and errors for the caller to act on.
func (l *Loader) Load(r io.Reader, idx *genome.Index) (accepted, rejected int, err error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	var errs []error
	rowNum := 0
	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		rowNum++
		if readErr != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", rowNum, readErr))
			rejected++
			continue
		}

		chrom, begin, end, rec, parseErr := l.parseRow(row)
		if parseErr != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", rowNum, parseErr))
			rejected++
			continue
		}

		if addErr := idx.Add(chrom, begin, end, rec); addErr != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", rowNum, addErr))
			rejected++
			continue
		}
		accepted++
	}
	return accepted, rejected, errors.Join(errs...)
}

// parseRow converts one BED row into a chromosome key, a half-open
// integer range, and a genome.Record carrying the row's name and any
// trailing columns.
func (l *Loader) parseRow(row []string) (chrom string, begin, end int, rec genome.Record, err error) {
	if len(row) < minRecordLength {
		return "", 0, 0, genome.Record{}, fmt.Errorf("%w: got %d columns, want at least %d", ErrRecordLength, len(row), minRecordLength)
	}
	if l.ChromColumn < 0 || l.ChromColumn >= len(row) {
		return "", 0, 0, genome.Record{}, fmt.Errorf("%w: chrom column %d out of range", ErrRecordLength, l.ChromColumn)
	}

	startCol, endCol := bedRangeColumns(l.ChromColumn, len(row))
	if endCol >= len(row) {
		return "", 0, 0, genome.Record{}, fmt.Errorf("%w: got %d columns, want at least %d", ErrRecordLength, len(row), endCol+1)
	}
	begin, err = strconv.Atoi(row[startCol])
	if err != nil {
		return "", 0, 0, genome.Record{}, fmt.Errorf("%w: start %q: %v", ErrInvalidRange, row[startCol], err)
	}
	end, err = strconv.Atoi(row[endCol])
	if err != nil {
		return "", 0, 0, genome.Record{}, fmt.Errorf("%w: end %q: %v", ErrInvalidRange, row[endCol], err)
	}

	name := ""
	if len(row) > endCol+1 {
		name = row[endCol+1]
	}
	extra := ""
	if len(row) > endCol+2 {
		extra = strings.Join(row[endCol+2:], "\t")
	}

	return row[l.ChromColumn], begin, end, genome.Record{Name: name, Extra: extra}, nil
}

// bedRangeColumns returns the start/end column indices immediately
// following the chromosome column, matching standard BED layout
// (chrom, chromStart, chromEnd, name, ...).
func bedRangeColumns(chromColumn, rowLen int) (startCol, endCol int) {
	return chromColumn + 1, chromColumn + 2
}

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

/*
LoadFile reads the delimited dataset at path.
*/
func LoadFile(path string, delimiter rune) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}
	defer file.Close()

	rows, err := Load(file, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

/*
Load reads a delimited dataset with a header line from r.

Columns are matched by name, case-insensitively and ignoring surrounding
whitespace; extra columns are ignored. Rows keep their input order and Index
is set to their position.
*/
func Load(r io.Reader, delimiter rune) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	columns, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
			}
			return nil, fmt.Errorf("error reading dataset: %w", err)
		}

		line, _ := reader.FieldPos(0)
		row, err := parseRow(record, columns)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		row.Index = len(rows)
		rows = append(rows, row)
	}

	log.Debugf("Loaded %d rows with %d columns", len(rows), len(header))
	return rows, nil
}

// columnIndex maps each required column to its position in a record.
type columnIndex map[string]int

func resolveColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := positions[key]; !exists {
			positions[key] = i
		}
	}

	columns := make(columnIndex, len(RequiredColumns))
	var missing []string
	for _, name := range RequiredColumns {
		pos, exists := positions[name]
		if !exists {
			missing = append(missing, name)
			continue
		}
		columns[name] = pos
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrMissingColumn, strings.Join(missing, ", "), header)
	}
	return columns, nil
}

func parseRow(record []string, columns columnIndex) (Row, error) {
	var row Row
	var err error

	field := func(name string) string {
		return record[columns[name]]
	}

	row.URL = strings.TrimSpace(field(ColumnURL))
	row.LabelString = NormalizeLabel(field(ColumnLabelString))
	row.NoisyLabelString = NormalizeLabel(field(ColumnNoisyLabelString))

	if row.LabelIdx, err = parseInt(ColumnLabelIdx, field(ColumnLabelIdx)); err != nil {
		return Row{}, err
	}
	if row.NoisyLabelIdx, err = parseInt(ColumnNoisyLabelIdx, field(ColumnNoisyLabelIdx)); err != nil {
		return Row{}, err
	}
	if row.InclusionProb, err = parseFloat(ColumnInclusionProb, field(ColumnInclusionProb)); err != nil {
		return Row{}, err
	}
	if row.ExclusionProb, err = parseFloat(ColumnExclusionProb, field(ColumnExclusionProb)); err != nil {
		return Row{}, err
	}
	if row.X, err = parseFloat(ColumnX, field(ColumnX)); err != nil {
		return Row{}, err
	}
	if row.Y, err = parseFloat(ColumnY, field(ColumnY)); err != nil {
		return Row{}, err
	}

	return row, nil
}

// parseInt accepts plain integers as well as integral floats such as "3.0".
func parseInt(column, value string) (int, error) {
	value = strings.TrimSpace(value)
	if i, err := strconv.Atoi(value); err == nil {
		return i, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("column %s: invalid integer %q", column, value)
	}
	return int(f), nil
}

func parseFloat(column, value string) (float64, error) {
	value = strings.TrimSpace(value)
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("column %s: invalid number %q", column, value)
	}
	return f, nil
}

/*
NormalizeLabel applies Unicode NFC normalization and trims whitespace.
*/
func NormalizeLabel(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

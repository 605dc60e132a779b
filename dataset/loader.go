package dataset

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	M "seqmine/model"
	U "seqmine/util"

	E "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Table is an uploaded dataset held in memory. Read-only once loaded.
type Table struct {
	Filename  string
	SizeBytes int64
	Columns   []string
	Rows      [][]string

	colIndex map[string]int
}

// LoadCSV parses an uploaded CSV. The first record is the header. The
// table must have at least two columns, one for the sequence id and one
// for the item.
func LoadCSV(r io.Reader, filename string) (*Table, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".csv" {
		return nil, E.New("Only CSV files are supported. Please upload a .csv file.")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, E.Wrap(err, "Failed to read uploaded file")
	}

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		return nil, E.Wrap(err, "Failed to parse CSV file")
	}
	if len(records) == 0 {
		return nil, E.New("The CSV file is empty or corrupted.")
	}

	columns := records[0]
	if len(columns) < 2 {
		return nil, E.New("CSV must have at least 2 columns (ID and Item).")
	}
	rows := records[1:]
	if len(rows) == 0 {
		return nil, E.New("The uploaded CSV file has no data rows.")
	}

	colIndex := make(map[string]int)
	for i, c := range columns {
		colIndex[c] = i
	}

	table := &Table{
		Filename:  filename,
		SizeBytes: int64(len(raw)),
		Columns:   columns,
		Rows:      rows,
		colIndex:  colIndex,
	}
	log.WithFields(log.Fields{"filename": filename, "rows": len(rows),
		"columns": len(columns)}).Info("Loaded CSV dataset.")
	return table, nil
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

func (t *Table) value(row []string, column string) string {
	i, ok := t.colIndex[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// Preview returns the dataset summary with up to numRows rows of data.
func (t *Table) Preview(numRows int) M.DatasetPreview {
	if numRows > len(t.Rows) {
		numRows = len(t.Rows)
	}
	previewData := make([]map[string]string, 0, numRows)
	for _, row := range t.Rows[:numRows] {
		record := make(map[string]string, len(t.Columns))
		for _, c := range t.Columns {
			record[c] = t.value(row, c)
		}
		previewData = append(previewData, record)
	}
	return M.DatasetPreview{
		Filename:    t.Filename,
		Rows:        len(t.Rows),
		Columns:     t.Columns,
		PreviewData: previewData,
		FileSize:    U.FileSizeString(t.SizeBytes),
	}
}

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Table is a Dataset together with the column names it was read with.
type Table struct {
	Columns     []string
	LabelColumn string
	Dataset
}

// ReadCSV reads a headed CSV where labelColumn holds the 0/1 label and every
// other column is a numeric feature.
func ReadCSV(r io.Reader, labelColumn string) (Table, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		return Table{}, fmt.Errorf("failed to read header: %w", err)
	}

	labelIdx := slices.Index(header, labelColumn)
	if labelIdx < 0 {
		return Table{}, fmt.Errorf("label column %q not found in header %v", labelColumn, header)
	}

	columns := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i != labelIdx {
			columns = append(columns, name)
		}
	}

	features := [][]float64{}
	labels := []int{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return Table{}, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		row := make([]float64, 0, len(columns))
		for i, value := range record {
			if i == labelIdx {
				if label, err := parseLabel(value); err != nil {
					return Table{}, fmt.Errorf("line %d: %w", line, err)
				} else {
					labels = append(labels, label)
				}
				continue
			}
			if v, err := strconv.ParseFloat(value, 64); err != nil {
				return Table{}, fmt.Errorf("line %d column %q: %w", line, header[i], err)
			} else {
				row = append(row, v)
			}
		}
		features = append(features, row)
	}

	d, err := New(features, labels)
	if err != nil {
		return Table{}, err
	}
	return Table{Columns: columns, LabelColumn: labelColumn, Dataset: d}, nil
}

// WriteCSV writes the table with the label as the last column.
func WriteCSV(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)

	header := append(slices.Clone(t.Columns), t.LabelColumn)
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for i, row := range t.Features {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		record[len(row)] = strconv.Itoa(t.Labels[i])
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Column returns the values of a feature column as binary labels, for CSVs that
// carry predictions next to ground truth.
func (t Table) Column(name string) ([]int, error) {
	idx := slices.Index(t.Columns, name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]int, len(t.Features))
	for i, row := range t.Features {
		if row[idx] != 0 && row[idx] != 1 {
			return nil, fmt.Errorf("column %q row %d: value %v is not 0 or 1", name, i, row[idx])
		}
		out[i] = int(row[idx])
	}
	return out, nil
}

func parseLabel(value string) (int, error) {
	if v, err := strconv.ParseFloat(value, 64); err != nil {
		return 0, fmt.Errorf("failed to parse label %q: %w", value, err)
	} else if v != 0 && v != 1 {
		return 0, fmt.Errorf("label %q is not 0 or 1", value)
	} else {
		return int(v), nil
	}
}

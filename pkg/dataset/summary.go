package dataset

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"
)

type ClassSummary struct {
	Count int
	Means []float64
}

type Summary struct {
	Rows     int
	Minority ClassSummary
	Majority ClassSummary
}

// Ratio is majority rows per minority row, 0 when there is no minority class.
func (s Summary) Ratio() float64 {
	if s.Minority.Count == 0 {
		return 0
	}
	return float64(s.Majority.Count) / float64(s.Minority.Count)
}

func Summarize(d Dataset) Summary {
	classes := d.Classes()
	return Summary{
		Rows:     d.Len(),
		Minority: summarizeClass(d, classes.Minority),
		Majority: summarizeClass(d, classes.Majority),
	}
}

func summarizeClass(d Dataset, idxs []int) ClassSummary {
	out := ClassSummary{Count: len(idxs), Means: make([]float64, d.Width())}
	if len(idxs) == 0 {
		return out
	}
	column := make([]float64, len(idxs))
	for j := range out.Means {
		for i, idx := range idxs {
			column[i] = d.Features[idx][j]
		}
		out.Means[j] = stat.Mean(column, nil)
	}
	return out
}

// Write renders the summary. columns names the features and may be nil.
func (s Summary) Write(w io.Writer, title string, columns []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"", "MINORITY (1)", "MAJORITY (0)"})
	t.AppendRows([]table.Row{
		{"Rows", fmt.Sprintf("%d", s.Minority.Count), fmt.Sprintf("%d", s.Majority.Count)},
	})
	t.AppendSeparator()
	for j := range s.Minority.Means {
		name := fmt.Sprintf("x%d", j)
		if j < len(columns) {
			name = columns[j]
		}
		t.AppendRow(table.Row{
			name + " (mean)",
			fmt.Sprintf("%0.4f", s.Minority.Means[j]),
			fmt.Sprintf("%0.4f", s.Majority.Means[j]),
		})
	}
	t.AppendFooter(table.Row{"TOTAL", fmt.Sprintf("%d", s.Rows), fmt.Sprintf("%0.2f : 1", s.Ratio())})
	t.Render()
}

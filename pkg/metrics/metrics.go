package metrics

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/grexie/imbalance/pkg/errs"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
)

// Report holds binary confusion counts and the rates derived from them. A rate
// whose denominator is zero is NaN.
type Report struct {
	TP          int     `json:"tp"`
	TN          int     `json:"tn"`
	FP          int     `json:"fp"`
	FN          int     `json:"fn"`
	Accuracy    float64 `json:"accuracy"`
	Precision   float64 `json:"precision"`
	Recall      float64 `json:"recall"`
	Specificity float64 `json:"specificity"`
}

type confusion struct {
	tp, tn, fp, fn int
}

func count(predictions, labels []int) (confusion, error) {
	if len(predictions) != len(labels) {
		return confusion{}, errs.DimensionMismatch("%d predictions but %d labels", len(predictions), len(labels))
	}
	c := confusion{}
	for i, label := range labels {
		if label != 0 && label != 1 {
			return confusion{}, errs.InvalidLabel(i, label)
		}
		if predictions[i] != 0 && predictions[i] != 1 {
			return confusion{}, fmt.Errorf("predictions: %w", errs.InvalidLabel(i, predictions[i]))
		}
		switch {
		case label == 1 && predictions[i] == 1:
			c.tp++
		case label == 0 && predictions[i] == 0:
			c.tn++
		case label == 0 && predictions[i] == 1:
			c.fp++
		case label == 1 && predictions[i] == 0:
			c.fn++
		}
	}
	return c, nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}

// Round rounds the exact binary value of v to 2 decimal places, half to even,
// so 0.125 rounds down but 0.665 (stored as 0.66500000000000003...) rounds up.
// NaN and infinities pass through.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', 2, 64))
	if err != nil {
		return v
	}
	return d.InexactFloat64()
}

// Compute counts the confusion matrix of predictions against labels and
// derives accuracy, precision, recall and specificity, each rounded to 2
// decimal places.
func Compute(predictions, labels []int) (Report, error) {
	c, err := count(predictions, labels)
	if err != nil {
		return Report{}, err
	}
	return Report{
		TP:          c.tp,
		TN:          c.tn,
		FP:          c.fp,
		FN:          c.fn,
		Accuracy:    Round(ratio(c.tp+c.tn, c.tp+c.tn+c.fp+c.fn)),
		Precision:   Round(ratio(c.tp, c.tp+c.fp)),
		Recall:      Round(ratio(c.tp, c.tp+c.fn)),
		Specificity: Round(ratio(c.tn, c.tn+c.fp)),
	}, nil
}

// Specificity returns tn/(tn+fp), unrounded.
func Specificity(predictions, labels []int) (float64, error) {
	c, err := count(predictions, labels)
	if err != nil {
		return 0, err
	}
	return ratio(c.tn, c.tn+c.fp), nil
}

func formatRate(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%0.2f", v)
}

func (r Report) Write(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Confusion Matrix")
	t.AppendHeader(table.Row{"", "PREDICTED 1", "PREDICTED 0"})
	t.AppendRows([]table.Row{
		{"ACTUAL 1", fmt.Sprintf("%d", r.TP), fmt.Sprintf("%d", r.FN)},
		{"ACTUAL 0", fmt.Sprintf("%d", r.FP), fmt.Sprintf("%d", r.TN)},
	})
	t.AppendFooter(table.Row{"SAMPLES", "", fmt.Sprintf("%d", r.TP+r.TN+r.FP+r.FN)})
	t.Render()

	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Metrics")
	t.AppendHeader(table.Row{"ACCURACY", "PRECISION", "RECALL", "SPECIFICITY"})
	t.AppendRow(table.Row{formatRate(r.Accuracy), formatRate(r.Precision), formatRate(r.Recall), formatRate(r.Specificity)})
	t.Render()
}

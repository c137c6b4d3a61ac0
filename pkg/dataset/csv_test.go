package dataset_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grexie/imbalance/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `age,label,income,prediction
31,0,52000.5,0
45,1,61000,1
28,0,39000,1
`

func TestReadCSV(t *testing.T) {
	table, err := dataset.ReadCSV(strings.NewReader(sampleCSV), "label")
	require.NoError(t, err)

	assert.Equal(t, []string{"age", "income", "prediction"}, table.Columns)
	assert.Equal(t, "label", table.LabelColumn)
	assert.Equal(t, [][]float64{{31, 52000.5, 0}, {45, 61000, 1}, {28, 39000, 1}}, table.Features)
	assert.Equal(t, []int{0, 1, 0}, table.Labels)

	predictions, err := table.Column("prediction")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, predictions)

	_, err = table.Column("age")
	require.Error(t, err)
	_, err = table.Column("missing")
	require.Error(t, err)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := dataset.ReadCSV(strings.NewReader(sampleCSV), "target")
	require.Error(t, err)

	_, err = dataset.ReadCSV(strings.NewReader("x,label\n1,2\n"), "label")
	require.Error(t, err)

	_, err = dataset.ReadCSV(strings.NewReader("x,label\nabc,1\n"), "label")
	require.Error(t, err)

	_, err = dataset.ReadCSV(strings.NewReader("x,label\n1,1\n2\n"), "label")
	require.Error(t, err)

	_, err = dataset.ReadCSV(strings.NewReader(""), "label")
	require.Error(t, err)
}

func TestCSVRoundTripThroughFile(t *testing.T) {
	in, err := dataset.ReadCSV(strings.NewReader(sampleCSV), "label")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, dataset.Save(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "age,income,prediction,label\n"))

	out, err := dataset.Load(context.Background(), path, "label")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := dataset.Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), "label")
	require.Error(t, err)
}

func TestLoadURL(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data.csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sampleCSV))
	}))
	defer svr.Close()

	table, err := dataset.Load(context.Background(), svr.URL+"/data.csv", "label")
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	_, err = dataset.Load(context.Background(), svr.URL+"/missing.csv", "label")
	require.Error(t, err)
}

func TestSummaryWrite(t *testing.T) {
	in, err := dataset.ReadCSV(strings.NewReader(sampleCSV), "label")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	dataset.Summarize(in.Dataset).Write(buf, "Input", in.Columns)
	out := buf.String()
	assert.Contains(t, out, "Input")
	assert.Contains(t, out, "income (mean)")
	assert.Contains(t, out, "2.00 : 1")
}

package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	apiClient = resty.New()
)

// Load reads a CSV table from a local path, from an http(s) URL, or from stdin
// when source is "-".
func Load(ctx context.Context, source string, labelColumn string) (Table, error) {
	switch {
	case source == "-":
		return ReadCSV(os.Stdin, labelColumn)
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		body, err := fetch(ctx, source)
		if err != nil {
			return Table{}, err
		}
		return ReadCSV(bytes.NewReader(body), labelColumn)
	default:
		file, err := os.Open(source)
		if err != nil {
			return Table{}, err
		}
		defer file.Close()
		return ReadCSV(file, labelColumn)
	}
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := apiClient.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %v", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode())
	}
	return resp.Body(), nil
}

// Save writes the table to path, or to stdout when path is "" or "-".
func Save(path string, t Table) error {
	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	return WriteCSV(w, t)
}

// Package export writes resampled datasets as dense training tensors.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grexie/imbalance/pkg/dataset"
	"gorgonia.org/tensor"
)

const (
	FeaturesFile = "features.npy"
	LabelsFile   = "labels.npy"
)

func flattenFeatures(features [][]float64, width int) []float64 {
	flattened := make([]float64, 0, len(features)*width)
	for _, feature := range features {
		flattened = append(flattened, feature...)
	}
	return flattened
}

func flattenLabels(labels []int, numClasses int) []float64 {
	flattened := make([]float64, len(labels)*numClasses)
	for i, label := range labels {
		flattened[i*numClasses+label] = 1.0
	}
	return flattened
}

// Features returns the feature matrix as a (rows x width) tensor.
func Features(d dataset.Dataset) *tensor.Dense {
	width := d.Width()
	return tensor.New(
		tensor.WithShape(d.Len(), width),
		tensor.WithBacking(flattenFeatures(d.Features, width)))
}

// Labels returns the labels one-hot encoded as a (rows x 2) tensor.
func Labels(d dataset.Dataset) *tensor.Dense {
	return tensor.New(
		tensor.WithShape(d.Len(), 2),
		tensor.WithBacking(flattenLabels(d.Labels, 2)))
}

// Save writes features.npy and labels.npy into dir, creating it if needed.
func Save(dir string, d dataset.Dataset) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.Len() == 0 || d.Width() == 0 {
		return fmt.Errorf("cannot export an empty dataset")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := writeNpy(filepath.Join(dir, FeaturesFile), Features(d)); err != nil {
		return err
	}
	return writeNpy(filepath.Join(dir, LabelsFile), Labels(d))
}

func writeNpy(path string, t *tensor.Dense) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteNpy(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

package resample

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

type Params struct {
	Strategy  Strategy `yaml:"strategy" json:"strategy"`
	Factor    float64  `yaml:"factor" json:"factor"`
	Neighbors int      `yaml:"neighbors" json:"neighbors"`
	Seed      int64    `yaml:"seed" json:"seed"`
}

func (p *Params) Write(w io.Writer, title string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendRows([]table.Row{
		{"RESAMPLE_STRATEGY", string(p.Strategy)},
		{"RESAMPLE_FACTOR", fmt.Sprintf("%0.04f", p.Factor)},
		{"RESAMPLE_NEIGHBORS", fmt.Sprintf("%d", p.Neighbors)},
		{"RESAMPLE_SEED", fmt.Sprintf("%d", p.Seed)},
	})
	t.Render()
}

func NewParamsFromDefaults() Params {
	return Params{
		Strategy:  StrategyName(),
		Factor:    Factor(),
		Neighbors: Neighbors(),
		Seed:      Seed(),
	}
}

// LoadParams starts from the environment defaults and overlays the YAML file
// at path, if path is not empty.
func LoadParams(path string) (Params, error) {
	params := NewParamsFromDefaults()
	if path == "" {
		return params, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return Params{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if params.Strategy, err = ParseStrategy(string(params.Strategy)); err != nil {
		return Params{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	params.Neighbors = BoundNeighbors(params.Neighbors)
	return params, nil
}

func envInt(name string, def func() int, dec func(v int) int) func() int {
	return func() int {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			if v, err := strconv.ParseInt(v, 10, 32); err != nil {
				log.Fatalf("failed to parse env.%s: %v", name, err)
			} else {
				value = int(v)
			}
		}
		return dec(value)
	}
}

func envInt64(name string, def func() int64) func() int64 {
	return func() int64 {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			if v, err := strconv.ParseInt(v, 10, 64); err != nil {
				log.Fatalf("failed to parse env.%s: %v", name, err)
			} else {
				value = v
			}
		}
		return value
	}
}

func envFloat64(name string, def func() float64, dec func(v float64) float64) func() float64 {
	return func() float64 {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			if v, err := strconv.ParseFloat(v, 64); err != nil {
				log.Fatalf("failed to parse env.%s: %v", name, err)
			} else {
				value = v
			}
		}
		return dec(value)
	}
}

func envString(name string, def func() string) func() string {
	return func() string {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			value = v
		}
		return value
	}
}

func envStrategy(name string, def func() Strategy) func() Strategy {
	return func() Strategy {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			if s, err := ParseStrategy(v); err != nil {
				log.Fatalf("failed to parse env.%s: %v", name, err)
			} else {
				value = s
			}
		}
		return value
	}
}

func BoundNeighbors(v int) int {
	return max(1, v)
}

var (
	StrategyName = envStrategy("RESAMPLE_STRATEGY", func() Strategy { return StrategySMOTE })
	Seed         = envInt64("RESAMPLE_SEED", func() int64 { return DefaultSeed })
)

var (
	Factor = envFloat64("RESAMPLE_FACTOR", func() float64 {
		return 1.0
	}, func(v float64) float64 { return v })
	Neighbors = envInt("RESAMPLE_NEIGHBORS", func() int {
		return 5
	}, BoundNeighbors)
)

var (
	ConfigPath       = envString("RESAMPLE_CONFIG", func() string { return "" })
	Input            = envString("RESAMPLE_INPUT", func() string { return "-" })
	Output           = envString("RESAMPLE_OUTPUT", func() string { return "-" })
	LabelColumn      = envString("RESAMPLE_LABEL_COLUMN", func() string { return "label" })
	PredictionColumn = envString("RESAMPLE_PREDICTION_COLUMN", func() string { return "prediction" })
	Addr             = envString("RESAMPLE_ADDR", func() string { return ":8080" })
	TensorDir        = envString("RESAMPLE_TENSOR_DIR", func() string { return "" })
)

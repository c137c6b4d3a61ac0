package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grexie/imbalance/pkg/dataset"
	"github.com/grexie/imbalance/pkg/export"
	"github.com/grexie/imbalance/pkg/metrics"
	"github.com/grexie/imbalance/pkg/resample"
	"github.com/grexie/imbalance/pkg/server"
	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
)

func loadEnv(filenames ...string) {
	for _, filename := range filenames {
		if s, err := os.Stat(filename); err == nil && !s.IsDir() {
			godotenv.Load(filename)
		}
	}
}

func newProgressWriter() progress.Writer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stderr)
	pw.SetMessageLength(40)
	pw.SetNumTrackersExpected(4)
	pw.SetSortBy(progress.SortByNone)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerLength(15)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%2.0f%%"
	return pw
}

func stopProgressWriter(pw progress.Writer) {
	pw.Stop()
	for pw.IsRenderInProgress() {
		time.Sleep(100 * time.Millisecond)
	}
}

func track(pw progress.Writer, message string, fn func() error) error {
	tracker := &progress.Tracker{
		Message: message,
		Total:   1,
		Units:   progress.UnitsDefault,
	}
	pw.AppendTracker(tracker)
	tracker.Start()
	if err := fn(); err != nil {
		tracker.MarkAsErrored()
		return err
	}
	tracker.Increment(1)
	tracker.MarkAsDone()
	return nil
}

func runResample(ctx context.Context) error {
	params, err := resample.LoadParams(resample.ConfigPath())
	if err != nil {
		return err
	}
	params.Write(os.Stderr, "Resample Config")

	pw := newProgressWriter()
	go pw.Render()

	var in dataset.Table
	var out dataset.Dataset
	err = track(pw, "Loading "+resample.Input(), func() (err error) {
		in, err = dataset.Load(ctx, resample.Input(), resample.LabelColumn())
		return err
	})
	if err == nil {
		err = track(pw, "Resampling ("+string(params.Strategy)+")", func() (err error) {
			out, err = resample.Run(in.Dataset, params)
			return err
		})
	}
	if err == nil {
		err = track(pw, "Writing "+resample.Output(), func() error {
			return dataset.Save(resample.Output(), dataset.Table{
				Columns:     in.Columns,
				LabelColumn: in.LabelColumn,
				Dataset:     out,
			})
		})
	}
	if dir := resample.TensorDir(); err == nil && dir != "" {
		err = track(pw, "Exporting tensors to "+dir, func() error {
			return export.Save(dir, out)
		})
	}
	stopProgressWriter(pw)
	if err != nil {
		return err
	}

	dataset.Summarize(in.Dataset).Write(os.Stderr, "Input", in.Columns)
	dataset.Summarize(out).Write(os.Stderr, "Output", in.Columns)
	return nil
}

func runMetrics(ctx context.Context) error {
	in, err := dataset.Load(ctx, resample.Input(), resample.LabelColumn())
	if err != nil {
		return err
	}
	predictions, err := in.Column(resample.PredictionColumn())
	if err != nil {
		return err
	}
	report, err := metrics.Compute(predictions, in.Labels)
	if err != nil {
		return err
	}
	report.Write(os.Stdout)
	return nil
}

func runServer(ctx context.Context) error {
	svr := server.New(resample.Addr())

	t := table.NewWriter()
	t.SetOutputMirror(os.Stderr)
	t.SetTitle("Server")
	t.AppendRows([]table.Row{
		{"RESAMPLE_ADDR", svr.Addr()},
	})
	t.Render()

	errCh := make(chan error, 1)
	go func() {
		errCh <- svr.Run()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Printf("shutting down server on %s", svr.Addr())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return svr.Shutdown(shutdownCtx)
	}
}

func main() {
	if _, ok := os.LookupEnv("ENV"); !ok {
		env := "development"
		os.Setenv("ENV", env)
	}
	loadEnv(".env."+os.Getenv("ENV")+".local", ".env."+os.Getenv("ENV"), ".env.local", ".env")

	command := "resample"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch command {
	case "resample":
		err = runResample(ctx)
	case "metrics":
		err = runMetrics(ctx)
	case "serve":
		err = runServer(ctx)
	default:
		err = fmt.Errorf("unknown command %q, expected resample, metrics or serve", command)
	}
	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

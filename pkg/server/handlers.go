package server

import (
	"encoding/json"
	"log"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grexie/imbalance/pkg/balance"
	"github.com/grexie/imbalance/pkg/dataset"
	"github.com/grexie/imbalance/pkg/errs"
	"github.com/grexie/imbalance/pkg/metrics"
	"github.com/grexie/imbalance/pkg/resample"
	"github.com/grexie/imbalance/pkg/smote"
)

type ResampleRequest struct {
	Features  [][]float64 `json:"features"`
	Labels    []int       `json:"labels"`
	Factor    float64     `json:"factor"`
	Neighbors *int        `json:"neighbors,omitempty"`
	Seed      *int64      `json:"seed,omitempty"`
}

type ResampleResponse struct {
	Features [][]float64 `json:"features"`
	Labels   []int       `json:"labels"`
	Minority int         `json:"minority"`
	Majority int         `json:"majority"`
}

type PlanResponse struct {
	Minority    int `json:"minority"`
	Majority    int `json:"majority"`
	Replicated  int `json:"replicated"`
	Synthesized int `json:"synthesized"`
	Total       int `json:"total"`
}

type MetricsRequest struct {
	Predictions []int `json:"predictions"`
	Labels      []int `json:"labels"`
}

// MetricsResponse mirrors metrics.Report with undefined rates as null.
type MetricsResponse struct {
	TP          int      `json:"tp"`
	TN          int      `json:"tn"`
	FP          int      `json:"fp"`
	FN          int      `json:"fn"`
	Accuracy    *float64 `json:"accuracy"`
	Precision   *float64 `json:"precision"`
	Recall      *float64 `json:"recall"`
	Specificity *float64 `json:"specificity"`
}

type SpecificityResponse struct {
	Specificity *float64 `json:"specificity"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (req ResampleRequest) params(strategy string) (resample.Params, error) {
	s, err := resample.ParseStrategy(strategy)
	if err != nil {
		return resample.Params{}, err
	}
	params := resample.Params{
		Strategy:  s,
		Factor:    req.Factor,
		Neighbors: smote.DefaultNeighbors,
		Seed:      resample.DefaultSeed,
	}
	if req.Neighbors != nil {
		params.Neighbors = *req.Neighbors
	}
	if req.Seed != nil {
		params.Seed = *req.Seed
	}
	return params, nil
}

func Resample(w http.ResponseWriter, r *http.Request) {
	req := ResampleRequest{}
	if !decode(w, r, &req) {
		return
	}
	params, err := req.params(chi.URLParam(r, "strategy"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	out, err := resample.Run(dataset.Dataset{Features: req.Features, Labels: req.Labels}, params)
	if err != nil {
		writeError(w, statusCode(err), err)
		return
	}

	summary := dataset.Summarize(out)
	writeJSON(w, http.StatusOK, ResampleResponse{
		Features: out.Features,
		Labels:   out.Labels,
		Minority: summary.Minority.Count,
		Majority: summary.Majority.Count,
	})
}

func Plan(w http.ResponseWriter, r *http.Request) {
	req := ResampleRequest{}
	if !decode(w, r, &req) {
		return
	}
	params, err := req.params(chi.URLParam(r, "strategy"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var target balance.Target
	if target, err = resample.Plan(dataset.Dataset{Features: req.Features, Labels: req.Labels}, params); err != nil {
		writeError(w, statusCode(err), err)
		return
	}
	writeJSON(w, http.StatusOK, PlanResponse{
		Minority:    target.Minority,
		Majority:    target.Majority,
		Replicated:  target.Replicated,
		Synthesized: target.Synthesized,
		Total:       target.Total(),
	})
}

func Metrics(w http.ResponseWriter, r *http.Request) {
	req := MetricsRequest{}
	if !decode(w, r, &req) {
		return
	}
	report, err := metrics.Compute(req.Predictions, req.Labels)
	if err != nil {
		writeError(w, statusCode(err), err)
		return
	}
	writeJSON(w, http.StatusOK, MetricsResponse{
		TP:          report.TP,
		TN:          report.TN,
		FP:          report.FP,
		FN:          report.FN,
		Accuracy:    nullable(report.Accuracy),
		Precision:   nullable(report.Precision),
		Recall:      nullable(report.Recall),
		Specificity: nullable(report.Specificity),
	})
}

func Specificity(w http.ResponseWriter, r *http.Request) {
	req := MetricsRequest{}
	if !decode(w, r, &req) {
		return
	}
	specificity, err := metrics.Specificity(req.Predictions, req.Labels)
	if err != nil {
		writeError(w, statusCode(err), err)
		return
	}
	writeJSON(w, http.StatusOK, SpecificityResponse{Specificity: nullable(specificity)})
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func statusCode(err error) int {
	if errs.IsInput(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-doctor-api/internal/usecases/analyzing"
)

// ListBenchmarks returns the industry benchmark table used by the analysis.
func ListBenchmarks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analyzing.Benchmarks()); err != nil {
			logrus.WithError(err).Error("error encoding benchmarks")
		}
	}
}

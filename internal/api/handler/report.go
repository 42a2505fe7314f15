package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-doctor-api/internal/domain"
	"github.com/vfg2006/business-doctor-api/internal/usecases/consulting"
	"github.com/vfg2006/business-doctor-api/pkg/apiErrors"
)

// GenerateReport builds the requested report for a completed consultation.
// Repeated requests for the same type return the stored document.
func GenerateReport(service consulting.Consulting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultation, ok := authorizedConsultation(w, r, service)
		if !ok {
			return
		}

		reportType := domain.ReportType(httprouter.ParamsFromContext(r.Context()).ByName("type"))
		if !domain.ValidReportType(reportType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "report type must be diagnostic, proposal or executive", nil)
			return
		}

		report, err := service.GenerateReport(consultation.ID, reportType)
		if err != nil {
			logrus.WithError(err).Error("error generating report")
			handleConsultingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("error encoding report")
		}
	}
}

func ListReports(service consulting.Consulting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultation, ok := authorizedConsultation(w, r, service)
		if !ok {
			return
		}

		reports, err := service.Reports(consultation.ID)
		if err != nil {
			logrus.WithError(err).Error("error listing reports")
			handleConsultingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reports); err != nil {
			logrus.WithError(err).Error("error encoding reports")
		}
	}
}

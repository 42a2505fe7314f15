package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-doctor-api/internal/domain"
	"github.com/vfg2006/business-doctor-api/internal/usecases/consulting"
	"github.com/vfg2006/business-doctor-api/pkg/apiErrors"
	"github.com/vfg2006/business-doctor-api/pkg/middleware"
	"github.com/vfg2006/business-doctor-api/pkg/utils"
)

type StartConsultationRequest struct {
	CompanyName string `json:"company_name"`
	ClientID    string `json:"client_id"`
}

type SubmitTurnRequest struct {
	Message string `json:"message"`
}

// StartConsultation opens a new intake session. Clients always open sessions
// for themselves; operators may open one on behalf of any client.
func StartConsultation(service consulting.Consulting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
			return
		}

		var req StartConsultationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		clientID := userClaims.ClientID
		if userClaims.IsOperator() && req.ClientID != "" {
			clientID = req.ClientID
		}
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "client_id is required", nil)
			return
		}

		consultation, err := service.Start(clientID, req.CompanyName)
		if err != nil {
			logrus.WithError(err).Error("error starting consultation")
			handleConsultingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(consultation); err != nil {
			logrus.WithError(err).Error("error encoding consultation")
		}
	}
}

// ListConsultations lists consultations for a client, optionally filtered by
// a start date (from=YYYY-MM-DD). Operator only.
func ListConsultations(service consulting.Consulting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := r.URL.Query().Get("client_id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "client_id query parameter is required", nil)
			return
		}

		consultations, err := service.ListByClient(clientID)
		if err != nil {
			logrus.WithError(err).Error("error listing consultations")
			handleConsultingError(w, err)
			return
		}

		if fromStr := r.URL.Query().Get("from"); fromStr != "" {
			from, err := utils.ParseDate(fromStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "from must be in YYYY-MM-DD format", nil)
				return
			}

			filtered := consultations[:0]
			for _, consultation := range consultations {
				if !consultation.StartTime.Before(*from) {
					filtered = append(filtered, consultation)
				}
			}
			consultations = filtered
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(consultations); err != nil {
			logrus.WithError(err).Error("error encoding consultations")
		}
	}
}

func GetConsultation(service consulting.Consulting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultation, ok := authorizedConsultation(w, r, service)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(consultation); err != nil {
			logrus.WithError(err).Error("error encoding consultation")
		}
	}
}

// SubmitTurn processes one client turn and returns the consultant's next
// question along with what the turn uncovered.
func SubmitTurn(service consulting.Consulting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultation, ok := authorizedConsultation(w, r, service)
		if !ok {
			return
		}

		var req SubmitTurnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		result, err := service.ProcessTurn(r.Context(), consultation.ID, req.Message)
		if err != nil {
			logrus.WithError(err).Error("error processing consultation turn")
			handleConsultingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("error encoding turn result")
		}
	}
}

// CompleteConsultation finishes the session regardless of its current stage.
func CompleteConsultation(service consulting.Consulting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultation, ok := authorizedConsultation(w, r, service)
		if !ok {
			return
		}

		completed, err := service.Complete(consultation.ID)
		if err != nil {
			logrus.WithError(err).Error("error completing consultation")
			handleConsultingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(completed); err != nil {
			logrus.WithError(err).Error("error encoding consultation")
		}
	}
}

func ListBottlenecks(service consulting.Consulting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultation, ok := authorizedConsultation(w, r, service)
		if !ok {
			return
		}

		bottlenecks, err := service.Bottlenecks(consultation.ID)
		if err != nil {
			logrus.WithError(err).Error("error listing bottlenecks")
			handleConsultingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(bottlenecks); err != nil {
			logrus.WithError(err).Error("error encoding bottlenecks")
		}
	}
}

func ListInsights(service consulting.Consulting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultation, ok := authorizedConsultation(w, r, service)
		if !ok {
			return
		}

		insights, err := service.Insights(consultation.ID)
		if err != nil {
			logrus.WithError(err).Error("error listing insights")
			handleConsultingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logrus.WithError(err).Error("error encoding insights")
		}
	}
}

// authorizedConsultation loads the consultation from the :id route parameter
// and enforces ownership: clients only reach their own sessions, operators
// reach all of them. On failure the error response is already written.
func authorizedConsultation(w http.ResponseWriter, r *http.Request, service consulting.Consulting) (*domain.Consultation, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
		return nil, false
	}

	consultationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if consultationID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "consultation id is required", nil)
		return nil, false
	}

	consultation, err := service.Get(consultationID)
	if err != nil {
		handleConsultingError(w, err)
		return nil, false
	}

	if !userClaims.IsOperator() && consultation.ClientID != userClaims.ClientID {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "consultation belongs to another client", nil)
		return nil, false
	}

	return consultation, true
}

// handleConsultingError translates consultation lifecycle failures into API
// error codes.
func handleConsultingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, consulting.ErrConsultationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrConsultationNotFound, "consultation not found", nil)

	case errors.Is(err, consulting.ErrConsultationCompleted):
		apiErrors.WriteError(w, apiErrors.ErrConsultationCompleted, "consultation is already completed", nil)

	case errors.Is(err, consulting.ErrConsultationOpen):
		apiErrors.WriteError(w, apiErrors.ErrConsultationOpen, "consultation must be completed first", nil)

	case errors.Is(err, consulting.ErrInvalidReportType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "unknown report type", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal error", nil)
	}
}

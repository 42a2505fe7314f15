package consulting

import "errors"

var (
	ErrConsultationNotFound  = errors.New("consultation not found")
	ErrConsultationCompleted = errors.New("consultation is already completed")
	ErrConsultationOpen      = errors.New("consultation is still in progress")
	ErrInvalidReportType     = errors.New("invalid report type")
)

package repository

import "errors"

var (
	// ErrConsultationImmutable is returned when an update targets a
	// consultation that has already been completed.
	ErrConsultationImmutable = errors.New("consultation is completed and immutable")

	// ErrReportExists is returned when a report of the same type already
	// exists for the consultation.
	ErrReportExists = errors.New("report of this type already exists for the consultation")
)

// Package repository contains the Postgres repositories for consultation data.
//
// Bottleneck, insight and report rows are append-only: there is no update path
// for them. Consultations accept field updates only while status is
// in_progress; the UPDATE statements guard on status to keep completed
// sessions immutable.
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-doctor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-doctor-api/internal/domain"
)

const consultationsTable = "consultations"

type ConsultationRepository interface {
	Create(consultation *domain.Consultation) error
	GetByID(id string) (*domain.Consultation, error)
	ListByClientID(clientID string) ([]*domain.Consultation, error)
	ListIdleInProgress(idleSince time.Time) ([]*domain.Consultation, error)
	Update(consultation *domain.Consultation) error
}

type consultationRepository struct {
	conn *postgres.Connection
}

func NewConsultationRepository(conn *postgres.Connection) ConsultationRepository {
	return &consultationRepository{
		conn: conn,
	}
}

func (r *consultationRepository) Create(consultation *domain.Consultation) error {
	transcriptJSON, metricsJSON, err := marshalConsultationBlobs(consultation)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert(consultationsTable).
		Columns(
			"id",
			"client_id",
			"company_name",
			"status",
			"stage",
			"stage_turns",
			"stage_informative",
			"transcript",
			"metrics",
			"start_time",
		).
		Values(
			consultation.ID,
			consultation.ClientID,
			consultation.CompanyName,
			consultation.Status,
			consultation.Stage,
			consultation.StageTurns,
			consultation.StageInformative,
			transcriptJSON,
			metricsJSON,
			consultation.StartTime,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building consultation insert: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("inserting consultation: %w", err)
	}

	return nil
}

func (r *consultationRepository) GetByID(id string) (*domain.Consultation, error) {
	query, args, err := selectConsultations().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building consultation query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	consultation, err := scanConsultationRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning consultation: %w", err)
	}

	return consultation, nil
}

func (r *consultationRepository) ListByClientID(clientID string) ([]*domain.Consultation, error) {
	query, args, err := selectConsultations().
		Where(squirrel.Eq{"c.client_id": clientID}).
		OrderBy("c.start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building consultation list query: %w", err)
	}

	return r.queryConsultations(query, args)
}

// ListIdleInProgress returns in_progress consultations not touched since the
// given instant. Used by the abandonment sweeper.
func (r *consultationRepository) ListIdleInProgress(idleSince time.Time) ([]*domain.Consultation, error) {
	query, args, err := selectConsultations().
		Where(squirrel.Eq{"c.status": domain.StatusInProgress}).
		Where(squirrel.Lt{"c.updated_at": idleSince}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building idle consultation query: %w", err)
	}

	return r.queryConsultations(query, args)
}

// Update persists the mutable consultation fields. Completed consultations are
// never touched: the guard makes the update a no-op and the caller gets
// ErrConsultationImmutable.
func (r *consultationRepository) Update(consultation *domain.Consultation) error {
	transcriptJSON, metricsJSON, err := marshalConsultationBlobs(consultation)
	if err != nil {
		return err
	}

	queryBuilder := squirrel.
		Update(consultationsTable).
		Set("company_name", consultation.CompanyName).
		Set("status", consultation.Status).
		Set("stage", consultation.Stage).
		Set("stage_turns", consultation.StageTurns).
		Set("stage_informative", consultation.StageInformative).
		Set("transcript", transcriptJSON).
		Set("metrics", metricsJSON).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": consultation.ID}).
		Where(squirrel.NotEq{"status": domain.StatusCompleted}).
		PlaceholderFormat(squirrel.Dollar)

	if consultation.EndTime != nil {
		queryBuilder = queryBuilder.Set("end_time", *consultation.EndTime)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("building consultation update: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("updating consultation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrConsultationImmutable
	}

	return nil
}

func (r *consultationRepository) queryConsultations(query string, args []interface{}) ([]*domain.Consultation, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying consultations: %w", err)
	}
	defer rows.Close()

	consultations := make([]*domain.Consultation, 0)
	for rows.Next() {
		consultation, err := scanConsultation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning consultation: %w", err)
		}
		consultations = append(consultations, consultation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating consultations: %w", err)
	}

	return consultations, nil
}

func selectConsultations() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"c.id",
			"c.client_id",
			"c.company_name",
			"c.status",
			"c.stage",
			"c.stage_turns",
			"c.stage_informative",
			"c.transcript",
			"c.metrics",
			"c.start_time",
			"c.end_time",
			"c.created_at",
			"c.updated_at",
		).
		From(consultationsTable + " c").
		PlaceholderFormat(squirrel.Dollar)
}

func marshalConsultationBlobs(consultation *domain.Consultation) ([]byte, []byte, error) {
	transcriptJSON, err := json.Marshal(consultation.Transcript)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling transcript: %w", err)
	}

	metricsJSON, err := json.Marshal(consultation.Metrics)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling metrics: %w", err)
	}

	return transcriptJSON, metricsJSON, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConsultation(rows *sql.Rows) (*domain.Consultation, error) {
	return scanConsultationFrom(rows)
}

func scanConsultationRow(row *sql.Row) (*domain.Consultation, error) {
	return scanConsultationFrom(row)
}

func scanConsultationFrom(scanner rowScanner) (*domain.Consultation, error) {
	consultation := &domain.Consultation{}

	var transcriptJSON, metricsJSON []byte
	var endTime sql.NullTime

	err := scanner.Scan(
		&consultation.ID,
		&consultation.ClientID,
		&consultation.CompanyName,
		&consultation.Status,
		&consultation.Stage,
		&consultation.StageTurns,
		&consultation.StageInformative,
		&transcriptJSON,
		&metricsJSON,
		&consultation.StartTime,
		&endTime,
		&consultation.CreatedAt,
		&consultation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		consultation.EndTime = &endTime.Time
	}

	if len(transcriptJSON) > 0 {
		if err := json.Unmarshal(transcriptJSON, &consultation.Transcript); err != nil {
			return nil, fmt.Errorf("unmarshaling transcript: %w", err)
		}
	}
	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &consultation.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshaling metrics: %w", err)
		}
	}

	return consultation, nil
}

package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-doctor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-doctor-api/internal/domain"
)

const reportsTable = "reports"

type ReportRepository interface {
	Create(report *domain.Report) error
	GetByConsultationAndType(consultationID string, reportType domain.ReportType) (*domain.Report, error)
	ListByConsultationID(consultationID string) ([]*domain.Report, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

// Create inserts a report. Reports are generated once per type per
// consultation; a conflict on (consultation_id, report_type) yields
// ErrReportExists.
func (r *reportRepository) Create(report *domain.Report) error {
	payloadJSON, err := json.Marshal(report.Payload)
	if err != nil {
		return fmt.Errorf("marshaling report payload: %w", err)
	}

	query, args, err := squirrel.
		Insert(reportsTable).
		Columns(
			"id",
			"consultation_id",
			"report_type",
			"report_data",
		).
		Values(
			report.ID,
			report.ConsultationID,
			report.Type,
			payloadJSON,
		).
		Suffix("ON CONFLICT (consultation_id, report_type) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building report insert: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrReportExists
	}

	return nil
}

func (r *reportRepository) GetByConsultationAndType(consultationID string, reportType domain.ReportType) (*domain.Report, error) {
	query, args, err := selectReports().
		Where(squirrel.Eq{"r.consultation_id": consultationID, "r.report_type": reportType}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building report query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	report, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	return report, nil
}

func (r *reportRepository) ListByConsultationID(consultationID string) ([]*domain.Report, error) {
	query, args, err := selectReports().
		Where(squirrel.Eq{"r.consultation_id": consultationID}).
		OrderBy("r.generated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building report list query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return reports, nil
}

func selectReports() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"r.id",
			"r.consultation_id",
			"r.report_type",
			"r.report_data",
			"r.generated_at",
		).
		From(reportsTable + " r").
		PlaceholderFormat(squirrel.Dollar)
}

func scanReport(scanner rowScanner) (*domain.Report, error) {
	report := &domain.Report{}
	var payloadJSON []byte

	err := scanner.Scan(
		&report.ID,
		&report.ConsultationID,
		&report.Type,
		&payloadJSON,
		&report.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(payloadJSON) > 0 {
		if err := json.Unmarshal(payloadJSON, &report.Payload); err != nil {
			return nil, fmt.Errorf("unmarshaling report payload: %w", err)
		}
	}

	return report, nil
}

package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-doctor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-doctor-api/internal/domain"
)

const insightsTable = "insights"

type InsightRepository interface {
	Create(insight *domain.Insight) error
	ListByConsultationID(consultationID string) ([]*domain.Insight, error)
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

func (r *insightRepository) Create(insight *domain.Insight) error {
	query, args, err := squirrel.
		Insert(insightsTable).
		Columns(
			"id",
			"consultation_id",
			"category",
			"insight",
			"confidence",
			"potential_value",
			"implementation_effort",
		).
		Values(
			insight.ID,
			insight.ConsultationID,
			insight.Category,
			insight.Text,
			insight.Confidence,
			insight.PotentialValue,
			insight.Effort,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insight insert: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("inserting insight: %w", err)
	}

	return nil
}

// ListByConsultationID returns insights ordered by descending potential value.
func (r *insightRepository) ListByConsultationID(consultationID string) ([]*domain.Insight, error) {
	query, args, err := squirrel.
		Select(
			"i.id",
			"i.consultation_id",
			"i.category",
			"i.insight",
			"i.confidence",
			"i.potential_value",
			"i.implementation_effort",
			"i.created_at",
		).
		From(insightsTable + " i").
		Where(squirrel.Eq{"i.consultation_id": consultationID}).
		OrderBy("i.potential_value DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insight query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying insights: %w", err)
	}
	defer rows.Close()

	insights := make([]*domain.Insight, 0)
	for rows.Next() {
		insight := &domain.Insight{}
		err := rows.Scan(
			&insight.ID,
			&insight.ConsultationID,
			&insight.Category,
			&insight.Text,
			&insight.Confidence,
			&insight.PotentialValue,
			&insight.Effort,
			&insight.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning insight: %w", err)
		}
		insights = append(insights, insight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating insights: %w", err)
	}

	return insights, nil
}

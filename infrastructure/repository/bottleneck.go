package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-doctor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-doctor-api/internal/domain"
)

const bottlenecksTable = "bottlenecks"

type BottleneckRepository interface {
	Create(bottleneck *domain.Bottleneck) error
	ListByConsultationID(consultationID string) ([]*domain.Bottleneck, error)
}

type bottleneckRepository struct {
	conn *postgres.Connection
}

func NewBottleneckRepository(conn *postgres.Connection) BottleneckRepository {
	return &bottleneckRepository{
		conn: conn,
	}
}

func (r *bottleneckRepository) Create(bottleneck *domain.Bottleneck) error {
	query, args, err := squirrel.
		Insert(bottlenecksTable).
		Columns(
			"id",
			"consultation_id",
			"name",
			"description",
			"category",
			"time_impact_hours",
			"cost_impact",
			"automation_potential",
			"priority",
		).
		Values(
			bottleneck.ID,
			bottleneck.ConsultationID,
			bottleneck.Name,
			bottleneck.Description,
			bottleneck.Category,
			bottleneck.TimeImpactHours,
			bottleneck.CostImpact,
			bottleneck.AutomationPotential,
			bottleneck.Priority,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building bottleneck insert: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("inserting bottleneck: %w", err)
	}

	return nil
}

// ListByConsultationID returns the bottlenecks of a consultation ordered by
// descending cost impact.
func (r *bottleneckRepository) ListByConsultationID(consultationID string) ([]*domain.Bottleneck, error) {
	query, args, err := squirrel.
		Select(
			"b.id",
			"b.consultation_id",
			"b.name",
			"b.description",
			"b.category",
			"b.time_impact_hours",
			"b.cost_impact",
			"b.automation_potential",
			"b.priority",
			"b.created_at",
		).
		From(bottlenecksTable + " b").
		Where(squirrel.Eq{"b.consultation_id": consultationID}).
		OrderBy("b.cost_impact DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building bottleneck query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying bottlenecks: %w", err)
	}
	defer rows.Close()

	bottlenecks := make([]*domain.Bottleneck, 0)
	for rows.Next() {
		bottleneck := &domain.Bottleneck{}
		err := rows.Scan(
			&bottleneck.ID,
			&bottleneck.ConsultationID,
			&bottleneck.Name,
			&bottleneck.Description,
			&bottleneck.Category,
			&bottleneck.TimeImpactHours,
			&bottleneck.CostImpact,
			&bottleneck.AutomationPotential,
			&bottleneck.Priority,
			&bottleneck.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning bottleneck: %w", err)
		}
		bottlenecks = append(bottlenecks, bottleneck)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bottlenecks: %w", err)
	}

	return bottlenecks, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/nekocare/backend/pkg/entity"
)

type RiskAssessmentsRepository struct {
	conn PgConnection
}

func NewRiskAssessmentsRepo(conn PgConnection) *RiskAssessmentsRepository {
	mustPing(conn, "riskAssessmentsRepo")
	return &RiskAssessmentsRepository{
		conn: conn,
	}
}

func (rr *RiskAssessmentsRepository) GetRecent(ctx context.Context, limit int) ([]entity.RiskAssessment, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT id, risk_level, summary_text, risk_count, assessed_at FROM risk_assessments ORDER BY assessed_at DESC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting recent risk assessments error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.RiskAssessment, 0, limit)
	for rows.Next() {
		r := entity.RiskAssessment{}
		if err = rows.Scan(&r.ID, &r.RiskLevel, &r.SummaryText, &r.RiskCount, &r.AssessedAt); err != nil {
			return nil, errors.New("risk assessment row parsing error: " + err.Error())
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected risk assessment rows error: " + err.Error())
	}
	return result, nil
}

func (rr *RiskAssessmentsRepository) CreateBatch(ctx context.Context, risks []entity.RiskAssessment) error {
	if len(risks) == 0 {
		return nil
	}
	tx, err := rr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting risk assessments transaction error: " + err.Error())
	}
	for _, r := range risks {
		_, err = tx.Exec(ctx,
			`INSERT INTO risk_assessments (risk_level, summary_text, risk_count, assessed_at) VALUES ($1, $2, $3, $4);`,
			r.RiskLevel,
			r.SummaryText,
			r.RiskCount,
			r.AssessedAt,
		)
		if err != nil {
			tx.Rollback(ctx)
			return errors.New("inserting risk assessment error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing risk assessments error: " + err.Error())
	}
	return nil
}

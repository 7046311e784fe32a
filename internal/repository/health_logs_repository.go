package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/nekocare/backend/pkg/entity"
)

const (
	insertHealthLogQuery = `INSERT INTO daily_health_logs (cat_id, log_date, weight_kg, food_text, eating_level, drinking_level, urine_amount, stool_type, energy_level, payload_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	recentHealthLogsQuery = `SELECT id, cat_id, log_date, weight_kg, food_text, eating_level, drinking_level, urine_amount, stool_type, energy_level, payload_json FROM (
			SELECT id, cat_id, log_date, COALESCE(weight_kg, 0)::float8 AS weight_kg, COALESCE(food_text, '') AS food_text,
				COALESCE(eating_level, '') AS eating_level, COALESCE(drinking_level, '') AS drinking_level,
				COALESCE(urine_amount, '') AS urine_amount, COALESCE(stool_type, '') AS stool_type,
				COALESCE(energy_level, '') AS energy_level, payload_json, created_at
			FROM daily_health_logs ORDER BY log_date DESC, created_at DESC LIMIT $1
		) recent ORDER BY log_date ASC, created_at ASC;`
)

type HealthLogsRepository struct {
	conn PgConnection
}

func NewHealthLogsRepo(conn PgConnection) *HealthLogsRepository {
	mustPing(conn, "healthLogsRepo")
	return &HealthLogsRepository{
		conn: conn,
	}
}

func (lr *HealthLogsRepository) Count(ctx context.Context) (int, error) {
	row := lr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM daily_health_logs;`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting health logs: " + err.Error())
	}
	return count, nil
}

func (lr *HealthLogsRepository) GetRecent(ctx context.Context, limit int) ([]entity.DailyHealthLog, error) {
	rows, err := lr.conn.Query(ctx, recentHealthLogsQuery, limit)
	if err != nil {
		return nil, errors.New("getting recent health logs error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyHealthLog, 0, limit)
	for rows.Next() {
		var (
			l       entity.DailyHealthLog
			urine   string
			payload []byte
		)
		err = rows.Scan(&l.ID, &l.CatID, &l.LogDate, &l.WeightKg, &l.FoodText, &l.EatingLevel, &l.DrinkingLevel,
			&urine, &l.StoolType, &l.EnergyLevel, &payload)
		if err != nil {
			return nil, errors.New("health log row parsing error: " + err.Error())
		}
		l.UrineAmount = entity.UrineAmount(urine)
		if len(payload) > 0 {
			if err = sonic.Unmarshal(payload, &l.Payload); err != nil {
				return nil, errors.New("health log payload parsing error: " + err.Error())
			}
		}
		result = append(result, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected health log rows error: " + err.Error())
	}
	return result, nil
}

func (lr *HealthLogsRepository) CreateBatch(ctx context.Context, logs []entity.DailyHealthLog) error {
	if len(logs) == 0 {
		return nil
	}
	tx, err := lr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting health logs transaction error: " + err.Error())
	}
	for _, l := range logs {
		payload, err := sonic.Marshal(l.Payload)
		if err != nil {
			tx.Rollback(ctx)
			return errors.New("marshalling health log payload error: " + err.Error())
		}
		_, err = tx.Exec(ctx, insertHealthLogQuery,
			l.CatID,
			l.LogDate,
			l.WeightKg,
			l.FoodText,
			l.EatingLevel,
			l.DrinkingLevel,
			string(l.UrineAmount),
			l.StoolType,
			l.EnergyLevel,
			payload,
		)
		if err != nil {
			tx.Rollback(ctx)
			return errors.New("inserting health log error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing health logs error: " + err.Error())
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nekocare/backend/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates anonymous user with given secret hash, returns its id
	CreateAnonymous(ctx context.Context, secretHash string) (uuid.UUID, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type PetsRepositoryI interface {
	// Returns any existing pet. ErrPetNotFound if table is empty
	FindFirst(ctx context.Context) (*entity.Pet, error)
	// Inserts pet (Name and OwnerID are necessary), returns new id
	Create(ctx context.Context, pet *entity.Pet) (uuid.UUID, error)
	// Lists pets ordered by creation time
	List(ctx context.Context, limit int) ([]*entity.Pet, error)
}

type HealthLogsRepositoryI interface {
	// Returns total amount of daily logs
	Count(ctx context.Context) (int, error)
	// Returns up to limit newest logs, ordered by log_date ascending
	GetRecent(ctx context.Context, limit int) ([]entity.DailyHealthLog, error)
	// Inserts all logs in one transaction
	CreateBatch(ctx context.Context, logs []entity.DailyHealthLog) error
}

type RiskAssessmentsRepositoryI interface {
	// Returns up to limit newest assessments, ordered by assessed_at descending
	GetRecent(ctx context.Context, limit int) ([]entity.RiskAssessment, error)
	// Inserts all assessments in one transaction
	CreateBatch(ctx context.Context, risks []entity.RiskAssessment) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

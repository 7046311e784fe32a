package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/nekocare/backend/pkg/entity"
)

type PetsRepository struct {
	conn PgConnection
}

func NewPetsRepo(conn PgConnection) *PetsRepository {
	mustPing(conn, "petsRepo")
	return &PetsRepository{
		conn: conn,
	}
}

func (pr *PetsRepository) FindFirst(ctx context.Context) (*entity.Pet, error) {
	var pet entity.Pet
	row := pr.conn.QueryRow(ctx, `SELECT id, owner_user_id, name, breed FROM cats ORDER BY created_at LIMIT 1;`)
	if err := row.Scan(&pet.ID, &pet.OwnerID, &pet.Name, &pet.Type); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPetNotFound
		}
		return nil, errors.New("searching any pet error: " + err.Error())
	}
	return &pet, nil
}

func (pr *PetsRepository) Create(ctx context.Context, pet *entity.Pet) (uuid.UUID, error) {
	if pet == nil {
		return uuid.UUID{}, errors.New("pet is nil")
	}
	breed := pet.Type
	if breed == "" {
		breed = "Cat"
	}
	var id uuid.UUID
	row := pr.conn.QueryRow(ctx, `INSERT INTO cats (owner_user_id, name, breed) VALUES ($1, $2, $3) RETURNING id;`,
		pet.OwnerID,
		pet.Name,
		breed,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating pet db error: " + err.Error())
	}
	return id, nil
}

func (pr *PetsRepository) List(ctx context.Context, limit int) ([]*entity.Pet, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, owner_user_id, name, breed FROM cats ORDER BY created_at LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("listing pets error: " + err.Error())
	}
	defer rows.Close()
	pets := make([]*entity.Pet, 0)
	for rows.Next() {
		p := entity.Pet{}
		if err = rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Type); err != nil {
			return nil, errors.New("unmarshalling pet error: " + err.Error())
		}
		pets = append(pets, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning pets: " + err.Error())
	}
	return pets, nil
}
